package sequence

import (
	"sort"

	"github.com/perflab/seqwork/fault"
)

// SliceSeq keeps its elements in a contiguous slice. Insertion position is
// found with a binary search; insertion and removal shift the tail of the
// slice.
type SliceSeq struct {
	items []int
}

// NewSliceSeq returns an empty contiguous-storage sequence.
func NewSliceSeq() OrderedSeq {
	return &SliceSeq{}
}

func (seq *SliceSeq) Name() string {
	return "slice"
}

func (seq *SliceSeq) InsertSorted(value int) (err error) {
	pos := sort.SearchInts(seq.items, value)
	if (pos < len(seq.items)) && (value == seq.items[pos]) {
		err = fault.NewError(fault.RuntimeError, "InsertSorted(%v): value already present", value)
		return
	}

	seq.items = append(seq.items, 0)
	copy(seq.items[pos+1:], seq.items[pos:])
	seq.items[pos] = value

	err = nil
	return
}

func (seq *SliceSeq) RemoveByIndex(index int) (value int, err error) {
	// Index validity is guaranteed by the workload generator; no bound
	// check here to keep the measured path equivalent to a bare erase.
	value = seq.items[index]
	copy(seq.items[index:], seq.items[index+1:])
	seq.items = seq.items[:len(seq.items)-1]

	err = nil
	return
}

func (seq *SliceSeq) Len() (numberOfItems int) {
	numberOfItems = len(seq.items)
	return
}

func (seq *SliceSeq) Contents() (values []int) {
	values = make([]int, len(seq.items))
	copy(values, seq.items)
	return
}

func (seq *SliceSeq) Release() {
	seq.items = nil
}
