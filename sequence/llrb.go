package sequence

import (
	"fmt"

	"github.com/NVIDIA/sortedmap"

	"github.com/perflab/seqwork/fault"
)

// LLRBSeq keeps its elements as the keys of a Left-Leaning Red-Black tree.
// The tree keeps the keys ordered on its own, so InsertSorted() is a plain
// Put() and RemoveByIndex() maps onto the tree's DeleteByIndex().
type LLRBSeq struct {
	tree sortedmap.LLRBTree
}

// NewLLRBSeq returns an empty LLRB-tree-backed sequence.
func NewLLRBSeq() OrderedSeq {
	seq := &LLRBSeq{}
	seq.tree = sortedmap.NewLLRBTree(sortedmap.CompareInt, seq)
	return seq
}

func (seq *LLRBSeq) Name() string {
	return "llrb"
}

func (seq *LLRBSeq) InsertSorted(value int) (err error) {
	ok, err := seq.tree.Put(value, nil)
	if nil != err {
		err = fault.AddClass(err, fault.RuntimeError)
		return
	}
	if !ok {
		err = fault.NewError(fault.RuntimeError, "InsertSorted(%v): value already present", value)
		return
	}

	err = nil
	return
}

func (seq *LLRBSeq) RemoveByIndex(index int) (value int, err error) {
	key, _, ok, err := seq.tree.GetByIndex(index)
	if nil != err {
		err = fault.AddClass(err, fault.RuntimeError)
		return
	}
	if !ok {
		err = fault.NewError(fault.RuntimeError, "RemoveByIndex(%v): index out of range", index)
		return
	}

	value = key.(int)

	ok, err = seq.tree.DeleteByIndex(index)
	if nil != err {
		err = fault.AddClass(err, fault.RuntimeError)
		return
	}
	if !ok {
		err = fault.NewError(fault.RuntimeError, "RemoveByIndex(%v): delete failed", index)
		return
	}

	err = nil
	return
}

func (seq *LLRBSeq) Len() (numberOfItems int) {
	numberOfItems, err := seq.tree.Len()
	if nil != err {
		numberOfItems = 0
	}
	return
}

func (seq *LLRBSeq) Contents() (values []int) {
	numberOfItems := seq.Len()
	values = make([]int, 0, numberOfItems)
	for index := 0; index < numberOfItems; index++ {
		key, _, ok, err := seq.tree.GetByIndex(index)
		if (nil != err) || !ok {
			return
		}
		values = append(values, key.(int))
	}
	return
}

func (seq *LLRBSeq) Release() {
	seq.tree.Reset()
}

// DumpKey is a sortedmap.DumpCallbacks method.
func (seq *LLRBSeq) DumpKey(key sortedmap.Key) (keyAsString string, err error) {
	keyAsString = fmt.Sprintf("%v", key)
	err = nil
	return
}

// DumpValue is a sortedmap.DumpCallbacks method.
func (seq *LLRBSeq) DumpValue(value sortedmap.Value) (valueAsString string, err error) {
	valueAsString = ""
	err = nil
	return
}
