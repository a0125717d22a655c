package sequence

import (
	"github.com/google/btree"

	"github.com/perflab/seqwork/fault"
)

// B-tree node degree. Wide nodes keep the tree shallow without making
// single-element shifts expensive.
const btreeDegree = 16

type btreeItem int

func (item btreeItem) Less(than btree.Item) bool {
	return item < than.(btreeItem)
}

// BTreeSeq keeps its elements as the items of a B-tree. The tree keeps its
// items ordered on its own; positional removal walks the items in ascending
// order to locate the requested index, since the tree does not track ranks.
type BTreeSeq struct {
	tree *btree.BTree
}

// NewBTreeSeq returns an empty B-tree-backed sequence.
func NewBTreeSeq() OrderedSeq {
	return &BTreeSeq{tree: btree.New(btreeDegree)}
}

func (seq *BTreeSeq) Name() string {
	return "btree"
}

func (seq *BTreeSeq) InsertSorted(value int) (err error) {
	replaced := seq.tree.ReplaceOrInsert(btreeItem(value))
	if replaced != nil {
		err = fault.NewError(fault.RuntimeError, "InsertSorted(%v): value already present", value)
		return
	}

	err = nil
	return
}

func (seq *BTreeSeq) RemoveByIndex(index int) (value int, err error) {
	var (
		found     bool
		itemIndex int
	)

	seq.tree.Ascend(func(item btree.Item) bool {
		if itemIndex == index {
			value = int(item.(btreeItem))
			found = true
			return false
		}
		itemIndex++
		return true
	})

	if !found {
		err = fault.NewError(fault.RuntimeError, "RemoveByIndex(%v): index out of range", index)
		return
	}

	removed := seq.tree.Delete(btreeItem(value))
	if removed == nil {
		err = fault.NewError(fault.RuntimeError, "RemoveByIndex(%v): delete failed", index)
		return
	}

	err = nil
	return
}

func (seq *BTreeSeq) Len() (numberOfItems int) {
	numberOfItems = seq.tree.Len()
	return
}

func (seq *BTreeSeq) Contents() (values []int) {
	values = make([]int, 0, seq.tree.Len())
	seq.tree.Ascend(func(item btree.Item) bool {
		values = append(values, int(item.(btreeItem)))
		return true
	})
	return
}

func (seq *BTreeSeq) Release() {
	seq.tree.Clear(false)
}
