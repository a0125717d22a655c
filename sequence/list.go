package sequence

import (
	"container/list"

	"github.com/perflab/seqwork/fault"
)

// ListSeq keeps its elements in a doubly-linked list. Both the insertion
// position and the removal position are found by walking the list, so
// every operation is linear in the current length.
type ListSeq struct {
	items *list.List
}

// NewListSeq returns an empty linked-list sequence.
func NewListSeq() OrderedSeq {
	return &ListSeq{items: list.New()}
}

func (seq *ListSeq) Name() string {
	return "list"
}

func (seq *ListSeq) InsertSorted(value int) (err error) {
	for element := seq.items.Front(); element != nil; element = element.Next() {
		elementValue := element.Value.(int)
		if value == elementValue {
			err = fault.NewError(fault.RuntimeError, "InsertSorted(%v): value already present", value)
			return
		}
		if value < elementValue {
			seq.items.InsertBefore(value, element)
			err = nil
			return
		}
	}

	seq.items.PushBack(value)

	err = nil
	return
}

func (seq *ListSeq) RemoveByIndex(index int) (value int, err error) {
	element := seq.items.Front()
	for i := 0; i < index; i++ {
		element = element.Next()
	}

	value = seq.items.Remove(element).(int)

	err = nil
	return
}

func (seq *ListSeq) Len() (numberOfItems int) {
	numberOfItems = seq.items.Len()
	return
}

func (seq *ListSeq) Contents() (values []int) {
	values = make([]int, 0, seq.items.Len())
	for element := seq.items.Front(); element != nil; element = element.Next() {
		values = append(values, element.Value.(int))
	}
	return
}

func (seq *ListSeq) Release() {
	seq.items.Init()
}
