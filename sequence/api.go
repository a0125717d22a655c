// Package sequence provides ordered, index-addressable integer sequence
// containers for the insert/remove benchmark.
//
// Every implementation keeps its elements in ascending order across
// InsertSorted() calls and supports direct positional removal via
// RemoveByIndex(). The implementations differ only in their underlying
// storage (contiguous slice, doubly-linked list, LLRB tree, B-tree),
// which is the entire point of benchmarking them against each other.
package sequence

// OrderedSeq is an ordered sequence of distinct integers.
type OrderedSeq interface {
	// Name returns the short name the benchmark reports this container under.
	Name() string

	// InsertSorted inserts value at the position that keeps the sequence
	// in ascending order. Inserting a value already present fails.
	InsertSorted(value int) (err error)

	// RemoveByIndex removes and returns the element at the given position.
	// The caller guarantees 0 <= index < Len().
	RemoveByIndex(index int) (value int, err error)

	// Len returns the number of elements currently held.
	Len() (numberOfItems int)

	// Contents returns the elements in sequence order. It is intended for
	// verification and verbose tracing, not for the timed path.
	Contents() (values []int)

	// Release drops all storage held by the container. The benchmark
	// invokes it inside the timed region so that teardown cost is
	// attributed to the container.
	Release()
}

// Constructor makes an empty OrderedSeq. The benchmark calls it inside the
// timed region so that construction cost is attributed to the container.
type Constructor func() OrderedSeq

var constructorsByName = map[string]Constructor{
	"slice": NewSliceSeq,
	"list":  NewListSeq,
	"llrb":  NewLLRBSeq,
	"btree": NewBTreeSeq,
}

// Names returns the container names accepted by FetchConstructor, in the
// order benchmarks report them.
func Names() []string {
	return []string{"slice", "list", "llrb", "btree"}
}

// FetchConstructor returns the Constructor registered under name.
func FetchConstructor(name string) (constructor Constructor, ok bool) {
	constructor, ok = constructorsByName[name]
	return
}
