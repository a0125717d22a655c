// Package workload generates the insert/remove workload for a benchmark
// run: a pseudo-random permutation of 1..N and a matching sequence of
// removal indexes, each valid for the shrinking container size at the
// time it is consumed.
//
// Generation is pure and happens before the timed region. Reproducibility
// is available by supplying a seed; by default the seed is drawn from the
// system entropy source once per run.
package workload

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/perflab/seqwork/fault"
)

// Generator produces the value sequence and removal-index sequence for a
// workload of a given size. A Generator is not safe for concurrent use.
type Generator struct {
	n    int
	prng *rand.Rand
}

// New returns a Generator for a workload of n items using the given seed.
func New(n int, seed int64) (gen *Generator, err error) {
	if n <= 0 {
		err = fault.NewError(fault.ValidationError, "invalid number of items (must be > 0): %v", n)
		return
	}

	gen = &Generator{n: n, prng: rand.New(rand.NewSource(seed))}

	err = nil
	return
}

// NewFromEntropy returns a Generator for a workload of n items seeded from
// the system entropy source.
func NewFromEntropy(n int) (gen *Generator, err error) {
	var seedBuf [8]byte

	_, err = cryptorand.Read(seedBuf[:])
	if nil != err {
		err = fault.AddClass(err, fault.RuntimeError)
		return
	}

	gen, err = New(n, int64(binary.LittleEndian.Uint64(seedBuf[:])))
	return
}

// N returns the workload size.
func (gen *Generator) N() int {
	return gen.n
}

// Values returns the integers 1..N in pseudo-random order. Every
// permutation is equally likely.
func (gen *Generator) Values() (values []int) {
	values = make([]int, gen.n)
	for i := 0; i < gen.n; i++ {
		values[i] = i + 1
	}

	gen.prng.Shuffle(gen.n, func(i int, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return
}

// RemovalIndexes returns a sequence of N removal indexes. The maximum
// valid index shrinks by one after each removal:
//
//   i = 0   -->   valid indexes: 0,1,2,...,(N-1)
//   i = 1   -->   valid indexes: 0,1,2,...,(N-2)
//   :::
//   i = N-1 -->   valid index: 0
//
// so entry i is drawn uniformly from [0, N-i-1]. The final entry is the
// constant 0: when one item remains, its index has no choice.
func (gen *Generator) RemovalIndexes() (removalIndexes []int) {
	removalIndexes = make([]int, gen.n)
	for i := 0; i < (gen.n - 1); i++ {
		removalIndexes[i] = gen.prng.Intn(gen.n - i)
	}
	removalIndexes[gen.n-1] = 0

	return
}
