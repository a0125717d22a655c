// Package workout runs the timed insert/remove routine against an ordered
// sequence container.
//
// The measured interval covers the container's whole lifetime: the start
// tick is read immediately before the container is constructed and the
// finish tick immediately after Release(), so construction and teardown
// cost are attributed to the container under test.
package workout

import (
	"fmt"
	"io"

	"github.com/perflab/seqwork/fault"
	"github.com/perflab/seqwork/hirestime"
	"github.com/perflab/seqwork/sequence"
)

// Options control the optional verbose trace of a run. The trace prints
// the container's contents after every insertion and removal so the logic
// can be verified by eye; it is a debugging aid and is only usable with
// tiny workloads.
type Options struct {
	Trace       bool
	TraceWriter io.Writer
}

// Result holds the raw tick pair of a run plus the frequency needed to
// interpret it.
type Result struct {
	ContainerName  string
	StartTicks     int64
	FinishTicks    int64
	TicksPerSecond int64
}

// ElapsedMs returns the run's elapsed time in fractional milliseconds.
func (result *Result) ElapsedMs() float64 {
	return hirestime.ElapsedMs(result.StartTicks, result.FinishTicks, result.TicksPerSecond)
}

// FprintElapsed writes the run's result line ("<container> time: <elapsed> ms") to w.
func (result *Result) FprintElapsed(w io.Writer) {
	hirestime.FprintElapsed(w, result.ContainerName+" time", result.StartTicks, result.FinishTicks, result.TicksPerSecond)
}

// Run executes the insert/remove workout against a freshly constructed
// container and reports the measured tick pair.
//
// Insertion phase: each value is inserted at the position keeping the
// container sorted, so after len(values) insertions the container holds
// the values in ascending order. Removal phase: the element at each
// pre-generated index is removed directly, with no search. Any failure in
// either phase abandons the run.
func Run(construct sequence.Constructor, values []int, removalIndexes []int, clock hirestime.Clock, options *Options) (result *Result, err error) {
	if len(values) != len(removalIndexes) {
		err = fault.NewError(fault.ValidationError,
			"values (%v) and removalIndexes (%v) must have the same length", len(values), len(removalIndexes))
		return
	}

	trace := (nil != options) && options.Trace && (nil != options.TraceWriter)

	startTicks := clock.Ticks()

	seq := construct()

	for _, value := range values {
		err = seq.InsertSorted(value)
		if nil != err {
			return
		}
		if trace {
			fmt.Fprintf(options.TraceWriter, "Inserting %v:  ", value)
			fprintContents(options.TraceWriter, seq)
		}
	}

	if trace {
		fmt.Fprintf(options.TraceWriter, "\nComplete sequence: ")
		fprintContents(options.TraceWriter, seq)
		fmt.Fprintln(options.TraceWriter)
	}

	for _, removalIndex := range removalIndexes {
		var value int

		value, err = seq.RemoveByIndex(removalIndex)
		if nil != err {
			return
		}
		if trace {
			fmt.Fprintf(options.TraceWriter, "Removing %v (at index %v):  ", value, removalIndex)
			fprintContents(options.TraceWriter, seq)
		}
	}

	seq.Release()

	finishTicks := clock.Ticks()

	result = &Result{
		ContainerName:  seq.Name(),
		StartTicks:     startTicks,
		FinishTicks:    finishTicks,
		TicksPerSecond: clock.Frequency(),
	}

	err = nil
	return
}

func fprintContents(w io.Writer, seq sequence.OrderedSeq) {
	values := seq.Contents()
	if 0 == len(values) {
		fmt.Fprintln(w, "<< empty >>")
		return
	}

	for _, value := range values {
		fmt.Fprintf(w, "%v ", value)
	}
	fmt.Fprintln(w)
}
