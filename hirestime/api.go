// Package hirestime provides the high-resolution monotonic clock used to
// time benchmark runs: raw tick reads plus the tick frequency needed to
// convert a (start, finish) pair into elapsed wall-clock time with
// sub-millisecond precision.
package hirestime

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// Clock exposes a monotonic counter and its resolution.
type Clock interface {
	// Ticks returns the current counter value.
	Ticks() (ticks int64)

	// Frequency returns the counter rate in ticks per second.
	Frequency() (ticksPerSecond int64)
}

const nanosecondsPerSecond = int64(time.Second / time.Nanosecond)

type monotonicClock struct{}

// NewMonotonicClock returns the production Clock: CLOCK_MONOTONIC read via
// the unix package, counting nanoseconds.
func NewMonotonicClock() Clock {
	return &monotonicClock{}
}

func (clock *monotonicClock) Ticks() (ticks int64) {
	var ts unix.Timespec

	err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	if nil != err {
		// clock_gettime(CLOCK_MONOTONIC) cannot fail on the platforms we
		// run on; fall back to the runtime's monotonic reading anyway.
		ticks = int64(time.Now().UnixNano())
		return
	}

	ticks = ts.Nano()
	return
}

func (clock *monotonicClock) Frequency() (ticksPerSecond int64) {
	ticksPerSecond = nanosecondsPerSecond
	return
}

// ElapsedMs converts a (start, finish) tick pair into fractional elapsed
// milliseconds given the counter frequency.
func ElapsedMs(startTicks int64, finishTicks int64, ticksPerSecond int64) (elapsedMs float64) {
	elapsedMs = float64(finishTicks-startTicks) * 1000.0 / float64(ticksPerSecond)
	return
}

// FprintElapsed writes "<label>: <elapsed> ms" to w for the given tick pair.
func FprintElapsed(w io.Writer, label string, startTicks int64, finishTicks int64, ticksPerSecond int64) {
	fmt.Fprintf(w, "%s: %v ms\n", label, ElapsedMs(startTicks, finishTicks, ticksPerSecond))
}
