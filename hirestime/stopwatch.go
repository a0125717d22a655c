package hirestime

import (
	"strconv"
	"time"
)

// Stopwatch measures an interval against a Clock. Unlike the raw
// (start, finish) tick pair returned by a benchmark run, a Stopwatch is a
// convenience for timing untimed-region work (setup, generation) when
// reporting at debug level.
type Stopwatch struct {
	clock      Clock
	StartTicks int64
	StopTicks  int64
	IsRunning  bool
}

// NewStopwatch returns a started Stopwatch over the given Clock.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, StartTicks: clock.Ticks(), IsRunning: true}
}

func (sw *Stopwatch) Stop() time.Duration {
	// Stopwatch should have been running when stopped, but
	// to avoid making callers do error checking we just
	// don't do calculations if it wasn't.
	if sw.IsRunning {
		sw.StopTicks = sw.clock.Ticks()
		sw.IsRunning = false
	}
	return sw.Elapsed()
}

func (sw *Stopwatch) Restart() {
	// Stopwatch should not be running when restarted, but
	// to avoid making callers do error checking we just
	// don't do anything if it wasn't.
	if !sw.IsRunning {
		sw.StartTicks = sw.clock.Ticks()
		sw.StopTicks = 0
		sw.IsRunning = true
	}
}

func (sw *Stopwatch) Elapsed() time.Duration {
	var finishTicks int64

	if sw.IsRunning {
		// Still running, report time so far
		finishTicks = sw.clock.Ticks()
	} else {
		finishTicks = sw.StopTicks
	}

	elapsedSeconds := float64(finishTicks-sw.StartTicks) / float64(sw.clock.Frequency())
	return time.Duration(elapsedSeconds * float64(time.Second))
}

func (sw *Stopwatch) ElapsedMs() float64 {
	return ElapsedMs(sw.StartTicks, sw.stopOrCurrentTicks(), sw.clock.Frequency())
}

func (sw *Stopwatch) ElapsedMsString() string {
	return strconv.FormatFloat(sw.ElapsedMs(), 'f', -1, 64) + "ms"
}

func (sw *Stopwatch) stopOrCurrentTicks() int64 {
	if sw.IsRunning {
		return sw.clock.Ticks()
	}
	return sw.StopTicks
}
