// Package fault provides error-handling wrappers
//
// These wrappers allow callers to classify Go errors while still conforming
// to the Go error interface. Each class carries a distinct process exit
// code so a failed run is distinguishable from a successful one.
//
// This package is currently implemented on top of the ansel1/merry package:
//   https://github.com/ansel1/merry
package fault

import (
	"fmt"

	"github.com/ansel1/merry"
)

// Class identifies the kind of failure being reported.
type Class int

const (
	// NoError indicates the absence of a fault (a nil error).
	NoError Class = iota

	// UsageError indicates the command line was malformed (e.g. wrong
	// argument count). Usage help is the expected remedy.
	UsageError

	// ValidationError indicates an argument parsed but was rejected
	// (e.g. a non-positive workload size).
	ValidationError

	// ParseError indicates an argument could not be parsed at all.
	ParseError

	// RuntimeError indicates an unexpected fault while the benchmark
	// was running. Nothing is retried; the run is abandoned.
	RuntimeError
)

const classKey = "class"

// Exit codes corresponding to each Class. Success is 0; every fault
// class maps to a distinct nonzero code.
const (
	ExitOk       = 0
	ExitUsage    = 1
	ExitBadInput = 2
	ExitRuntime  = 3
)

// NewError creates a new merry/Class-annotated error using the given
// format string and arguments.
func NewError(class Class, format string, a ...interface{}) error {
	return merry.WrapSkipping(fmt.Errorf(format, a...), 1).WithValue(classKey, class)
}

// AddClass is used to add a Class to a pre-existing Go error.
func AddClass(e error, class Class) error {
	if e == nil {
		return nil
	}
	return merry.WrapSkipping(e, 1).WithValue(classKey, class)
}

// ClassOf extracts the Class from the error, if it was previously wrapped.
// An unclassified non-nil error reports RuntimeError.
func ClassOf(e error) Class {
	if e == nil {
		return NoError
	}

	tmp := merry.Value(e, classKey)
	if tmp == nil {
		return RuntimeError
	}

	return tmp.(Class)
}

// Is reports whether the error carries the given Class.
func Is(e error, class Class) bool {
	return ClassOf(e) == class
}

// ExitCode maps the error's Class to the process exit code to use.
func ExitCode(e error) int {
	switch ClassOf(e) {
	case NoError:
		return ExitOk
	case UsageError:
		return ExitUsage
	case ValidationError, ParseError:
		return ExitBadInput
	default:
		return ExitRuntime
	}
}
