package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/perflab/seqwork/conf"
	"github.com/perflab/seqwork/fault"
	"github.com/perflab/seqwork/hirestime"
	"github.com/perflab/seqwork/logger"
	"github.com/perflab/seqwork/sequence"
	"github.com/perflab/seqwork/workload"
	"github.com/perflab/seqwork/workout"
)

// Number of items a test-mode run always uses, small enough to verify the
// mutation trace by eye.
const testModeItems = 5

func usage(file *os.File) {
	fmt.Fprintf(file, "Usage:\n")
	fmt.Fprintf(file, "    %v <N> [section.option=value]*\n", os.Args[0])
	fmt.Fprintf(file, "  where:\n")
	fmt.Fprintf(file, "    <N>                     number of items used for testing (must be > 0)\n")
	fmt.Fprintf(file, "    [section.option=value]* optional input to conf.MakeConfMapFromStrings()\n")
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "Recognized options:\n")
	fmt.Fprintf(file, "    Bench.Container         one of %v, or \"all\" (default \"slice\")\n", strings.Join(sequence.Names(), ", "))
	fmt.Fprintf(file, "    Bench.TestMode          run with N=%v and print the container after each operation\n", testModeItems)
	fmt.Fprintf(file, "    Bench.Seed              fix the pseudo-random seed (default: seeded from entropy)\n")
	fmt.Fprintf(file, "    Logging.LogFilePath     append logs to this file\n")
	fmt.Fprintf(file, "    Logging.LogToConsole    also log to stderr when a log file is in use\n")
	fmt.Fprintf(file, "    Logging.DebugLevel      enable debug-level logging\n")
}

func main() {
	fmt.Printf("ordered-sequence insert/remove benchmark\n\n")

	if 2 > len(os.Args) {
		usage(os.Stdout)
		os.Exit(fault.ExitUsage)
	}

	confMap, err := conf.MakeConfMapFromStrings(os.Args[2:])
	if nil != err {
		fmt.Fprintf(os.Stderr, "conf.MakeConfMapFromStrings(%#v) failed: %v\n", os.Args[2:], err)
		usage(os.Stdout)
		os.Exit(fault.ExitUsage)
	}

	err = benchMain(os.Args[1], confMap)
	if nil != err {
		fmt.Fprintf(os.Stderr, "\n*** ERROR: %v\n", err)
		os.Exit(fault.ExitCode(err))
	}

	os.Exit(fault.ExitOk)
}

func benchMain(nArg string, confMap conf.ConfMap) (err error) {
	var (
		gen            *workload.Generator
		n              int
		options        *workout.Options
		result         *workout.Result
		constructor    sequence.Constructor
		containerName  string
		containerNames []string
		ok             bool
		testMode       bool
	)

	n, err = strconv.Atoi(nArg)
	if nil != err {
		err = fault.NewError(fault.ParseError, "number of items (\"%v\") must be an integer: %v", nArg, err)
		return
	}
	if n <= 0 {
		err = fault.NewError(fault.ValidationError, "invalid number of items (must be > 0): %v", n)
		return
	}

	err = logger.Up(confMap)
	if nil != err {
		err = fault.AddClass(err, fault.RuntimeError)
		return
	}
	defer func() {
		_ = logger.Down()
	}()

	testMode, confErr := confMap.FetchOptionValueBool("Bench", "TestMode")
	if nil != confErr {
		testMode = false
	}

	options = &workout.Options{}
	if testMode {
		// Test mode ignores the requested N and traces every mutation.
		n = testModeItems
		options.Trace = true
		options.TraceWriter = os.Stdout
		fmt.Printf("*** TEST MODE (assuming %v items) ***\n\n", n)
	}

	if confMap.VerifyOptionIsMissing("Bench", "Seed") {
		gen, err = workload.NewFromEntropy(n)
	} else {
		var seed int64

		seed, err = confMap.FetchOptionValueInt64("Bench", "Seed")
		if nil != err {
			err = fault.AddClass(err, fault.ValidationError)
			return
		}
		gen, err = workload.New(n, seed)
	}
	if nil != err {
		return
	}

	containerName, confErr = confMap.FetchOptionValueString("Bench", "Container")
	if nil != confErr {
		containerName = "slice"
	}

	if "all" == containerName {
		containerNames = sequence.Names()
	} else {
		containerNames = []string{containerName}
	}

	// Workload generation is deliberately outside the timed region; the
	// same workload drives every selected container.
	setupStopwatch := hirestime.NewStopwatch(hirestime.NewMonotonicClock())
	values := gen.Values()
	removalIndexes := gen.RemovalIndexes()
	setupStopwatch.Stop()
	logger.Debugf("generated workload of %v items in %v", gen.N(), setupStopwatch.ElapsedMsString())

	for _, containerName = range containerNames {
		constructor, ok = sequence.FetchConstructor(containerName)
		if !ok {
			err = fault.NewError(fault.ValidationError,
				"container (\"%v\") must be one of %v, or \"all\"", containerName, strings.Join(sequence.Names(), ", "))
			return
		}

		result, err = workout.Run(constructor, values, removalIndexes, hirestime.NewMonotonicClock(), options)
		if nil != err {
			return
		}

		result.FprintElapsed(os.Stdout)
	}

	err = nil
	return
}
