package conf

import (
	"testing"
)

func TestUpdateFromString(t *testing.T) {
	confMap := MakeConfMap()

	err := confMap.UpdateFromString("Bench.Container=slice")
	if nil != err {
		t.Fatalf("UpdateFromString(\"Bench.Container=slice\") failed: %v", err)
	}

	err = confMap.UpdateFromString(" Bench.Seed = 42 ")
	if nil != err {
		t.Fatalf("UpdateFromString(\" Bench.Seed = 42 \") failed: %v", err)
	}

	err = confMap.UpdateFromString("Bench.TestMode=")
	if nil != err {
		t.Fatalf("UpdateFromString(\"Bench.TestMode=\") failed: %v", err)
	}

	containerName, err := confMap.FetchOptionValueString("Bench", "Container")
	if nil != err {
		t.Fatalf("FetchOptionValueString(\"Bench\", \"Container\") failed: %v", err)
	}
	if "slice" != containerName {
		t.Fatalf("FetchOptionValueString(\"Bench\", \"Container\") returned \"%v\" instead of \"slice\"", containerName)
	}

	seed, err := confMap.FetchOptionValueInt64("Bench", "Seed")
	if nil != err {
		t.Fatalf("FetchOptionValueInt64(\"Bench\", \"Seed\") failed: %v", err)
	}
	if 42 != seed {
		t.Fatalf("FetchOptionValueInt64(\"Bench\", \"Seed\") returned %v instead of 42", seed)
	}

	if confMap.VerifyOptionIsMissing("Bench", "TestMode") {
		t.Fatalf("VerifyOptionIsMissing(\"Bench\", \"TestMode\") should have returned false")
	}
	if !confMap.VerifyOptionIsMissing("Bench", "NeverSupplied") {
		t.Fatalf("VerifyOptionIsMissing(\"Bench\", \"NeverSupplied\") should have returned true")
	}
}

func TestUpdateFromStringMalformed(t *testing.T) {
	confMap := MakeConfMap()

	err := confMap.UpdateFromString("BenchContainer")
	if nil == err {
		t.Fatalf("UpdateFromString(\"BenchContainer\") should have failed")
	}

	err = confMap.UpdateFromString("BenchContainer=slice")
	if nil == err {
		t.Fatalf("UpdateFromString(\"BenchContainer=slice\") should have failed")
	}

	err = confMap.UpdateFromString(".Container=slice")
	if nil == err {
		t.Fatalf("UpdateFromString(\".Container=slice\") should have failed")
	}

	err = confMap.UpdateFromString("Bench.=slice")
	if nil == err {
		t.Fatalf("UpdateFromString(\"Bench.=slice\") should have failed")
	}
}

func TestMakeConfMapFromStrings(t *testing.T) {
	confMap, err := MakeConfMapFromStrings([]string{
		"Bench.Container=llrb",
		"Bench.TestMode=true",
		"Logging.LogToConsole=false",
	})
	if nil != err {
		t.Fatalf("MakeConfMapFromStrings() failed: %v", err)
	}

	testMode, err := confMap.FetchOptionValueBool("Bench", "TestMode")
	if nil != err {
		t.Fatalf("FetchOptionValueBool(\"Bench\", \"TestMode\") failed: %v", err)
	}
	if !testMode {
		t.Fatalf("FetchOptionValueBool(\"Bench\", \"TestMode\") returned false instead of true")
	}

	logToConsole, err := confMap.FetchOptionValueBool("Logging", "LogToConsole")
	if nil != err {
		t.Fatalf("FetchOptionValueBool(\"Logging\", \"LogToConsole\") failed: %v", err)
	}
	if logToConsole {
		t.Fatalf("FetchOptionValueBool(\"Logging\", \"LogToConsole\") returned true instead of false")
	}

	_, err = MakeConfMapFromStrings([]string{"Bench.Seed"})
	if nil == err {
		t.Fatalf("MakeConfMapFromStrings([]string{\"Bench.Seed\"}) should have failed")
	}
}

func TestFetchOptionValueTypeErrors(t *testing.T) {
	confMap, err := MakeConfMapFromStrings([]string{"Bench.Seed=notanumber"})
	if nil != err {
		t.Fatalf("MakeConfMapFromStrings() failed: %v", err)
	}

	_, err = confMap.FetchOptionValueInt64("Bench", "Seed")
	if nil == err {
		t.Fatalf("FetchOptionValueInt64(\"Bench\", \"Seed\") should have failed")
	}

	_, err = confMap.FetchOptionValueUint64("Bench", "Seed")
	if nil == err {
		t.Fatalf("FetchOptionValueUint64(\"Bench\", \"Seed\") should have failed")
	}

	_, err = confMap.FetchOptionValueBool("Bench", "Seed")
	if nil == err {
		t.Fatalf("FetchOptionValueBool(\"Bench\", \"Seed\") should have failed")
	}

	_, err = confMap.FetchOptionValueString("Missing", "Option")
	if nil == err {
		t.Fatalf("FetchOptionValueString(\"Missing\", \"Option\") should have failed")
	}
}
