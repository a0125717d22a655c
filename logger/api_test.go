package logger

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/perflab/seqwork/conf"
)

func TestLogToFile(t *testing.T) {
	tempFile, err := ioutil.TempFile(os.TempDir(), "TestLogFile_")
	if nil != err {
		t.Fatalf("ioutil.TempFile() failed: %v", err)
	}
	tempFileName := tempFile.Name()
	_ = tempFile.Close()
	defer func() {
		_ = os.Remove(tempFileName)
	}()

	confMap, err := conf.MakeConfMapFromStrings([]string{
		"Logging.LogFilePath=" + tempFileName,
		"Logging.LogToConsole=false",
		"Logging.DebugLevel=true",
	})
	if nil != err {
		t.Fatalf("conf.MakeConfMapFromStrings() failed: %v", err)
	}

	err = Up(confMap)
	if nil != err {
		t.Fatalf("logger.Up() failed: %v", err)
	}

	Infof("test message %v", 42)
	Debugf("debug message %v", 43)

	err = Down()
	if nil != err {
		t.Fatalf("logger.Down() failed: %v", err)
	}

	logContents, err := ioutil.ReadFile(tempFileName)
	if nil != err {
		t.Fatalf("ioutil.ReadFile(\"%v\") failed: %v", tempFileName, err)
	}
	if !strings.Contains(string(logContents), "test message 42") {
		t.Fatalf("log file does not contain the logged message; got: %v", string(logContents))
	}
	if !strings.Contains(string(logContents), "debug message 43") {
		t.Fatalf("log file does not contain the debug message; got: %v", string(logContents))
	}
}

func TestUpWithoutLogFile(t *testing.T) {
	confMap, err := conf.MakeConfMapFromStrings([]string{})
	if nil != err {
		t.Fatalf("conf.MakeConfMapFromStrings() failed: %v", err)
	}

	err = Up(confMap)
	if nil != err {
		t.Fatalf("logger.Up() failed: %v", err)
	}

	err = Down()
	if nil != err {
		t.Fatalf("logger.Down() failed: %v", err)
	}
}
