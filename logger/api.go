// Package logger provides logging wrappers
//
// These wrappers allow us to standardize logging while still using a
// third-party logging package. This package is currently implemented on
// top of the sirupsen/logrus package:
//   https://github.com/sirupsen/logrus
package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/perflab/seqwork/conf"
)

var logFile *os.File = nil

// Up initializes logging based on the supplied confMap:
//
//   [Logging]LogFilePath   path of the log file to append to ("" == no log file)
//   [Logging]LogToConsole  also log to stderr when a log file is in use (default false)
//   [Logging]DebugLevel    enable debug-level logging (default false)
func Up(confMap conf.ConfMap) (err error) {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})

	// Fetch log file info, if provided
	logFilePath, _ := confMap.FetchOptionValueString("Logging", "LogFilePath")
	if logFilePath != "" {
		logFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Errorf("couldn't open log file: %v", err)
			return err
		}
	}

	// Determine whether we should log to console. Default is false.
	logToConsole, err := confMap.FetchOptionValueBool("Logging", "LogToConsole")
	if err != nil {
		logToConsole = false
	}

	if logFilePath != "" {
		if logToConsole {
			log.SetOutput(io.MultiWriter(logFile, os.Stderr))
		} else {
			log.SetOutput(logFile)
		}
	}
	// else: accept default destination of stderr

	debugLevel, err := confMap.FetchOptionValueBool("Logging", "DebugLevel")
	if (err == nil) && debugLevel {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	return nil
}

// Down stops logging. The log file, if any, is closed.
func Down() (err error) {
	// We open and close our own logfile
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	return
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// ErrorfWithError logs the formatted message with the error appended as a field.
func ErrorfWithError(err error, format string, args ...interface{}) {
	log.WithField("error", err).Errorf(format, args...)
}
