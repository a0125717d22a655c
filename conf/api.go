// Package conf provides benchmark configuration via a set of
// section.option=value strings (e.g. from trailing command line arguments).
package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfMap is accessed via confMap[sectionName][optionName] or via the methods below

type ConfMapSection map[string]string
type ConfMap map[string]ConfMapSection

// MakeConfMap returns a newly created empty ConfMap
func MakeConfMap() (confMap ConfMap) {
	confMap = make(ConfMap)
	return
}

// MakeConfMapFromStrings returns a newly created ConfMap loaded with the contents specified in confStrings
func MakeConfMapFromStrings(confStrings []string) (confMap ConfMap, err error) {
	confMap = MakeConfMap()
	err = confMap.UpdateFromStrings(confStrings)
	return
}

// A string to load looks like:
//
//   <section_name>.<option_name>=<option_value>
//
// An empty <option_value> is accepted and records the option as present but empty.

// UpdateFromString modifies a pre-existing ConfMap based on an update
// specified in confString (e.g., from an extra command-line argument)
func (confMap ConfMap) UpdateFromString(confString string) (err error) {
	confStringTrimmed := strings.Trim(confString, " \t")

	equalsSplit := strings.SplitN(confStringTrimmed, "=", 2)
	if 2 != len(equalsSplit) {
		err = fmt.Errorf("confString (\"%v\") must be of the form <section>.<option>=<value>", confString)
		return
	}

	dotSplit := strings.SplitN(equalsSplit[0], ".", 2)
	if 2 != len(dotSplit) {
		err = fmt.Errorf("confString (\"%v\") must name both a section and an option", confString)
		return
	}

	sectionName := strings.Trim(dotSplit[0], " \t")
	optionName := strings.Trim(dotSplit[1], " \t")
	optionValue := strings.Trim(equalsSplit[1], " \t")

	if ("" == sectionName) || ("" == optionName) {
		err = fmt.Errorf("confString (\"%v\") must supply non-empty section and option names", confString)
		return
	}

	section, ok := confMap[sectionName]
	if !ok {
		section = make(ConfMapSection)
		confMap[sectionName] = section
	}

	section[optionName] = optionValue

	err = nil
	return
}

// UpdateFromStrings modifies a pre-existing ConfMap based on updates specified in confStrings
func (confMap ConfMap) UpdateFromStrings(confStrings []string) (err error) {
	for _, confString := range confStrings {
		err = confMap.UpdateFromString(confString)
		if nil != err {
			err = fmt.Errorf("error building confMap from conf strings: %v", err)
			return
		}
	}

	err = nil
	return
}

// VerifyOptionIsMissing returns true if the named option was never supplied
func (confMap ConfMap) VerifyOptionIsMissing(sectionName string, optionName string) (missing bool) {
	section, ok := confMap[sectionName]
	if !ok {
		missing = true
		return
	}
	_, ok = section[optionName]
	missing = !ok
	return
}

func (confMap ConfMap) fetchOptionValue(sectionName string, optionName string) (optionValue string, err error) {
	section, ok := confMap[sectionName]
	if !ok {
		err = fmt.Errorf("[%v] missing", sectionName)
		return
	}

	optionValue, ok = section[optionName]
	if !ok {
		err = fmt.Errorf("[%v]%v missing", sectionName, optionName)
		return
	}

	err = nil
	return
}

// FetchOptionValueString returns the option value as a string
func (confMap ConfMap) FetchOptionValueString(sectionName string, optionName string) (optionValue string, err error) {
	optionValue, err = confMap.fetchOptionValue(sectionName, optionName)
	return
}

// FetchOptionValueBool returns the option value as a bool
//
// Accepted values are those of strconv.ParseBool() (e.g. "true", "false", "1", "0").
func (confMap ConfMap) FetchOptionValueBool(sectionName string, optionName string) (optionValue bool, err error) {
	optionValueAsString, err := confMap.fetchOptionValue(sectionName, optionName)
	if nil != err {
		return
	}

	optionValue, err = strconv.ParseBool(optionValueAsString)
	if nil != err {
		err = fmt.Errorf("[%v]%v (\"%v\") not parseable as a bool: %v", sectionName, optionName, optionValueAsString, err)
		return
	}

	err = nil
	return
}

// FetchOptionValueUint64 returns the option value as a uint64
func (confMap ConfMap) FetchOptionValueUint64(sectionName string, optionName string) (optionValue uint64, err error) {
	optionValueAsString, err := confMap.fetchOptionValue(sectionName, optionName)
	if nil != err {
		return
	}

	optionValue, err = strconv.ParseUint(optionValueAsString, 10, 64)
	if nil != err {
		err = fmt.Errorf("[%v]%v (\"%v\") not parseable as a uint64: %v", sectionName, optionName, optionValueAsString, err)
		return
	}

	err = nil
	return
}

// FetchOptionValueInt64 returns the option value as an int64
func (confMap ConfMap) FetchOptionValueInt64(sectionName string, optionName string) (optionValue int64, err error) {
	optionValueAsString, err := confMap.fetchOptionValue(sectionName, optionName)
	if nil != err {
		return
	}

	optionValue, err = strconv.ParseInt(optionValueAsString, 10, 64)
	if nil != err {
		err = fmt.Errorf("[%v]%v (\"%v\") not parseable as an int64: %v", sectionName, optionName, optionValueAsString, err)
		return
	}

	err = nil
	return
}
