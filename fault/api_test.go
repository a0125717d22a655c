package fault

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	err := NewError(ValidationError, "invalid number of items (must be > 0): %v", -3)

	assert.Equal(t, "invalid number of items (must be > 0): -3", err.Error())
	assert.Equal(t, ValidationError, ClassOf(err))
	assert.True(t, Is(err, ValidationError))
	assert.False(t, Is(err, UsageError))
}

func TestAddClass(t *testing.T) {
	err := AddClass(fmt.Errorf("strconv.Atoi: parsing \"x\": invalid syntax"), ParseError)
	assert.Equal(t, ParseError, ClassOf(err))

	assert.Nil(t, AddClass(nil, RuntimeError))
}

func TestClassOfUnclassified(t *testing.T) {
	assert.Equal(t, NoError, ClassOf(nil))
	assert.Equal(t, RuntimeError, ClassOf(fmt.Errorf("some plain error")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOk, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(NewError(UsageError, "wrong argument count")))
	assert.Equal(t, ExitBadInput, ExitCode(NewError(ValidationError, "bad N")))
	assert.Equal(t, ExitBadInput, ExitCode(NewError(ParseError, "not an integer")))
	assert.Equal(t, ExitRuntime, ExitCode(NewError(RuntimeError, "insert failed")))
	assert.Equal(t, ExitRuntime, ExitCode(fmt.Errorf("unclassified")))
}
