package emulator

import (
	"errors"

	"github.com/ezrec/mips/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("Execution limit reached."))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrPresetRegister is a preset global that does not name a register.
type ErrPresetRegister string

func (err ErrPresetRegister) Error() string {
	return f("preset '%v' is not a register", string(err))
}

// ErrPresetValue is a preset register bound to something other than a
// 32-bit integer.
type ErrPresetValue string

func (err ErrPresetValue) Error() string {
	return f("preset '%v' is not a 32-bit integer", string(err))
}
