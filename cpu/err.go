package cpu

import (
	"errors"
	"iter"

	"github.com/ezrec/mips/translate"
)

var f = translate.From

var (
	// Scanner errors
	ErrCharacterUnexpected = errors.New(f("Unexpected character."))
	ErrRegisterInvalid     = errors.New(f("Invalid register."))
	ErrNumberInvalid       = errors.New(f("Invalid number."))

	// Assembler errors
	ErrExpectFirstSource  = errors.New(f("Expect first source register."))
	ErrExpectSecondSource = errors.New(f("Expect second source register."))
	ErrExpectSource       = errors.New(f("Expect source register."))
	ErrExpectDestination  = errors.New(f("Expect destination register."))
	ErrExpectRegister     = errors.New(f("Expect register."))
	ErrExpectComma        = errors.New(f("Expect comma."))
	ErrExpectSemicolon    = errors.New(f("Expect semicolon."))
	ErrExpectImmediate    = errors.New(f("Expect immediate value."))
	ErrExpectRelative     = errors.New(f("Relative address."))
	ErrExpectAbsolute     = errors.New(f("Absolute address."))

	// Cpu errors
	ErrDivideByZero       = errors.New(f("Division by zero."))
	ErrAddressInvalid     = errors.New(f("Invalid address."))
	ErrJumpInvalid        = errors.New(f("Invalid jump address."))
	ErrInstructionInvalid = errors.New(f("Invalid instruction."))
	ErrPcEmpty            = errors.New(f("pc past end of program"))
)

// ErrSyntax locates a scanner or assembler error in the source text.
type ErrSyntax struct {
	LineNo int    // 1-based source line.
	Where  string // "", " at end" or " at 'lexeme'".
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("[line %d] Error%v: %v", err.LineNo, err.Where, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFault is a runtime fault raised while executing an instruction.
type ErrFault struct {
	Token Token // Opcode token of the faulting instruction.
	Err   error
}

func (err *ErrFault) Error() string {
	return f("%v at '%v'", err.Err, err.Token.Lexeme)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// Errors iterates over the leaves of a (possibly joined) error.
func Errors(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		walkErrors(err, yield)
	}
}

func walkErrors(err error, yield func(error) bool) bool {
	if err == nil {
		return true
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return yield(err)
	}

	for _, leaf := range joined.Unwrap() {
		if !walkErrors(leaf, yield) {
			return false
		}
	}

	return true
}
