package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/mips/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// Cpu is the execution engine: a program counter walking a Program, and the
// Registers it mutates.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program   *Program  // Program being executed.
	Pc        int       // Current instruction index, 0-based.
	Registers Registers // Register store.
	Output    Channel   // Destination of print; nil discards.

	Ticks int // Instructions executed since the last Rewind.
}

// NewCpu creates a new CPU writing print output to a channel.
func NewCpu(output Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Program: &Program{},
		Output:  output,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %d/%d\n", "pc", cpu.Pc, cpu.Program.Len())
	for name, value := range cpu.Registers.All() {
		text += fmt.Sprintf("% 5s: %d\n", name, value)
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Rewinds the program counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Rewind()
}

// Rewind moves the program counter back to the first instruction, keeping
// register contents.
func (cpu *Cpu) Rewind() {
	cpu.Pc = 0
	cpu.Ticks = 0
}

// Load installs a program and rewinds to its first instruction.
func (cpu *Cpu) Load(prog *Program) {
	if prog == nil {
		prog = &Program{}
	}

	cpu.Program = prog
	cpu.Rewind()
}

// Tick executes the instruction at the program counter, then advances the
// program counter. Returns ErrPcEmpty once the program counter has run off
// the end of the program.
func (cpu *Cpu) Tick() (err error) {
	in := cpu.Program.At(cpu.Pc)
	if in == nil {
		err = ErrPcEmpty
		return
	}

	err = cpu.Execute(in)
	if err != nil {
		return
	}

	cpu.Pc++
	cpu.Ticks++

	return
}

// Run executes from the current program counter until the program ends or
// an instruction faults.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrPcEmpty) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single instruction. Branches and jumps leave the
// program counter one before their target; Tick's increment completes them.
func (cpu *Cpu) Execute(in Inst) (err error) {
	defer func() {
		if err != nil {
			err = &ErrFault{Token: in.Token(), Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc+1, in)
	}

	switch in := in.(type) {
	case *RType:
		_, err = cpu.execRType(in)
	case *IType:
		err = cpu.execIType(in)
	case *JType:
		err = cpu.execJType(in)
	case *Print:
		err = cpu.execPrint(in)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// execRType computes Rd = Rs op Rt, and returns the new value of Rd.
func (cpu *Cpu) execRType(in *RType) (value int32, err error) {
	switch in.Opcode.Type {
	case ADD, SUB, MUL, DIV, AND, OR, XOR:
	default:
		err = ErrInstructionInvalid
		return
	}

	rs := cpu.Registers.Get(in.Rs.Lexeme)
	rt := cpu.Registers.Get(in.Rt.Lexeme)

	value, err = doAlu(in.Opcode.Type, rs, rt)
	if err != nil {
		return
	}

	cpu.Registers.Set(in.Rd.Lexeme, value)

	value = cpu.Registers.Get(in.Rd.Lexeme)
	return
}

func (cpu *Cpu) execIType(in *IType) (err error) {
	if in.IsBranch() {
		return cpu.branch(in)
	}

	switch in.Opcode.Type {
	case ADDI, SUBI, MULI, DIVI, ANDI, ORI, XORI, SLL, SRL:
		var value int32
		value, err = doAlu(in.Opcode.Type, cpu.Registers.Get(in.Rs.Lexeme), in.Imm.Literal)
		if err != nil {
			return
		}
		cpu.Registers.Set(in.Rt.Lexeme, value)
	case SWAP:
		rs := cpu.Registers.Get(in.Rs.Lexeme)
		rt := cpu.Registers.Get(in.Rt.Lexeme)
		cpu.Registers.Set(in.Rt.Lexeme, rs)
		cpu.Registers.Set(in.Rs.Lexeme, rt)
	case LW, SW:
		// No memory subsystem.
	default:
		err = ErrInstructionInvalid
	}

	return
}

// branch adds the immediate offset to the program counter if Rs compares
// to Rt as the opcode requests. `bgt $a, $b, n;` is taken when $b > $a.
func (cpu *Cpu) branch(in *IType) (err error) {
	a := cpu.Registers.Get(in.Rs.Lexeme)
	b := cpu.Registers.Get(in.Rt.Lexeme)

	var taken bool
	switch in.Opcode.Type {
	case BEQ:
		taken = a == b
	case BNQ:
		taken = a != b
	case BGT:
		taken = a > b
	case BGE:
		taken = a >= b
	case BLT:
		taken = a < b
	case BLE:
		taken = a <= b
	}

	if !taken {
		return
	}

	cpu.Pc += int(in.Imm.Literal)
	if !cpu.validPc() {
		err = ErrAddressInvalid
	}

	return
}

// execJType jumps to a 1-based address.
func (cpu *Cpu) execJType(in *JType) (err error) {
	cpu.Pc = int(in.Address.Literal) - 2
	if !cpu.validPc() {
		err = ErrJumpInvalid
	}

	return
}

func (cpu *Cpu) execPrint(in *Print) (err error) {
	if cpu.Output == nil {
		return
	}

	return io.SendValue(cpu.Output, cpu.Registers.Get(in.Reg.Lexeme))
}

// validPc checks a redirected program counter, before Tick's increment.
func (cpu *Cpu) validPc() bool {
	return cpu.Pc >= -1 && cpu.Pc < cpu.Program.Len()
}

// doAlu performs the arithmetic or logic operation for an opcode.
// Arithmetic wraps at 32 bits.
func doAlu(op TokenType, input int32, value int32) (output int32, err error) {
	switch op {
	case ADD, ADDI:
		output = input + value
	case SUB, SUBI:
		output = input - value
	case MUL, MULI:
		output = input * value
	case DIV, DIVI:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input / value
	case AND, ANDI:
		output = input & value
	case OR, ORI:
		output = input | value
	case XOR, XORI:
		output = input ^ value
	case SLL:
		// Not a bit shift.
		output = (input * value) * 2
	case SRL:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = (input / value) * 2
	default:
		err = ErrInstructionInvalid
	}

	return
}
