// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/mips/cpu"
	"github.com/ezrec/mips/internal"
	"github.com/ezrec/mips/io"
)

// Status is the outcome of interpreting a source text.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	StatusOK           = Status(0) // ok
	StatusSyntaxError  = Status(1) // syntax error
	StatusRuntimeError = Status(2) // runtime error
)

// ExitCode returns the process exit code for a status.
func (st Status) ExitCode() int {
	switch st {
	case StatusSyntaxError:
		return 65
	case StatusRuntimeError:
		return 70
	}

	return 0
}

// Emulator state. CPU + program + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program.
	MaxTicks int          // Instruction limit for a Run; 0 is unlimited.

	Tape   io.Tape   // Print output, and REPL input.
	Report io.Report // Default diagnostic sink.

	Diagnostics io.Diagnostics // Where faults are reported.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)
	emu.Diagnostics = &emu.Report

	return
}

// Reset the emulator: clears registers and rewinds the loaded program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Tape.Rewind()
}

// Load scans and assembles source, reporting every syntax fault. On error
// the previously loaded program is kept.
func (emu *Emulator) Load(source string) (err error) {
	sc := &cpu.Scanner{Verbose: emu.Verbose}
	tokens, scan_err := sc.Scan(source)

	asm := &cpu.Assembler{Verbose: emu.Verbose}
	prog, parse_err := asm.Parse(tokens)

	for leaf := range internal.IterSeqConcat(cpu.Errors(scan_err), cpu.Errors(parse_err)) {
		var syntax *cpu.ErrSyntax
		if errors.As(leaf, &syntax) {
			emu.Diagnostics.Syntax(syntax.LineNo, syntax.Where, syntax.Err.Error())
		} else {
			emu.Diagnostics.Syntax(0, "", leaf.Error())
		}
	}

	err = errors.Join(scan_err, parse_err)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions", prog.Len())
	}

	emu.Program = prog
	emu.Cpu.Load(prog)

	return
}

// Ticks returns the instructions executed since the program was loaded.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			var fault *cpu.ErrFault
			if errors.As(err, &fault) {
				lineno = fault.Token.Line
			}
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks && emu.Cpu.Pc < emu.Program.Len() {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrPcEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks until the program ends or faults. A fault halts execution
// immediately and is reported to the diagnostic sink.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			emu.report(err)
			return
		}
		if done {
			return
		}
	}
}

// report sends a runtime fault to the diagnostic sink.
func (emu *Emulator) report(err error) {
	message := err.Error()
	lineno := 0

	var runtime *ErrRuntime
	if errors.As(err, &runtime) {
		lineno = runtime.LineNo
		message = runtime.Err.Error()
	}

	var fault *cpu.ErrFault
	if errors.As(err, &fault) {
		message = fault.Err.Error()
	}

	emu.Diagnostics.Runtime(message, lineno)
}

// Interpret loads and runs source from its first instruction. Register
// contents are kept from any previous Interpret.
func (emu *Emulator) Interpret(source string) (status Status, err error) {
	err = emu.Load(source)
	if err != nil {
		status = StatusSyntaxError
		return
	}

	err = emu.Run()
	if err != nil {
		status = StatusRuntimeError
		return
	}

	status = StatusOK
	return
}
