package cpu

import (
	"fmt"
	"iter"
	"slices"
)

// Program is an assembled instruction sequence.
type Program struct {
	Insts []Inst
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Insts)
}

// At returns the instruction at pc, or nil if pc is out of range.
func (prog *Program) At(pc int) (in Inst) {
	if pc < 0 || pc >= prog.Len() {
		return
	}

	return prog.Insts[pc]
}

// LineNo returns the source line of the instruction at pc, or 0.
func (prog *Program) LineNo(pc int) int {
	in := prog.At(pc)
	if in == nil {
		return 0
	}

	return in.Token().Line
}

// All iterates over the program counter and instruction pairs.
func (prog *Program) All() iter.Seq2[int, Inst] {
	return slices.All(prog.Insts)
}

// String returns the program listing, one instruction per line.
func (prog *Program) String() (text string) {
	for pc, in := range prog.All() {
		text += fmt.Sprintf("%3d: %v\n", pc+1, in)
	}

	return
}
