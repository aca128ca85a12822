package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Registers maps register names (such as "$t0") to their values.
// A register that was never written reads as zero.
type Registers struct {
	values map[string]int32
}

// Get returns the value of a register, or 0 if it has never been written.
func (regs *Registers) Get(name string) int32 {
	return regs.values[name]
}

// Lookup returns the value of a register, and whether it has been written.
func (regs *Registers) Lookup(name string) (value int32, ok bool) {
	value, ok = regs.values[name]
	return
}

// Set writes a register.
func (regs *Registers) Set(name string, value int32) {
	if regs.values == nil {
		regs.values = make(map[string]int32, 8)
	}
	regs.values[name] = value
}

// Len returns the number of registers written.
func (regs *Registers) Len() int {
	return len(regs.values)
}

// All iterates over the written registers in name order.
func (regs *Registers) All() iter.Seq2[string, int32] {
	return func(yield func(name string, value int32) bool) {
		for _, name := range slices.Sorted(maps.Keys(regs.values)) {
			if !yield(name, regs.values[name]) {
				return
			}
		}
	}
}

// Reset forgets every register.
func (regs *Registers) Reset() {
	clear(regs.values)
}
