// Package cpu implements the scanner, assembler and interpreter for the MIPS-like
// assembly language.
//
// Source text is scanned into Tokens, assembled by a recursive descent
// Assembler into a Program of instructions (RType, IType, JType and Print), and
// executed by the Cpu against a Registers store under an explicit program
// counter. Branches add a relative offset to the program counter; jumps set it
// from a 1-based absolute address.
package cpu
