package cpu

import (
	"fmt"
)

// Inst is a single assembled instruction. The set of implementations is
// closed: RType, IType, JType and Print.
type Inst interface {
	fmt.Stringer
	// Token returns the token that locates the instruction in the source.
	Token() Token

	inst()
}

// RType is a three register instruction: Rd = Rs op Rt.
type RType struct {
	Opcode Token
	Rs     Token
	Rt     Token
	Rd     Token
}

// IType is a two register and immediate instruction, written as
// `op $rt, $rs, imm;`.
//
// For arithmetic, logic and shift opcodes Rt = Rs op Imm. For branches Rs is
// compared to Rt and Imm is the relative offset taken on success. For swap,
// Rs and Rt are exchanged.
type IType struct {
	Opcode Token
	Rt     Token
	Rs     Token
	Imm    Token
}

// JType is an absolute jump to a 1-based instruction index.
type JType struct {
	Opcode  Token
	Address Token
}

// Print writes the value of a register to the output channel.
type Print struct {
	Reg Token
}

var (
	_ Inst = (*RType)(nil)
	_ Inst = (*IType)(nil)
	_ Inst = (*JType)(nil)
	_ Inst = (*Print)(nil)
)

func (RType) inst() {}
func (IType) inst() {}
func (JType) inst() {}
func (Print) inst() {}

func (in *RType) Token() Token { return in.Opcode }
func (in *IType) Token() Token { return in.Opcode }
func (in *JType) Token() Token { return in.Opcode }
func (in *Print) Token() Token { return in.Reg }

func (in *RType) String() string {
	return fmt.Sprintf("%v %v, %v, %v;", in.Opcode.Lexeme, in.Rs.Lexeme, in.Rt.Lexeme, in.Rd.Lexeme)
}

func (in *IType) String() string {
	return fmt.Sprintf("%v %v, %v, %d;", in.Opcode.Lexeme, in.Rt.Lexeme, in.Rs.Lexeme, in.Imm.Literal)
}

func (in *JType) String() string {
	return fmt.Sprintf("%v %d;", in.Opcode.Lexeme, in.Address.Literal)
}

func (in *Print) String() string {
	return fmt.Sprintf("print %v;", in.Reg.Lexeme)
}

// IsBranch returns true if the opcode is a conditional relative branch.
func (in *IType) IsBranch() bool {
	switch in.Opcode.Type {
	case BEQ, BNQ, BGT, BGE, BLT, BLE:
		return true
	}
	return false
}
