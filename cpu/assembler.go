// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
)

// Assembler is a recursive descent parser from Tokens to a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	tokens  []Token
	current int
}

// Assemble scans and parses all of input. Scanner and assembler errors are
// joined together in err; prog holds every instruction parsed before the
// first assembler error.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return
	}

	sc := &Scanner{Verbose: asm.Verbose}
	tokens, scan_err := sc.Scan(string(source))

	prog, err = asm.Parse(tokens)
	err = errors.Join(scan_err, err)

	return
}

// Parse parses tokens into a Program, one instruction per statement.
//
// On a syntax error the remainder of the token stream is abandoned; there is
// no resynchronisation to the next statement.
func (asm *Assembler) Parse(tokens []Token) (prog *Program, err error) {
	asm.tokens = tokens
	asm.current = 0

	prog = &Program{}

	for !asm.isAtEnd() {
		var in Inst
		in, err = asm.instruction()
		if err != nil {
			asm.synchronize()
			return
		}

		if asm.Verbose {
			log.Printf("%03d: %v", len(prog.Insts)+1, in)
		}

		prog.Insts = append(prog.Insts, in)
	}

	return
}

// instruction parses a single statement. The statement form is chosen by
// its leading keyword; anything else is parsed as a print.
func (asm *Assembler) instruction() (in Inst, err error) {
	switch {
	case asm.match(ADD, SUB, AND, OR, MUL, DIV):
		in, err = asm.rtype(asm.previous())
	case asm.match(ADDI, SUBI, ANDI, ORI, SLL, SRL, LW, SW, MULI, DIVI, SWAP):
		in, err = asm.itype(asm.previous(), ErrExpectSource, ErrExpectDestination, ErrExpectImmediate)
	case asm.match(BEQ, BNQ, BGE, BGT, BLT, BLE):
		in, err = asm.itype(asm.previous(), ErrExpectFirstSource, ErrExpectSecondSource, ErrExpectRelative)
	case asm.match(J):
		in, err = asm.jtype(asm.previous())
	default:
		// NOTE: Not gated on PRINT, so a stray leading token ends up
		// reported as a missing register.
		asm.match(PRINT)
		in, err = asm.print()
	}

	return
}

// rtype parses: op $rs, $rt, $rd;
func (asm *Assembler) rtype(op Token) (in Inst, err error) {
	var rs, rt, rd Token

	if rs, err = asm.consume(REGISTER, ErrExpectFirstSource); err != nil {
		return
	}
	if _, err = asm.consume(COMMA, ErrExpectComma); err != nil {
		return
	}
	if rt, err = asm.consume(REGISTER, ErrExpectSecondSource); err != nil {
		return
	}
	if _, err = asm.consume(COMMA, ErrExpectComma); err != nil {
		return
	}
	if rd, err = asm.consume(REGISTER, ErrExpectDestination); err != nil {
		return
	}
	if _, err = asm.consume(SEMICOLON, ErrExpectSemicolon); err != nil {
		return
	}

	in = &RType{Opcode: op, Rs: rs, Rt: rt, Rd: rd}
	return
}

// itype parses: op $rt, $rs, [-]imm;
// swap may also be written as: swap $rt, $rs;
func (asm *Assembler) itype(op Token, first, second, value error) (in Inst, err error) {
	var rs, rt, imm Token

	if rt, err = asm.consume(REGISTER, first); err != nil {
		return
	}
	if _, err = asm.consume(COMMA, ErrExpectComma); err != nil {
		return
	}
	if rs, err = asm.consume(REGISTER, second); err != nil {
		return
	}
	if op.Type == SWAP && asm.match(SEMICOLON) {
		// The immediate of swap is optional.
		in = &IType{Opcode: op, Rs: rs, Rt: rt, Imm: Token{Type: NUMBER, Line: op.Line}}
		return
	}
	if _, err = asm.consume(COMMA, ErrExpectComma); err != nil {
		return
	}
	if imm, err = asm.signed(value); err != nil {
		return
	}
	if _, err = asm.consume(SEMICOLON, ErrExpectSemicolon); err != nil {
		return
	}

	in = &IType{Opcode: op, Rs: rs, Rt: rt, Imm: imm}
	return
}

// jtype parses: j [-]address;
func (asm *Assembler) jtype(op Token) (in Inst, err error) {
	var address Token

	if address, err = asm.signed(ErrExpectAbsolute); err != nil {
		return
	}
	if _, err = asm.consume(SEMICOLON, ErrExpectSemicolon); err != nil {
		return
	}

	in = &JType{Opcode: op, Address: address}
	return
}

// print parses: $reg; (the print keyword is already consumed, if present)
func (asm *Assembler) print() (in Inst, err error) {
	var reg Token

	if reg, err = asm.consume(REGISTER, ErrExpectRegister); err != nil {
		return
	}
	if _, err = asm.consume(SEMICOLON, ErrExpectSemicolon); err != nil {
		return
	}

	in = &Print{Reg: reg}
	return
}

// signed parses an optionally negated NUMBER.
func (asm *Assembler) signed(missing error) (tok Token, err error) {
	negate := asm.match(MINUS)

	tok, err = asm.consume(NUMBER, missing)
	if err != nil {
		return
	}

	if negate {
		tok = tok.Negate()
	}

	return
}

func (asm *Assembler) match(types ...TokenType) bool {
	for _, tt := range types {
		if asm.check(tt) {
			asm.advance()
			return true
		}
	}

	return false
}

func (asm *Assembler) consume(tt TokenType, missing error) (tok Token, err error) {
	if asm.check(tt) {
		tok = asm.advance()
		return
	}

	err = asm.error(asm.peek(), missing)
	return
}

func (asm *Assembler) check(tt TokenType) bool {
	if asm.isAtEnd() {
		return false
	}

	return asm.peek().Type == tt
}

func (asm *Assembler) advance() Token {
	if !asm.isAtEnd() {
		asm.current++
	}

	return asm.previous()
}

func (asm *Assembler) isAtEnd() bool {
	return asm.peek().Type == EOF
}

// peek returns the current token. A token stream without a trailing EOF
// behaves as if it had one.
func (asm *Assembler) peek() Token {
	if asm.current >= len(asm.tokens) {
		line := 1
		if len(asm.tokens) > 0 {
			line = asm.tokens[len(asm.tokens)-1].Line
		}
		return Token{Type: EOF, Line: line}
	}

	return asm.tokens[asm.current]
}

func (asm *Assembler) previous() Token {
	return asm.tokens[asm.current-1]
}

func (asm *Assembler) error(tok Token, err error) error {
	where := f(" at '%v'", tok.Lexeme)
	if tok.Type == EOF {
		where = f(" at end")
	}

	return &ErrSyntax{LineNo: tok.Line, Where: where, Err: err}
}

// synchronize discards every remaining token.
func (asm *Assembler) synchronize() {
	asm.advance()
	for !asm.isAtEnd() {
		asm.advance()
	}
}
