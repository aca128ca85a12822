// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// TokenType is a lexical category of a Token.
type TokenType int

//go:generate go tool stringer -linecomment -type=TokenType
const (
	// Single-character tokens.
	LEFT_PAREN  = TokenType(0) // (
	RIGHT_PAREN = TokenType(1) // )
	COMMA       = TokenType(2) // ,
	SEMICOLON   = TokenType(3) // ;
	MINUS       = TokenType(4) // -
	COLON       = TokenType(5) // :

	// Literals.
	IDENTIFIER = TokenType(6) // identifier
	NUMBER     = TokenType(7) // number
	REGISTER   = TokenType(8) // register

	// Keywords.
	ADD   = TokenType(9)  // add
	ADDI  = TokenType(10) // addi
	SUB   = TokenType(11) // sub
	SUBI  = TokenType(12) // subi
	AND   = TokenType(13) // and
	ANDI  = TokenType(14) // andi
	SLL   = TokenType(15) // sll
	SRL   = TokenType(16) // srl
	LW    = TokenType(17) // lw
	SW    = TokenType(18) // sw
	OR    = TokenType(19) // or
	ORI   = TokenType(20) // ori
	BEQ   = TokenType(21) // beq
	BNQ   = TokenType(22) // bnq
	BGT   = TokenType(23) // bgt
	BGE   = TokenType(24) // bge
	BLT   = TokenType(25) // blt
	BLE   = TokenType(26) // ble
	J     = TokenType(27) // j
	PRINT = TokenType(28) // print
	MUL   = TokenType(29) // mul
	DIV   = TokenType(30) // div
	MOD   = TokenType(31) // mod
	NOT   = TokenType(32) // not
	XOR   = TokenType(33) // xor
	SWAP  = TokenType(34) // swap
	MULI  = TokenType(35) // muli
	DIVI  = TokenType(36) // divi
	XORI  = TokenType(37) // xori

	EOF = TokenType(38) // end
)

// keywords maps reserved words to their token types.
// lw, sw, mod, not, xor and xori have token types but no spelling.
var keywords = map[string]TokenType{
	"add":   ADD,
	"sub":   SUB,
	"and":   AND,
	"sll":   SLL,
	"srl":   SRL,
	"or":    OR,
	"addi":  ADDI,
	"subi":  SUBI,
	"andi":  ANDI,
	"ori":   ORI,
	"beq":   BEQ,
	"bnq":   BNQ,
	"bgt":   BGT,
	"bge":   BGE,
	"blt":   BLT,
	"ble":   BLE,
	"j":     J,
	"print": PRINT,
	"mul":   MUL,
	"div":   DIV,
	"muli":  MULI,
	"divi":  DIVI,
	"swap":  SWAP,
}

// Keyword returns the token type of a reserved word.
func Keyword(word string) (tt TokenType, ok bool) {
	tt, ok = keywords[word]
	return
}

// Token is a single lexeme of source text.
type Token struct {
	Type    TokenType // Lexical category.
	Lexeme  string    // Exact source text.
	Literal int32     // Decoded value of a NUMBER.
	Line    int       // 1-based source line.
}

// String returns a debug representation of the token.
func (tok Token) String() string {
	if tok.Type == NUMBER {
		return fmt.Sprintf("%v %v %v %v", tok.Type, tok.Lexeme, tok.Literal, tok.Line)
	}
	return fmt.Sprintf("%v %v nil %v", tok.Type, tok.Lexeme, tok.Line)
}

// Negate returns a copy of a NUMBER token with its literal negated. The
// lexeme is left as written.
func (tok Token) Negate() Token {
	tok.Literal = -tok.Literal
	return tok
}
