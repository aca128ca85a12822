// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scanner converts source text into Tokens.
type Scanner struct {
	Verbose bool // If set, logs every token produced.

	source  string
	start   int
	current int
	line    int
	tokens  []Token
	errs    []error
}

// ValidRegister returns true if name (without the leading '$') is a register:
// one of v, t, s or a followed by a single digit.
func ValidRegister(name string) bool {
	if len(name) != 2 {
		return false
	}

	switch name[0] {
	case 'v', 't', 's', 'a':
	default:
		return false
	}

	return isDigit(name[1])
}

// Scan scans all of source. It never stops early: invalid characters and
// registers are reported in err and scanning carries on, so tokens is always
// terminated by an EOF token.
func (sc *Scanner) Scan(source string) (tokens []Token, err error) {
	sc.source = source
	sc.start = 0
	sc.current = 0
	sc.line = 1
	sc.tokens = nil
	sc.errs = nil

	for !sc.isAtEnd() {
		sc.start = sc.current
		sc.scanToken()
	}

	sc.tokens = append(sc.tokens, Token{Type: EOF, Line: sc.line})

	tokens = sc.tokens
	err = errors.Join(sc.errs...)

	return
}

// Scan is a convenience wrapper for a quiet Scanner.
func Scan(source string) (tokens []Token, err error) {
	sc := &Scanner{}
	return sc.Scan(source)
}

func (sc *Scanner) isAtEnd() bool {
	return sc.current >= len(sc.source)
}

func (sc *Scanner) advance() (r rune) {
	r, size := utf8.DecodeRuneInString(sc.source[sc.current:])
	sc.current += size
	return
}

func (sc *Scanner) peek() byte {
	if sc.isAtEnd() {
		return 0
	}
	return sc.source[sc.current]
}

func (sc *Scanner) peekNext() byte {
	if sc.current+1 >= len(sc.source) {
		return 0
	}
	return sc.source[sc.current+1]
}

func (sc *Scanner) error(err error) {
	sc.errs = append(sc.errs, &ErrSyntax{LineNo: sc.line, Err: err})
}

func (sc *Scanner) addToken(tt TokenType, literal int32) {
	tok := Token{
		Type:    tt,
		Lexeme:  sc.source[sc.start:sc.current],
		Literal: literal,
		Line:    sc.line,
	}
	if sc.Verbose {
		log.Printf("scan: %v", tok)
	}
	sc.tokens = append(sc.tokens, tok)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// number scans a numeric literal. A fractional part is consumed into the
// lexeme, but only the digits before the '.' give the value.
func (sc *Scanner) number() {
	for isDigit(sc.peek()) {
		sc.advance()
	}

	if sc.peek() == '.' && isDigit(sc.peekNext()) {
		sc.advance()
		for isDigit(sc.peek()) {
			sc.advance()
		}
	}

	text, _, _ := strings.Cut(sc.source[sc.start:sc.current], ".")
	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		sc.error(ErrNumberInvalid)
		value = 0
	}

	sc.addToken(NUMBER, int32(value))
}

func (sc *Scanner) identifier() {
	for isAlphaNumeric(sc.peek()) {
		sc.advance()
	}

	tt, ok := Keyword(sc.source[sc.start:sc.current])
	if !ok {
		tt = IDENTIFIER
	}

	sc.addToken(tt, 0)
}

// register scans '$' and the name following it. An invalid name is reported,
// but the REGISTER token is still produced.
func (sc *Scanner) register() {
	for isAlphaNumeric(sc.peek()) {
		sc.advance()
	}

	if !ValidRegister(sc.source[sc.start+1 : sc.current]) {
		sc.error(ErrRegisterInvalid)
	}

	sc.addToken(REGISTER, 0)
}

func (sc *Scanner) scanToken() {
	r := sc.advance()

	switch r {
	case '(':
		sc.addToken(LEFT_PAREN, 0)
	case ')':
		sc.addToken(RIGHT_PAREN, 0)
	case ',':
		sc.addToken(COMMA, 0)
	case ';':
		sc.addToken(SEMICOLON, 0)
	case ':':
		sc.addToken(COLON, 0)
	case '-':
		sc.addToken(MINUS, 0)
	case ' ', '\r', '\t':
		// whitespace
	case '\n':
		sc.line++
	case '$':
		sc.register()
	default:
		switch {
		case r < utf8.RuneSelf && isDigit(byte(r)):
			sc.number()
		case r < utf8.RuneSelf && isAlpha(byte(r)):
			sc.identifier()
		default:
			sc.error(ErrCharacterUnexpected)
		}
	}
}
