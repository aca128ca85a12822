package io

import (
	"bufio"
	"io"
	"iter"
)

// Tape provides sequential line I/O. It wraps an io.Reader for input, read
// one line at a time, and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields lines from the input stream,
// without their line terminators.
func (tc *Tape) Receive() iter.Seq[string] {
	return func(yield func(line string) bool) {
		if tc.Input == nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
		}
		for tc.scanner.Scan() {
			if !yield(tc.scanner.Text()) {
				return
			}
		}
	}
}

// Send writes a line to the output stream.
func (tc *Tape) Send(line string) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = io.WriteString(tc.Output, line+"\n")
	return
}
