// Package io provides the channels the interpreter talks to: output channels
// that receive one line of text per print (Tape over an io.Writer, Temporary
// in memory), and diagnostic sinks that receive syntax and runtime faults
// (Report over an io.Writer, Alert in memory).
package io

import (
	"iter"
)

// Channel defines the interface for line oriented output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields lines from the channel.
	Receive() iter.Seq[string]
	// Send writes a single line to the channel.
	Send(line string) error
}
