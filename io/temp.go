package io

import (
	"iter"
)

// Temporary implements an in-memory FIFO of lines.
type Temporary struct {
	Capacity int // Capacity in lines; 0 is unlimited.

	Data []string
}

var _ Channel = (*Temporary)(nil)

// Rewind empties the buffer.
func (temp *Temporary) Rewind() {
	temp.Data = nil
}

// Receive returns an iterator that yields lines from the buffer until empty.
func (temp *Temporary) Receive() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for len(temp.Data) > 0 {
			line := temp.Data[0]
			temp.Data = temp.Data[1:]
			if !yield(line) {
				return
			}
		}
	}
}

// Send appends a line to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(line string) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, line)

	return
}
