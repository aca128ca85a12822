package io

import (
	"fmt"
)

// Format renders a value as a line of output. A nil value renders as "nil".
func Format(value any) string {
	if value == nil {
		return "nil"
	}

	return fmt.Sprint(value)
}

// SendValue sends a value to the channel as a single line.
func SendValue(ch Channel, value any) (err error) {
	return ch.Send(Format(value))
}
