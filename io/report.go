package io

import (
	"io"
)

// Report writes diagnostics to an io.Writer, one per line.
type Report struct {
	Output io.Writer

	Syntaxes int // Syntax faults reported.
	Runtimes int // Runtime faults reported.
}

var _ Diagnostics = (*Report)(nil)

func (rep *Report) Syntax(line int, where string, message string) {
	rep.Syntaxes++
	rep.write(Diagnostic{LineNo: line, Where: where, Message: message})
}

func (rep *Report) Runtime(message string, line int) {
	rep.Runtimes++
	rep.write(Diagnostic{LineNo: line, Message: message, Runtime: true})
}

// Reset zeros the fault counters.
func (rep *Report) Reset() {
	rep.Syntaxes = 0
	rep.Runtimes = 0
}

func (rep *Report) write(diag Diagnostic) {
	if rep.Output == nil {
		return
	}

	io.WriteString(rep.Output, diag.String()+"\n")
}
