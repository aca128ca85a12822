package io

// Diagnostics receives the faults found while loading and running a program.
type Diagnostics interface {
	// Syntax reports a scanner or assembler fault.
	Syntax(line int, where string, message string)
	// Runtime reports a fault that halted execution.
	Runtime(message string, line int)
}

// Diagnostic is a single reported fault.
type Diagnostic struct {
	LineNo  int
	Where   string
	Message string
	Runtime bool
}

// String renders the diagnostic the way Report writes it.
func (diag Diagnostic) String() string {
	if diag.Runtime {
		return f("%v\n[line %d]", diag.Message, diag.LineNo)
	}

	return f("[line %d] Error%v: %v", diag.LineNo, diag.Where, diag.Message)
}

// Alert collects diagnostics in arrival order.
type Alert struct {
	Pending []Diagnostic
}

var _ Diagnostics = (*Alert)(nil)

// Reset drops all pending diagnostics.
func (ac *Alert) Reset() {
	ac.Pending = nil
}

func (ac *Alert) Syntax(line int, where string, message string) {
	ac.Pending = append(ac.Pending, Diagnostic{LineNo: line, Where: where, Message: message})
}

func (ac *Alert) Runtime(message string, line int) {
	ac.Pending = append(ac.Pending, Diagnostic{LineNo: line, Message: message, Runtime: true})
}

// Await removes and returns the oldest pending diagnostic.
func (ac *Alert) Await() (diag Diagnostic, ok bool) {
	if len(ac.Pending) > 0 {
		ok = true
		diag = ac.Pending[0]
		ac.Pending = ac.Pending[1:]
	}
	return
}
