package program

import "fmt"

// ProgramError reports a semantically invalid ship program: an illegal
// statement, a type mismatch, a re-typed variable, or a break with no
// enclosing loop. It aborts the current advance; the world's physical
// state stays consistent.
type ProgramError struct {
	Location SourceLocation
	Msg      string
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("program: %d:%d: %s", e.Location.Line, e.Location.Column, e.Msg)
}

// ReturnError reports a return statement executed outside any function
// body.
type ReturnError struct {
	Location SourceLocation
}

func (e *ReturnError) Error() string {
	return fmt.Sprintf("program: %d:%d: return outside function", e.Location.Line, e.Location.Column)
}

func failf(loc SourceLocation, format string, args ...any) error {
	return &ProgramError{Location: loc, Msg: fmt.Sprintf(format, args...)}
}
