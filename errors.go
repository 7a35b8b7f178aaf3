package divertido

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an error by the pipeline stage which detected it.
type ErrorKind int

// Error kinds.
const (
	LexingError ErrorKind = iota
	ParsingError
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case LexingError:
		return "LexingError"
	case ParsingError:
		return "ParsingError"
	case RuntimeError:
		return "RuntimeError"
	}
	return fmt.Sprintf("<error kind %d>", int(k))
}

// Error is the error type of all the pipeline stages. Errors are terminal:
// the first error aborts a run.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
}

// Errorf creates an error of a given kind for a source line.
func Errorf(kind ErrorKind, line int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}

// Error renders the diagnostic line, e.g.
//
//    [line 3] RuntimeError: variable not found: 'x'.
//
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s: %s.", e.Line, e.Kind, e.Message)
}

// KindOf returns the kind of a (possibly wrapped) *Error and true, or false
// if err does not contain one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
