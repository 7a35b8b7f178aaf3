package interp

import (
	"io"
	"os"

	"github.com/npillmayer/divertido/ast"
	"github.com/npillmayer/divertido/parser"
	"github.com/npillmayer/divertido/runtime"
)

// Interpreter executes Divertido programs. An interpreter owns exactly one
// runtime environment, which persists across calls to Execute.
// Interpreters are not safe for concurrent use.
type Interpreter struct {
	env          *runtime.Environment
	out          io.Writer
	blockScoping bool
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer for print statements. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		if w != nil {
			intp.out = w
		}
	}
}

// BlockScoping sets or clears block scoping. With block scoping, blocks
// open a new scope for variables bound by let.
func BlockScoping(b bool) Option {
	return func(intp *Interpreter) {
		intp.blockScoping = b
	}
}

// New creates an interpreter with an empty environment.
func New(opts ...Option) *Interpreter {
	intp := &Interpreter{
		env: runtime.NewEnvironment(),
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// Environment returns the runtime environment of the interpreter.
func (intp *Interpreter) Environment() *runtime.Environment {
	return intp.env
}

// Execute runs a list of statements in order. It stops at the first error.
func (intp *Interpreter) Execute(statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := intp.execute(stmt); err != nil {
			tracer().Debugf("execution aborted: %v", err)
			return err
		}
	}
	return nil
}

// Eval parses and executes a source text in the environment of the
// interpreter.
func (intp *Interpreter) Eval(source string) error {
	statements, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return intp.Execute(statements)
}

// Run executes a complete program with a fresh interpreter: source text is
// scanned, parsed and executed. It returns the first lexing, parsing or
// runtime error.
func Run(source string, opts ...Option) error {
	return New(opts...).Eval(source)
}
