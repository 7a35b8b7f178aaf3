package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/divertido/interp"
	"github.com/npillmayer/divertido/parser"
	"github.com/npillmayer/divertido/scanner"
	"github.com/pterm/pterm"
)

// Intp is our interactive interpreter object. It holds one interpreter for
// the whole session.
type Intp struct {
	repl    *readline.Instance
	intp    *interp.Interpreter
	out     io.Writer
	showAST bool
}

func startREPL() error {
	repl, err := readline.New(settings.Prompt)
	if err != nil {
		return fmt.Errorf("cannot start REPL: %w", err)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to Divertido") // colored welcome message
	tracer().Infof("Quit with .quit or <ctrl>D")
	intp := newIntp(repl.Stdout())
	intp.repl = repl
	intp.REPL()
	return nil
}

func newIntp(out io.Writer) *Intp {
	return &Intp{
		intp:    interp.New(interp.WithOutput(out), interp.BlockScoping(settings.BlockScoping())),
		out:     out,
		showAST: settings.ShowAST,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Eval executes a line of input. Lines starting with a dot are REPL
// commands. Eval returns true if the user wants to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ".") {
		return intp.command(line)
	}
	tokens, err := scanner.Lex(line)
	if err != nil {
		return false, err
	}
	if fp, err := scanner.Fingerprint(tokens); err == nil {
		tracer().Debugf("%d tokens, fingerprint %s", len(tokens), fp)
	}
	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return false, err
	}
	if intp.showAST {
		renderAST(statements)
	}
	return false, intp.intp.Execute(statements)
}

func (intp *Intp) command(line string) (bool, error) {
	switch line {
	case ".quit":
		return true, nil
	case ".env":
		intp.printEnv()
		return false, nil
	}
	return false, fmt.Errorf("unknown command %s, try .env or .quit", line)
}

func (intp *Intp) printEnv() {
	bindings := intp.intp.Environment().Bindings()
	if len(bindings) == 0 {
		fmt.Fprintln(intp.out, "no variables")
		return
	}
	for _, b := range bindings {
		fmt.Fprintf(intp.out, "%s = %s  [%s]\n", b.Name, b.Value.String(), b.Scope)
	}
}
