package interp

import (
	"fmt"
	"strings"

	"github.com/npillmayer/divertido/ast"
)

// execute dispatches over the closed set of statement types.
func (intp *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := intp.evaluate(s.Expr)
		return err
	case *ast.Let:
		return intp.executeLet(s)
	case *ast.Assignment:
		return intp.executeAssignment(s)
	case *ast.Block:
		return intp.executeBlock(s)
	case *ast.If:
		return intp.executeIf(s)
	case *ast.While:
		return intp.executeWhile(s)
	case *ast.Print:
		return intp.executePrint(s)
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

func (intp *Interpreter) executeLet(s *ast.Let) error {
	v, err := intp.evaluate(s.Initializer)
	if err != nil {
		return err
	}
	intp.env.Set(s.Name.Lexeme, v)
	return nil
}

func (intp *Interpreter) executeAssignment(s *ast.Assignment) error {
	v, err := intp.evaluate(s.Value)
	if err != nil {
		return err
	}
	if err := intp.env.Assign(s.Name.Lexeme, v); err != nil {
		return runtimeError(s.Name.Line, "%v", err)
	}
	return nil
}

func (intp *Interpreter) executeBlock(b *ast.Block) error {
	if intp.blockScoping {
		intp.env.PushScope(fmt.Sprintf("block@%d", b.Line()))
		defer intp.env.PopScope()
	}
	for _, stmt := range b.Statements {
		if err := intp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (intp *Interpreter) executeIf(s *ast.If) error {
	cond, err := intp.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if cond.IsTruthy() {
		return intp.executeBlock(s.Then)
	}
	if s.Else != nil {
		return intp.execute(s.Else)
	}
	return nil
}

func (intp *Interpreter) executeWhile(s *ast.While) error {
	for {
		cond, err := intp.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !cond.IsTruthy() {
			return nil
		}
		if err := intp.executeBlock(s.Body); err != nil {
			return err
		}
	}
}

// executePrint evaluates all expressions before writing anything, then
// writes their concatenation as a single line.
func (intp *Interpreter) executePrint(s *ast.Print) error {
	var line strings.Builder
	for _, e := range s.Expressions {
		v, err := intp.evaluate(e)
		if err != nil {
			return err
		}
		line.WriteString(v.String())
	}
	line.WriteByte('\n')
	if _, err := intp.out.Write([]byte(line.String())); err != nil {
		return fmt.Errorf("cannot write output of print statement: %w", err)
	}
	return nil
}
