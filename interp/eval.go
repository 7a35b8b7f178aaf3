package interp

import (
	"fmt"
	"math"

	"github.com/npillmayer/divertido"
	"github.com/npillmayer/divertido/ast"
	"github.com/npillmayer/divertido/scanner"
)

func runtimeError(line int, format string, args ...interface{}) error {
	return divertido.Errorf(divertido.RuntimeError, line, format, args...)
}

// evaluate dispatches over the closed set of expression types.
func (intp *Interpreter) evaluate(expr ast.Expression) (divertido.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Variable:
		v, err := intp.env.Get(e.Name.Lexeme)
		if err != nil {
			return divertido.Nil, runtimeError(e.Line(), "%v", err)
		}
		return v, nil
	case *ast.Grouping:
		return intp.evaluate(e.Inner)
	case *ast.Unary:
		return intp.evaluateUnary(e)
	case *ast.Binary:
		return intp.evaluateBinary(e)
	}
	panic(fmt.Sprintf("unknown expression type %T", expr))
}

func (intp *Interpreter) evaluateUnary(e *ast.Unary) (divertido.Value, error) {
	operand, err := intp.evaluate(e.Operand)
	if err != nil {
		return divertido.Nil, err
	}
	switch e.Operator.Kind {
	case scanner.Minus:
		if n, ok := operand.AsNumber(); ok {
			return divertido.Number(-n), nil
		}
		return divertido.Nil, runtimeError(e.Line(), "Expected number after '-', found '%s'", operand)
	case scanner.Bang:
		if b, ok := operand.AsBoolean(); ok {
			return divertido.Boolean(!b), nil
		}
		return divertido.Nil, runtimeError(e.Line(), "Expected boolean after '!', found '%s'", operand)
	}
	return divertido.Nil, runtimeError(e.Line(), "Unknown unary operator '%s'", e.Operator.Lexeme)
}

// evaluateBinary evaluates both operands, left to right, before applying the
// operator. This holds for '&&' and '||' as well: they do not short-circuit.
func (intp *Interpreter) evaluateBinary(e *ast.Binary) (divertido.Value, error) {
	left, err := intp.evaluate(e.Left)
	if err != nil {
		return divertido.Nil, err
	}
	right, err := intp.evaluate(e.Right)
	if err != nil {
		return divertido.Nil, err
	}
	op := e.Operator
	switch op.Kind {
	case scanner.EqualEqual:
		return divertido.Boolean(left.Equal(right)), nil
	case scanner.BangEqual:
		return divertido.Boolean(!left.Equal(right)), nil
	case scanner.And:
		return divertido.Boolean(left.IsTruthy() && right.IsTruthy()), nil
	case scanner.Or:
		return divertido.Boolean(left.IsTruthy() || right.IsTruthy()), nil
	case scanner.Plus:
		if l, ok := left.AsString(); ok {
			if r, ok := right.AsString(); ok {
				return divertido.String(l + r), nil
			}
		}
		return arithmetic(op, left, right, "Expected 'number + number' or 'string + string'")
	case scanner.Minus, scanner.Multiplication, scanner.Division, scanner.Modulo:
		return arithmetic(op, left, right, "Expected 'number %s number'", op.Lexeme)
	case scanner.Greater, scanner.GreaterEqual, scanner.Less, scanner.LessEqual:
		return compare(op, left, right)
	case scanner.BitwiseAnd, scanner.BitwiseOr:
		return bitwise(op, left, right)
	}
	return divertido.Nil, runtimeError(op.Line, "Unknown binary operator '%s'", op.Lexeme)
}

// arithmetic applies a numeric operator with IEEE-754 semantics. Division by
// zero results in ±Inf or NaN, not in an error.
func arithmetic(op scanner.Token, left, right divertido.Value, expected string, args ...interface{}) (divertido.Value, error) {
	x, okx := left.AsNumber()
	y, oky := right.AsNumber()
	if !okx || !oky {
		return divertido.Nil, mismatch(op, left, right, fmt.Sprintf(expected, args...))
	}
	switch op.Kind {
	case scanner.Plus:
		return divertido.Number(x + y), nil
	case scanner.Minus:
		return divertido.Number(x - y), nil
	case scanner.Multiplication:
		return divertido.Number(x * y), nil
	case scanner.Division:
		return divertido.Number(x / y), nil
	case scanner.Modulo:
		return divertido.Number(math.Mod(x, y)), nil
	}
	panic(fmt.Sprintf("not an arithmetic operator: %s", op.Kind))
}

func compare(op scanner.Token, left, right divertido.Value) (divertido.Value, error) {
	x, okx := left.AsNumber()
	y, oky := right.AsNumber()
	if !okx || !oky {
		return divertido.Nil, mismatch(op, left, right, fmt.Sprintf("Expected 'number %s number'", op.Lexeme))
	}
	switch op.Kind {
	case scanner.Greater:
		return divertido.Boolean(x > y), nil
	case scanner.GreaterEqual:
		return divertido.Boolean(x >= y), nil
	case scanner.Less:
		return divertido.Boolean(x < y), nil
	case scanner.LessEqual:
		return divertido.Boolean(x <= y), nil
	}
	panic(fmt.Sprintf("not a comparison operator: %s", op.Kind))
}

// bitwise applies '&' or '|'. Numbers are truncated to integers, booleans
// are combined logically.
func bitwise(op scanner.Token, left, right divertido.Value) (divertido.Value, error) {
	if x, ok := left.AsNumber(); ok {
		if y, ok := right.AsNumber(); ok {
			if op.Kind == scanner.BitwiseAnd {
				return divertido.Number(float64(int64(x) & int64(y))), nil
			}
			return divertido.Number(float64(int64(x) | int64(y))), nil
		}
	}
	if x, ok := left.AsBoolean(); ok {
		if y, ok := right.AsBoolean(); ok {
			if op.Kind == scanner.BitwiseAnd {
				return divertido.Boolean(x && y), nil
			}
			return divertido.Boolean(x || y), nil
		}
	}
	msg := fmt.Sprintf("Expected 'number %[1]s number' or 'boolean %[1]s boolean'", op.Lexeme)
	return divertido.Nil, mismatch(op, left, right, msg)
}

func mismatch(op scanner.Token, left, right divertido.Value, expected string) error {
	return runtimeError(op.Line, "%s, found '%s %s %s'", expected, left, op.Lexeme, right)
}
