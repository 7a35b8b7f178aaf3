/*
Package ast defines the abstract syntax tree of Divertido programs.

There are two closed sets of node types: expressions and statements. Both
are sealed interfaces; clients dispatch over them with type switches. An AST
is built once by the parser and owned by the statement list of a program.
Nodes are never shared between trees and are not modified after parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/divertido"
	"github.com/npillmayer/divertido/scanner"
)

// Node is the common interface of expressions and statements.
type Node interface {
	Line() int
	String() string
}

// Expression is an expression node.
type Expression interface {
	Node
	exprNode()
}

// Statement is a statement node.
type Statement interface {
	Node
	stmtNode()
}

// --- Expressions -----------------------------------------------------------

// Literal is a value baked in by the scanner.
type Literal struct {
	Value  divertido.Value
	Source scanner.Token
}

// Variable is a reference to a variable.
type Variable struct {
	Name scanner.Token
}

// Unary is a prefix operation: '-' or '!'.
type Unary struct {
	Operator scanner.Token
	Operand  Expression
}

// Binary is an infix operation.
type Binary struct {
	Left     Expression
	Operator scanner.Token
	Right    Expression
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expression
	Open  scanner.Token
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}

func (e *Literal) Line() int  { return e.Source.Line }
func (e *Variable) Line() int { return e.Name.Line }
func (e *Unary) Line() int    { return e.Operator.Line }
func (e *Binary) Line() int   { return e.Operator.Line }
func (e *Grouping) Line() int { return e.Open.Line }

// String returns a literal as it would appear in source code.
func (e *Literal) String() string {
	if s, ok := e.Value.AsString(); ok {
		return strconv.Quote(s)
	}
	return e.Value.String()
}

func (e *Variable) String() string {
	return e.Name.Lexeme
}

func (e *Unary) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Operand)
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left, e.Right)
}

func (e *Grouping) String() string {
	return fmt.Sprintf("(group %s)", e.Inner)
}

// --- Statements ------------------------------------------------------------

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expression
}

// Let binds a variable, whether it is already bound or not.
type Let struct {
	Name        scanner.Token
	Initializer Expression
}

// Assignment re-binds an existing variable.
type Assignment struct {
	Name  scanner.Token
	Value Expression
}

// Block is a sequence of statements in curly braces.
type Block struct {
	Statements []Statement
	Open       scanner.Token
}

// If is a conditional. Else is nil, a *Block or an *If (else-if chain).
type If struct {
	Keyword   scanner.Token
	Condition Expression
	Then      *Block
	Else      Statement
}

// While is a loop.
type While struct {
	Keyword   scanner.Token
	Condition Expression
	Body      *Block
}

// Print writes the textual forms of its expressions on one line.
type Print struct {
	Keyword     scanner.Token
	Expressions []Expression
}

func (*ExpressionStmt) stmtNode() {}
func (*Let) stmtNode()            {}
func (*Assignment) stmtNode()     {}
func (*Block) stmtNode()          {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*Print) stmtNode()          {}

func (s *ExpressionStmt) Line() int { return s.Expr.Line() }
func (s *Let) Line() int            { return s.Name.Line }
func (s *Assignment) Line() int     { return s.Name.Line }
func (s *Block) Line() int          { return s.Open.Line }
func (s *If) Line() int             { return s.Keyword.Line }
func (s *While) Line() int          { return s.Keyword.Line }
func (s *Print) Line() int          { return s.Keyword.Line }

func (s *ExpressionStmt) String() string {
	return fmt.Sprintf("(expr %s)", s.Expr)
}

func (s *Let) String() string {
	return fmt.Sprintf("(let %s %s)", s.Name.Lexeme, s.Initializer)
}

func (s *Assignment) String() string {
	return fmt.Sprintf("(= %s %s)", s.Name.Lexeme, s.Value)
}

func (s *Block) String() string {
	var b strings.Builder
	b.WriteString("(block")
	for _, stmt := range s.Statements {
		b.WriteByte(' ')
		b.WriteString(stmt.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (s *If) String() string {
	if s.Else == nil {
		return fmt.Sprintf("(if %s %s)", s.Condition, s.Then)
	}
	return fmt.Sprintf("(if %s %s %s)", s.Condition, s.Then, s.Else)
}

func (s *While) String() string {
	return fmt.Sprintf("(while %s %s)", s.Condition, s.Body)
}

func (s *Print) String() string {
	var b strings.Builder
	b.WriteString("(print")
	for _, e := range s.Expressions {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
