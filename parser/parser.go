package parser

import (
	"fmt"

	"github.com/npillmayer/divertido"
	"github.com/npillmayer/divertido/ast"
	"github.com/npillmayer/divertido/scanner"
)

// Parser is a recursive descent parser over a token sequence.
type Parser struct {
	tokens  []scanner.Token
	current int
}

// NewParser creates a parser for a token sequence. If the sequence is not
// terminated by an EOF token, one is appended.
func NewParser(tokens []scanner.Token) *Parser {
	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, scanner.MakeToken(scanner.EOF, "", line))
	}
	return &Parser{tokens: tokens}
}

// Parse scans and parses an input string. It returns the statement list of
// the program, or the first lexing or parsing error.
func Parse(input string) ([]ast.Statement, error) {
	tokens, err := scanner.Lex(input)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parse parses the complete token sequence into a list of statements.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.isEOF() {
		stmt, err := p.statement()
		if err != nil {
			tracer().Debugf("parse error: %v", err)
			return nil, err
		}
		tracer().Debugf("parsed statement %s", stmt)
		statements = append(statements, stmt)
	}
	return statements, nil
}

// --- Statements ------------------------------------------------------------

func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Kind {
	case scanner.Let:
		return p.letStatement()
	case scanner.Identifier:
		return p.assignmentStatement()
	case scanner.OpenCurly:
		return p.blockStatement()
	case scanner.If:
		return p.ifStatement()
	case scanner.While:
		return p.whileStatement()
	case scanner.Print:
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) letStatement() (ast.Statement, error) {
	p.advance()
	name, err := p.consume(scanner.Identifier, "Expected identifier after 'let'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.Equal, "Expected '=' after identifier"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.Semicolon, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.Let{Name: name, Initializer: value}, nil
}

func (p *Parser) assignmentStatement() (ast.Statement, error) {
	name := p.next()
	if _, err := p.consume(scanner.Equal, "Expected '=' after identifier"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.Semicolon, "Expected ';' after assignment"); err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: name, Value: value}, nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	keyword := p.next()
	var exprs []ast.Expression
	for {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.match(scanner.Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(scanner.Semicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.Print{Keyword: keyword, Expressions: exprs}, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	keyword := p.next()
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Keyword: keyword, Condition: condition, Then: then}
	if !p.match(scanner.Else) {
		return stmt, nil
	}
	p.advance()
	if p.match(scanner.If) {
		stmt.Else, err = p.ifStatement()
	} else {
		stmt.Else, err = p.blockStatement()
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	keyword := p.next()
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Keyword: keyword, Condition: condition, Body: body}, nil
}

func (p *Parser) blockStatement() (ast.Statement, error) {
	b, err := p.block()
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Parser) block() (*ast.Block, error) {
	open, err := p.consume(scanner.OpenCurly, "Expected '{'")
	if err != nil {
		return nil, err
	}
	b := &ast.Block{Open: open}
	for !p.match(scanner.CloseCurly) && !p.isEOF() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		b.Statements = append(b.Statements, stmt)
	}
	if _, err := p.consume(scanner.CloseCurly, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(scanner.Semicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

// --- Expressions -----------------------------------------------------------

func (p *Parser) expression() (ast.Expression, error) {
	return p.logicalOr()
}

// binary parses a left-associative chain of operators of one precedence
// level, with operands parsed by operand.
func (p *Parser) binary(operand func() (ast.Expression, error), ops ...scanner.TokType) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator := p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func (p *Parser) logicalOr() (ast.Expression, error) {
	return p.binary(p.logicalAnd, scanner.Or)
}

func (p *Parser) logicalAnd() (ast.Expression, error) {
	return p.binary(p.comparison, scanner.And)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, scanner.BangEqual, scanner.EqualEqual,
		scanner.Greater, scanner.GreaterEqual, scanner.Less, scanner.LessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, scanner.Plus, scanner.Minus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, scanner.Multiplication, scanner.Division,
		scanner.Modulo, scanner.BitwiseAnd, scanner.BitwiseOr)
}

func (p *Parser) unary() (ast.Expression, error) {
	if !p.match(scanner.Minus, scanner.Bang) {
		return p.primary()
	}
	operator := p.next()
	operand, err := p.primary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Operator: operator, Operand: operand}, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	switch p.peek().Kind {
	case scanner.Number, scanner.String, scanner.True, scanner.False, scanner.Nil:
		token := p.next()
		return &ast.Literal{Value: token.Literal, Source: token}, nil
	case scanner.Identifier:
		return &ast.Variable{Name: p.next()}, nil
	case scanner.OpenParen:
		open := p.next()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(scanner.CloseParen, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner, Open: open}, nil
	}
	return nil, p.error("Unexpected %s", describe(p.peek()))
}

// --- Token handling --------------------------------------------------------

func (p *Parser) peek() scanner.Token {
	return p.tokens[p.current]
}

func (p *Parser) isEOF() bool {
	return p.peek().IsEOF()
}

func (p *Parser) advance() {
	if !p.isEOF() {
		p.current++
	}
}

func (p *Parser) next() scanner.Token {
	token := p.peek()
	p.advance()
	return token
}

func (p *Parser) match(kinds ...scanner.TokType) bool {
	k := p.peek().Kind
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// consume expects a token of a given kind. msg is completed with a
// description of the offending token.
func (p *Parser) consume(kind scanner.TokType, msg string) (scanner.Token, error) {
	if p.match(kind) {
		return p.next(), nil
	}
	return scanner.Token{}, p.error("%s, found %s", msg, describe(p.peek()))
}

func (p *Parser) error(format string, args ...interface{}) error {
	return divertido.Errorf(divertido.ParsingError, p.peek().Line, format, args...)
}

func describe(token scanner.Token) string {
	if token.IsEOF() {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", token.Lexeme)
}
