package scanner

import (
	"fmt"

	"github.com/npillmayer/divertido"
)

// TokType is a category type for a Token.
type TokType int

// Token types. The set is closed.
const (
	Number TokType = iota
	Identifier

	Let
	If
	Else
	While

	Nil
	True
	False
	String

	Print

	OpenParen
	CloseParen
	OpenCurly
	CloseCurly

	Plus
	Minus
	Multiplication
	Division
	Modulo

	Comma
	Semicolon

	Equal
	EqualEqual
	Bang
	BangEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	BitwiseAnd
	And
	BitwiseOr
	Or

	EOF
)

var tokTypeNames = [...]string{
	"Number", "Identifier",
	"Let", "If", "Else", "While",
	"Nil", "True", "False", "String",
	"Print",
	"OpenParen", "CloseParen", "OpenCurly", "CloseCurly",
	"Plus", "Minus", "Multiplication", "Division", "Modulo",
	"Comma", "Semicolon",
	"Equal", "EqualEqual", "Bang", "BangEqual",
	"Greater", "GreaterEqual", "Less", "LessEqual",
	"BitwiseAnd", "And", "BitwiseOr", "Or",
	"EOF",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return fmt.Sprintf("<tok %d>", int(t))
	}
	return tokTypeNames[t]
}

// keywords maps reserved words to their token types. Any other run of
// letters is an identifier.
var keywords = map[string]TokType{
	"let":   Let,
	"if":    If,
	"else":  Else,
	"while": While,
	"true":  True,
	"false": False,
	"nil":   Nil,
	"print": Print,
}

// operators are the punctuation tokens. Longer operators win over their
// prefixes, as the DFA does longest match.
var operators = map[string]TokType{
	"(":  OpenParen,
	")":  CloseParen,
	"{":  OpenCurly,
	"}":  CloseCurly,
	"+":  Plus,
	"-":  Minus,
	"*":  Multiplication,
	"/":  Division,
	"%":  Modulo,
	",":  Comma,
	";":  Semicolon,
	"=":  Equal,
	"==": EqualEqual,
	"!":  Bang,
	"!=": BangEqual,
	">":  Greater,
	">=": GreaterEqual,
	"<":  Less,
	"<=": LessEqual,
	"&":  BitwiseAnd,
	"&&": And,
	"|":  BitwiseOr,
	"||": Or,
}

// Token is an input token, produced by the scanner and consumed by the
// parser.
//
// Literal holds the value baked in by the scanner for numbers, strings,
// true and false. For all other tokens it is nil.
type Token struct {
	Kind    TokType
	Lexeme  string
	Literal divertido.Value
	Line    int
}

// MakeToken creates a token without a literal value.
func MakeToken(kind TokType, lexeme string, line int) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   line,
	}
}

// IsEOF is a predicate: is this the end-of-input token?
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.Literal.IsNil() {
		return fmt.Sprintf("<%s %q @%d>", t.Kind, t.Lexeme, t.Line)
	}
	return fmt.Sprintf("<%s %q=%s @%d>", t.Kind, t.Lexeme, t.Literal, t.Line)
}
