package scanner

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/divertido"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Lexer wraps a compiled lexmachine DFA for Divertido tokens.
// A Lexer is immutable after creation and may be shared.
type Lexer struct {
	lexer *lexmachine.Lexer
}

var defaultLexer *Lexer
var defaultLexerErr error
var initOnce sync.Once // monitors one-time creation of the default lexer

// DefaultLexer returns the lexer for Divertido, compiling its DFA on first use.
func DefaultLexer() (*Lexer, error) {
	initOnce.Do(func() {
		defaultLexer, defaultLexerErr = NewLexer()
	})
	return defaultLexer, defaultLexerErr
}

// NewLexer creates and compiles a new lexer.
//
// NewLexer will return an error if compiling the DFA failed.
func NewLexer() (*Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`( |\t|\r|\n)+`), skip)
	lexer.Add([]byte(`//[^\n]*`), skip)
	lexer.Add([]byte(`\"[^"]*\"`), stringToken)
	lexer.Add([]byte(`\"[^"]*`), unterminatedString)
	lexer.Add([]byte(`[0-9]+`), numberToken)
	lexer.Add([]byte(`([a-z]|[A-Z])+`), wordToken)
	ops := make([]string, 0, len(operators))
	for op := range operators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		r := "\\" + strings.Join(strings.Split(op, ""), "\\")
		lexer.Add([]byte(r), operatorToken(operators[op]))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{lexer: lexer}, nil
}

// Lex scans a complete input with the default lexer.
func Lex(input string) ([]Token, error) {
	lx, err := DefaultLexer()
	if err != nil {
		return nil, err
	}
	return lx.Lex(input)
}

// Lex scans a complete input. It returns the tokens, terminated by an EOF
// token, or the first LexingError.
func (lx *Lexer) Lex(input string) ([]Token, error) {
	scan, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		token, err := scan.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.IsEOF() {
			break
		}
	}
	tracer().Debugf("scanned %d tokens", len(tokens))
	return tokens, nil
}

// Scanner creates a scanner for a given input.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, fmt.Errorf("cannot create scanner: %w", err)
	}
	return &Scanner{
		scanner:  s,
		input:    input,
		lastLine: 1 + strings.Count(input, "\n"),
	}, nil
}

// Scanner delivers the tokens of one input, one at a time.
type Scanner struct {
	scanner  *lexmachine.Scanner
	input    string
	lastLine int
	done     bool
}

// NextToken returns the next token of the input. After the EOF token has
// been delivered, every subsequent call returns EOF again.
func (s *Scanner) NextToken() (Token, error) {
	if s.done {
		return MakeToken(EOF, "", s.lastLine), nil
	}
	tok, err, eof := s.scanner.Next()
	if err != nil {
		return Token{}, s.lexingError(err)
	}
	if eof {
		tracer().Debugf("scanner reached end of input")
		s.done = true
		return MakeToken(EOF, "", s.lastLine), nil
	}
	token := tok.(Token)
	tracer().Debugf("token %v", token)
	return token, nil
}

func (s *Scanner) lexingError(err error) error {
	var lerr *divertido.Error
	if errors.As(err, &lerr) {
		return lerr
	}
	var ui *machines.UnconsumedInput
	if errors.As(err, &ui) {
		c := s.input[ui.StartTC]
		return divertido.Errorf(divertido.LexingError, ui.StartLine, "Invalid character '%c'", c)
	}
	return divertido.Errorf(divertido.LexingError, s.lastLine, "%v", err)
}

// --- Actions ---------------------------------------------------------------

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func operatorToken(kind TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return MakeToken(kind, string(m.Bytes), m.StartLine), nil
	}
}

func stringToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	return Token{
		Kind:    String,
		Lexeme:  lexeme,
		Literal: divertido.String(lexeme[1 : len(lexeme)-1]),
		Line:    m.StartLine,
	}, nil
}

func unterminatedString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, divertido.Errorf(divertido.LexingError, m.EndLine, "Unterminated string")
}

func numberToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, divertido.Errorf(divertido.LexingError, m.StartLine, "Malformed number '%s'", lexeme)
	}
	return Token{
		Kind:    Number,
		Lexeme:  lexeme,
		Literal: divertido.Number(n),
		Line:    m.StartLine,
	}, nil
}

// wordToken classifies a run of letters as a keyword or an identifier.
func wordToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	kind, ok := keywords[lexeme]
	if !ok {
		return MakeToken(Identifier, lexeme, m.StartLine), nil
	}
	token := MakeToken(kind, lexeme, m.StartLine)
	switch kind {
	case True:
		token.Literal = divertido.Boolean(true)
	case False:
		token.Literal = divertido.Boolean(false)
	}
	return token, nil
}
