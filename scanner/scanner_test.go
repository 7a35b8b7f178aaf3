package scanner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/divertido"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kinds(tokens []Token) []TokType {
	k := make([]TokType, len(tokens))
	for i, t := range tokens {
		k[i] = t.Kind
	}
	return k
}

func TestScanStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	tokens, err := Lex("let x = 5; print x + 1;")
	if err != nil {
		t.Fatal(err)
	}
	expected := []TokType{Let, Identifier, Equal, Number, Semicolon,
		Print, Identifier, Plus, Number, Semicolon, EOF}
	if !reflect.DeepEqual(kinds(tokens), expected) {
		t.Errorf("expected %v, have %v", expected, kinds(tokens))
	}
	if n, ok := tokens[3].Literal.AsNumber(); !ok || n != 5 {
		t.Errorf("expected literal 5 for number token, have %v", tokens[3].Literal)
	}
	if tokens[1].Lexeme != "x" {
		t.Errorf("expected identifier 'x', have %q", tokens[1].Lexeme)
	}
}

func TestScanOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		kinds []TokType
	}{
		{"==", []TokType{EqualEqual, EOF}},
		{"= =", []TokType{Equal, Equal, EOF}},
		{"!=!", []TokType{BangEqual, Bang, EOF}},
		{">=><=<", []TokType{GreaterEqual, Greater, LessEqual, Less, EOF}},
		{"&&&", []TokType{And, BitwiseAnd, EOF}},
		{"|| |", []TokType{Or, BitwiseOr, EOF}},
		{"(){}", []TokType{OpenParen, CloseParen, OpenCurly, CloseCurly, EOF}},
		{"+-*/%,;", []TokType{Plus, Minus, Multiplication, Division, Modulo, Comma, Semicolon, EOF}},
		{"4/2", []TokType{Number, Division, Number, EOF}},
	} {
		tokens, err := Lex(test.input)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(kinds(tokens), test.kinds) {
			t.Errorf("test %d: expected %v, have %v", i, test.kinds, kinds(tokens))
		}
	}
}

func TestScanKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	tokens, err := Lex("let if else while true false nil print lettuce")
	if err != nil {
		t.Fatal(err)
	}
	expected := []TokType{Let, If, Else, While, True, False, Nil, Print, Identifier, EOF}
	if !reflect.DeepEqual(kinds(tokens), expected) {
		t.Errorf("expected %v, have %v", expected, kinds(tokens))
	}
	if b, ok := tokens[4].Literal.AsBoolean(); !ok || !b {
		t.Errorf("expected 'true' to carry literal true, has %v", tokens[4].Literal)
	}
	if b, ok := tokens[5].Literal.AsBoolean(); !ok || b {
		t.Errorf("expected 'false' to carry literal false, has %v", tokens[5].Literal)
	}
	if !tokens[0].Literal.IsNil() {
		t.Errorf("expected 'let' to carry no literal, has %v", tokens[0].Literal)
	}
}

func TestScanString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	tokens, err := Lex(`print "hello, world";`)
	if err != nil {
		t.Fatal(err)
	}
	if tokens[1].Kind != String {
		t.Fatalf("expected a string token, have %v", tokens[1])
	}
	if s, _ := tokens[1].Literal.AsString(); s != "hello, world" {
		t.Errorf("expected string literal 'hello, world', have %q", s)
	}
	if tokens[1].Lexeme != `"hello, world"` {
		t.Errorf("expected lexeme to include quotes, is %s", tokens[1].Lexeme)
	}
}

func TestScanComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	withComment, err := Lex("// x\n5;")
	if err != nil {
		t.Fatal(err)
	}
	plain, err := Lex("5;")
	if err != nil {
		t.Fatal(err)
	}
	if len(withComment) != len(plain) {
		t.Fatalf("expected %d tokens, have %d", len(plain), len(withComment))
	}
	for i := range plain {
		a, b := withComment[i], plain[i]
		if a.Kind != b.Kind || a.Lexeme != b.Lexeme || !a.Literal.Equal(b.Literal) {
			t.Errorf("token %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestScanLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	tokens, err := Lex("a\nb\n\nc")
	if err != nil {
		t.Fatal(err)
	}
	for i, line := range []int{1, 2, 4, 4} {
		if tokens[i].Line != line {
			t.Errorf("expected token %v to be on line %d", tokens[i], line)
		}
	}
}

func TestScanErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		msg   string
		line  int
	}{
		{`"abc`, "Unterminated string", 1},
		{`let s = "abc;`, "Unterminated string", 1},
		{"@", "Invalid character '@'", 1},
		{"let x = 1;\nx = #;", "Invalid character '#'", 2},
	} {
		_, err := Lex(test.input)
		if err == nil {
			t.Errorf("test %d: expected lexing error for %q", i, test.input)
			continue
		}
		if kind, ok := divertido.KindOf(err); !ok || kind != divertido.LexingError {
			t.Errorf("test %d: expected a LexingError, have %v", i, err)
		}
		e := err.(*divertido.Error)
		if !strings.Contains(e.Message, test.msg) || e.Line != test.line {
			t.Errorf("test %d: unexpected error %q", i, err.Error())
		}
	}
}

func TestScanDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.scanner")
	defer teardown()
	//
	input := "let i = 0;\nwhile i < 3 { print i, \"!\"; i = i + 1; }"
	first, err := Lex(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Lex(input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical token sequences")
	}
	fp1, err1 := Fingerprint(first)
	fp2, err2 := Fingerprint(second)
	if err1 != nil || err2 != nil {
		t.Fatalf("fingerprinting failed: %v, %v", err1, err2)
	}
	if fp1 != fp2 {
		t.Errorf("expected identical fingerprints, have %s and %s", fp1, fp2)
	}
	other, _ := Lex("let i = 1;")
	if fp3, _ := Fingerprint(other); fp3 == fp1 {
		t.Errorf("expected different inputs to have different fingerprints")
	}
}

func TestScannerStaysAtEOF(t *testing.T) {
	lx, err := DefaultLexer()
	if err != nil {
		t.Fatal(err)
	}
	scan, err := lx.Scanner("x")
	if err != nil {
		t.Fatal(err)
	}
	for i, kind := range []TokType{Identifier, EOF, EOF} {
		token, err := scan.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != kind {
			t.Errorf("call %d: expected %s, have %s", i, kind, token.Kind)
		}
	}
}
