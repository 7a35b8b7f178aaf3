package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/divertido/config"
	"github.com/npillmayer/divertido/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExecuteFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.cli")
	defer teardown()
	//
	var out, errOut bytes.Buffer
	code := execute("let x = 2; print x * 21;", config.Default(), &out, &errOut)
	if code != 0 || out.String() != "42\n" || errOut.Len() != 0 {
		t.Errorf("expected 42 and exit code 0, have %q, %q, %d", out.String(), errOut.String(), code)
	}
	out.Reset()
	code = execute("print 1;\nprint y;", config.Default(), &out, &errOut)
	if code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	if out.String() != "1\n" {
		t.Errorf("expected output of first statement, have %q", out.String())
	}
	if errOut.String() != "[line 2] RuntimeError: variable not found: 'y'.\n" {
		t.Errorf("unexpected diagnostic %q", errOut.String())
	}
}

func TestExecuteScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.cli")
	defer teardown()
	//
	source := "{ let x = 1; } print x;"
	var out, errOut bytes.Buffer
	if code := execute(source, config.Default(), &out, &errOut); code != 0 {
		t.Errorf("expected flat scoping to succeed, have %q", errOut.String())
	}
	c := config.Default()
	c.Scoping = config.ScopingBlock
	if code := execute(source, c, &out, &errOut); code != 1 {
		t.Errorf("expected block scoping to fail")
	}
}

func TestREPLSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.cli")
	defer teardown()
	//
	var out bytes.Buffer
	intp := newIntp(&out)
	if _, err := intp.Eval("let a = 1;"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval("print a +;"); err == nil {
		t.Errorf("expected parse error")
	}
	if _, err := intp.Eval(`let b = "x"; print a, b;`); err != nil {
		t.Fatal(err)
	}
	if out.String() != "1x\n" {
		t.Errorf("expected environment to persist across lines, have %q", out.String())
	}
	out.Reset()
	if _, err := intp.Eval(".env"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "a = 1") || !strings.Contains(out.String(), "\nb = x") {
		t.Errorf("unexpected bindings listing %q", out.String())
	}
	if quit, _ := intp.Eval(".quit"); !quit {
		t.Errorf("expected .quit to end the session")
	}
	if _, err := intp.Eval(".help"); err == nil {
		t.Errorf("expected unknown command to be an error")
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.cli")
	defer teardown()
	//
	statements, err := parser.Parse("let x = 1 + 2; print x;")
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledList(statements)
	expected := []struct {
		level int
		text  string
	}{
		{0, "program"}, {1, "let x"}, {2, "+"}, {3, "1"}, {3, "2"}, {1, "print"}, {2, "x"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d: %v", len(expected), len(ll), ll)
	}
	for i, e := range expected {
		if ll[i].Level != e.level || ll[i].Text != e.text {
			t.Errorf("item %d: expected %d/%s, have %d/%s", i, e.level, e.text, ll[i].Level, ll[i].Text)
		}
	}
}
