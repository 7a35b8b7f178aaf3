package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/divertido"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	sym.Value = divertido.Number(5)
	if n, _ := sym.Value.AsNumber(); n != 5 {
		t.Errorf("Value does not work")
	}
}

func TestTwoSymbolsDistinct(t *testing.T) {
	symtab := NewSymbolTable()
	sym1, _ := symtab.DefineTag("new-sym1")
	sym2, _ := symtab.DefineTag("new-sym2")
	if sym1 == sym2 {
		t.Error("2 symbols with equal name")
	}
	if symtab.Size() != 2 {
		t.Errorf("expected symbol table to contain 2 tags, has %d", symtab.Size())
	}
}

func TestResolveOrDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, found := symtab.ResolveOrDefineTag(sym.Name()); !found {
		t.Error("cannot find stored symbol in table")
	}
	if _, found := symtab.ResolveOrDefineTag("other"); found {
		t.Error("expected 'other' to be created")
	}
}

func TestDefineTag(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
}

func TestEachIsOrdered(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		symtab.DefineTag(name)
	}
	var names string
	symtab.Each(func(name string, _ *Tag) {
		names += name
	})
	if names != "abc" {
		t.Errorf("expected iteration in name order, have %q", names)
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.DefineTag("new-sym")
	if sym, sc := scope.ResolveTag("new-sym"); sym == nil || sc != scopep {
		t.Errorf("expected to find symbol in parent scope")
	}
}

func TestEnvironmentFlat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	if _, err := env.Get("x"); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("expected variable-not-found error, have %v", err)
	}
	env.Set("x", divertido.Number(1))
	env.Set("x", divertido.String("one"))
	v, err := env.Get("x")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := v.AsString(); s != "one" {
		t.Errorf("expected last write to win, have %v", v)
	}
	if err := env.Assign("y", divertido.Nil); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("expected assignment to unbound variable to fail, have %v", err)
	}
	if _, err := env.Get("y"); err == nil {
		t.Errorf("expected failed assignment not to bind y")
	}
}

func TestEnvironmentScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "divertido.runtime")
	defer teardown()
	//
	env := NewEnvironment()
	env.Set("x", divertido.Number(1))
	env.PushScope("block")
	if env.Depth() != 2 {
		t.Errorf("expected depth 2, have %d", env.Depth())
	}
	env.Set("y", divertido.Number(2))
	if err := env.Assign("x", divertido.Number(3)); err != nil {
		t.Fatal(err)
	}
	env.Set("x", divertido.Number(4)) // shadows global x
	if v, _ := env.Get("x"); !v.Equal(divertido.Number(4)) {
		t.Errorf("expected inner x to be 4, is %v", v)
	}
	bindings := env.Bindings()
	if len(bindings) != 2 || bindings[0].Name != "x" || bindings[0].Scope != "block" {
		t.Errorf("unexpected bindings %v", bindings)
	}
	env.PopScope()
	if v, _ := env.Get("x"); !v.Equal(divertido.Number(3)) {
		t.Errorf("expected global x to be 3 after assignment, is %v", v)
	}
	if _, err := env.Get("y"); err == nil {
		t.Errorf("expected y to be out of scope")
	}
}

func TestPopGlobalsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected popping the global scope to panic")
		}
	}()
	NewEnvironment().PopScope()
}

func TestBindingsMerge(t *testing.T) {
	env := NewEnvironment()
	env.Set("b", divertido.Number(1))
	env.Set("d", divertido.Number(1))
	env.PushScope("inner")
	env.Set("a", divertido.Number(2))
	env.Set("c", divertido.Number(2))
	var names string
	for _, b := range env.Bindings() {
		names += b.Name
	}
	if names != "abcd" {
		t.Errorf("expected bindings in name order, have %q", names)
	}
}
