package runtime

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/divertido"
)

// ErrVariableNotFound is returned when resolving a variable which has not
// been bound.
var ErrVariableNotFound = errors.New("variable not found")

// Environment is the runtime environment of an interpreter: a stack of
// scopes, the bottom-most of which holds the global variables.
type Environment struct {
	globals *Scope
	scopes  *arraystack.Stack // of *Scope, TOS is the current scope
}

// NewEnvironment constructs a new runtime environment with an empty global
// scope.
func NewEnvironment() *Environment {
	env := &Environment{
		globals: NewScope("globals", nil),
		scopes:  arraystack.New(),
	}
	env.scopes.Push(env.globals)
	return env
}

// Current gets the current scope (TOS).
func (env *Environment) Current() *Scope {
	sc, _ := env.scopes.Peek()
	return sc.(*Scope)
}

// Globals gets the outermost scope, containing global variables.
func (env *Environment) Globals() *Scope {
	return env.globals
}

// Depth returns the number of scopes on the stack, including the globals.
func (env *Environment) Depth() int {
	return env.scopes.Size()
}

// PushScope pushes a new scope as TOS, having the recent TOS as its parent.
func (env *Environment) PushScope(nm string) *Scope {
	sc := NewScope(nm, env.Current())
	env.scopes.Push(sc)
	T().P("scope", sc.Name).Debugf("pushing new scope")
	return sc
}

// PopScope pops the top-most scope. Returns the popped scope.
// The global scope cannot be popped.
func (env *Environment) PopScope() *Scope {
	if env.scopes.Size() <= 1 {
		panic("attempt to pop global scope")
	}
	sc, _ := env.scopes.Pop()
	T().Debugf("popping scope [%s]", sc.(*Scope).Name)
	return sc.(*Scope)
}

// Set binds a variable in the current scope. It will insert a new binding or
// overwrite an existing one, unconditionally.
func (env *Environment) Set(name string, v divertido.Value) {
	tag, _ := env.Current().Tags().ResolveOrDefineTag(name)
	tag.Value = v
	T().Debugf("set %s", tag)
}

// Get resolves a variable, searching the scope chain outward. Values are
// returned by copy. If the variable is not bound, Get returns an error
// wrapping ErrVariableNotFound.
func (env *Environment) Get(name string) (divertido.Value, error) {
	tag, _ := env.Current().ResolveTag(name)
	if tag == nil {
		return divertido.Nil, fmt.Errorf("%w: '%s'", ErrVariableNotFound, name)
	}
	return tag.Value, nil
}

// Assign re-binds an existing variable in the scope it was found in.
// If the variable is not bound, Assign returns an error wrapping
// ErrVariableNotFound and leaves the environment unchanged.
func (env *Environment) Assign(name string, v divertido.Value) error {
	tag, sc := env.Current().ResolveTag(name)
	if tag == nil {
		return fmt.Errorf("%w: '%s'", ErrVariableNotFound, name)
	}
	tag.Value = v
	T().P("scope", sc.Name).Debugf("assign %s", tag)
	return nil
}

// Binding is a visible variable binding.
type Binding struct {
	Name  string
	Value divertido.Value
	Scope string
}

// Bindings lists all variables visible from the current scope, in order of
// names. Inner bindings shadow outer bindings of the same name.
func (env *Environment) Bindings() []Binding {
	seen := make(map[string]bool)
	var inner []Binding
	for sc := env.Current(); sc != nil; sc = sc.Parent {
		var level []Binding
		sc.Tags().Each(func(name string, tag *Tag) {
			if !seen[name] {
				seen[name] = true
				level = append(level, Binding{Name: name, Value: tag.Value, Scope: sc.Name})
			}
		})
		inner = mergeBindings(inner, level)
	}
	return inner
}

// mergeBindings merges two name-ordered lists of bindings.
func mergeBindings(a, b []Binding) []Binding {
	r := make([]Binding, 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if a[0].Name < b[0].Name {
			r, a = append(r, a[0]), a[1:]
		} else {
			r, b = append(r, b[0]), b[1:]
		}
	}
	r = append(r, a...)
	return append(r, b...)
}
