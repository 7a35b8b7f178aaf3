package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/divertido"
)

// --- Tags -------------------------------------------------------

// Tag is the symbol type to be stored into symbol tables. It binds a
// variable name to a value. I prefer the name 'Tag' over 'Symbol' because
// grammars consist of symbols, too; tags are used during runtime of the
// client program.
type Tag struct {
	name  string
	Value divertido.Value
}

// NewTag creates a new tag, bound to nil.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// WithValue sets the initial value of a tag. Use as
//
//    tag := NewTag("myTag").WithValue(divertido.Number(1))
//
func (s *Tag) WithValue(v divertido.Value) *Tag {
	s.Value = v
	return s
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%s:%s>", s.Name(), s.Value, s.Value.Type())
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
// Iteration is in order of tag names.
type SymbolTable struct {
	table *treemap.Map
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	if tag, found := t.table.Get(tagname); found {
		return tag.(*Tag)
	}
	return nil
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag has already been present.
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag. Returns the tag previously stored
// under this name, or nil.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.table.Put(tag.name, tag)
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return t.table.Size()
}

// Each iterates over each tag in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	t.table.Each(func(k, v interface{}) {
		mapper(k.(string), v.(*Tag))
	})
}

// === Scopes ================================================================

// Scope is a named scope, which may contain variable bindings. Scopes link
// back to a parent scope, forming a chain.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// IsRoot is a predicate: Is this the outermost scope?
func (s *Scope) IsRoot() bool {
	return s.Parent == nil
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of the scope chain) the tag was found in.
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}
