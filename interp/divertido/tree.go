package main

import (
	"github.com/npillmayer/divertido/ast"
	"github.com/pterm/pterm"
)

// renderAST displays a list of statements as a tree on the terminal.
func renderAST(statements []ast.Statement) {
	ll := leveledList(statements)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		tracer().Errorf("cannot render syntax tree: %v", err)
	}
}

// leveledList flattens statements into a pterm leveled list. Statements are
// children of a common root item "program".
func leveledList(statements []ast.Statement) pterm.LeveledList {
	ll := pterm.LeveledList{{Level: 0, Text: "program"}}
	for _, stmt := range statements {
		ast.Inspect(stmt, func(n ast.Node, depth int) bool {
			ll = append(ll, pterm.LeveledListItem{
				Level: depth + 1,
				Text:  ast.Label(n),
			})
			return true
		})
	}
	return ll
}
