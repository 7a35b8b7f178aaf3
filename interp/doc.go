/*
Package interp implements a tree-walking interpreter for Divertido.

The interpreter executes the statement list of a program in order, in a
single runtime environment. Statements and expressions are dispatched by
type switches over the closed node sets of package ast. Every error is
terminal: execution stops at the first RuntimeError, which is returned to
the caller.

Scoping

By default the interpreter uses flat scoping: there is a single table of
variables for the whole run, and a variable bound inside a block, if-branch
or loop body stays visible after the block has been left. This is a
deliberate product choice, keeping the language minimal. Option BlockScoping
switches to conventional lexical block scopes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'divertido.interp'.
func tracer() tracing.Trace {
	return tracing.Select("divertido.interp")
}
