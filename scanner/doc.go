/*
Package scanner splits Divertido source text into tokens.

The token rules are compiled into a DFA with lexmachine. Scanning is a
single left-to-right pass with longest-match semantics: "==" is preferred
over "=", and "//" starts a comment running to the end of the line.

The result of a scan is a complete token sequence, terminated by an EOF
token, or a LexingError for the first invalid input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'divertido.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("divertido.scanner")
}
