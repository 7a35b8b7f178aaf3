/*
Command divertido runs programs of the Divertido language, either from a file
or interactively.

Usage:

    divertido [flags]            start the REPL
    divertido repl [flags]       start the REPL
    divertido run FILE [flags]   execute a source file
    divertido FILE [flags]       execute a source file

Flags are --trace (Debug|Info|Error), --scoping (flat|block), --ast and
--config. Settings may also be put into a file divertido.toml or
divertido.yaml in the current directory; flags override file settings.

Within the REPL, every line is executed in one environment, which lives as
long as the session. Lines starting with a dot are commands:

    .env    list variable bindings
    .quit   leave the REPL (as does <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'divertido.cli'
func tracer() tracing.Trace {
	return tracing.Select("divertido.cli")
}
