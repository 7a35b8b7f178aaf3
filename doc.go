/*
Package divertido is a small imperative scripting language.

Divertido knows variables, arithmetic, strings, booleans, conditionals,
while-loops and a print statement. Source text is processed by a three-stage
pipeline. Package structure is as follows:

■ scanner: Package scanner splits source text into tokens, using a DFA
generated by lexmachine.

■ parser: Package parser is a recursive descent parser which builds an
abstract syntax tree (package ast) from a token sequence.

■ runtime: Package runtime provides scopes and memory frames, holding the
variable bindings of a running program.

■ interp: Package interp walks the AST and executes it.

The base package contains data types which are used throughout all the other
packages: values and errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package divertido
