/*
Package parser provides a recursive descent parser for Divertido.

The parser consumes the complete token sequence of a program and builds its
AST directly, with one token of lookahead. Grammar of expressions, lowest to
highest precedence:

   expression   ::=  logical_or
   logical_or   ::=  logical_and ( '||' logical_and )*
   logical_and  ::=  comparison ( '&&' comparison )*
   comparison   ::=  term ( ('!='|'=='|'>'|'>='|'<'|'<=') term )*
   term         ::=  factor ( ('+'|'-') factor )*
   factor       ::=  unary ( ('*'|'/'|'%'|'&'|'|') unary )*
   unary        ::=  ('-'|'!') primary  |  primary
   primary      ::=  number | string | true | false | nil | identifier
                  |  '(' expression ')'

All binary operators are left-associative. Statements:

   statement    ::=  let | assignment | block | if | while | print | exprstmt
   let          ::=  'let' identifier '=' expression ';'
   assignment   ::=  identifier '=' expression ';'
   block        ::=  '{' statement* '}'
   if           ::=  'if' expression block ( 'else' ( if | block ) )?
   while        ::=  'while' expression block
   print        ::=  'print' expression ( ',' expression )* ';'
   exprstmt     ::=  expression ';'

A statement starting with an identifier is always an assignment.

There is no error recovery: the first syntax error aborts the parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'divertido.parser'.
func tracer() tracing.Trace {
	return tracing.Select("divertido.parser")
}
