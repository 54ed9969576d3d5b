// Package lang implements the front end and code generator for Tiny-C, a
// pedagogical imperative language with 26 predeclared integer variables
// (a..z, all initially zero), if/while/do-while control flow, and no other
// data types.
//
// The package exposes Compile, which drives a Lexer and Parser to build an
// AST and then a CodeGen to lower it to a vm.Image ready to run. Grammar:
//
//	program    ::= statement EOI
//	statement  ::= "if" paren statement ("else" statement)?
//	             | "while" paren statement
//	             | "do" statement "while" paren ";"
//	             | "{" statement* "}"
//	             | ";"
//	             | expression ";"
//	paren      ::= "(" expression ")"
//	expression ::= comparison | ident "=" expression
//	comparison ::= sum ("<" sum)?
//	sum        ::= term (("+" | "-") term)*
//	term       ::= ident | int | paren
//
// Any lexical or grammatical error reported during Compile is ErrSyntax:
// Tiny-C diagnoses failures with a single undifferentiated error and no
// source position, by design.
package lang
