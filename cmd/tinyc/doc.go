// The tinyc command compiles a Tiny-C program from stdin, executes it, and
// prints every variable left nonzero.
//
// Usage:
//
//	-dump
//		  dump the operand stack and variable bank on exit
//	-stacksize int
//		  operand stack depth (0: use the default)
//	-trace
//		  print one line per executed instruction to stderr
//
// On a lexical or grammatical error, tinyc prints "syntax error" to stderr
// and exits with status 1. Otherwise it prints each of a..z whose final
// value is nonzero, one per line, as "<letter> = <value>".
package main
