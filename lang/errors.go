package lang

import "github.com/pkg/errors"

// ErrSyntax is the single, undifferentiated error Tiny-C raises for any
// lexical or grammatical failure: no recovery, no multi-error reporting,
// no source location. The Lexer and Parser panic with this sentinel;
// Compile recovers it at the package boundary.
var ErrSyntax = errors.New("syntax error")

// syntaxError aborts the current Compile call via a panic-based abort
// idiom, caught by Compile's deferred recover.
func syntaxError() {
	panic(ErrSyntax)
}
