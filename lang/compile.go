package lang

import (
	"io"

	"github.com/tinyc-lang/tinyc/vm"
)

// Compile reads a complete Tiny-C program from r, parses it, and lowers it
// to a vm.Image ready to run. The only error it returns is ErrSyntax --
// there is no recovery and no partial result on failure.
func Compile(r io.Reader) (img vm.Image, err error) {
	defer func() {
		if e := recover(); e != nil {
			se, ok := e.(error)
			if !ok || se != ErrSyntax {
				panic(e)
			}
			img, err = nil, ErrSyntax
		}
	}()

	lex := NewLexer(r)
	root := NewParser(lex).Program()
	cg := NewCodeGen()
	cg.Gen(root)
	return cg.Image(), nil
}
