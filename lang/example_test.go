package lang_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/tinyc-lang/tinyc/lang"
	"github.com/tinyc-lang/tinyc/vm"
)

// Shows compilation and disassembly of a small program, and its final
// variable bank after execution.
func ExampleCompile() {
	img, err := lang.Compile(strings.NewReader("a=b=c=2<3;"))
	if err != nil {
		fmt.Println(err)
		return
	}

	lang.Disassemble(img, os.Stdout)

	i := vm.New(img)
	if err := i.Run(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("a=%d b=%d c=%d\n", i.Bank['a'-'a'], i.Bank['b'-'a'], i.Bank['c'-'a'])

	// Output:
	//      0  ipush   2
	//      2  ipush   3
	//      4  ilt
	//      5  istore  2
	//      7  istore  1
	//      9  istore  0
	//     11  ipop
	//     12  halt
	// a=1 b=1 c=1
}
