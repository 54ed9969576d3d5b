package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tinyc-lang/tinyc/lang"
	"github.com/tinyc-lang/tinyc/vm"
)

var (
	trace     bool
	dump      bool
	stackSize int
)

func atExit(err error) {
	if err == nil {
		return
	}
	if err == lang.ErrSyntax {
		fmt.Fprintln(os.Stderr, "syntax error")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

func main() {
	var err error

	flag.BoolVar(&trace, "trace", false, "print one line per executed instruction to stderr")
	flag.BoolVar(&dump, "dump", false, "dump the operand stack and variable bank on exit")
	flag.IntVar(&stackSize, "stacksize", 0, "operand stack depth (0: use the default)")
	flag.Parse()

	defer func() { atExit(err) }()

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		err = fmt.Errorf("reading program: %w", err)
		return
	}

	img, err := lang.Compile(bytes.NewReader(src))
	if err != nil {
		return
	}

	var opts []vm.Option
	if trace {
		opts = append(opts, vm.WithTrace(os.Stderr))
	}
	if stackSize > 0 {
		opts = append(opts, vm.WithStackSize(stackSize))
	}
	i := vm.New(img, opts...)

	if err = i.Run(); err != nil {
		return
	}

	if dump {
		if err = dumpVM(i, os.Stdout); err != nil {
			return
		}
	}
	printBank(i.Bank)
}

func printBank(b vm.Bank) {
	for c := byte('a'); c <= 'z'; c++ {
		if v := b[c-'a']; v != 0 {
			fmt.Printf("%c = %d\n", c, v)
		}
	}
}
