package main

import (
	"io"
	"strconv"

	"github.com/tinyc-lang/tinyc/internal/errio"
	"github.com/tinyc-lang/tinyc/vm"
)

func dumpInts(w *errio.Writer, a []int) error {
	l := len(a) - 1
	if l >= 0 {
		for i := 0; i < l; i++ {
			io.WriteString(w, strconv.Itoa(a[i]))
			w.Write([]byte{' '})
		}
		io.WriteString(w, strconv.Itoa(a[l]))
	}
	return w.Err
}

func dumpBank(w *errio.Writer, b vm.Bank) error {
	for n := 0; n < len(b)-1; n++ {
		io.WriteString(w, strconv.Itoa(b[n]))
		w.Write([]byte{' '})
	}
	io.WriteString(w, strconv.Itoa(b[len(b)-1]))
	return w.Err
}

// dumpVM writes the operand stack and then the variable bank to w, each on
// its own line, for the -dump flag.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := errio.New(w)
	dumpInts(ew, i.Stack())
	ew.Write([]byte{'\n'})
	dumpBank(ew, i.Bank)
	ew.Write([]byte{'\n'})
	return ew.Err
}
