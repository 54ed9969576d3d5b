package lang

import (
	"fmt"
	"io"

	"github.com/tinyc-lang/tinyc/vm"
)

// Disassemble writes a human-readable listing of img to w. It never
// affects compile/run behavior; the cmd/tinyc -dump flag does not use it.
func Disassemble(img vm.Image, w io.Writer) {
	for pc := 0; pc < len(img); {
		pc = disassembleOne(img, pc, w)
	}
}

func disassembleOne(img vm.Image, pc int, w io.Writer) int {
	op := vm.Op(img[pc])
	if op.HasOperand() {
		if pc+1 < len(img) {
			target := ""
			switch op {
			case vm.OpJZ, vm.OpJNZ, vm.OpJMP:
				target = fmt.Sprintf(" (-> %d)", pc+1+int(img[pc+1]))
			}
			fmt.Fprintf(w, "% 6d  %-7s %d%s\n", pc, op, img[pc+1], target)
			return pc + 2
		}
		fmt.Fprintf(w, "% 6d  %-7s ???\n", pc, op)
		return pc + 1
	}
	fmt.Fprintf(w, "% 6d  %s\n", pc, op)
	return pc + 1
}
