package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Run executes i.Image from i.PC until Halt. Well-formed programs leave the
// operand stack empty at Halt and never trigger the error path below.
//
// Stack underflow/overflow, PC out of range, and unrecognized opcodes are
// all recovered here and returned as a wrapped error instead of
// propagating a raw Go runtime panic to the caller.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if rerr, ok := e.(error); ok {
				err = errors.Wrapf(rerr, "tinyc: vm fault at pc=%d", i.PC)
				return
			}
			err = errors.Errorf("tinyc: vm fault at pc=%d: %v", i.PC, e)
		}
	}()

	for {
		if i.PC < 0 || i.PC >= len(i.Image) {
			return errors.Errorf("tinyc: pc %d out of range [0,%d)", i.PC, len(i.Image))
		}
		op := Op(i.Image[i.PC])
		if i.trace != nil {
			i.traceStep(op)
		}
		switch op {
		case OpIFetch:
			idx := int(i.Image[i.PC+1])
			i.push(i.Bank[idx])
			i.PC += 2

		case OpIStore:
			idx := int(i.Image[i.PC+1])
			// ISTORE does not pop: the stored value remains on the operand
			// stack so that nested assignments (a=b=3) and assignments
			// used as sub-expressions ((i=i+10)<50) keep working.
			i.Bank[idx] = i.stack[i.sp]
			i.PC += 2

		case OpIPush:
			i.push(int(i.Image[i.PC+1]))
			i.PC += 2

		case OpIPop:
			i.pop()
			i.PC++

		case OpIAdd:
			rhs := i.pop()
			i.stack[i.sp] += rhs
			i.PC++

		case OpISub:
			rhs := i.pop()
			i.stack[i.sp] -= rhs
			i.PC++

		case OpILt:
			rhs := i.pop()
			lhs := i.stack[i.sp]
			v := 0
			if lhs < rhs {
				v = 1
			}
			i.stack[i.sp] = v
			i.PC++

		case OpJZ:
			operand := i.PC + 1
			v := i.pop()
			if v == 0 {
				i.PC = operand + int(i.Image[operand])
			} else {
				i.PC = operand + 1
			}

		case OpJNZ:
			operand := i.PC + 1
			v := i.pop()
			if v != 0 {
				i.PC = operand + int(i.Image[operand])
			} else {
				i.PC = operand + 1
			}

		case OpJMP:
			operand := i.PC + 1
			i.PC = operand + int(i.Image[operand])

		case OpHalt:
			return nil

		default:
			return errors.Errorf("tinyc: unknown opcode %d", op)
		}
	}
}

func (i *Instance) traceStep(op Op) {
	if op.HasOperand() {
		fmt.Fprintf(i.trace, "% 6d  %-7s %d\tstack=%v\n", i.PC, op, i.Image[i.PC+1], i.Stack())
		return
	}
	fmt.Fprintf(i.trace, "% 6d  %-7s\tstack=%v\n", i.PC, op, i.Stack())
}
