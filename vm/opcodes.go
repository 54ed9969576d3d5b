package vm

// Tiny-C stack machine opcodes. Op is a distinct type from Cell even
// though it occupies a Cell-sized slot in the image, so that opcode and
// operand values can't be mixed up by accident.
type Op Cell

const (
	OpIFetch Op = iota
	OpIStore
	OpIPush
	OpIPop
	OpIAdd
	OpISub
	OpILt
	OpJZ
	OpJNZ
	OpJMP
	OpHalt
)

var opNames = [...]string{
	OpIFetch: "ifetch",
	OpIStore: "istore",
	OpIPush:  "ipush",
	OpIPop:   "ipop",
	OpIAdd:   "iadd",
	OpISub:   "isub",
	OpILt:    "ilt",
	OpJZ:     "jz",
	OpJNZ:    "jnz",
	OpJMP:    "jmp",
	OpHalt:   "halt",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

// HasOperand reports whether op is followed by a single immediate cell in
// the bytecode stream: a variable index, a constant, or a relative jump
// offset.
func (op Op) HasOperand() bool {
	switch op {
	case OpIFetch, OpIStore, OpIPush, OpJZ, OpJNZ, OpJMP:
		return true
	default:
		return false
	}
}
