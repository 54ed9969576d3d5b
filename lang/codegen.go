package lang

import "github.com/tinyc-lang/tinyc/vm"

// initialCap is the code buffer's starting capacity, grown on demand past
// this floor rather than treated as a hard ceiling.
const initialCap = 1000

// CodeGen lowers an AST to a flat vm.Image via a single post-order
// traversal, backpatching forward branches.
type CodeGen struct {
	buf []vm.Cell
}

// NewCodeGen returns a CodeGen with an empty output buffer.
func NewCodeGen() *CodeGen {
	return &CodeGen{buf: make([]vm.Cell, 0, initialCap)}
}

// emit appends v to the bytecode buffer and returns its index.
func (cg *CodeGen) emit(v vm.Cell) int {
	cg.buf = append(cg.buf, v)
	return len(cg.buf) - 1
}

// hole reserves a cell for a branch operand to be filled in later by patch.
func (cg *CodeGen) hole() int {
	return cg.emit(0)
}

// patch writes the PC-relative delta from hole to the current end of the
// buffer (the next instruction to be emitted) into the cell at hole. The
// offset is measured from the operand cell itself -- NOT from the start of
// the branch instruction and NOT from the instruction following the
// operand.
func (cg *CodeGen) patch(hole int) {
	cg.patchTo(hole, len(cg.buf))
}

// patchTo writes the delta from hole to an explicit target address,
// used by While/Do to jump backwards to a previously recorded address.
func (cg *CodeGen) patchTo(hole, target int) {
	cg.buf[hole] = vm.Cell(target - hole)
}

// Gen traverses root in post-order and emits its code.
func (cg *CodeGen) Gen(n *Node) {
	switch n.Kind {
	case Var:
		cg.emit(vm.Cell(vm.OpIFetch))
		cg.emit(vm.Cell(n.Value))

	case Cst:
		cg.emit(vm.Cell(vm.OpIPush))
		cg.emit(vm.Cell(n.Value))

	case Add:
		cg.Gen(n.Child1)
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpIAdd))

	case Sub:
		cg.Gen(n.Child1)
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpISub))

	case Lt:
		cg.Gen(n.Child1)
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpILt))

	case Set:
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpIStore))
		cg.emit(vm.Cell(n.Child1.Value))

	case If1:
		cg.Gen(n.Child1)
		cg.emit(vm.Cell(vm.OpJZ))
		h := cg.hole()
		cg.Gen(n.Child2)
		cg.patch(h)

	case If2:
		cg.Gen(n.Child1)
		cg.emit(vm.Cell(vm.OpJZ))
		h1 := cg.hole()
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpJMP))
		h2 := cg.hole()
		cg.patch(h1)
		cg.Gen(n.Child3)
		cg.patch(h2)

	case While:
		a := len(cg.buf)
		cg.Gen(n.Child1)
		cg.emit(vm.Cell(vm.OpJZ))
		h := cg.hole()
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpJMP))
		cg.patchTo(cg.hole(), a)
		cg.patch(h)

	case Do:
		a := len(cg.buf)
		cg.Gen(n.Child1)
		cg.Gen(n.Child2)
		cg.emit(vm.Cell(vm.OpJNZ))
		cg.patchTo(cg.hole(), a)

	case Seq:
		cg.Gen(n.Child1)
		cg.Gen(n.Child2)

	case Expr:
		cg.Gen(n.Child1)
		cg.emit(vm.Cell(vm.OpIPop))

	case Prog:
		cg.Gen(n.Child1)
		cg.emit(vm.Cell(vm.OpHalt))

	case Empty:
		// nothing to emit

	default:
		panic("lang: unreachable node kind in CodeGen.Gen")
	}
}

// Image returns the compiled bytecode buffer as a vm.Image.
func (cg *CodeGen) Image() vm.Image {
	return vm.Image(cg.buf)
}
