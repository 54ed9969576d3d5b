// Package vm implements the Tiny-C stack machine: a fetch-decode-dispatch
// loop over a flat bytecode image, an operand stack, and a 26-slot bank of
// integer variables.
package vm

// Cell is the raw signed-byte cell type of the bytecode image: an ordered
// sequence of signed-byte cells, addressed by an int program counter.
type Cell int8

// Image is the bytecode buffer produced by a code generator and consumed
// read-only by an Instance.
type Image []Cell
