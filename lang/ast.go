package lang

// NodeKind tags an AST Node with its shape.
type NodeKind int

const (
	Var NodeKind = iota
	Cst
	Add
	Sub
	Lt
	Set
	If1
	If2
	While
	Do
	Empty
	Seq
	Expr
	Prog
)

// Node is a Tiny-C AST node. Child/payload conventions:
//
//	Var          payload = variable index [0,25], no children
//	Cst          payload = constant value, no children
//	Add, Sub, Lt  child 1, child 2 = operands
//	Set          child 1 = Var target, child 2 = rhs expression
//	If1          child 1 = cond, child 2 = then
//	If2          child 1 = cond, child 2 = then, child 3 = else
//	While        child 1 = cond, child 2 = body
//	Do           child 1 = body, child 2 = cond
//	Empty        no children
//	Seq          child 1 = earlier statement, child 2 = later statement
//	Expr         child 1 = evaluated expression, value discarded
//	Prog         child 1 = top-level statement, always the tree root
type Node struct {
	Kind                   NodeKind
	Value                  int
	Child1, Child2, Child3 *Node
}

func newNode(k NodeKind) *Node { return &Node{Kind: k} }
