package vm

import "testing"

// setup builds an Instance over a raw instruction stream.
func setup(code []Cell) *Instance {
	return New(Image(code))
}

func checkStack(t *testing.T, i *Instance, want ...int) {
	t.Helper()
	if err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := i.Stack()
	if len(got) != len(want) {
		t.Fatalf("stack depth: got %v, want %v", got, want)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("stack: got %v, want %v", got, want)
		}
	}
}

func TestIPush(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 42, Cell(OpHalt)})
	checkStack(t, i, 42)
}

func TestIPop(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 42, Cell(OpIPush), 7, Cell(OpIPop), Cell(OpHalt)})
	checkStack(t, i, 42)
}

func TestIAdd(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 3, Cell(OpIPush), 4, Cell(OpIAdd), Cell(OpHalt)})
	checkStack(t, i, 7)
}

func TestISub(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 10, Cell(OpIPush), 4, Cell(OpISub), Cell(OpHalt)})
	checkStack(t, i, 6)
}

func TestILtTrue(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 2, Cell(OpIPush), 3, Cell(OpILt), Cell(OpHalt)})
	checkStack(t, i, 1)
}

func TestILtFalse(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 3, Cell(OpIPush), 2, Cell(OpILt), Cell(OpHalt)})
	checkStack(t, i, 0)
}

func TestIFetchIStore(t *testing.T) {
	// store 99 into variable 0 ('a'), leaving the value on the stack
	// since ISTORE does not pop, then fetch it back.
	i := setup([]Cell{
		Cell(OpIPush), 99,
		Cell(OpIStore), 0,
		Cell(OpIPop),
		Cell(OpIFetch), 0,
		Cell(OpHalt),
	})
	checkStack(t, i, 99)
	if i.Bank[0] != 99 {
		t.Fatalf("bank[0] = %d, want 99", i.Bank[0])
	}
}

func TestIStoreDoesNotPop(t *testing.T) {
	i := setup([]Cell{Cell(OpIPush), 5, Cell(OpIStore), 0, Cell(OpHalt)})
	checkStack(t, i, 5)
	if i.Bank[0] != 5 {
		t.Fatalf("bank[0] = %d, want 5", i.Bank[0])
	}
}

func TestJZTaken(t *testing.T) {
	// push 0, JZ +3 (skip the next push), push 111, halt
	i := setup([]Cell{
		Cell(OpIPush), 0,
		Cell(OpJZ), 3,
		Cell(OpIPush), 111,
		Cell(OpHalt),
	})
	checkStack(t, i)
}

func TestJZNotTaken(t *testing.T) {
	i := setup([]Cell{
		Cell(OpIPush), 1,
		Cell(OpJZ), 3,
		Cell(OpIPush), 111,
		Cell(OpHalt),
	})
	checkStack(t, i, 111)
}

func TestJMP(t *testing.T) {
	// jump over a push that should never execute
	i := setup([]Cell{
		Cell(OpJMP), 3,
		Cell(OpIPush), 111,
		Cell(OpHalt),
	})
	checkStack(t, i)
}

func TestJNZ(t *testing.T) {
	// a tiny countdown loop: bank[0] starts 0 via IPUSH 3 ISTORE pattern is
	// overkill here; exercise JNZ directly instead.
	i := setup([]Cell{
		Cell(OpIPush), 1,
		Cell(OpJNZ), 3, // taken, jumps to offset 3+3=6 -> OpHalt
		Cell(OpIPush), 111,
		Cell(OpHalt),
	})
	checkStack(t, i)
}

func TestRunUnknownOpcode(t *testing.T) {
	i := setup([]Cell{99})
	if err := i.Run(); err == nil {
		t.Fatal("expected error for unknown opcode")
	}
}

func TestRunPCOutOfRange(t *testing.T) {
	i := setup([]Cell{Cell(OpJMP), 100})
	if err := i.Run(); err == nil {
		t.Fatal("expected error for pc out of range")
	}
}

func TestWithStackSize(t *testing.T) {
	i := New(Image{Cell(OpHalt)}, WithStackSize(4))
	if len(i.stack) != 4 {
		t.Fatalf("stack size = %d, want 4", len(i.stack))
	}
}
