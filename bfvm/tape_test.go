package bfvm

import "testing"

func TestTapeWraparound(t *testing.T) {
	tape := NewTape()
	for range 256 {
		tape.Increment()
	}
	if tape.Cell() != 0 {
		t.Fatalf("got %v", tape.Cell())
	}

	tape.Decrement()
	if tape.Cell() != 255 {
		t.Fatalf("got %v", tape.Cell())
	}
}

func TestTapeBidirectionalGrowth(t *testing.T) {
	tape := NewTape()

	tape.SetCell(1)
	tape.MoveRight()
	tape.SetCell(2)
	tape.MoveLeft()
	tape.MoveLeft()
	if tape.Cursor() != -1 {
		t.Fatalf("got %v", tape.Cursor())
	}
	if tape.Cell() != 0 {
		t.Fatalf("got %v", tape.Cell())
	}
	tape.SetCell(3)

	// previously written cells read back stable values
	if tape.At(0) != 1 {
		t.Fatalf("got %v", tape.At(0))
	}
	if tape.At(1) != 2 {
		t.Fatalf("got %v", tape.At(1))
	}
	if tape.At(-1) != 3 {
		t.Fatalf("got %v", tape.At(-1))
	}

	// unvisited positions read as zero
	if tape.At(100) != 0 {
		t.Fatal()
	}
	if tape.At(-100) != 0 {
		t.Fatal()
	}

	lo, hi := tape.Extent()
	if lo != -1 || hi != 1 {
		t.Fatalf("got %v %v", lo, hi)
	}
}

func TestTapeLazyAllocation(t *testing.T) {
	tape := NewTape()
	for range 1000 {
		tape.MoveRight()
	}
	lo, hi := tape.Extent()
	if lo != 0 || hi != 1000 {
		t.Fatalf("got %v %v", lo, hi)
	}

	tape = NewTape()
	for range 1000 {
		tape.MoveLeft()
	}
	lo, hi = tape.Extent()
	if lo != -1000 || hi != 0 {
		t.Fatalf("got %v %v", lo, hi)
	}
	if tape.Cursor() != -1000 {
		t.Fatalf("got %v", tape.Cursor())
	}
}
