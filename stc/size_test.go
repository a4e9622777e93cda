package stc

import (
	"testing"
	"unsafe"
)

// TestFootprint verifies the capability gate is free at the data level:
// a cell is exactly its value plus the borrow tracker, and guards are
// exactly their cell reference plus the released flag. No Context is
// stored anywhere.
func TestFootprint(t *testing.T) {
	type bare struct {
		value  int64
		borrow int32
	}
	if got, want := unsafe.Sizeof(Cell[int64]{}), unsafe.Sizeof(bare{}); got != want {
		t.Errorf("Sizeof(Cell[int64]) = %d, want %d (value + tracker only)", got, want)
	}

	type bareRef struct {
		cell     *Cell[int64]
		released bool
	}
	if got, want := unsafe.Sizeof(Ref[int64]{}), unsafe.Sizeof(bareRef{}); got != want {
		t.Errorf("Sizeof(Ref[int64]) = %d, want %d (cell pointer + flag only)", got, want)
	}
	if got, want := unsafe.Sizeof(RefMut[int64]{}), unsafe.Sizeof(bareRef{}); got != want {
		t.Errorf("Sizeof(RefMut[int64]) = %d, want %d (cell pointer + flag only)", got, want)
	}
}

// TestTracker_States exercises the raw tracker encoding directly.
func TestTracker_States(t *testing.T) {
	ctx := Enter()
	defer ctx.Leave()

	cell := NewCell(0)
	if cell.borrow != 0 {
		t.Fatalf("fresh cell tracker = %d, want 0", cell.borrow)
	}

	a := cell.Borrow(ctx)
	b := cell.Borrow(ctx)
	if cell.borrow != 2 {
		t.Errorf("tracker with two shared borrows = %d, want 2", cell.borrow)
	}
	a.Release()
	b.Release()
	if cell.borrow != 0 {
		t.Errorf("tracker after releases = %d, want 0", cell.borrow)
	}

	m := cell.BorrowMut(ctx)
	if cell.borrow != exclusive {
		t.Errorf("tracker with exclusive borrow = %d, want %d", cell.borrow, exclusive)
	}
	m.Release()
	if cell.borrow != 0 {
		t.Errorf("tracker after exclusive release = %d, want 0", cell.borrow)
	}
}
