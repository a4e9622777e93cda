package stc

// Ref is a shared borrow guard returned by [Cell.Borrow].
//
// Get reads the wrapped value; Release returns the borrow to the cell's
// tracker. A Ref grants read-only access: it never exposes a pointer into
// the cell, so the value cannot be mutated through it.
//
// A Ref must not be copied: copies share the borrow but release it
// independently.
type Ref[T any] struct {
	noCopy noCopy

	cell *Cell[T]

	// released guards the exactly-once decrement and turns use of a dead
	// guard into a deterministic panic.
	released bool
}

// Get returns the wrapped value. Panics after Release.
func (r *Ref[T]) Get() T {
	if r.released {
		panic("stc: use of released borrow")
	}
	return r.cell.value
}

// Release returns the shared borrow to the cell.
//
// The tracker is decremented exactly once regardless of how many times
// Release runs, so `defer g.Release()` composes with an early manual
// release on another path.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.borrow--
}

// RefMut is the exclusive borrow guard returned by [Cell.BorrowMut].
//
// While a RefMut is live it is the sole access path to the cell: Get reads
// and Set writes the wrapped value. Release clears the exclusive flag.
//
// A RefMut must not be copied.
type RefMut[T any] struct {
	noCopy noCopy

	cell     *Cell[T]
	released bool
}

// Get returns the wrapped value. Panics after Release.
func (r *RefMut[T]) Get() T {
	if r.released {
		panic("stc: use of released borrow")
	}
	return r.cell.value
}

// Set replaces the wrapped value. Panics after Release.
func (r *RefMut[T]) Set(v T) {
	if r.released {
		panic("stc: use of released borrow")
	}
	r.cell.value = v
}

// Release clears the cell's exclusive flag, exactly once.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.borrow = 0
}

// noCopy triggers `go vet -copylocks` on guard copies.
// Zero-sized; contributes nothing to guard footprints.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
