package stc

// Borrow tracker states, stored in Cell.borrow:
//
//	 0   free
//	 n>0 n outstanding shared borrows
//	-1   one outstanding exclusive borrow
//
// The field is a plain int32. No atomics: by the Context contract there is
// no concurrent execution to synchronize against, and that absence is what
// makes the cell cheaper than a mutex or a RWMutex.
const exclusive = -1

// Cell wraps a value with a dynamic borrow tracker, gated by a [Context].
//
// A Cell is safe to declare as package-level state despite holding plainly
// mutable interior fields, because every access path requires presenting a
// Context — whose construction is where the no-concurrency proof was made.
//
// NewCell performs no setup beyond storing the value, so
//
//	var gTicks = stc.NewCell(int64(0))
//
// is a pure static initialization. The Cell adds exactly one int32 to the
// footprint of the wrapped value; the Context gate contributes zero bytes.
//
// A Cell must not be copied while borrows are outstanding.
type Cell[T any] struct {
	value  T
	borrow int32
}

// NewCell returns a cell holding v. No borrow-state side effects.
func NewCell[T any](v T) Cell[T] {
	return Cell[T]{value: v}
}

// Borrow acquires a shared borrow and returns its guard.
//
// Any number of shared borrows may coexist. Borrow panics if an exclusive
// borrow is outstanding — that is a logic bug in borrow scoping, not a
// recoverable condition — and panics if ctx is nil or ctx.Assert fails.
//
// Release the guard (typically with defer) when done:
//
//	g := cell.Borrow(ctx)
//	defer g.Release()
//	v := g.Get()
func (c *Cell[T]) Borrow(ctx Context) Ref[T] {
	assertContext(ctx)
	if c.borrow == exclusive {
		panic("stc: already mutably borrowed")
	}
	c.borrow++
	return Ref[T]{cell: c}
}

// BorrowMut acquires the exclusive borrow and returns its guard.
//
// Panics if any borrow, shared or exclusive, is outstanding, and panics if
// ctx is nil or ctx.Assert fails. The guard's Set mutates the wrapped value
// in place; the mutation is visible to every subsequent borrow.
func (c *Cell[T]) BorrowMut(ctx Context) RefMut[T] {
	assertContext(ctx)
	if c.borrow != 0 {
		panic("stc: already borrowed")
	}
	c.borrow = exclusive
	return RefMut[T]{cell: c}
}

func assertContext(ctx Context) {
	if ctx == nil {
		panic("stc: nil context")
	}
	ctx.Assert()
}
