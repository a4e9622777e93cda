package stc_test

import (
	"fmt"

	"github.com/kolkov/singlethread/stc"
)

// Package-level mutable state, gated by the cell.
var gBootValue = stc.NewCell(5)

// Example demonstrates the full borrow discipline on a static cell.
func Example() {
	// The caller asserts: no other goroutines exist yet.
	ctx := stc.Enter()

	{
		g := gBootValue.Borrow(ctx)
		fmt.Println(g.Get())
		g.Release()
	}
	{
		g := gBootValue.BorrowMut(ctx)
		g.Set(6)
		g.Release()
	}
	{
		g := gBootValue.Borrow(ctx)
		fmt.Println(g.Get())
		g.Release()
	}

	ctx.Leave()

	// Output:
	// 5
	// 6
}

// Example_sharedBorrows shows that shared borrows coexist.
func Example_sharedBorrows() {
	cell := stc.NewCell("boot")
	ctx := stc.Enter()
	defer ctx.Leave()

	a := cell.Borrow(ctx)
	b := cell.Borrow(ctx) // fine: both are read-only
	fmt.Println(a.Get(), b.Get())
	b.Release()
	a.Release()

	// Output:
	// boot boot
}
