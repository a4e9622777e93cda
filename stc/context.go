package stc

import "fmt"

// Context is proof that the current execution context has no concurrency.
//
// A Context value is a capability, not a lock: presenting one to
// [Cell.Borrow] or [Cell.BorrowMut] performs no synchronization. Its job is
// to make "we are still in the single-threaded phase" an explicit parameter
// that code cannot forget to thread through.
//
// Any type may act as a Context by implementing Assert. The implementer
// takes on the same contract as [Enter]: constructing or handing out the
// value asserts that no concurrent execution contexts exist while it is in
// use. Assert panics if the phase the value represents has verifiably
// ended; implementations with no way to detect that may make it a no-op.
type Context interface {
	// Assert panics if the single-threaded phase this context represents
	// is known to have ended. Called by the cell on every borrow.
	Assert()
}

// Init is the canonical Context: a token marking a single-threaded phase
// from [Enter] to [Init.Leave].
//
// The zero value is not valid; obtain tokens from [Enter].
type Init struct {
	// owner pins the token to the goroutine that called Enter.
	// Zero when affinity checks are compiled out (stc_unchecked).
	owner int64

	// left is set by Leave. Plain bool: the token is single-threaded
	// by contract, which is the entire premise of this package.
	left bool
}

// Enter begins a single-threaded phase and returns its token.
//
// Safety: the caller asserts that no other goroutines, enabled interrupts,
// signal handlers, or runtime callbacks touching the gated cells exist, and
// that none will be started while the token or any guard derived from it is
// in use. This is not verified — checking it would require the concurrency
// machinery this primitive is designed to precede. Misuse in stc_unchecked
// builds is a data race; default builds catch cross-goroutine use at borrow
// time (see [Context]).
//
// Call [Init.Leave] when the phase ends. At most one token should be live
// at a time; the stcheck tool flags modules with multiple Enter call sites.
func Enter() *Init {
	c := &Init{}
	if affinityChecks {
		c.owner = currentGoroutine()
	}
	return c
}

// Assert implements [Context].
//
// It panics if Leave has been called, or — in default builds — if the
// calling goroutine is not the one that called Enter.
func (c *Init) Assert() {
	if c.left {
		panic("stc: context used after Leave")
	}
	if affinityChecks && c.owner != 0 {
		if g := currentGoroutine(); g != c.owner {
			panic(fmt.Sprintf("stc: context owned by goroutine %d used from goroutine %d", c.owner, g))
		}
	}
}

// Leave ends the single-threaded phase.
//
// Subsequent borrows through the token panic. Leave does not detect guards
// still outstanding at the transition; releasing borrows before Leave is
// part of the Enter contract.
func (c *Init) Leave() {
	c.left = true
}
