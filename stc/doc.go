// Package stc provides capability-gated, borrow-checked access to shared
// mutable state during single-threaded execution phases.
//
// The package targets code that runs before any concurrency exists: early
// boot of a kernel before interrupts and SMP are enabled, or the setup
// phase of a single-threaded program. In that window, package-level mutable
// state can be read and written freely — but nothing stops a later refactor
// from spawning a goroutine too early and turning every such access into a
// data race. stc converts that temporal invariant ("no concurrency yet")
// into a value the type system can see.
//
// # Quick Start
//
//	var bootArgs = stc.NewCell("")
//
//	func main() {
//		ctx := stc.Enter() // caller asserts: no other goroutines exist
//
//		g := bootArgs.BorrowMut(ctx)
//		g.Set(os.Args[1])
//		g.Release()
//
//		r := bootArgs.Borrow(ctx)
//		args := r.Get()
//		r.Release()
//
//		ctx.Leave() // single-threaded phase ends here
//		// ... start goroutines, servers, signal handlers ...
//		_ = args
//	}
//
// # How It Works
//
// Three pieces cooperate:
//
//   - [Context] is a capability: a value whose existence asserts that the
//     current execution has no concurrency. [Enter] constructs the
//     canonical [Init] token; the caller takes on the proof obligation,
//     exactly as with an unsafe block.
//   - [Cell] wraps a value together with a dynamic borrow tracker (a plain,
//     non-atomic shared-count/exclusive-flag). It is safe to declare at
//     package level because every access requires presenting a Context.
//   - [Ref] and [RefMut] are scope-bound guards returned by [Cell.Borrow]
//     and [Cell.BorrowMut]. Releasing a guard restores the tracker; use
//     after release panics.
//
// Because the cell is only ever touched while the single-threaded invariant
// holds, it needs no mutex, no atomics, and no memory barriers. The borrow
// tracker enforces the usual exclusivity rule dynamically: any number of
// shared borrows, or exactly one exclusive borrow, never both. Violations
// are logic bugs and panic rather than returning an error.
//
// # Safety
//
// Calling [Enter] is the single point where correctness rests on the
// caller: no other goroutines, signal handlers, or runtime callbacks that
// touch the same cells may exist or be started while the token (or any
// guard obtained through it) is in use. Call [Init.Leave] at the end of the
// phase; borrows through a left token panic.
//
// In default builds the token additionally records its owning goroutine at
// [Enter] and every borrow verifies the caller is that goroutine, so the
// most common violation — a goroutine spawned too early reaching into boot
// state — panics deterministically instead of racing. Build with the
// stc_unchecked tag to compile the verification out; borrows then cost one
// interface call and one integer check.
//
// The cmd/stcheck tool audits a module for `go` statements and async
// callback registrations so the start of concurrency can be reviewed
// against the Enter/Leave window.
package stc
