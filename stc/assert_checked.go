// Copyright 2025 The singlethread Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !stc_unchecked

// Default build: Init tokens record their owning goroutine and every borrow
// verifies the caller is that goroutine. The check costs one runtime.Stack
// header parse (~1.5µs) per borrow, which is acceptable for phase-setup
// code; hot paths that have proven the invariant can build with
// -tags stc_unchecked to compile it out.

package stc

import "github.com/kolkov/singlethread/internal/stc/goid"

// affinityChecks reports whether goroutine-affinity verification is
// compiled in. Constant so the unchecked branch folds away entirely.
const affinityChecks = true

func currentGoroutine() int64 {
	return goid.Current()
}
