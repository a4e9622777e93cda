// Copyright 2025 The singlethread Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build stc_unchecked

// stc_unchecked build: goroutine-affinity verification is compiled out and
// a borrow costs one interface call plus one integer check. Cross-goroutine
// use of a token is then unchecked undefined behavior, exactly as the
// Enter contract states.

package stc

const affinityChecks = false

func currentGoroutine() int64 {
	return 0
}
