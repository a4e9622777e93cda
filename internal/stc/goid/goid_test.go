// Copyright 2025 The singlethread Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goid

import (
	"sync"
	"testing"
)

// TestCurrent_Basic tests basic goroutine ID extraction.
func TestCurrent_Basic(t *testing.T) {
	gid := Current()

	// GID should be positive (goroutine IDs start at 1).
	if gid <= 0 {
		t.Errorf("Current() returned non-positive ID: %d", gid)
	}

	// Call again - must be stable within the same goroutine.
	gid2 := Current()
	if gid != gid2 {
		t.Errorf("Current() not stable: first=%d, second=%d", gid, gid2)
	}
}

// TestCurrent_MultipleGoroutines verifies IDs are unique across goroutines.
func TestCurrent_MultipleGoroutines(t *testing.T) {
	const numGoroutines = 100

	gidChan := make(chan int64, numGoroutines)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			gid := Current()
			if gid <= 0 {
				t.Errorf("goroutine got non-positive ID: %d", gid)
				return
			}
			gidChan <- gid
		}()
	}
	wg.Wait()
	close(gidChan)

	// All collected IDs must be distinct, and distinct from the test's own.
	seen := make(map[int64]bool, numGoroutines+1)
	seen[Current()] = true
	for gid := range gidChan {
		if seen[gid] {
			t.Errorf("duplicate goroutine ID: %d", gid)
		}
		seen[gid] = true
	}
}

// TestParse tests goroutine ID parsing from stack trace headers.
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want int64
	}{
		{
			name: "typical header",
			buf:  "goroutine 123 [running]:\nmain.main()",
			want: 123,
		},
		{
			name: "goroutine one",
			buf:  "goroutine 1 [running]:",
			want: 1,
		},
		{
			name: "large id",
			buf:  "goroutine 18446744073 [running]:",
			want: 18446744073,
		},
		{
			name: "empty buffer",
			buf:  "",
			want: 0,
		},
		{
			name: "truncated prefix",
			buf:  "gorout",
			want: 0,
		},
		{
			name: "wrong prefix",
			buf:  "panic: goroutine 5",
			want: 0,
		},
		{
			name: "prefix without digits",
			buf:  "goroutine [running]:",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse([]byte(tt.buf)); got != tt.want {
				t.Errorf("parse(%q) = %d, want %d", tt.buf, got, tt.want)
			}
		})
	}
}
