// Package testkit holds the assertions and seam helpers shared by package tests
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// Tolerance is the float slack MustApprox allows. Scores are sums of a few
// weights so anything past 1e-9 is a real difference
const Tolerance = 1e-9

// seams serializes tests that replace package level variables
var seams sync.Mutex

// Swap points *target at v until the test and its subtests finish
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	prev := *target
	t.Cleanup(func() { *target = prev })
	*target = v
}

// Serial holds the seam lock until the test ends. Call it before Swap in any
// test that may run alongside another one touching the same variable
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// MustPanic fails unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

// MustNotPanic fails if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails unless s contains sub. Long outputs are saved to a temp file
// so the failure message stays readable
func MustContain(t testing.TB, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		return
	}
	if len(s) <= 200 {
		t.Fatalf("%q does not contain %q", s, sub)
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(s), 0o600)
	t.Fatalf("output does not contain %q, full output in %s", sub, dump)
}

// MustApprox fails unless got is within Tolerance of want
func MustApprox(t testing.TB, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > Tolerance {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
}
