// Package time contains the clock seam and wire time formatting
package time

import "time"

// Now is the process clock. Tests swap it with testkit.Swap
var Now = func() time.Time { return time.Now().UTC() }

// Stamp renders t as RFC3339 in UTC, the wire format for every timestamp
func Stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Since is the elapsed time on the Now clock, truncated to whole seconds
func Since(t time.Time) time.Duration { return Now().Sub(t).Truncate(time.Second) }
