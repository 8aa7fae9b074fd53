// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics.
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix like /scheduler to a single leading slash and no trailing slash.
// Panics if nothing is left
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// SplitCSV splits on commas, trims each part and drops blanks. Order and duplicates are kept
func SplitCSV(s string) []string {
	parts := std.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = std.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
