// Package exclude provides predicates that decide which scanned paths are left
// out of a bundle.
package exclude

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Predicate reports whether path should be excluded.
type Predicate func(path string) bool

// Built-in tokens for build output directories.
var DefaultTokens = []string{"bin", "debug"}

// Mode names accepted by ByMode.
const (
	ModeSubstring = "substring"
	ModeSegment   = "segment"
)

// Default returns the literal substring rule over DefaultTokens. It matches
// anywhere in the path, so "Cabinet/Main.go" is excluded as well.
func Default() Predicate {
	return Substring(DefaultTokens...)
}

// Substring excludes any path that contains one of tokens. Matching is
// case-sensitive and ignores path boundaries.
func Substring(tokens ...string) Predicate {
	return func(path string) bool {
		for _, tok := range tokens {
			if strings.Contains(path, tok) {
				return true
			}
		}
		return false
	}
}

// Segment excludes a path when one of its segments equals one of tokens.
func Segment(tokens ...string) Predicate {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return func(path string) bool {
		for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
			if set[seg] {
				return true
			}
		}
		return false
	}
}

// Any excludes a path when at least one of preds does. Nil predicates are
// skipped.
func Any(preds ...Predicate) Predicate {
	return func(path string) bool {
		for _, p := range preds {
			if p != nil && p(path) {
				return true
			}
		}
		return false
	}
}

// ByMode returns the built-in rule for the named mode. An empty mode selects
// ModeSubstring.
func ByMode(mode string) (Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeSubstring:
		return Substring(DefaultTokens...), nil
	case ModeSegment:
		return Segment(DefaultTokens...), nil
	default:
		return nil, fmt.Errorf("unknown exclude mode %q (want %s or %s)", mode, ModeSubstring, ModeSegment)
	}
}
