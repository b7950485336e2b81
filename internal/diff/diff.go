// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff classifies differences between two color-scheme
// attribute mappings.
package diff

import (
	"fmt"
	"sort"

	"github.com/jeranaias/schemediff/internal/scheme"
)

// =============================================================================
// DIFF TYPES
// =============================================================================

// Kind classifies one diff entry.
type Kind int

const (
	// KindChanged marks a key present on both sides with unequal values
	KindChanged Kind = iota
	// KindAdded marks a key present only in the candidate
	KindAdded
	// KindRemoved marks a key present only in the baseline
	KindRemoved
)

// String returns the string representation of a diff kind.
func (k Kind) String() string {
	switch k {
	case KindChanged:
		return "changed"
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Prefix returns the marker character for this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindChanged:
		return "~"
	case KindAdded:
		return "+"
	case KindRemoved:
		return "-"
	default:
		return " "
	}
}

// =============================================================================
// DIFF ENTRY
// =============================================================================

// Entry is one classified attribute. Candidate is nil for removed
// keys, Baseline is nil for added keys; both are non-nil for changed
// keys.
type Entry struct {
	Key       string
	Candidate scheme.Properties
	Baseline  scheme.Properties
}

// =============================================================================
// DIFF RESULT
// =============================================================================

// Result holds the classified entries, each slice sorted by key.
// Keys equal on both sides appear in none of the three.
type Result struct {
	Changed []Entry
	Removed []Entry
	Added   []Entry
}

// Empty reports whether the two inputs were structurally equal.
func (r Result) Empty() bool {
	return len(r.Changed) == 0 && len(r.Removed) == 0 && len(r.Added) == 0
}

// Summary returns a human-readable count line.
func (r Result) Summary() string {
	if r.Empty() {
		return "No differences"
	}
	return fmt.Sprintf("%d changed, %d added, %d removed",
		len(r.Changed), len(r.Added), len(r.Removed))
}

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// Compare classifies every attribute key in the union of both mappings
// as changed, removed, or added. It is a pure function of its inputs;
// equal inputs yield an empty Result.
func Compare(baseline, candidate map[string]scheme.Properties) Result {
	keys := make(map[string]struct{}, len(baseline)+len(candidate))
	for k := range baseline {
		keys[k] = struct{}{}
	}
	for k := range candidate {
		keys[k] = struct{}{}
	}

	var result Result
	for k := range keys {
		base, inBase := baseline[k]
		cand, inCand := candidate[k]

		switch {
		case inBase && inCand:
			if !base.Equal(cand) {
				result.Changed = append(result.Changed, Entry{Key: k, Candidate: cand, Baseline: base})
			}
		case inBase:
			result.Removed = append(result.Removed, Entry{Key: k, Baseline: base})
		default:
			result.Added = append(result.Added, Entry{Key: k, Candidate: cand})
		}
	}

	sortEntries(result.Changed)
	sortEntries(result.Removed)
	sortEntries(result.Added)
	return result
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}
