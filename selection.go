// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// selection.go — Selection, the set of option values that Encode consumes
// and Decode produces.

package optpack

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Selection is a set of option values. A nil Selection is a valid empty set
// for reading; use NewSelection or make before calling Add.
type Selection map[string]struct{}

// NewSelection returns a Selection holding values; duplicates collapse.
func NewSelection(values ...string) Selection {
	s := make(Selection, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Selection) Add(v string) { s[v] = struct{}{} }

// Has reports whether v is in the set.
func (s Selection) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values.
func (s Selection) Len() int { return len(s) }

// Values returns the members in ascending order.
func (s Selection) Values() []string {
	out := maps.Keys(s)
	slices.Sort(out)
	return out
}

// Equal reports set equality.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy; cloning nil yields an empty, non-nil set.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	maps.Copy(out, s)
	return out
}
