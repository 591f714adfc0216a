// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// mapping.go — the reference mapping shapes accepted by Encode and Decode.
// Every shape reduces to an ordered list of (key, value) pairs; a key's
// position in that list is its bit position in the compact string.

package optpack

import (
	"strconv"

	"github.com/AndrewDonelson/optpack/internal/bitplane"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Mapping is an ordered reference mapping. At(i) must return the same pair
// for the lifetime of every compact string produced against the mapping;
// new options may only be appended.
type Mapping = bitplane.Source

// ────────────────────────────────────────────────────────────────────────────
// List
// ────────────────────────────────────────────────────────────────────────────

// List is a plain ordered option list; the index is both key and position.
type List []string

func (l List) Len() int { return len(l) }

func (l List) At(i int) (string, string) { return strconv.Itoa(i), l[i] }

// ────────────────────────────────────────────────────────────────────────────
// Ordered
// ────────────────────────────────────────────────────────────────────────────

// Pair is one (key, value) entry of an Ordered mapping.
type Pair struct {
	Key   string
	Value string
}

// Ordered is a string-keyed mapping whose canonical order is insertion order.
type Ordered struct {
	pairs []Pair
	index map[string]int
}

// NewOrdered builds an Ordered mapping from pairs, applying Set in order.
func NewOrdered(pairs ...Pair) *Ordered {
	o := &Ordered{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return o
}

// Set appends key, or replaces its value in place if key already exists.
func (o *Ordered) Set(key, value string) *Ordered {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.pairs[i].Value = value
		return o
	}
	o.index[key] = len(o.pairs)
	o.pairs = append(o.pairs, Pair{Key: key, Value: value})
	return o
}

// Get returns the value for key.
func (o *Ordered) Get(key string) (string, bool) {
	i, ok := o.index[key]
	if !ok {
		return "", false
	}
	return o.pairs[i].Value, true
}

func (o *Ordered) Len() int { return len(o.pairs) }

func (o *Ordered) At(i int) (string, string) { return o.pairs[i].Key, o.pairs[i].Value }

// ────────────────────────────────────────────────────────────────────────────
// Go maps
// ────────────────────────────────────────────────────────────────────────────

// StringMap adapts a map[string]string. Go maps have no insertion order, so
// keys are ordered lexicographically; use Ordered when declaration order
// matters. Sorting happens on every Len/At pair, so pass a StringMap through
// Compile before reusing it.
type StringMap map[string]string

func (m StringMap) sortedKeys() []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Ordered converts m into an Ordered mapping in canonical order.
func (m StringMap) Ordered() *Ordered {
	o := &Ordered{index: make(map[string]int, len(m))}
	for _, k := range m.sortedKeys() {
		o.Set(k, m[k])
	}
	return o
}

func (m StringMap) Len() int { return len(m) }

func (m StringMap) At(i int) (string, string) {
	k := m.sortedKeys()[i]
	return k, m[k]
}

// IntMap adapts a map[int]string, ordered by ascending key.
type IntMap map[int]string

func (m IntMap) sortedKeys() []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Ordered converts m into an Ordered mapping in canonical order.
func (m IntMap) Ordered() *Ordered {
	o := &Ordered{index: make(map[string]int, len(m))}
	for _, k := range m.sortedKeys() {
		o.Set(strconv.Itoa(k), m[k])
	}
	return o
}

func (m IntMap) Len() int { return len(m) }

func (m IntMap) At(i int) (string, string) {
	k := m.sortedKeys()[i]
	return strconv.Itoa(k), m[k]
}

// normalize turns the Go map shapes into an Ordered list once so that
// compiling does not sort per entry.
func normalize(m Mapping) Mapping {
	switch v := m.(type) {
	case StringMap:
		return v.Ordered()
	case IntMap:
		return v.Ordered()
	}
	return m
}
