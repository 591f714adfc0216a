// Package bitplane orders a reference mapping's keys into bit positions and
// packs selection membership into alphabet symbols, six keys per symbol.
package bitplane

import (
	"encoding/binary"
	"errors"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
	"github.com/dchest/siphash"
)

// ErrOverflow reports a packed group that reaches past the last key of a plane.
var ErrOverflow = errors.New("optpack: packed group exceeds reference mapping")

// fingerprint key; fixed so fingerprints are stable across processes.
var fpKey = [16]byte{'o', 'p', 't', 'p', 'a', 'c', 'k', '/', 'b', 'i', 't', 'p', 'l', 'a', 'n', 'e'}

// Source is any ordered collection of (key, value) pairs.
// At must be valid for 0 <= i < Len() and return the same pair on every call.
type Source interface {
	Len() int
	At(i int) (key, value string)
}

// Plane is the compiled, immutable form of a Source.
type Plane struct {
	keys   []string
	values []string
	byKey  map[string]int
	known  map[string]struct{}
	fp     uint64
}

// Compile snapshots src into a Plane. A nil src compiles to an empty Plane.
func Compile(src Source) *Plane {
	if p, ok := src.(*Plane); ok {
		return p
	}
	n := 0
	if src != nil {
		n = src.Len()
	}
	p := &Plane{
		keys:   make([]string, n),
		values: make([]string, n),
		byKey:  make(map[string]int, n),
		known:  make(map[string]struct{}, n),
	}
	h := siphash.New(fpKey[:])
	var lenBuf [binary.MaxVarintLen64]byte
	for i := 0; i < n; i++ {
		k, v := src.At(i)
		p.keys[i] = k
		p.values[i] = v
		if _, dup := p.byKey[k]; !dup {
			p.byKey[k] = i
		}
		p.known[v] = struct{}{}

		for _, s := range [2]string{k, v} {
			w := binary.PutUvarint(lenBuf[:], uint64(len(s)))
			_, _ = h.Write(lenBuf[:w])
			_, _ = h.Write([]byte(s))
		}
	}
	p.fp = h.Sum64()
	return p
}

// Len returns the number of keys, i.e. the bit vector length.
func (p *Plane) Len() int { return len(p.keys) }

// At implements Source so a Plane can be passed wherever a mapping is expected.
func (p *Plane) At(i int) (string, string) { return p.keys[i], p.values[i] }

// Keys returns the keys in canonical order.
func (p *Plane) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// ValueOf returns the value stored under key.
func (p *Plane) ValueOf(key string) (string, bool) {
	i, ok := p.byKey[key]
	if !ok {
		return "", false
	}
	return p.values[i], true
}

// ValueAt returns the value at canonical position i.
func (p *Plane) ValueAt(i int) string { return p.values[i] }

// Contains reports whether value appears anywhere among the plane's values.
func (p *Plane) Contains(value string) bool {
	_, ok := p.known[value]
	return ok
}

// Groups returns the packed segment length for this plane.
func (p *Plane) Groups() int {
	return (len(p.keys) + alphabet.GroupWidth - 1) / alphabet.GroupWidth
}

// RealBits returns how many bits of group g map onto keys. A result <= 0
// means group g lies entirely past the end of the plane.
func (p *Plane) RealBits(g int) int {
	remaining := len(p.keys) - g*alphabet.GroupWidth
	if remaining > alphabet.GroupWidth {
		return alphabet.GroupWidth
	}
	return remaining
}

// Fingerprint is a SipHash-2-4 digest of the ordered key/value list. Two
// planes with equal fingerprints assign the same bit to the same value.
func (p *Plane) Fingerprint() uint64 { return p.fp }
