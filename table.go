// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// table.go — Table, a compiled reference mapping, and the named-mapping
// registry that lets callers encode and decode by mapping name.

package optpack

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/AndrewDonelson/optpack/internal/bitplane"
)

// Table is an immutable, compiled reference mapping. Passing a *Table to
// Encode or Decode skips per-call compilation.
type Table struct {
	name  string
	plane *bitplane.Plane
}

// Compile snapshots m into a Table.
func Compile(m Mapping) (*Table, error) {
	p, err := compile(m)
	if err != nil {
		return nil, err
	}
	return &Table{plane: p}, nil
}

// compile resolves m to a plane, reusing the plane of a *Table.
func compile(m Mapping) (*bitplane.Plane, error) {
	switch v := m.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil reference mapping", ErrInvalidInput)
	case *Table:
		if v == nil {
			return nil, fmt.Errorf("%w: nil reference mapping", ErrInvalidInput)
		}
		return v.plane, nil
	case *Ordered:
		if v == nil {
			return nil, fmt.Errorf("%w: nil reference mapping", ErrInvalidInput)
		}
	case *Definition:
		if v == nil {
			return nil, fmt.Errorf("%w: nil reference mapping", ErrInvalidInput)
		}
	}
	return bitplane.Compile(normalize(m)), nil
}

// Name returns the registry name, or "" for an unregistered Table.
func (t *Table) Name() string { return t.name }

func (t *Table) Len() int { return t.plane.Len() }

func (t *Table) At(i int) (string, string) { return t.plane.At(i) }

// Keys returns the keys in canonical (bit) order.
func (t *Table) Keys() []string { return t.plane.Keys() }

// ValueOf returns the value stored under key.
func (t *Table) ValueOf(key string) (string, bool) { return t.plane.ValueOf(key) }

// Contains reports whether value is one of the mapping's values.
func (t *Table) Contains(value string) bool { return t.plane.Contains(value) }

// PackedLen returns the length of the packed segment for this mapping.
func (t *Table) PackedLen() int { return t.plane.Groups() }

// Fingerprint identifies the ordered key/value list. Two tables with equal
// fingerprints produce and accept the same compact strings.
func (t *Table) Fingerprint() uint64 { return t.plane.Fingerprint() }

func fingerprintKey(p *bitplane.Plane) string {
	return strconv.FormatUint(p.Fingerprint(), 16) + ":"
}

// ────────────────────────────────────────────────────────────────────────────
// Registry
// ────────────────────────────────────────────────────────────────────────────

type registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func newRegistry() *registry {
	return &registry{tables: make(map[string]*Table)}
}

func (r *registry) register(name string, p *bitplane.Plane) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrMappingDuplicate, name)
	}
	t := &Table{name: name, plane: p}
	r.tables[name] = t
	return t, nil
}

func (r *registry) get(name string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMappingNotFound, name)
	}
	return t, nil
}

func (r *registry) remove(name string) (*Table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[name]
	if ok {
		delete(r.tables, name)
	}
	return t, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tables))
	for name := range r.tables {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Register compiles m and stores it under name. An empty name falls back to
// the Name of a *Definition.
func (c *Codec) Register(name string, m Mapping) (*Table, error) {
	if name == "" {
		if d, ok := m.(*Definition); ok && d != nil {
			name = d.Name
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: mapping name is empty", ErrInvalidInput)
	}
	if d, ok := m.(*Definition); ok && d != nil {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	p, err := compile(m)
	if err != nil {
		return nil, err
	}
	t, err := c.registry.register(name, p)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("mapping registered", "name", name, "keys", p.Len(), "fingerprint", p.Fingerprint())
	return t, nil
}

// Unregister removes name and its memoised decodes.
func (c *Codec) Unregister(name string) bool {
	t, ok := c.registry.remove(name)
	if ok && c.memo != nil {
		c.memo.FlushPrefix(fingerprintKey(t.plane))
	}
	return ok
}

// Lookup returns the Table registered under name.
func (c *Codec) Lookup(name string) (*Table, error) { return c.registry.get(name) }

// Names lists registered mapping names in ascending order.
func (c *Codec) Names() []string { return c.registry.names() }

// EncodeNamed packs sel against the mapping registered under name.
func (c *Codec) EncodeNamed(name string, sel Selection) (string, error) {
	t, err := c.registry.get(name)
	if err != nil {
		return "", err
	}
	return c.Encode(t, sel)
}

// DecodeNamed unpacks s against the mapping registered under name.
func (c *Codec) DecodeNamed(name, s string) (Selection, error) {
	t, err := c.registry.get(name)
	if err != nil {
		return nil, err
	}
	return c.Decode(t, s)
}
