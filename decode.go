// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// decode.go — the decode path: unpack symbol groups against the reference
// mapping, stop at the first separator and read the escaped values after it.

package optpack

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
	"github.com/AndrewDonelson/optpack/internal/bitplane"
	"github.com/AndrewDonelson/optpack/internal/metrics"
)

// Decode unpacks s against m. Symbol g carries keys 6g..6g+5, most
// significant bit first; only the first min(6, m.Len()-6g) bits map onto
// keys. Everything after the first separator is a separator-delimited list
// of escaped values, each added verbatim, so "W," carries the empty value.
//
// Decode fails with ErrInvalidCharacter for a byte outside the alphabet and
// with ErrInconsistentMapping when s addresses keys m does not have, which
// means s was produced against a different or longer mapping. Such a string
// is rejected rather than truncated: a consumer holding an older, shorter
// mapping cannot decode strings that select keys added after it.
func (c *Codec) Decode(m Mapping, s string) (Selection, error) {
	start := c.clock.Now()
	c.stats.Decodes.Add(1)
	out, err := c.decodeMemo(m, s)
	c.observe(metrics.OpDecode, start, err)
	return out, err
}

// DecodeAny accepts a string, []byte or a non-nil fmt.Stringer. Any other
// input, nil or a typed nil pointer included, yields an empty Selection and
// no error.
func (c *Codec) DecodeAny(m Mapping, v any) (Selection, error) {
	switch s := v.(type) {
	case string:
		return c.Decode(m, s)
	case []byte:
		return c.Decode(m, string(s))
	case fmt.Stringer:
		if !isNil(s) {
			return c.Decode(m, s.String())
		}
	}
	c.logger.Debug("compact input is not a string; returning empty selection", "type", fmt.Sprintf("%T", v))
	return Selection{}, nil
}

func (c *Codec) decodeMemo(m Mapping, s string) (Selection, error) {
	p, err := compile(m)
	if err != nil {
		return nil, err
	}
	if c.memo == nil {
		return c.decode(p, s)
	}

	key := fingerprintKey(p) + s
	if v, ok := c.memo.Get(key); ok {
		c.metrics.RecordHit(metrics.OpDecode)
		return v.(Selection).Clone(), nil
	}
	c.metrics.RecordMiss(metrics.OpDecode)
	out, err := c.decode(p, s)
	if err != nil {
		return nil, err
	}
	c.memo.Set(key, out.Clone())
	return out, nil
}

func (c *Codec) decode(p *bitplane.Plane, s string) (Selection, error) {
	out := make(Selection)
	for g := 0; g < len(s); g++ {
		ch := s[g]
		if ch == c.cfg.Separator {
			c.readEscapes(s[g+1:], out)
			return out, nil
		}
		v, err := alphabet.Value(ch)
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d", err, g)
		}
		if err := c.packer.Unpack(p, g, v, out.Add); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInconsistentMapping, err)
		}
	}
	return out, nil
}

// readEscapes adds every separator-delimited entry of rest to out.
func (c *Codec) readEscapes(rest string, out Selection) {
	for _, v := range strings.Split(rest, string(c.cfg.Separator)) {
		out.Add(v)
	}
}

// isNil reports whether v holds a nil pointer, map, slice, func, chan or
// interface.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return v == nil
}
