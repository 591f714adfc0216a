// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// encode.go — the encode path: bit-pack selection membership over the
// reference mapping, then append unmatched values through the escape channel.

package optpack

import (
	"fmt"
	"strings"

	"github.com/AndrewDonelson/optpack/internal/bitplane"
	"github.com/AndrewDonelson/optpack/internal/metrics"
	"golang.org/x/exp/slices"
)

// Encode packs sel against m. Bit i of the packed segment is set when the
// value at canonical position i is in sel; the segment is ceil(m.Len()/6)
// symbols long. Values of sel absent from m are reported per Config.Warn and,
// with Config.IncludeUncompressed, appended in ascending order, each preceded
// by the separator; an empty value is written as a bare separator. A nil sel
// is an empty selection.
func (c *Codec) Encode(m Mapping, sel Selection) (string, error) {
	start := c.clock.Now()
	c.stats.Encodes.Add(1)
	out, err := c.encode(m, sel)
	c.observe(metrics.OpEncode, start, err)
	return out, err
}

// EncodeAny accepts a Selection, []string, map[string]bool (true entries
// only) or map[string]struct{}. Anything else, nil included, is logged and
// reported as ErrInvalidInput with an empty result.
func (c *Codec) EncodeAny(m Mapping, sel any) (string, error) {
	var s Selection
	switch v := sel.(type) {
	case Selection:
		s = v
	case map[string]struct{}:
		s = Selection(v)
	case []string:
		s = NewSelection(v...)
	case map[string]bool:
		s = make(Selection, len(v))
		for k, on := range v {
			if on {
				s.Add(k)
			}
		}
	default:
		c.logger.Warn("selected options must be a set", "type", fmt.Sprintf("%T", sel))
		c.stats.Errors.Add(1)
		c.metrics.RecordError(metrics.OpEncode)
		return "", fmt.Errorf("%w: selection of type %T is not a set", ErrInvalidInput, sel)
	}
	return c.Encode(m, s)
}

func (c *Codec) encode(m Mapping, sel Selection) (string, error) {
	p, err := compile(m)
	if err != nil {
		return "", err
	}
	packed, err := c.packer.Pack(p, sel.Has)
	if err != nil {
		c.logger.Error("packing produced an invalid group", "method", c.packer.Method(), "err", err)
		return "", err
	}

	if !c.cfg.IncludeUncompressed && c.cfg.Warn == WarnNever {
		return packed, nil
	}
	unmatched := unmatchedValues(p, sel)
	if len(unmatched) == 0 {
		return packed, nil
	}
	c.stats.Uncompressed.Add(int64(len(unmatched)))
	c.metrics.RecordUncompressed(len(unmatched))
	if c.cfg.Warn == WarnOnUncompressed {
		c.logger.Warn("options not in the reference mapping cannot be packed",
			"values", unmatched, "included", c.cfg.IncludeUncompressed)
	}
	if !c.cfg.IncludeUncompressed {
		return packed, nil
	}

	var b strings.Builder
	b.WriteString(packed)
	for _, v := range unmatched {
		if strings.IndexByte(v, c.cfg.Separator) >= 0 {
			c.stats.Dropped.Add(1)
			c.diagnose("option cannot be escaped and was dropped", "value", v, "separator", string(c.cfg.Separator))
			continue
		}
		b.WriteByte(c.cfg.Separator)
		b.WriteString(v)
	}
	return b.String(), nil
}

// unmatchedValues returns the members of sel that are not values of p, sorted.
func unmatchedValues(p *bitplane.Plane, sel Selection) []string {
	var out []string
	for v := range sel {
		if !p.Contains(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// diagnose logs at Warn unless unmatched-value warnings are switched off.
func (c *Codec) diagnose(msg string, kv ...any) {
	if c.cfg.Warn == WarnNever {
		c.logger.Debug(msg, kv...)
		return
	}
	c.logger.Warn(msg, kv...)
}
