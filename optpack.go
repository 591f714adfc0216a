// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// optpack.go — Config, the Codec entry-point, statistics, and the
// package-level Encode/Decode helpers backed by a default Codec.

package optpack

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
	"github.com/AndrewDonelson/optpack/internal/bitplane"
	"github.com/AndrewDonelson/optpack/internal/cache"
	"github.com/AndrewDonelson/optpack/internal/clock"
	"github.com/AndrewDonelson/optpack/internal/metrics"
)

// Re-export types so callers only import this package.
type MetricsRecorder = metrics.Recorder
type Clock = clock.Clock
type Method = bitplane.Method

const (
	MethodBitwise = bitplane.Bitwise // integer-shift packing (default)
	MethodString  = bitplane.String  // binary-string packing, identical output
)

// DefaultSeparator delimits the packed segment from escaped values.
const DefaultSeparator = ','

// WarnPolicy controls diagnostics for selected values missing from the
// reference mapping.
type WarnPolicy int

const (
	WarnOnUncompressed WarnPolicy = iota // log a warning listing the values
	WarnNever                            // stay silent
)

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// Config contains all Codec configuration. The zero value is usable.
type Config struct {
	// Separator delimits escaped values. Must be ASCII and outside the
	// alphabet. Zero means DefaultSeparator.
	Separator byte

	// Method selects the packing implementation for both directions.
	Method Method

	// IncludeUncompressed appends selected values that are not in the
	// reference mapping after the packed segment.
	IncludeUncompressed bool

	// Warn controls diagnostics for unmatched values.
	Warn WarnPolicy

	// DecodeCacheSize bounds the decode memo; zero disables it.
	DecodeCacheSize int
	DecodeCacheTTL  time.Duration

	// Optional overrideable components
	Clock   clock.Clock
	Metrics metrics.Recorder
	Logger  Logger
}

func (c *Config) defaults() {
	if c.Separator == 0 {
		c.Separator = DefaultSeparator
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.DecodeCacheSize > 0 && c.DecodeCacheTTL == 0 {
		c.DecodeCacheTTL = 10 * time.Minute
	}
}

func (c *Config) validate() error {
	if c.Separator >= 0x80 || alphabet.Contains(c.Separator) {
		return fmt.Errorf("%w: separator %q collides with the packed alphabet or is not ASCII", ErrInvalidConfig, c.Separator)
	}
	if _, ok := bitplane.For(c.Method); !ok {
		return fmt.Errorf("%w: unknown method %s", ErrInvalidConfig, c.Method)
	}
	if c.Warn != WarnOnUncompressed && c.Warn != WarnNever {
		return fmt.Errorf("%w: unknown warn policy %d", ErrInvalidConfig, c.Warn)
	}
	if c.DecodeCacheSize < 0 || c.DecodeCacheTTL < 0 {
		return fmt.Errorf("%w: negative decode cache size or ttl", ErrInvalidConfig)
	}
	return nil
}

// ────────────────────────────────────────────────────────────────────────────
// Stats
// ────────────────────────────────────────────────────────────────────────────

type codecStats struct {
	Encodes      atomic.Int64
	Decodes      atomic.Int64
	Errors       atomic.Int64
	Uncompressed atomic.Int64
	Dropped      atomic.Int64
}

// Stats is the snapshot returned by Codec.Stats().
type Stats struct {
	Encodes      int64
	Decodes      int64
	Errors       int64
	Uncompressed int64 // selected values missing from the mapping
	Dropped      int64 // unmatched values that could not be escaped
	Mappings     int64 // registered mappings
	MemoHits     int64
	MemoMisses   int64
	MemoEntries  int64
}

// ────────────────────────────────────────────────────────────────────────────
// Codec
// ────────────────────────────────────────────────────────────────────────────

// Codec packs selections into compact strings and back. It is safe for
// concurrent use.
type Codec struct {
	cfg      Config
	packer   bitplane.Packer
	registry *registry
	memo     *cache.Store
	stats    codecStats
	metrics  metrics.Recorder
	logger   Logger
	clock    clock.Clock
}

// New creates a Codec from cfg.
func New(cfg Config) (*Codec, error) {
	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pk, _ := bitplane.For(cfg.Method)

	c := &Codec{
		cfg:      cfg,
		packer:   pk,
		registry: newRegistry(),
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
	}
	if cfg.DecodeCacheSize > 0 {
		c.memo = cache.New(cache.Options{
			MaxEntries: cfg.DecodeCacheSize,
			TTL:        cfg.DecodeCacheTTL,
			Clock:      cfg.Clock,
		})
	}
	return c, nil
}

// Config returns the effective configuration, defaults applied.
func (c *Codec) Config() Config { return c.cfg }

// Stats returns a snapshot of operation counters.
func (c *Codec) Stats() Stats {
	s := Stats{
		Encodes:      c.stats.Encodes.Load(),
		Decodes:      c.stats.Decodes.Load(),
		Errors:       c.stats.Errors.Load(),
		Uncompressed: c.stats.Uncompressed.Load(),
		Dropped:      c.stats.Dropped.Load(),
		Mappings:     int64(c.registry.len()),
	}
	if c.memo != nil {
		ms := c.memo.Stats()
		s.MemoHits, s.MemoMisses, s.MemoEntries = ms.Hits, ms.Misses, ms.Entries
	}
	return s
}

// ResetCache drops every memoised decode result.
func (c *Codec) ResetCache() {
	if c.memo != nil {
		c.memo.Flush()
	}
}

// observe records latency and errors for one operation.
func (c *Codec) observe(op string, start time.Time, err error) {
	c.metrics.RecordLatency(op, clock.Since(c.clock, start))
	if err != nil {
		c.stats.Errors.Add(1)
		c.metrics.RecordError(op)
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Package-level helpers
// ────────────────────────────────────────────────────────────────────────────

// std backs the package-level functions. It warns through slog.Default(),
// includes no unmatched values, and keeps no memo.
var std = func() *Codec {
	c, err := New(Config{Logger: NewSlogLogger(nil)})
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the Codec used by the package-level functions.
func Default() *Codec { return std }

// Encode packs sel against m using the default Codec.
func Encode(m Mapping, sel Selection) (string, error) { return std.Encode(m, sel) }

// Decode unpacks s against m using the default Codec.
func Decode(m Mapping, s string) (Selection, error) { return std.Decode(m, s) }

// EncodeAny is Encode for loosely typed selections; see Codec.EncodeAny.
func EncodeAny(m Mapping, sel any) (string, error) { return std.EncodeAny(m, sel) }

// DecodeAny is Decode for loosely typed input; see Codec.DecodeAny.
func DecodeAny(m Mapping, v any) (Selection, error) { return std.DecodeAny(m, v) }
