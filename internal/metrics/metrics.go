// Package metrics provides the Recorder interface used by the codec, a noop
// implementation and an in-memory counting implementation.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Operation names passed to a Recorder.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// Recorder receives operational measurements from a Codec.
type Recorder interface {
	RecordHit(op string)
	RecordMiss(op string)
	RecordLatency(op string, d time.Duration)
	RecordError(op string)
	RecordUncompressed(count int)
}

// Noop discards all measurements.
type Noop struct{}

func (Noop) RecordHit(op string)                      {}
func (Noop) RecordMiss(op string)                     {}
func (Noop) RecordLatency(op string, d time.Duration) {}
func (Noop) RecordError(op string)                    {}
func (Noop) RecordUncompressed(count int)             {}

// Counters tallies measurements in memory. The zero value is ready to use.
type Counters struct {
	Uncompressed atomic.Int64

	mu      sync.Mutex
	hits    map[string]int64
	misses  map[string]int64
	errors  map[string]int64
	latency map[string]time.Duration
	calls   map[string]int64
}

func bump[V int64 | time.Duration](m *map[string]V, op string, by V) {
	if *m == nil {
		*m = make(map[string]V)
	}
	(*m)[op] += by
}

func (c *Counters) RecordHit(op string) {
	c.mu.Lock()
	bump(&c.hits, op, 1)
	c.mu.Unlock()
}

func (c *Counters) RecordMiss(op string) {
	c.mu.Lock()
	bump(&c.misses, op, 1)
	c.mu.Unlock()
}

func (c *Counters) RecordError(op string) {
	c.mu.Lock()
	bump(&c.errors, op, 1)
	c.mu.Unlock()
}

func (c *Counters) RecordLatency(op string, d time.Duration) {
	c.mu.Lock()
	bump(&c.latency, op, d)
	bump(&c.calls, op, 1)
	c.mu.Unlock()
}

func (c *Counters) RecordUncompressed(count int) {
	c.Uncompressed.Add(int64(count))
}

// Snapshot is a point-in-time copy of one operation's counters.
type Snapshot struct {
	Hits         int64
	Misses       int64
	Errors       int64
	Calls        int64
	TotalLatency time.Duration
}

// Get returns the counters recorded for op.
func (c *Counters) Get(op string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Hits:         c.hits[op],
		Misses:       c.misses[op],
		Errors:       c.errors[op],
		Calls:        c.calls[op],
		TotalLatency: c.latency[op],
	}
}
