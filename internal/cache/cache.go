// Package cache provides a sharded, bounded LRU memo with lazy TTL expiry.
// It starts no goroutines: expired entries are dropped when touched or when
// their shard needs room.
package cache

import (
	"container/list"
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/optpack/internal/clock"
)

const numShards = 16

// Options configures a Store.
type Options struct {
	// MaxEntries bounds the store; it is split evenly across shards.
	MaxEntries int
	// TTL is how long an entry stays valid; zero means no expiry.
	TTL   time.Duration
	Clock clock.Clock
}

type entry struct {
	key       string
	value     any
	expiresAt time.Time
	elem      *list.Element
}

type shard struct {
	mu         sync.Mutex
	items      map[string]*entry
	lru        *list.List
	maxEntries int
}

// Store is a concurrency-safe LRU memo.
type Store struct {
	shards [numShards]*shard
	ttl    time.Duration
	clock  clock.Clock
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a Store. MaxEntries below numShards is rounded up so that
// every shard can hold at least one entry.
func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	perShard := (opts.MaxEntries + numShards - 1) / numShards
	if perShard < 1 {
		perShard = 1
	}
	s := &Store{ttl: opts.TTL, clock: opts.Clock}
	for i := range s.shards {
		s.shards[i] = &shard{
			items:      make(map[string]*entry),
			lru:        list.New(),
			maxEntries: perShard,
		}
	}
	return s
}

func (s *Store) getShard(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%numShards]
}

// Set stores value under key, evicting the least recently used entry of the
// key's shard when it is full.
func (s *Store) Set(key string, value any) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if e, ok := sh.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		sh.lru.MoveToFront(e.elem)
		return
	}
	for len(sh.items) >= sh.maxEntries {
		sh.removeEntry(sh.lru.Back().Value.(*entry))
	}
	e := &entry{key: key, value: value, expiresAt: expiresAt}
	e.elem = sh.lru.PushFront(e)
	sh.items[key] = e
}

// Get returns the value stored under key if present and unexpired.
func (s *Store) Get(key string) (any, bool) {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e, ok := sh.items[key]
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	if !e.expiresAt.IsZero() && s.clock.Now().After(e.expiresAt) {
		sh.removeEntry(e)
		s.misses.Add(1)
		return nil, false
	}
	sh.lru.MoveToFront(e.elem)
	s.hits.Add(1)
	return e.value, true
}

// Delete removes key.
func (s *Store) Delete(key string) {
	sh := s.getShard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if e, ok := sh.items[key]; ok {
		sh.removeEntry(e)
	}
}

// Flush removes every entry.
func (s *Store) Flush() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.items = make(map[string]*entry)
		sh.lru.Init()
		sh.mu.Unlock()
	}
}

// FlushPrefix removes every entry whose key starts with prefix.
func (s *Store) FlushPrefix(prefix string) {
	for _, sh := range s.shards {
		sh.mu.Lock()
		for k, e := range sh.items {
			if strings.HasPrefix(k, prefix) {
				sh.removeEntry(e)
			}
		}
		sh.mu.Unlock()
	}
}

// Stats holds hit/miss/entry counts.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// Stats returns current statistics.
func (s *Store) Stats() Stats {
	var total int64
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += int64(len(sh.items))
		sh.mu.Unlock()
	}
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: total}
}

func (sh *shard) removeEntry(e *entry) {
	delete(sh.items, e.key)
	sh.lru.Remove(e.elem)
}
