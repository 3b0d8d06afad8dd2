package layout

import (
	"encoding/binary"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// splitResult is one memoized (segments, spacers) pair.
type splitResult struct {
	segments []Rect
	spacers  []Rect
}

// Cache memoizes split results by input fingerprint. Beyond amortizing the
// solver cost across redraws, it pins down the output for inputs the solver
// could legally resolve multiple ways, so an unchanged layout never shifts
// between frames. Safe for concurrent use; the solver itself takes no locks.
//
// A positive capacity bounds the cache with least-recently-used eviction. A
// non-positive capacity grows without bound, which is acceptable for
// applications with a small set of distinct layouts but is unbounded memory
// for anything that splits ever-changing areas.
type Cache struct {
	mu      sync.Mutex
	lru     *lru.Cache[uint64, splitResult]
	entries map[uint64]splitResult
}

// NewCache creates a cache with the given capacity. Non-positive capacities
// create an unbounded cache.
func NewCache(capacity int) *Cache {
	if capacity > 0 {
		// lru.New errors only on non-positive sizes.
		if l, err := lru.New[uint64, splitResult](capacity); err == nil {
			return &Cache{lru: l}
		}
	}
	return &Cache{entries: make(map[uint64]splitResult)}
}

// Get returns the memoized result for the fingerprint, if present. The
// returned slices are copies; callers cannot alias cache memory.
func (c *Cache) Get(fp uint64) (segments, spacers []Rect, ok bool) {
	var res splitResult
	if c.lru != nil {
		res, ok = c.lru.Get(fp)
	} else {
		c.mu.Lock()
		res, ok = c.entries[fp]
		c.mu.Unlock()
	}
	if !ok {
		return nil, nil, false
	}
	return slices.Clone(res.segments), slices.Clone(res.spacers), true
}

// Put memoizes a result for the fingerprint, evicting the least-recently-used
// entry if the cache is bounded and full. The slices are copied in.
func (c *Cache) Put(fp uint64, segments, spacers []Rect) {
	res := splitResult{
		segments: slices.Clone(segments),
		spacers:  slices.Clone(spacers),
	}
	if c.lru != nil {
		c.lru.Add(fp, res)
		return
	}
	c.mu.Lock()
	c.entries[fp] = res
	c.mu.Unlock()
}

// Len returns the number of memoized results.
func (c *Cache) Len() int {
	if c.lru != nil {
		return c.lru.Len()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every memoized result.
func (c *Cache) Purge() {
	if c.lru != nil {
		c.lru.Purge()
		return
	}
	c.mu.Lock()
	c.entries = make(map[uint64]splitResult)
	c.mu.Unlock()
}

// defaultCache backs Split. It starts unbounded; InitCache bounds it.
var defaultCache atomic.Pointer[Cache]

func activeCache() *Cache {
	if c := defaultCache.Load(); c != nil {
		return c
	}
	c := NewCache(0)
	if defaultCache.CompareAndSwap(nil, c) {
		return c
	}
	return defaultCache.Load()
}

// InitCache replaces the process-wide cache behind Split with a bounded one
// of the given capacity. Call it once at startup, before splitting from
// multiple goroutines. Non-positive capacities are ignored, leaving the
// unbounded default in place.
func InitCache(capacity int) {
	if capacity <= 0 {
		return
	}
	defaultCache.Store(NewCache(capacity))
}

// SplitCached is Split against a caller-owned cache instead of the
// process-wide one.
func SplitCached(c *Cache, area Rect, d Direction, spec Spec) (segments, spacers []Rect) {
	if c == nil {
		return splitUncached(area, d, spec)
	}
	fp := Fingerprint(area, d, spec)
	if segments, spacers, ok := c.Get(fp); ok {
		return segments, spacers
	}
	segments, spacers = splitUncached(area, d, spec)
	c.Put(fp, segments, spacers)
	return segments, spacers
}

// Fingerprint computes a structural hash of one split request. Two requests
// with identical area, direction, constraints, policy, spacing, and margin
// always produce the same fingerprint.
func Fingerprint(area Rect, d Direction, spec Spec) uint64 {
	var h xxhash.Digest
	h.Reset()

	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	writeInt(area.X)
	writeInt(area.Y)
	writeInt(area.Width)
	writeInt(area.Height)
	writeInt(int(d))
	writeInt(int(spec.Justify))
	writeInt(spec.Spacing.Amount())
	writeInt(spec.Margin.Top)
	writeInt(spec.Margin.Right)
	writeInt(spec.Margin.Bottom)
	writeInt(spec.Margin.Left)
	writeInt(len(spec.Constraints))
	for _, c := range spec.Constraints {
		writeInt(int(c.kind))
		writeInt(c.a)
		writeInt(c.b)
	}
	return h.Sum64()
}
