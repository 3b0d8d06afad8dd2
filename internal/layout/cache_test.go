package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	c := NewCache(8)
	segments := []Rect{NewRect(0, 0, 3, 1)}
	spacers := []Rect{NewRect(3, 0, 7, 1)}

	_, _, ok := c.Get(42)
	assert.False(t, ok, "empty cache must miss")

	c.Put(42, segments, spacers)
	gotSegments, gotSpacers, ok := c.Get(42)
	require.True(t, ok)
	assert.Equal(t, segments, gotSegments)
	assert.Equal(t, spacers, gotSpacers)
}

func TestCache_CopiesOnGetAndPut(t *testing.T) {
	c := NewCache(8)
	segments := []Rect{NewRect(0, 0, 3, 1)}
	c.Put(1, segments, nil)

	// Mutating the caller's slice after Put must not poison the cache.
	segments[0].Width = 99
	got, _, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 3, got[0].Width)

	// Mutating a Get result must not poison later Gets.
	got[0].Width = 99
	again, _, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 3, again[0].Width)
}

func TestCache_LRUEviction(t *testing.T) {
	c := NewCache(2)
	c.Put(1, []Rect{NewRect(0, 0, 1, 1)}, nil)
	c.Put(2, []Rect{NewRect(0, 0, 2, 1)}, nil)

	// Touch 1 so 2 becomes the least recently used.
	_, _, ok := c.Get(1)
	require.True(t, ok)

	c.Put(3, []Rect{NewRect(0, 0, 3, 1)}, nil)
	assert.Equal(t, 2, c.Len())

	_, _, ok = c.Get(2)
	assert.False(t, ok, "least recently used entry should be evicted")
	_, _, ok = c.Get(1)
	assert.True(t, ok)
	_, _, ok = c.Get(3)
	assert.True(t, ok)
}

func TestCache_UnboundedFallback(t *testing.T) {
	c := NewCache(0)
	for fp := uint64(0); fp < 100; fp++ {
		c.Put(fp, []Rect{NewRect(int(fp), 0, 1, 1)}, nil)
	}
	assert.Equal(t, 100, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestFingerprint(t *testing.T) {
	area := NewRect(0, 0, 80, 24)
	spec := Spec{
		Constraints: []Constraint{Fixed(10), Share(1)},
		Justify:     JustifyStart,
		Spacing:     Space(1),
	}

	assert.Equal(t,
		Fingerprint(area, Horizontal, spec),
		Fingerprint(area, Horizontal, spec),
		"identical inputs must fingerprint identically")

	variants := map[string]func() uint64{
		"area":      func() uint64 { return Fingerprint(NewRect(0, 0, 81, 24), Horizontal, spec) },
		"direction": func() uint64 { return Fingerprint(area, Vertical, spec) },
		"constraints": func() uint64 {
			s := spec
			s.Constraints = []Constraint{Fixed(11), Share(1)}
			return Fingerprint(area, Horizontal, s)
		},
		"constraint kind": func() uint64 {
			s := spec
			s.Constraints = []Constraint{AtLeast(10), Share(1)}
			return Fingerprint(area, Horizontal, s)
		},
		"justify": func() uint64 {
			s := spec
			s.Justify = JustifyCenter
			return Fingerprint(area, Horizontal, s)
		},
		"spacing": func() uint64 {
			s := spec
			s.Spacing = Space(2)
			return Fingerprint(area, Horizontal, s)
		},
		"margin": func() uint64 {
			s := spec
			s.Margin = EdgeAll(1)
			return Fingerprint(area, Horizontal, s)
		},
	}

	base := Fingerprint(area, Horizontal, spec)
	for name, variant := range variants {
		assert.NotEqual(t, base, variant(), "changing %s must change the fingerprint", name)
	}
}

func TestSplitCached_Transparency(t *testing.T) {
	area := NewRect(0, 0, 37, 9)
	spec := Spec{
		Constraints: []Constraint{Fixed(5), AtLeast(10), Share(2)},
		Justify:     JustifySpaceAround,
		Spacing:     Space(1),
	}

	plainSegments, plainSpacers := splitUncached(area, Horizontal, spec)

	c := NewCache(4)
	coldSegments, coldSpacers := SplitCached(c, area, Horizontal, spec)
	warmSegments, warmSpacers := SplitCached(c, area, Horizontal, spec)

	assert.Equal(t, plainSegments, coldSegments, "cold cache must not change results")
	assert.Equal(t, plainSpacers, coldSpacers)
	assert.Equal(t, plainSegments, warmSegments, "warm cache must not change results")
	assert.Equal(t, plainSpacers, warmSpacers)
	assert.Equal(t, 1, c.Len())
}

func TestSplitCached_NilCache(t *testing.T) {
	area := NewRect(0, 0, 10, 1)
	spec := Spec{Constraints: []Constraint{Share(1)}}

	segments, _ := SplitCached(nil, area, Horizontal, spec)
	assert.Equal(t, []Rect{area}, segments)
}

func TestInitCache(t *testing.T) {
	// Non-positive capacities leave the active cache untouched.
	before := activeCache()
	InitCache(0)
	assert.Same(t, before, activeCache())

	InitCache(16)
	after := activeCache()
	assert.NotSame(t, before, after)

	area := NewRect(0, 0, 10, 1)
	spec := Spec{Constraints: []Constraint{Fixed(4)}}
	first, _ := Split(area, Horizontal, spec)
	second, _ := Split(area, Horizontal, spec)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, after.Len(), 1)
}
