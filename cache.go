package textdraw

import "github.com/gogpu/textdraw/shape"

// glyphKey uniquely identifies a cached glyph artifact. The height component
// is the actual rasterized pixel height, not the caller's requested point
// size: two requested sizes that rasterize to the same pixel height share a
// bucket. This is a known collision, kept deliberately.
type glyphKey struct {
	// height is the rendered pixel height of the glyph.
	height int

	// colour partitions entries by fill colour (all four channels).
	colour Colour

	// glyph is the opaque glyph identity from the layout engine.
	glyph shape.GlyphID
}

// glyphEntry holds one cached artifact together with the colourized pixels it
// was built from. Both are owned by the cache: the pixels are never mutated
// after insertion and the surface is cloned out, never handed out directly.
type glyphEntry[T any] struct {
	pixels  []byte
	surface T
}

// CacheStats reports cumulative glyph cache counters for one Renderer.
type CacheStats struct {
	// Hits is the number of lookups answered from the cache.
	Hits uint64

	// Misses is the number of lookups that rasterized a new glyph.
	Misses uint64
}

// glyphCache memoizes colourized glyph artifacts for one Renderer. It is a
// single flat map over the composite (height, colour, glyph) key with
// get-or-create population. The cache grows monotonically: there is no
// eviction and no entry is ever removed individually. It is not safe for
// concurrent mutation; the owning Renderer provides the exclusion.
type glyphCache[T Surface[T]] struct {
	entries map[glyphKey]*glyphEntry[T]
	stats   CacheStats
}

func newGlyphCache[T Surface[T]]() glyphCache[T] {
	return glyphCache[T]{entries: make(map[glyphKey]*glyphEntry[T])}
}

// getOrCreate returns a clone of the cached artifact for key, invoking build
// exactly once to populate a missing entry. build runs the full
// rasterize-colourize-construct pipeline and transfers ownership of both the
// pixel buffer and the artifact into the cache. A build error is propagated
// and nothing is stored.
func (c *glyphCache[T]) getOrCreate(key glyphKey, build func() ([]byte, T, error)) (T, error) {
	if entry, ok := c.entries[key]; ok {
		c.stats.Hits++
		return entry.surface.Clone(), nil
	}

	pixels, surface, err := build()
	if err != nil {
		var zero T
		return zero, err
	}

	c.entries[key] = &glyphEntry[T]{pixels: pixels, surface: surface}
	c.stats.Misses++
	return surface.Clone(), nil
}

// len returns the number of cached entries.
func (c *glyphCache[T]) len() int {
	return len(c.entries)
}
