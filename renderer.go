package textdraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/textdraw/shape"
)

// Renderer draws strings onto surfaces of type T, memoizing rasterized and
// colourized glyphs in a private cache. T is the embedding application's
// drawable artifact type; *Pixmap is the built-in reference implementation.
//
// A Renderer is not safe for concurrent use: drawing populates the cache in
// place, so concurrent Draw calls on the same instance require external
// mutual exclusion. Clones share the font engine (safe for concurrent reads)
// but never the cache, so independent goroutines should each own a clone.
type Renderer[T Surface[T]] struct {
	engine Engine
	build  NewSurfaceFunc[T]
	cache  glyphCache[T]
}

// Load creates a Renderer from a font file. The build function converts
// colourized glyph pixels into the embedding's artifact type.
//
// An unreadable or unparsable font returns an error wrapping ErrFontNotFound;
// no partial Renderer is produced.
func Load[T Surface[T]](fontPath string, build NewSurfaceFunc[T]) (*Renderer[T], error) {
	font, err := shape.LoadFont(fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontNotFound, err)
	}
	return New(font, build), nil
}

// New creates a Renderer with a custom shaping/rasterization engine.
// Use this to inject a layout pipeline other than the default shape.Font.
func New[T Surface[T]](engine Engine, build NewSurfaceFunc[T]) *Renderer[T] {
	return &Renderer[T]{
		engine: engine,
		build:  build,
		cache:  newGlyphCache[T](),
	}
}

// Clone returns a Renderer sharing this one's font engine but with a fresh,
// empty glyph cache. Mutating either renderer's cache has no observable
// effect on the other.
func (r *Renderer[T]) Clone() *Renderer[T] {
	return New(r.engine, r.build)
}

// Draw renders text with proportional spacing. The string is shaped at the
// given point size and each positioned glyph is pasted onto dst at
// (x + glyph offset x, y + glyph offset y) with its rasterized dimensions.
//
// Layout runs afresh on every call; only rasterized glyph artifacts are
// cached. The returned error is non-nil only if rasterization fails, which
// aborts the call with no partial-glyph fallback.
func (r *Renderer[T]) Draw(text string, x, y, size float64, colour Colour, dst T) error {
	for _, g := range r.engine.Layout(text, size) {
		if g.Width == 0 || g.Height == 0 {
			continue // whitespace carries no ink
		}
		art, err := r.glyphSurface(g, size, colour)
		if err != nil {
			return err
		}
		dst.Paste(int(x+g.X), int(y+g.Y), g.Width, g.Height, art)
	}
	return nil
}

// DrawMonospaced renders text with uniform horizontal spacing: the i-th glyph
// (in layout order) is pasted at x-offset x + (size/2)*i with a forced width
// of size/2 columns, ignoring kerning and per-glyph advance. Vertical
// placement and height remain as rasterized.
//
// Fixed size/2 cells produce visible artifacts for proportional glyphs wider
// or narrower than half the point size; that is the documented behavior of
// this mode, not a defect.
func (r *Renderer[T]) DrawMonospaced(text string, x, y, size float64, colour Colour, dst T) error {
	cell := size / 2
	for i, g := range r.engine.Layout(text, size) {
		if g.Width == 0 || g.Height == 0 {
			continue
		}
		art, err := r.glyphSurface(g, size, colour)
		if err != nil {
			return err
		}
		dst.Paste(int(x+cell*float64(i)), int(y+g.Y), int(cell), g.Height, art)
	}
	return nil
}

// CacheStats returns this Renderer's cumulative cache counters.
func (r *Renderer[T]) CacheStats() CacheStats {
	return r.cache.stats
}

// CacheLen returns the number of distinct (height, colour, glyph) triples
// cached so far.
func (r *Renderer[T]) CacheLen() int {
	return r.cache.len()
}

// glyphSurface returns a clone of the cached artifact for one positioned
// glyph, rasterizing and colourizing it on first use. The cache key uses the
// descriptor's rasterized pixel height, not the requested point size.
func (r *Renderer[T]) glyphSurface(g shape.Glyph, size float64, colour Colour) (T, error) {
	key := glyphKey{height: g.Height, colour: colour, glyph: g.ID}
	return r.cache.getOrCreate(key, func() ([]byte, T, error) {
		Logger().Debug("caching glyph",
			slog.Uint64("glyph", uint64(g.ID)),
			slog.Int("height", g.Height),
			slog.String("colour", fmt.Sprintf("#%02X%02X%02X%02X", colour.R, colour.G, colour.B, colour.A)))

		mask, err := r.engine.Rasterize(g.ID, size)
		if err != nil {
			var zero T
			return nil, zero, fmt.Errorf("textdraw: rasterize glyph %d: %w", g.ID, err)
		}
		pixels := Colourize(mask.Pix, colour)
		return pixels, r.build(mask.Width, mask.Height, pixels, colour), nil
	})
}
