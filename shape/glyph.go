package shape

// GlyphID is the opaque identity of one glyph within a font, assigned by the
// shaper. It is not a character: shaping may map the same rune to different
// glyphs (ligatures, contextual alternates) or several runes to one glyph.
type GlyphID uint32

// Glyph is one positioned glyph descriptor produced by layout. Offsets are
// relative to the draw origin, with y growing downward; the origin is the
// top-left corner of the line box, so a glyph's Y is its distance below the
// top of the line.
type Glyph struct {
	// ID identifies the glyph for rasterization and caching.
	ID GlyphID

	// X, Y are the pixel offsets of the glyph's top-left corner.
	X, Y float64

	// Width, Height are the rasterized pixel dimensions of the glyph's
	// coverage mask. Both are zero for glyphs with no ink (spaces).
	Width, Height int
}

// Mask is a rasterized single-channel coverage mask: one byte per pixel,
// row-major, where each byte denotes how covered that pixel is by the
// glyph's ink (0 = empty, 255 = fully covered).
type Mask struct {
	Pix    []byte
	Width  int
	Height int
}
