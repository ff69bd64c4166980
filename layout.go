package textdraw

import "github.com/gogpu/textdraw/shape"

// Engine is the shaping and rasterization collaborator consumed by a
// Renderer. The default implementation is shape.Font; embedders with their
// own layout pipeline can inject any implementation via New.
//
// Layout must be a pure function of its inputs: calling it again with the
// same arguments yields the same finite, ordered descriptor sequence.
// Rasterize must be deterministic for a fixed (id, size) pair.
type Engine interface {
	// Layout shapes text at the given point size and returns positioned
	// glyph descriptors. Descriptor offsets are relative to the draw
	// origin; the Renderer adds its own (x, y) when pasting.
	Layout(text string, size float64) []shape.Glyph

	// Rasterize produces the single-channel coverage mask for one glyph.
	// The mask dimensions match the Width and Height of the descriptor
	// that carried the id. A failure here is fatal to the draw call that
	// triggered it.
	Rasterize(id shape.GlyphID, size float64) (*shape.Mask, error)
}
