package textdraw

// Surface is the drawable artifact contract satisfied by any embedding.
// The cache stores values of a Surface type and clones them out on every
// lookup; it never inspects their internals, so T may wrap a software buffer,
// a windowing-system surface, or any other drawable handle.
type Surface[T any] interface {
	// Paste copies a width x height block of RGBA pixels from src into the
	// receiver at top-left (x, y). Pixels are copied row-major from (0, 0)
	// to (width-1, height-1) in both coordinate spaces simultaneously: a
	// skipped pixel still advances both cursors, preserving relative
	// alignment. Each surface uses its own stride, so width may differ from
	// src's natural width. Any pixel whose destination or source coordinate
	// falls outside the respective surface is skipped without aborting the
	// rest of the blit; out-of-range placement clips silently.
	Paste(x, y, width, height int, src T)

	// Clone returns an independent copy of the surface. The glyph cache
	// calls Clone on every hit, so implementations should keep it cheap.
	Clone() T
}

// NewSurfaceFunc constructs a drawable artifact from an already-colourized
// RGBA pixel buffer. The colour is informational (it identifies the cache
// partition the pixels were built for) and must not be reapplied; the pixel
// bytes already carry it.
type NewSurfaceFunc[T any] func(width, height int, rgba []byte, colour Colour) T
