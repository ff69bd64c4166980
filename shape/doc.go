// Package shape is the default shaping and rasterization engine for
// textdraw. It pairs HarfBuzz-level text shaping from go-text/typesetting
// (ligatures, kerning, complex scripts, right-to-left runs) with glyph
// outline rasterization from golang.org/x/image (sfnt outlines fed through
// the vector rasterizer), producing positioned glyph descriptors and
// single-channel coverage masks.
//
// A Font is parsed once and is safe for concurrent use by any number of
// renderers; shaping and rasterization scratch state is pooled internally.
package shape
