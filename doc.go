// Package textdraw renders strings of text onto arbitrary pixel surfaces.
//
// A Renderer combines a font shaping/rasterization engine with a glyph cache
// so that no glyph is rasterized or colourized more than once for the same
// (rendered pixel height, colour, glyph identity) triple. Cached artifacts
// are opaque to the package: the embedding application supplies the artifact
// type through the Surface contract (anything that can be built from raw RGBA
// bytes, cloned cheaply, and pasted onto), and the cache clones artifacts out
// on every hit without inspecting them.
//
// The default shaping and rasterization engine lives in the shape subpackage
// and is backed by go-text/typesetting (HarfBuzz shaping) and
// golang.org/x/image (sfnt outlines, vector rasterization). Embedders with
// their own layout pipeline can inject any Engine implementation via New.
//
// Basic usage with the built-in Pixmap surface:
//
//	r, err := textdraw.Load("FreeMono.ttf", textdraw.PixmapFromRawMask)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dst := textdraw.NewPixmap(256, 256)
//	err = r.Draw("hello world", 0, 0, 24, textdraw.RGB(255, 255, 255), dst)
//
// A Renderer's cache grows monotonically for the lifetime of the Renderer;
// it is a memoization table, not an LRU. Clone a Renderer to share the font
// while keeping caches independent.
package textdraw
