package shape

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterize renders one glyph at the given point size to a single-channel
// coverage mask. The mask dimensions equal the Width and Height of the
// descriptor Layout produced for the same (id, size) pair; glyphs without an
// outline yield an empty mask.
//
// Rasterization is deterministic: repeated calls produce byte-identical
// masks.
func (f *Font) Rasterize(id GlyphID, size float64) (*Mask, error) {
	s := f.scratchPool.Get().(*scratch)
	defer f.scratchPool.Put(s)

	segments, err := f.outline.LoadGlyph(&s.buf, sfnt.GlyphIndex(id), floatToFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("shape: load glyph %d: %w", id, err)
	}

	box, ok := f.pixelBounds(&s.buf, id, size)
	if !ok {
		return &Mask{}, nil
	}

	width := box.maxX - box.minX
	height := box.maxY - box.minY

	// The vector rasterizer expects coordinates in the positive quadrant,
	// so every segment point is translated by the box minimum.
	offX := fixed.Int26_6(-box.minX * 64)
	offY := fixed.Int26_6(-box.minY * 64)

	var ras vector.Rasterizer
	ras.Reset(width, height)
	ras.DrawOp = draw.Src

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := segCoords(seg.Args[0], offX, offY)
			ras.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := segCoords(seg.Args[0], offX, offY)
			ras.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := segCoords(seg.Args[0], offX, offY)
			tx, ty := segCoords(seg.Args[1], offX, offY)
			ras.QuadTo(cx, cy, tx, ty)
		case sfnt.SegmentOpCubeTo:
			cax, cay := segCoords(seg.Args[0], offX, offY)
			cbx, cby := segCoords(seg.Args[1], offX, offY)
			tx, ty := segCoords(seg.Args[2], offX, offY)
			ras.CubeTo(cax, cay, cbx, cby, tx, ty)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return &Mask{Pix: dst.Pix, Width: width, Height: height}, nil
}

// segCoords translates a segment point into the mask's positive quadrant and
// converts it to the rasterizer's float32 pixel coordinates.
func segCoords(p fixed.Point26_6, offX, offY fixed.Int26_6) (float32, float32) {
	return float32(p.X+offX) / 64, float32(p.Y+offY) / 64
}
