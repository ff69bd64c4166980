package shape

import (
	"math"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// Layout shapes text at the given point size and returns positioned glyph
// descriptors in visual order. Offsets are relative to the draw origin, the
// top-left corner of the line box, with y growing downward. Glyphs with no
// ink (spaces) appear with zero Width and Height so callers see every
// advance position.
//
// Layout is a pure function of its inputs: nothing is retained between
// calls, and repeated calls with the same arguments yield the same sequence.
func (f *Font) Layout(text string, size float64) []Glyph {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(text),
		Face:      gotextfont.NewFace(f.shaped),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  f.config.language,
	}

	// HarfbuzzShaper is not safe for concurrent use; each call borrows one
	// from the pool. font.NewFace is cheap and per-call for the same reason.
	hbShaper := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	f.shaperPool.Put(hbShaper)

	s := f.scratchPool.Get().(*scratch)
	defer f.scratchPool.Put(s)

	baseline := float64(f.ascentPx(&s.buf, size))
	glyphs := make([]Glyph, 0, len(output.Glyphs))
	var pen float64

	for _, g := range output.Glyphs {
		id := GlyphID(g.GlyphID)
		pg := Glyph{ID: id}

		if box, ok := f.pixelBounds(&s.buf, id, size); ok {
			pg.X = math.Floor(pen+fixedToFloat(g.XOffset)) + float64(box.minX)
			pg.Y = baseline + fixedToFloat(g.YOffset) + float64(box.minY)
			pg.Width = box.maxX - box.minX
			pg.Height = box.maxY - box.minY
		} else {
			pg.X = math.Floor(pen)
			pg.Y = baseline
		}

		glyphs = append(glyphs, pg)
		pen += fixedToFloat(g.Advance)
	}

	return glyphs
}

// pixelBox is an integer glyph bounding box in y-down pixel coordinates
// relative to the glyph origin on the baseline. minY is negative for any
// glyph with ink above the baseline.
type pixelBox struct {
	minX, minY, maxX, maxY int
}

// pixelBounds loads the glyph outline at size and returns its pixel bounding
// box. ok is false for glyphs without an outline (spaces, missing glyphs).
//
// Both Layout and Rasterize derive dimensions from this single helper, which
// guarantees a descriptor's Width and Height always match the mask that
// Rasterize produces for the same (id, size) pair.
func (f *Font) pixelBounds(buf *sfnt.Buffer, id GlyphID, size float64) (pixelBox, bool) {
	segments, err := f.outline.LoadGlyph(buf, sfnt.GlyphIndex(id), floatToFixed(size), nil)
	if err != nil || len(segments) == 0 {
		return pixelBox{}, false
	}

	b := segments.Bounds()
	box := pixelBox{
		minX: b.Min.X.Floor(),
		minY: b.Min.Y.Floor(),
		maxX: b.Max.X.Ceil(),
		maxY: b.Max.Y.Ceil(),
	}
	if box.minX >= box.maxX || box.minY >= box.maxY {
		return pixelBox{}, false
	}
	return box, true
}

// detectDirection returns the paragraph's base direction. Only the
// horizontal directions are produced; vertical layout is not supported.
func detectDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if !p.IsLeftToRight() {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
