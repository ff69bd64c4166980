package shape

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a loaded font ready for shaping and rasterization. The same data
// is parsed twice at construction: once with go-text/typesetting for
// HarfBuzz shaping and once with x/image sfnt for outline rasterization.
//
// A Font is heavyweight and should be shared: the parsed tables are
// immutable and safe for concurrent reads, and all mutable scratch state
// (HarfBuzz shapers, sfnt buffers, vector rasterizers) is pooled, so any
// number of renderers may layout and rasterize from one Font concurrently.
type Font struct {
	// shaped is the go-text parsed font. font.Font is read-only and safe
	// for concurrent use; the per-call font.Face wrappers are not, so
	// Layout creates one per invocation (they are cheap).
	shaped *gotextfont.Font

	// outline is the x/image parsed font used for glyph outlines and
	// metrics. Safe for concurrent use as long as each call brings its
	// own sfnt.Buffer.
	outline *sfnt.Font

	config fontConfig

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing across sequential calls avoids reallocation.
	shaperPool sync.Pool

	// scratchPool pools per-call sfnt and rasterizer scratch state.
	scratchPool sync.Pool
}

// scratch bundles the mutable state one layout or rasterization call needs.
type scratch struct {
	buf sfnt.Buffer
}

// NewFont parses TTF or OTF font data. The data slice is copied internally
// and can be reused after this call.
func NewFont(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	gtFace, err := gotextfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("shape: parse font for shaping: %w", err)
	}

	sf, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("shape: parse font for rasterization: %w", err)
	}

	f := &Font{
		shaped:  gtFace.Font,
		outline: sf,
		config:  config,
	}
	f.shaperPool = sync.Pool{
		New: func() any {
			return &shaping.HarfbuzzShaper{}
		},
	}
	f.scratchPool = sync.Pool{
		New: func() any {
			return &scratch{}
		},
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shape: read font file: %w", err)
	}
	return NewFont(data, opts...)
}

// Metrics holds font-wide vertical metrics at a given size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line box.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line
	// box (positive below the baseline).
	Descent float64

	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// Metrics returns the font's vertical metrics at the given point size.
func (f *Font) Metrics(size float64) Metrics {
	s := f.scratchPool.Get().(*scratch)
	defer f.scratchPool.Put(s)

	m, err := f.outline.Metrics(&s.buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    descent,
		LineHeight: fixedToFloat(m.Height),
	}
}

// ascentPx returns the rounded pixel ascent at size, used as the baseline
// offset from the top of the line box.
func (f *Font) ascentPx(buf *sfnt.Buffer, size float64) int {
	m, err := f.outline.Metrics(buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return m.Ascent.Round()
}

// floatToFixed converts a float64 value in pixels to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
