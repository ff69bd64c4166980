package textdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is the reference Surface implementation: a CPU-side rectangular
// RGBA pixel buffer. It satisfies Surface[*Pixmap], so a Renderer[*Pixmap]
// built with PixmapFromRawMask can draw without any embedding-specific
// surface type.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// PixmapFromRawMask constructs a Pixmap directly from already-colourized RGBA
// bytes. It is the NewSurfaceFunc for Renderer[*Pixmap]. The colour parameter
// identifies the cache partition the pixels were built for and is not
// reapplied; the data bytes are copied as-is.
func PixmapFromRawMask(width, height int, rgba []byte, _ Colour) *Pixmap {
	data := make([]uint8, width*height*4)
	copy(data, rgba)
	return &Pixmap{width: width, height: height, data: data}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns an independent deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Paste copies a width x height block of pixels from src into p at top-left
// (x, y), which may be negative or extend past p's edges. Source and
// destination cursors advance in lockstep over the block, each using its own
// surface's stride, so width may be narrower or wider than src's natural
// width. Pixels that fall outside either surface are skipped silently; the
// rest of the blit proceeds.
func (p *Pixmap) Paste(x, y, width, height int, src *Pixmap) {
	for row := 0; row < height; row++ {
		dstY := y + row
		for col := 0; col < width; col++ {
			dstX := x + col
			if dstX < 0 || dstX >= p.width || dstY < 0 || dstY >= p.height {
				continue
			}
			if col >= src.width || row >= src.height {
				continue
			}
			di := (dstY*p.width + dstX) * 4
			si := (row*src.width + col) * 4
			copy(p.data[di:di+4], src.data[si:si+4])
		}
	}
}

// SetPixel sets the colour of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c Colour) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the colour of a single pixel. Out-of-range coordinates
// return the zero Colour.
func (p *Pixmap) GetPixel(x, y int) Colour {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Colour{}
	}
	i := (y*p.width + x) * 4
	return Colour{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a colour.
func (p *Pixmap) Clear(c Colour) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// WritePPM dumps the pixmap to a binary PPM (P6) file, flattening transparent
// pixels to black. This is a debugging aid for test harnesses; PPM carries no
// alpha channel, so prefer SavePNG for anything but quick inspection.
func (p *Pixmap) WritePPM(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", p.width, p.height); err != nil {
		return err
	}
	rgb := make([]byte, 0, p.width*p.height*3)
	for i := 0; i < p.width*p.height; i++ {
		if p.data[i*4+3] == 0 {
			rgb = append(rgb, 0, 0, 0)
		} else {
			rgb = append(rgb, p.data[i*4], p.data[i*4+1], p.data[i*4+2])
		}
	}
	_, err = f.Write(rgb)
	return err
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
