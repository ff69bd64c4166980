package textdraw

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// solidPixmap builds a w x h pixmap where every pixel is c.
func solidPixmap(w, h int, c Colour) *Pixmap {
	p := NewPixmap(w, h)
	p.Clear(c)
	return p
}

func TestPixmap_PasteInterior(t *testing.T) {
	dst := NewPixmap(8, 8)
	src := solidPixmap(2, 2, Red)

	dst.Paste(3, 4, 2, 2, src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Colour{}
			if x >= 3 && x < 5 && y >= 4 && y < 6 {
				want = Red
			}
			if got := dst.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestPixmap_PasteClipsNegativeOrigin(t *testing.T) {
	dst := NewPixmap(8, 8)
	src := solidPixmap(4, 4, White)

	// Only the 2x2 overlap at the top-left corner may be written.
	dst.Paste(-2, -2, 4, 4, src)

	written := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if dst.GetPixel(x, y) != (Colour{}) {
				written++
				if x >= 2 || y >= 2 {
					t.Errorf("pixel (%d,%d) written outside the 2x2 overlap", x, y)
				}
			}
		}
	}
	if written != 4 {
		t.Errorf("wrote %d pixels, want 4", written)
	}
}

func TestPixmap_PasteClipsFarEdge(t *testing.T) {
	dst := NewPixmap(8, 8)
	src := solidPixmap(4, 4, White)

	dst.Paste(6, 6, 4, 4, src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Colour{}
			if x >= 6 && y >= 6 {
				want = White
			}
			if got := dst.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestPixmap_PasteSourceAlignment(t *testing.T) {
	// A destination pixel skipped by clipping must still advance the source
	// cursor, preserving relative alignment of the copied block.
	src := NewPixmap(4, 1)
	for x := 0; x < 4; x++ {
		src.SetPixel(x, 0, NewColour(uint8(x+1), 0, 0, 255))
	}
	dst := NewPixmap(8, 1)

	dst.Paste(-2, 0, 4, 1, src)

	// src columns 2 and 3 land on dst columns 0 and 1.
	if got := dst.GetPixel(0, 0); got.R != 3 {
		t.Errorf("dst(0,0).R = %d, want 3", got.R)
	}
	if got := dst.GetPixel(1, 0); got.R != 4 {
		t.Errorf("dst(1,0).R = %d, want 4", got.R)
	}
	if got := dst.GetPixel(2, 0); got != (Colour{}) {
		t.Errorf("dst(2,0) = %+v, want untouched", got)
	}
}

func TestPixmap_PasteForcedWidth(t *testing.T) {
	// Monospaced drawing forces a width different from the source's natural
	// width. Narrower: only the first cell columns are copied. Wider: the
	// copy skips columns past the source edge without wrapping rows.
	src := solidPixmap(6, 2, Green)

	narrow := NewPixmap(8, 8)
	narrow.Paste(0, 0, 3, 2, src)
	if narrow.GetPixel(2, 0) != Green {
		t.Error("pixel inside forced width should be copied")
	}
	if narrow.GetPixel(3, 0) != (Colour{}) {
		t.Error("pixel beyond forced width should be untouched")
	}

	wide := NewPixmap(16, 8)
	wide.Paste(0, 0, 10, 2, src)
	if wide.GetPixel(5, 1) != Green {
		t.Error("pixel inside source width should be copied")
	}
	for x := 6; x < 10; x++ {
		if wide.GetPixel(x, 1) != (Colour{}) {
			t.Errorf("pixel (%d,1) beyond source width should be untouched", x)
		}
	}
}

func TestPixmapFromRawMask_CopiesData(t *testing.T) {
	rgba := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	p := PixmapFromRawMask(2, 1, rgba, White)
	rgba[0] = 99
	if p.Data()[0] != 1 {
		t.Error("PixmapFromRawMask should copy the input bytes")
	}
	if p.Width() != 2 || p.Height() != 1 {
		t.Errorf("dimensions = %dx%d, want 2x1", p.Width(), p.Height())
	}
}

func TestPixmap_CloneIndependent(t *testing.T) {
	p := solidPixmap(2, 2, Blue)
	q := p.Clone()
	q.SetPixel(0, 0, Red)
	if p.GetPixel(0, 0) != Blue {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestPixmap_WritePPM(t *testing.T) {
	p := NewPixmap(2, 1)
	p.SetPixel(0, 0, NewColour(10, 20, 30, 255))
	// pixel (1,0) stays transparent and must flatten to black

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := p.WritePPM(path); err != nil {
		t.Fatalf("WritePPM error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ppm: %v", err)
	}
	want := append([]byte("P6\n2 1\n255\n"), 10, 20, 30, 0, 0, 0)
	if !bytes.Equal(data, want) {
		t.Errorf("ppm bytes = %q, want %q", data, want)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	p := solidPixmap(4, 4, Yellow)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("SavePNG should produce a non-empty file, err=%v", err)
	}
}
