package textdraw

import (
	"bytes"
	"testing"
)

func TestColourize(t *testing.T) {
	mask := []byte{0, 128, 255}
	got := Colourize(mask, NewColour(10, 20, 30, 255))
	want := []byte{
		10, 20, 30, 0,
		10, 20, 30, 128,
		10, 20, 30, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Colourize = %v, want %v", got, want)
	}
}

func TestColourize_Length(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64} {
		mask := make([]byte, n)
		out := Colourize(mask, White)
		if len(out) != n*4 {
			t.Errorf("len(Colourize(%d bytes)) = %d, want %d", n, len(out), n*4)
		}
	}
}

func TestColourize_IgnoresAlphaChannel(t *testing.T) {
	// The colour's own alpha is a cache-identity detail; the mask byte is
	// the only alpha source in the output.
	mask := []byte{200}
	got := Colourize(mask, NewColour(1, 2, 3, 77))
	want := []byte{1, 2, 3, 200}
	if !bytes.Equal(got, want) {
		t.Errorf("Colourize = %v, want %v", got, want)
	}
}
