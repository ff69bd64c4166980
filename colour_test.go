package textdraw

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Colour
	}{
		{"#0A141E", RGB(10, 20, 30)},
		{"0A141E", RGB(10, 20, 30)},
		{"#ffffff", White},
		{"000000", Black},
		{"#FF00ff", Magenta},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex_AlphaDefaultsOpaque(t *testing.T) {
	c, err := ParseHex("102030")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	if c.A != 255 {
		t.Errorf("alpha = %d, want 255", c.A)
	}
}

func TestParseHexAlpha(t *testing.T) {
	c, err := ParseHexAlpha("0A141EFF")
	if err != nil {
		t.Fatalf("ParseHexAlpha error: %v", err)
	}
	if c != NewColour(10, 20, 30, 255) {
		t.Errorf("ParseHexAlpha = %+v, want {10 20 30 255}", c)
	}

	c, err = ParseHexAlpha("#01020380")
	if err != nil {
		t.Fatalf("ParseHexAlpha error: %v", err)
	}
	if c != NewColour(1, 2, 3, 128) {
		t.Errorf("ParseHexAlpha = %+v, want {1 2 3 128}", c)
	}
}

func TestParseHex_Malformed(t *testing.T) {
	bad := []string{"", "#", "12345", "1234567", "GG0000", "#0A141", "0A141EF"}
	for _, in := range bad {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		} else if !errors.Is(err, ErrInvalidColour) {
			t.Errorf("ParseHex(%q) error should wrap ErrInvalidColour, got %v", in, err)
		}
	}

	if _, err := ParseHexAlpha("0A141E"); err == nil {
		t.Error("ParseHexAlpha with 6 digits should fail")
	}
	if _, err := ParseHexAlpha("0A141EZZ"); err == nil {
		t.Error("ParseHexAlpha with non-hex digits should fail")
	}
}

func TestColourEquality(t *testing.T) {
	// Alpha participates in equality even though colourization ignores it.
	if NewColour(1, 2, 3, 4) == NewColour(1, 2, 3, 5) {
		t.Error("colours differing only in alpha should not be equal")
	}
	if RGB(1, 2, 3) != NewColour(1, 2, 3, 255) {
		t.Error("RGB should produce alpha 255")
	}
}
