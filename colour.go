package textdraw

import "fmt"

// Colour is a 32-bit RGBA colour used both as a rendering parameter and as a
// cache partition key. Equality is structural over all four channels,
// including alpha, even though colourization only reads R, G and B.
type Colour struct {
	R, G, B, A uint8
}

// NewColour creates a colour from explicit RGBA components.
func NewColour(r, g, b, a uint8) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// RGB creates a fully opaque colour from RGB components.
func RGB(r, g, b uint8) Colour {
	return Colour{R: r, G: g, B: b, A: 255}
}

// ParseHex parses a 6-digit hex colour literal ("RRGGBB"), with an optional
// leading '#'. Alpha defaults to 255. Malformed input returns an error
// wrapping ErrInvalidColour; there is no lenient mode.
func ParseHex(hex string) (Colour, error) {
	hex = stripHash(hex)
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("%w: %q has %d hex digits, want 6", ErrInvalidColour, hex, len(hex))
	}
	var c Colour
	c.A = 255
	var err error
	if c.R, err = hexByte(hex[0:2]); err != nil {
		return Colour{}, err
	}
	if c.G, err = hexByte(hex[2:4]); err != nil {
		return Colour{}, err
	}
	if c.B, err = hexByte(hex[4:6]); err != nil {
		return Colour{}, err
	}
	return c, nil
}

// ParseHexAlpha parses an 8-digit hex colour literal ("RRGGBBAA") with
// explicit alpha, with an optional leading '#'.
func ParseHexAlpha(hex string) (Colour, error) {
	hex = stripHash(hex)
	if len(hex) != 8 {
		return Colour{}, fmt.Errorf("%w: %q has %d hex digits, want 8", ErrInvalidColour, hex, len(hex))
	}
	var c Colour
	var err error
	if c.R, err = hexByte(hex[0:2]); err != nil {
		return Colour{}, err
	}
	if c.G, err = hexByte(hex[2:4]); err != nil {
		return Colour{}, err
	}
	if c.B, err = hexByte(hex[4:6]); err != nil {
		return Colour{}, err
	}
	if c.A, err = hexByte(hex[6:8]); err != nil {
		return Colour{}, err
	}
	return c, nil
}

// stripHash removes an optional leading '#' from a hex literal.
func stripHash(hex string) string {
	if hex != "" && hex[0] == '#' {
		return hex[1:]
	}
	return hex
}

// hexByte parses exactly two hex digits into a byte.
func hexByte(s string) (uint8, error) {
	var v uint8
	for i := 0; i < 2; i++ {
		c := s[i]
		v <<= 4
		switch {
		case '0' <= c && c <= '9':
			v |= c - '0'
		case 'a' <= c && c <= 'f':
			v |= c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v |= c - 'A' + 10
		default:
			return 0, fmt.Errorf("%w: %q is not a hex digit pair", ErrInvalidColour, s)
		}
	}
	return v, nil
}

// Common colours.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
