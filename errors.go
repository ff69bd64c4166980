package textdraw

import "errors"

// Sentinel errors for the textdraw package.
var (
	// ErrFontNotFound is returned by Load when the font file cannot be
	// read or its contents cannot be parsed as a font.
	ErrFontNotFound = errors.New("textdraw: font not found")

	// ErrInvalidColour is returned when a hex colour literal is malformed.
	ErrInvalidColour = errors.New("textdraw: invalid colour literal")
)
