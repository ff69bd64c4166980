package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")
)
