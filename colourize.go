package textdraw

// Colourize expands a single-channel coverage mask into a 4-byte-per-pixel
// RGBA buffer. Each coverage byte is paired with the colour's RGB triple and
// becomes the alpha channel, so the result encodes "how much of this colour
// is visible here" without a separate alpha computation. The output length is
// exactly four times the input length.
//
// Colourize is pure and does no caching of its own; memoization happens one
// layer up in the glyph cache.
func Colourize(mask []byte, c Colour) []byte {
	out := make([]byte, len(mask)*4)
	for i, coverage := range mask {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = coverage
	}
	return out
}
