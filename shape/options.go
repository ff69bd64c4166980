package shape

import "github.com/go-text/typesetting/language"

// fontConfig holds configuration applied when creating a Font.
type fontConfig struct {
	language language.Language
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		language: language.NewLanguage("en"),
	}
}

// Option configures a Font during creation.
type Option func(*fontConfig)

// WithLanguage sets the BCP 47 language tag passed to the shaper, which
// selects language-specific OpenType features. The default is "en".
func WithLanguage(tag string) Option {
	return func(c *fontConfig) {
		c.language = language.NewLanguage(tag)
	}
}
