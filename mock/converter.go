package mock

import "github.com/fwojciec/webml"

var _ webml.Converter = (*Converter)(nil)

// Converter is a mock implementation of webml.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ webml.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of webml.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
