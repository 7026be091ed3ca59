// Package lingua detects the natural language of page text with
// lingua-go.
package lingua

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/webml"
	"github.com/pemistahl/lingua-go"
)

// DefaultMinTextLength is the shortest text worth classifying.
const DefaultMinTextLength = 20

// maxSampleLength bounds the text handed to the detector.
const maxSampleLength = 2000

// Ensure Detector implements webml.LanguageDetector at compile time.
var _ webml.LanguageDetector = (*Detector)(nil)

// Detector wraps a lingua language detector. Building it loads language
// models, so create one per process and share it; it is safe for
// concurrent use.
type Detector struct {
	detector      lingua.LanguageDetector
	minTextLength int
}

// Option configures a Detector.
type Option func(*Detector)

// WithMinTextLength sets the shortest text, in characters, that is
// classified. Shorter texts are reported as undetected.
func WithMinTextLength(n int) Option {
	return func(d *Detector) {
		d.minTextLength = n
	}
}

// NewDetector creates a Detector over the given languages, or all
// languages lingua supports when none are given. Low accuracy mode keeps
// memory use small.
func NewDetector(languages []lingua.Language, opts ...Option) *Detector {
	builder := lingua.NewLanguageDetectorBuilder()
	var b lingua.LanguageDetectorBuilder
	if len(languages) < 2 {
		b = builder.FromAllLanguages()
	} else {
		b = builder.FromLanguages(languages...)
	}

	d := &Detector{
		detector:      b.WithLowAccuracyMode().Build(),
		minTextLength: DefaultMinTextLength,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectLanguage returns the lowercase ISO 639-1 code of text's language.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < d.minTextLength {
		return "", false
	}
	if utf8.RuneCountInString(text) > maxSampleLength {
		text = string([]rune(text)[:maxSampleLength])
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
