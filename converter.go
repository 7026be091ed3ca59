package webml

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be the filtered content root of a page.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the ISO 639-1 code of the text's language.
	// Returns false when the language cannot be determined reliably.
	DetectLanguage(text string) (code string, ok bool)
}
