package pipeline

import (
	"regexp"

	"github.com/alecthomas/chroma/v2/lexers"
)

// PlaintextLanguage is the highlighting mode for fenced code whose language
// is missing or unknown to the highlighter.
const PlaintextLanguage = "plaintext"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// IsKnownLanguage reports whether the highlighter has a lexer for lang.
func IsKnownLanguage(lang string) bool {
	return lang != "" && lexers.Get(lang) != nil
}
