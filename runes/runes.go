// Package runes cleans encoding artifacts out of extracted article text
// using golang.org/x/text transformers.
package runes

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// artifacts lists the invisible joiners, byte-order mark and replacement
// character left behind by upstream extraction.
var artifacts = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200B, Hi: 0x200D, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
		{Lo: 0xFFFD, Hi: 0xFFFD, Stride: 1},
	},
}

// IsArtifact reports whether r is removed by FixEncoding.
func IsArtifact(r rune) bool {
	return unicode.Is(artifacts, r)
}

// NewCleaner returns a transformer that drops every artifact rune.
// Transformers are stateful; use one per goroutine.
func NewCleaner() transform.Transformer {
	return runes.Remove(runes.In(artifacts))
}

// FixEncoding removes zero-width characters, the byte-order mark and the
// Unicode replacement character, then trims surrounding whitespace as
// defined by IsTrimSpace.
// Applying it twice yields the same result as applying it once.
func FixEncoding(text string) string {
	cleaned, _, err := transform.String(NewCleaner(), text)
	if err != nil {
		// Remove never fails on valid input; invalid UTF-8 is kept as-is.
		cleaned = strings.Map(func(r rune) rune {
			if IsArtifact(r) {
				return -1
			}
			return r
		}, text)
	}
	return strings.TrimFunc(cleaned, IsTrimSpace)
}

// IsTrimSpace reports whether FixEncoding trims r from the ends of the text:
// Unicode white space and line terminators, excluding U+0085 (NEL).
func IsTrimSpace(r rune) bool {
	return r != '\u0085' && (unicode.IsSpace(r) || r == '\ufeff')
}
