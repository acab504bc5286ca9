// Package html renders the highlight markup returned by keyword search as
// terminal text using the golang.org/x/net/html tokenizer.
package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Emphasis wraps highlighted text in the rendered output.
const Emphasis = "*"

// RenderHighlight converts s to plain text. <em> becomes Emphasis-delimited
// text; <script> and <style> elements are dropped with their content; every
// other tag is removed and its text kept. Entities are decoded.
func RenderHighlight(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a truncated tag at the end of s.
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				skip++
			case atom.Em:
				if skip == 0 {
					b.WriteString(Emphasis)
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
			case atom.Em:
				if skip == 0 {
					b.WriteString(Emphasis)
				}
			}
		}
	}
}
