// Package barcode encodes strings into 1-D bar patterns for print rendering.
//
// An encoding is a fixed table mapping characters to bit patterns, bracketed
// by a guard pattern. Encoding never fails: characters outside the table are
// substituted with the encoding's fallback pattern so that any order id or
// phone string always produces a renderable barcode.
package barcode

import "strings"

// Encoding maps characters to fixed-width bit patterns. A '1' bit is a dark
// bar segment of one unit width, a '0' bit is background.
type Encoding struct {
	patterns map[rune]string
	fallback string
	guard    string
	// spacer inserts a '0' separator before each character pattern, as
	// Code 39 requires between symbols.
	spacer bool
}

// Encode converts text to a bitstring. It is pure and total: identical input
// yields an identical bitstring, and unrecognised characters are silently
// replaced by the fallback pattern rather than reported.
func (e *Encoding) Encode(text string) string {
	var b strings.Builder
	b.WriteString(e.guard)
	for _, r := range strings.ToUpper(text) {
		if e.spacer {
			b.WriteByte('0')
		}
		pattern, ok := e.patterns[r]
		if !ok {
			pattern = e.fallback
		}
		b.WriteString(pattern)
	}
	b.WriteString(e.guard)
	return b.String()
}
