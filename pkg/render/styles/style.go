// Package styles names the visual styles available to the SVG sink and the
// text helpers they share.
package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/matzehuels/irdiagram/pkg/fonts"
)

// Style names.
const (
	Simple    = "simple"    // plain sans-serif labels
	Handdrawn = "handdrawn" // xkcd-style handwriting labels
)

// Valid reports whether name is a known style.
func Valid(name string) bool {
	return name == Simple || name == Handdrawn
}

// FontFamily returns the CSS font-family list for the named style. Unknown
// styles fall back to Simple.
func FontFamily(name string) string {
	if name == Handdrawn {
		return fonts.FallbackFontFamily
	}
	return fonts.SansFontFamily
}

// EscapeXML escapes s for use as SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
