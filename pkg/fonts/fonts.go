// Package fonts provides the font-family names used for SVG labels.
//
// No font data is embedded; the SVG names families and lets the viewer pick
// the first one installed.
package fonts

// FontFamily is the CSS font-family name for the xkcd-script font from
// https://github.com/ipython/xkcd-font, used by the hand-drawn style.
const FontFamily = "xkcd Script"

// FallbackFontFamily provides fallback fonts for systems without the xkcd font.
const FallbackFontFamily = `'` + FontFamily + `', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`

// SansFontFamily is the plain family list used by the simple style.
const SansFontFamily = `'Helvetica Neue', Helvetica, Arial, sans-serif`
