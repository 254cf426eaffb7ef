package scene

import "github.com/lucasb-eyer/go-colorful"

// Paint is an optional color. The zero value paints nothing.
type Paint struct {
	Color colorful.Color
	Valid bool
}

// Solid returns a paint of color c.
func Solid(c colorful.Color) Paint { return Paint{Color: c, Valid: true} }

// Hex returns the "#rrggbb" form of the paint, or "none" when unset.
func (p Paint) Hex() string {
	if !p.Valid {
		return "none"
	}
	return p.Color.Hex()
}
