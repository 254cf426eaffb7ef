package scene

// Box is an axis-aligned rectangle in scene units.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// CenteredBox returns a w by h box centered on the origin.
func CenteredBox(w, h float64) Box {
	return Box{MinX: -w / 2, MinY: -h / 2, MaxX: w / 2, MaxY: h / 2}
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the horizontal center point of the box.
func (b Box) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical center point of the box.
func (b Box) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}

// Scale returns the box scaled by f around its own center.
func (b Box) Scale(f float64) Box {
	cx, cy := b.CenterX(), b.CenterY()
	hw, hh := b.Width()*f/2, b.Height()*f/2
	return Box{MinX: cx - hw, MinY: cy - hh, MaxX: cx + hw, MaxY: cy + hh}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Pad returns the box grown by m on every side.
func (b Box) Pad(m float64) Box {
	return Box{MinX: b.MinX - m, MinY: b.MinY - m, MaxX: b.MaxX + m, MaxY: b.MaxY + m}
}
