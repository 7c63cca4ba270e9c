package core

// Surface is a drawing target for one frame.
// Coordinates are in world units: the race window's pixel space, origin at
// the top-left, y growing downward. Implementations decide how world units
// map to their own output (pixels, SVG units, terminal cells).
type Surface interface {
	// Fill paints the whole surface with c.
	Fill(c Color)
	// FillCircle paints a filled disc.
	FillCircle(center Vec2, radius float64, c Color)
	// FillRect paints a filled rectangle.
	FillRect(r RectF, c Color)
	// Line strokes a straight segment of the given width.
	Line(from, to Vec2, width float64, c Color)
}
