package core

import (
	"math"
	"strings"
)

// Block runes used when rasterizing shapes into cells.
const (
	RuneFull  = '█'
	RuneHLine = '─'
	RuneVLine = '│'
)

// Cell is a single character cell with foreground and background colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer. It implements Surface by mapping the
// world coordinate space onto its grid, so the race can be drawn into a
// terminal without knowing about cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	worldW float64
	worldH float64
	bg     Color
}

// NewScreen creates a new screen buffer with the given dimensions.
// The world space defaults to one world unit per cell.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: float64(width),
		worldH: float64(height),
		bg:     White,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// SetWorld sets the size of the world space that covers the whole grid.
func (s *Screen) SetWorld(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.worldW = w
	s.worldH = h
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame redraws everything.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells in the current background.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: s.bg, BG: s.bg}
		}
	}
}

// Set places a rune at the given cell, keeping the cell background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].FG = fg
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: s.bg, BG: s.bg}
	}
	return s.cells[y][x]
}

// Fill implements Surface.
func (s *Screen) Fill(c Color) {
	s.bg = c
	s.Clear()
}

// FillCircle implements Surface. A cell is painted when its center lies in
// the disc; a disc smaller than a cell still paints the cell it sits in.
func (s *Screen) FillCircle(center Vec2, radius float64, c Color) {
	x0, y0 := s.toCell(center.X-radius, center.Y-radius)
	x1, y1 := s.toCell(center.X+radius, center.Y+radius)
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := s.CellCenter(x, y)
			if math.Hypot(p.X-center.X, p.Y-center.Y) <= radius {
				s.Set(x, y, RuneFull, c)
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := s.toCell(center.X, center.Y)
		s.Set(cx, cy, RuneFull, c)
	}
}

// FillRect implements Surface with the same center-sampling rule as FillCircle.
func (s *Screen) FillRect(r RectF, c Color) {
	x0, y0 := s.toCell(r.X, r.Y)
	x1, y1 := s.toCell(r.Right(), r.Bottom())
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.Contains(s.CellCenter(x, y)) {
				s.Set(x, y, RuneFull, c)
				painted = true
			}
		}
	}
	if !painted {
		center := r.Center()
		cx, cy := s.toCell(center.X, center.Y)
		s.Set(cx, cy, RuneFull, c)
	}
}

// Line implements Surface. Width is ignored: a line is always one cell
// thick. Cells already filled with the same color are left alone.
func (s *Screen) Line(from, to Vec2, _ float64, c Color) {
	x0, y0 := s.toCell(from.X, from.Y)
	x1, y1 := s.toCell(to.X, to.Y)
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	r := RuneHLine
	if abs(dy) > abs(dx) {
		r = RuneVLine
	}
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + int(math.Round(float64(dx*i)/float64(steps)))
			y = y0 + int(math.Round(float64(dy*i)/float64(steps)))
		}
		if cell := s.Get(x, y); cell.Rune == RuneFull && cell.FG == c {
			continue
		}
		s.Set(x, y, r, c)
	}
}

// toCell converts a world coordinate to the cell containing it.
func (s *Screen) toCell(wx, wy float64) (int, int) {
	x := int(math.Floor(wx * float64(s.width) / s.worldW))
	y := int(math.Floor(wy * float64(s.height) / s.worldH))
	return x, y
}

// CellCenter returns the world coordinate of a cell's center.
func (s *Screen) CellCenter(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) + 0.5) * s.worldW / float64(s.width),
		Y: (float64(y) + 0.5) * s.worldH / float64(s.height),
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}

	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
