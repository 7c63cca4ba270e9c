package race

import "github.com/vovakirdan/turtle-racer/internal/core"

// StartX is the x-coordinate every racer returns to on Start.
const StartX = 10

// Racer is a single turtle: a fixed color and a mutable position.
type Racer struct {
	color core.Color
	pos   core.Vec2
}

// NewRacer creates a racer at the origin. Call Start before drawing it.
func NewRacer(color core.Color) *Racer {
	return &Racer{color: color}
}

// Color returns the racer's color.
func (r *Racer) Color() core.Color {
	return r.color
}

// Pos returns the racer's current position.
func (r *Racer) Pos() core.Vec2 {
	return r.pos
}

// Start moves the racer to the start line at the given height.
func (r *Racer) Start(y float64) {
	r.pos = core.Vec2{X: StartX, Y: y}
}

// Advance moves the racer horizontally by dx. Negative values move it back.
func (r *Racer) Advance(dx float64) {
	r.pos.X += dx
}
