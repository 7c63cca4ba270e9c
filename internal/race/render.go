package race

import "github.com/vovakirdan/turtle-racer/internal/core"

// Turtle geometry, relative to the racer position (body center).
const (
	BodyRadius  = 10
	HeadRadius  = 5
	HeadOffsetX = 15
	LegWidth    = 2
	LegHeight   = 5
	TrailWidth  = 2
)

// legOffsets are the top-left corners of the four legs.
var legOffsets = [4]core.Vec2{
	{X: -5, Y: -12},
	{X: 8, Y: -12},
	{X: -5, Y: 7},
	{X: 8, Y: 7},
}

// Draw renders one racer: body, head, four legs, then the trail from the
// start line to the racer.
func Draw(dst core.Surface, racer *Racer) {
	pos, c := racer.pos, racer.color

	dst.FillCircle(pos, BodyRadius, c)
	dst.FillCircle(pos.Add(HeadOffsetX, 0), HeadRadius, c)

	for _, off := range legOffsets {
		dst.FillRect(core.NewRectF(pos.X+off.X, pos.Y+off.Y, LegWidth, LegHeight), c)
	}

	dst.Line(core.Vec2{X: StartX, Y: pos.Y}, pos, TrailWidth, c)
}
