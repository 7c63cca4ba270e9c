package canvas

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// SVG records the shapes of the current frame and writes them as an SVG
// document. Fill starts a new frame. Coordinates are rounded to whole
// units.
type SVG struct {
	width  int
	height int
	title  string
	ops    []func(*svg.SVG)
}

// NewSVG creates a width x height SVG surface cleared to white.
func NewSVG(width, height int, title string) *SVG {
	s := &SVG{width: width, height: height, title: title}
	s.Fill(core.White)
	return s
}

// Fill implements core.Surface.
func (s *SVG) Fill(c core.Color) {
	s.ops = s.ops[:0]
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		canvas.Rect(0, 0, s.width, s.height, fill(c))
	})
}

// FillCircle implements core.Surface.
func (s *SVG) FillCircle(center core.Vec2, radius float64, c core.Color) {
	x, y, r := round(center.X), round(center.Y), round(radius)
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		canvas.Circle(x, y, r, fill(c))
	})
}

// FillRect implements core.Surface.
func (s *SVG) FillRect(rect core.RectF, c core.Color) {
	x, y, w, h := round(rect.X), round(rect.Y), round(rect.W), round(rect.H)
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		canvas.Rect(x, y, w, h, fill(c))
	})
}

// Line implements core.Surface.
func (s *SVG) Line(from, to core.Vec2, width float64, c core.Color) {
	x1, y1, x2, y2 := round(from.X), round(from.Y), round(to.X), round(to.Y)
	style := fmt.Sprintf("stroke:%s;stroke-width:%g", c.Hex(), width)
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		canvas.Line(x1, y1, x2, y2, style)
	})
}

// WriteTo writes the recorded frame as a complete SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(s.width, s.height)
	if s.title != "" {
		canvas.Title(s.title)
	}
	for _, op := range s.ops {
		op(canvas)
	}
	canvas.End()
	return cw.n, cw.err
}

func fill(c core.Color) string {
	return "fill:" + c.Hex()
}

func round(v float64) int {
	return int(math.Round(v))
}

// countingWriter tracks bytes written and the first error, since svgo
// does not report either.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
