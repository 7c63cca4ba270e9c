// Package canvas provides core.Surface implementations that produce
// images: an anti-aliased raster backed by gogpu/gg and an SVG recorder
// backed by svgo.
package canvas

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// Raster draws into an in-memory RGBA image through a gg context.
// World units map one to one onto pixels.
type Raster struct {
	dc  *gg.Context
	err error
}

// NewRaster creates a width x height raster cleared to white.
func NewRaster(width, height int) *Raster {
	r := &Raster{dc: gg.NewContext(width, height)}
	r.Fill(core.White)
	return r
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.dc.Width()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.dc.Height()
}

// Fill implements core.Surface. It also resets the sticky draw error.
func (r *Raster) Fill(c core.Color) {
	r.err = nil
	r.dc.ClearWithColor(gg.FromColor(c))
}

// FillCircle implements core.Surface.
func (r *Raster) FillCircle(center core.Vec2, radius float64, c core.Color) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.keep(r.dc.Fill())
}

// FillRect implements core.Surface.
func (r *Raster) FillRect(rect core.RectF, c core.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.keep(r.dc.Fill())
}

// Line implements core.Surface.
func (r *Raster) Line(from, to core.Vec2, width float64, c core.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	r.keep(r.dc.Stroke())
}

// keep records the first draw error of the frame.
func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first drawing error since the last Fill.
func (r *Raster) Err() error {
	if r.err != nil {
		return fmt.Errorf("raster draw: %w", r.err)
	}
	return nil
}

// RGBA returns the current frame as tightly packed RGBA pixels.
func (r *Raster) RGBA() *image.RGBA {
	img := r.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// EncodePNG writes the current frame as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the gg context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
