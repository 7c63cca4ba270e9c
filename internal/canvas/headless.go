package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// Format selects the image format produced by a Headless driver.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return FormatPNG, nil
	case strings.HasSuffix(strings.ToLower(path), ".svg"):
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported image format for %q (want .png or .svg)", path)
	}
}

var errNotOpen = errors.New("headless driver not open")

// Headless is a windowless loop driver. It draws into an image surface and
// requests quit after MaxFrames presented frames, or as soon as Stop
// returns true. On Close the last frame is written to Output.
type Headless struct {
	Format    Format
	MaxFrames int         // 0 = no frame limit
	Stop      func() bool // optional
	Output    io.Writer   // optional

	raster *Raster
	svg    *SVG
	frames int
}

// Open implements the loop driver contract.
func (h *Headless) Open(width, height int, title string) error {
	switch h.Format {
	case FormatPNG, "":
		h.raster = NewRaster(width, height)
	case FormatSVG:
		h.svg = NewSVG(width, height, title)
	default:
		return fmt.Errorf("headless: unknown format %q", h.Format)
	}
	return nil
}

// Events returns a quit event once the frame budget is spent or Stop fires.
func (h *Headless) Events() []core.Event {
	if h.MaxFrames > 0 && h.frames >= h.MaxFrames {
		return []core.Event{core.QuitEvent()}
	}
	if h.Stop != nil && h.Stop() {
		return []core.Event{core.QuitEvent()}
	}
	return nil
}

// Surface returns the drawing surface for the next frame.
func (h *Headless) Surface() core.Surface {
	if h.svg != nil {
		return h.svg
	}
	return h.raster
}

// Present counts the frame.
func (h *Headless) Present() error {
	if h.raster != nil {
		if err := h.raster.Err(); err != nil {
			return err
		}
	}
	h.frames++
	return nil
}

// Frames returns the number of frames presented so far.
func (h *Headless) Frames() int {
	return h.frames
}

// Save writes the last drawn frame.
func (h *Headless) Save(w io.Writer) error {
	switch {
	case h.svg != nil:
		_, err := h.svg.WriteTo(w)
		return err
	case h.raster != nil:
		return h.raster.EncodePNG(w)
	default:
		return errNotOpen
	}
}

// Close writes the last frame to Output, if set, and releases the raster.
func (h *Headless) Close() error {
	var err error
	if h.Output != nil {
		err = h.Save(h.Output)
	}
	if h.raster != nil {
		if cerr := h.raster.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
