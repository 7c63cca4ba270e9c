// Package config provides YAML-based race configuration: window size,
// finish line, speed distribution and the racer palette.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/race"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains the whole race configuration.
type Config struct {
	Window  Window         `yaml:"window"`
	Race    Race           `yaml:"race"`
	Palette []PaletteEntry `yaml:"palette"`
}

// Window defines the window (or world) dimensions.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FrameRate int    `yaml:"frame_rate"` // 0 = unthrottled
}

// Race defines race rules and visuals.
type Race struct {
	FinishX    float64 `yaml:"finish_x"` // 0 = window width
	Background RGB     `yaml:"background"`
	Speed      Speed   `yaml:"speed"`
}

// Speed defines the per-frame step distribution.
type Speed struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Scale  float64 `yaml:"scale"`
}

// RGB is a color as a three-element YAML list.
type RGB [3]int

// PaletteEntry is one racer color.
type PaletteEntry struct {
	Name string `yaml:"name"`
	RGB  RGB    `yaml:"rgb"`
}

// Color converts to core.Color. Call Validate first; out-of-range
// components are clamped.
func (c RGB) Color() core.Color {
	return core.RGB(
		uint8(core.Clamp(c[0], 0, 255)),
		uint8(core.Clamp(c[1], 0, 255)),
		uint8(core.Clamp(c[2], 0, 255)),
	)
}

func (c RGB) valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Colors returns the palette as core colors, one per racer.
func (c Config) Colors() []core.Color {
	out := make([]core.Color, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = p.RGB.Color()
	}
	return out
}

// ColorNames maps palette colors to their names.
func (c Config) ColorNames() map[core.Color]string {
	out := make(map[core.Color]string, len(c.Palette))
	for _, p := range c.Palette {
		out[p.RGB.Color()] = p.Name
	}
	return out
}

// FinishLine returns the finish x-coordinate, defaulting to the window width.
func (c Config) FinishLine() float64 {
	if c.Race.FinishX > 0 {
		return c.Race.FinishX
	}
	return float64(c.Window.Width)
}

// SpeedParams converts the speed section for the race package.
func (c Config) SpeedParams() race.Speed {
	return race.Speed{
		Mean:   c.Race.Speed.Mean,
		StdDev: c.Race.Speed.StdDev,
		Scale:  c.Race.Speed.Scale,
	}
}

// Validate checks the configuration for values the race cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("%w: frame_rate %d must not be negative", ErrInvalid, c.Window.FrameRate)
	}
	if c.Race.FinishX < 0 {
		return fmt.Errorf("%w: finish_x %v must not be negative", ErrInvalid, c.Race.FinishX)
	}
	if c.Race.Speed.StdDev < 0 {
		return fmt.Errorf("%w: speed.stddev %v must not be negative", ErrInvalid, c.Race.Speed.StdDev)
	}
	if c.Race.Speed.Scale <= 0 {
		return fmt.Errorf("%w: speed.scale %v must be positive", ErrInvalid, c.Race.Speed.Scale)
	}
	if !c.Race.Background.valid() {
		return fmt.Errorf("%w: background %v out of range 0..255", ErrInvalid, c.Race.Background)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	for i, p := range c.Palette {
		if !p.RGB.valid() {
			return fmt.Errorf("%w: palette[%d] %q color %v out of range 0..255", ErrInvalid, i, p.Name, p.RGB)
		}
	}
	return nil
}
