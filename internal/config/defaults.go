package config

import (
	_ "embed"
)

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

// Default returns the default race configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Turtle Racer",
			FrameRate: 0,
		},
		Race: Race{
			FinishX:    0,
			Background: RGB{255, 255, 255},
			Speed: Speed{
				Mean:   0.5,
				StdDev: 2,
				Scale:  0.1,
			},
		},
		Palette: []PaletteEntry{
			{Name: "sunset_purple", RGB: RGB{106, 13, 173}},
			{Name: "sunset_orange", RGB: RGB{255, 94, 77}},
			{Name: "twilight_blue", RGB: RGB{54, 69, 179}},
			{Name: "pale_yellow", RGB: RGB{240, 220, 130}},
			{Name: "rose_pink", RGB: RGB{255, 102, 204}},
			{Name: "evening_sky", RGB: RGB{72, 61, 139}},
			{Name: "golden_hue", RGB: RGB{255, 193, 37}},
			{Name: "deep_red", RGB: RGB{139, 0, 0}},
			{Name: "soft_peach", RGB: RGB{255, 203, 164}},
			{Name: "dark_purple", RGB: RGB{48, 25, 52}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaceYAML
}
