package retroconv

import "slices"

// Profile bundles the defaults of one output style. Caller options
// overlay these before the pipeline runs.
type Profile struct {
	Width    int
	Height   int // 0 derives the height from the source aspect ratio
	Palette  string
	Contrast float64
	Dither   Algorithm
}

// The three built-in styles. gameboy reproduces the Game Boy Camera
// sensor resolution exactly; the other two default to a width and keep
// the source aspect ratio.
var profiles = map[string]Profile{
	"gameboy": {
		Width:    128,
		Height:   112,
		Palette:  "gameboy",
		Contrast: 1.5,
		Dither:   FloydSteinberg,
	},
	"dotmatrix": {
		Width:    200,
		Palette:  "dotmatrix",
		Contrast: 2.0,
		Dither:   FloydSteinberg,
	},
	"retro": {
		Width:    320,
		Palette:  "cga",
		Contrast: 1.2,
		Dither:   FloydSteinberg,
	},
}

// Styles lists the available style names in sorted order.
func Styles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
