// Package palette holds the fixed historical color tables and the
// nearest-color matcher used by the quantization pipeline. All palettes
// are built once at package init and never mutated afterwards.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknown is returned by Get for palette names outside the registry.
var ErrUnknown = errors.New("unknown palette")

// Built-in tables as hex triples. The 16-color tables follow the usual
// historical values for each platform; the Apple II second gray and the
// ZX Spectrum bright black are nudged one step so every entry stays
// distinct.
var tables = map[string][]string{
	"gameboy": {
		"#0f380f", "#306230", "#8bac0f", "#9bbc0f",
	},
	"dotmatrix": {
		"#000000", "#ffffff",
	},
	"cga": {
		"#000000", "#0000aa", "#00aa00", "#00aaaa",
		"#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
		"#555555", "#5555ff", "#55ff55", "#55ffff",
		"#ff5555", "#ff55ff", "#ffff55", "#ffffff",
	},
	"apple2": {
		"#000000", "#722640", "#40337f", "#e434fe",
		"#0e5940", "#808080", "#1b9afe", "#bfb3ff",
		"#404c00", "#e46501", "#929292", "#f1a6bf",
		"#1bcb01", "#bfcc80", "#8dd9bf", "#ffffff",
	},
	"c64": {
		"#000000", "#ffffff", "#880000", "#aaffee",
		"#cc44cc", "#00cc55", "#0000aa", "#eeee77",
		"#dd8855", "#664400", "#ff7777", "#333333",
		"#777777", "#aaff66", "#0088ff", "#bbbbbb",
	},
	"spectrum": {
		"#000000", "#0000c0", "#c00000", "#c000c0",
		"#00c000", "#00c0c0", "#c0c000", "#c0c0c0",
		"#0d0d0d", "#0000ff", "#ff0000", "#ff00ff",
		"#00ff00", "#00ffff", "#ffff00", "#ffffff",
	},
}

var registry = func() map[string]color.Palette {
	m := make(map[string]color.Palette, len(tables))
	for name, hexes := range tables {
		pal := make(color.Palette, len(hexes))
		for i, h := range hexes {
			c, err := colorful.Hex(h)
			if err != nil {
				panic("palette: bad table entry " + h)
			}
			r, g, b := c.RGB255()
			pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
		}
		m[name] = pal
	}
	return m
}()

// Get returns the named built-in palette.
func Get(name string) (color.Palette, error) {
	pal, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return pal, nil
}

// Names lists the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Nearest returns the index of the palette entry closest to the given
// RGB value by squared Euclidean distance. Inputs are on the 0-255
// scale but may lie outside it when quantization error has been added.
// Ties resolve to the earliest entry.
func Nearest(r, g, b float32, pal color.Palette) int {
	best := 0
	bestD := float32(math.MaxFloat32)
	for i, c := range pal {
		cr, cg, cb, _ := c.RGBA()
		dr := r - float32(cr>>8)
		dg := g - float32(cg>>8)
		db := b - float32(cb>>8)
		if d := dr*dr + dg*dg + db*db; d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// SortByBrightness orders palette entries from darkest to brightest
// using linear-RGB luminance, so index 0 is always the darkest color.
func SortByBrightness(pal color.Palette) {
	slices.SortStableFunc(pal, func(a, b color.Color) int {
		ya := luminance(a)
		yb := luminance(b)
		if ya < yb {
			return -1
		}
		if ya > yb {
			return 1
		}
		return 0
	})
}

func luminance(c color.Color) float64 {
	cc, _ := colorful.MakeColor(c)
	r, g, b := cc.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
