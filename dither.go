package retroconv

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/setanarut/retroconv/palette"
)

// Algorithm selects one of the fixed dithering strategies. The set is
// closed; dispatch is a switch, not a plugin surface.
type Algorithm int

const (
	// FloydSteinberg diffuses each pixel's quantization error to its
	// unvisited neighbors.
	FloydSteinberg Algorithm = iota
	// Bayer biases pixels through the classic 4x4 Bayer threshold
	// matrix before matching.
	Bayer
	// Ordered is the clustered-dot variant of ordered dithering.
	Ordered
)

func (a Algorithm) String() string {
	switch a {
	case Bayer:
		return "bayer"
	case Ordered:
		return "ordered"
	default:
		return "floyd_steinberg"
	}
}

// ParseAlgorithm maps an algorithm name to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "floyd_steinberg", "floyd-steinberg", "fs":
		return FloydSteinberg, nil
	case "bayer":
		return Bayer, nil
	case "ordered":
		return Ordered, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDither, name)
}

// Algorithms lists the accepted algorithm names in sorted order.
func Algorithms() []string {
	names := []string{
		FloydSteinberg.String(),
		Bayer.String(),
		Ordered.String(),
	}
	slices.Sort(names)
	return names
}

// Dither quantizes src against pal with the chosen algorithm and
// returns the palette-indexed result with identical dimensions.
func Dither(src *buffer, pal color.Palette, algo Algorithm) (*image.Paletted, error) {
	if src.empty() {
		return nil, ErrEmptyImage
	}
	switch algo {
	case FloydSteinberg:
		return diffuse(src, pal), nil
	case Bayer:
		return threshold(src, pal, bayerMatrix), nil
	case Ordered:
		return threshold(src, pal, clusteredMatrix), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDither, algo)
}

// diffuse runs Floyd-Steinberg error diffusion: row-major sweep, each
// pixel quantized to the nearest palette entry, the residual spread to
// unvisited neighbors with weights 7/16 right, 3/16 below-left, 5/16
// below, 1/16 below-right. Shares falling outside the grid are
// dropped. The sweep is inherently sequential per image.
func diffuse(src *buffer, pal color.Palette) *image.Paletted {
	w, h := src.W, src.H
	out := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	work := src.clone() // pending error accumulates here, scoped to this call
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := work.offset(x, y)
			r := work.Pix[off]
			g := work.Pix[off+1]
			b := work.Pix[off+2]

			idx := palette.Nearest(r, g, b, pal)
			out.SetColorIndex(x, y, uint8(idx))

			cr, cg, cb, _ := pal[idx].RGBA()
			er := r - float32(cr>>8)
			eg := g - float32(cg>>8)
			eb := b - float32(cb>>8)

			if x+1 < w {
				spread(work, x+1, y, er, eg, eb, 7.0/16)
			}
			if y+1 < h {
				if x > 0 {
					spread(work, x-1, y+1, er, eg, eb, 3.0/16)
				}
				spread(work, x, y+1, er, eg, eb, 5.0/16)
				if x+1 < w {
					spread(work, x+1, y+1, er, eg, eb, 1.0/16)
				}
			}
		}
	}
	return out
}

func spread(buf *buffer, x, y int, er, eg, eb, weight float32) {
	off := buf.offset(x, y)
	buf.Pix[off] += er * weight
	buf.Pix[off+1] += eg * weight
	buf.Pix[off+2] += eb * weight
}
