package retroconv

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"

	"github.com/setanarut/retroconv/palette"
)

// The two ordered-dither threshold matrices, normalized to [0,1).
// bayerMatrix is the standard 4x4 Bayer index pattern; clusteredMatrix
// is a 4x4 clustered-dot halftone pattern that grows dots from the
// cell center, as dot matrix printing hardware did.
var (
	bayerMatrix = normalized([]float64{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	})
	clusteredMatrix = normalized([]float64{
		12, 5, 6, 13,
		4, 0, 1, 7,
		11, 3, 2, 8,
		15, 10, 9, 14,
	})
)

func normalized(cells []float64) *mat.Dense {
	m := mat.NewDense(4, 4, cells)
	m.Scale(1.0/16.0, m)
	return m
}

// threshold applies ordered dithering: the matrix entry at the pixel's
// tile position biases the value up or down before palette matching.
// Pure per pixel, no cross-pixel state.
func threshold(src *buffer, pal color.Palette, m *mat.Dense) *image.Paletted {
	rows, cols := m.Dims()
	w, h := src.W, src.H
	out := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bias := float32(m.At(y%rows, x%cols))*255 - 127.5
			off := src.offset(x, y)
			r := clamp(src.Pix[off]+bias, 0, 255)
			g := clamp(src.Pix[off+1]+bias, 0, 255)
			b := clamp(src.Pix[off+2]+bias, 0, 255)
			out.SetColorIndex(x, y, uint8(palette.Nearest(r, g, b, pal)))
		}
	}
	return out
}
