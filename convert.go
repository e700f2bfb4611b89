package retroconv

import (
	"fmt"
	"image"
	"image/color"

	"github.com/setanarut/retroconv/palette"
)

// AdaptivePalette is the palette name that derives a 16-color palette
// from the source image instead of using a fixed table.
const AdaptivePalette = "adaptive"

// Options overlays caller choices onto a style profile. Zero values
// keep the profile default.
type Options struct {
	Width    int
	Height   int
	Contrast float64
	Dither   string // algorithm name, see ParseAlgorithm
	Palette  string // palette name, or AdaptivePalette
}

// Convert runs the full pipeline on src for the named style:
// resample, contrast, palette selection, dither. The returned
// image.Paletted is the indexed grid; its Palette field is the palette
// that was used. Convert never writes files or touches the console.
func Convert(src image.Image, style string, opt Options) (*image.Paletted, error) {
	prof, ok := profiles[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if src == nil || src.Bounds().Dx() <= 0 || src.Bounds().Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	width, height := prof.Width, prof.Height
	if opt.Width != 0 {
		if opt.Width < 0 {
			return nil, fmt.Errorf("%w: width %d", ErrInvalidDimension, opt.Width)
		}
		width = opt.Width
	}
	if opt.Height != 0 {
		if opt.Height < 0 {
			return nil, fmt.Errorf("%w: height %d", ErrInvalidDimension, opt.Height)
		}
		height = opt.Height
	}

	contrast := prof.Contrast
	if opt.Contrast != 0 {
		contrast = opt.Contrast
	}
	if contrast <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidContrast, contrast)
	}

	algo := prof.Dither
	if opt.Dither != "" {
		var err error
		if algo, err = ParseAlgorithm(opt.Dither); err != nil {
			return nil, err
		}
	}

	resized, err := resampleTo(src, width, height)
	if err != nil {
		return nil, err
	}

	pal, err := resolvePalette(prof, opt, resized)
	if err != nil {
		return nil, err
	}

	buf := adjustContrast(newBuffer(resized), float32(contrast))
	return Dither(buf, pal, algo)
}

func resolvePalette(prof Profile, opt Options, resized image.Image) (color.Palette, error) {
	name := prof.Palette
	if opt.Palette != "" {
		name = opt.Palette
	}
	if name != AdaptivePalette {
		return palette.Get(name)
	}
	pal := palette.Extract(resized, 16, palette.ExtractKMeans)
	if len(pal) == 0 {
		return nil, fmt.Errorf("%w: adaptive extraction yielded no colors", ErrUnknownPalette)
	}
	return pal, nil
}
