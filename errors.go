package retroconv

import (
	"errors"

	"github.com/setanarut/retroconv/palette"
)

var (
	ErrUnknownStyle     = errors.New("unknown style")
	ErrUnknownDither    = errors.New("unknown dither algorithm")
	ErrEmptyImage       = errors.New("empty image")
	ErrInvalidDimension = errors.New("invalid output dimension")
	ErrInvalidContrast  = errors.New("invalid contrast factor")

	// ErrUnknownPalette aliases the palette registry sentinel so callers
	// can match every conversion failure against this package alone.
	ErrUnknownPalette = palette.ErrUnknown
)
