package retroconv

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// resampleTo scales src to the requested size with Lanczos filtering,
// which averages detail on downscale instead of aliasing hard edges.
// A height of 0 derives the height from the source aspect ratio.
func resampleTo(src image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return resize.Resize(uint(width), uint(height), src, resize.Lanczos3), nil
}
