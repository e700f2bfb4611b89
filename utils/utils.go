// Package utils provides the image file helpers used by the retroconv
// command. The conversion core never touches the filesystem; decoding
// and encoding live here, on the shell side of the boundary.
package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ReadImage decodes a GIF, JPEG or PNG file.
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// SaveImage encodes img to path, picking the format from the file
// extension. Unknown extensions fall back to PNG.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return gif.Encode(f, img, &gif.Options{NumColors: 256})
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(f, img)
	}
}

// SavePalette writes a horizontal swatch strip of the palette, one
// tileSize square per entry.
func SavePalette(pal color.Palette, tileSize int, path string) error {
	if len(pal) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(pal)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range pal {
		r, g, b, _ := c.RGBA()
		rgba := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
		x0 := i * tileSize
		for y := 0; y < h; y++ {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, rgba)
			}
		}
	}
	return SaveImage(img, path)
}
