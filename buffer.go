package retroconv

import "image"

// buffer is the working pixel grid handed between pipeline stages:
// interleaved RGB in [0,255], len = W*H*3. Stages return fresh buffers;
// only the diffusion ditherer mutates one, and then only its own clone.
type buffer struct {
	W, H int
	Pix  []float32
}

func newBuffer(img image.Image) *buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &buffer{
		W:   w,
		H:   h,
		Pix: make([]float32, w*h*3),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := buf.offset(x, y)
			buf.Pix[off] = float32(r >> 8)
			buf.Pix[off+1] = float32(g >> 8)
			buf.Pix[off+2] = float32(b >> 8)
		}
	}
	return buf
}

func (b *buffer) offset(x, y int) int {
	return (y*b.W + x) * 3
}

func (b *buffer) empty() bool {
	return b == nil || b.W <= 0 || b.H <= 0
}

func (b *buffer) clone() *buffer {
	pix := make([]float32, len(b.Pix))
	copy(pix, b.Pix)
	return &buffer{W: b.W, H: b.H, Pix: pix}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
