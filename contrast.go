package retroconv

// adjustContrast spreads every channel around the mid-gray pivot:
// out = (in-128)*factor + 128, clamped to [0,255]. A factor of 1
// returns an identical copy. Runs before dithering so quantization
// sees the adjusted tones.
func adjustContrast(src *buffer, factor float32) *buffer {
	out := &buffer{W: src.W, H: src.H, Pix: make([]float32, len(src.Pix))}
	for i, v := range src.Pix {
		out.Pix[i] = clamp((v-128)*factor+128, 0, 255)
	}
	return out
}
