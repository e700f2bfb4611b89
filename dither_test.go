package retroconv

import (
	"errors"
	"image/color"
	"testing"

	"github.com/setanarut/retroconv/palette"
)

func monoPalette(t *testing.T) color.Palette {
	t.Helper()
	pal, err := palette.Get("dotmatrix")
	if err != nil {
		t.Fatal(err)
	}
	return pal
}

func uniformBuffer(w, h int, v float32) *buffer {
	buf := &buffer{W: w, H: h, Pix: make([]float32, w*h*3)}
	for i := range buf.Pix {
		buf.Pix[i] = v
	}
	return buf
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"floyd_steinberg", FloydSteinberg, false},
		{"floyd-steinberg", FloydSteinberg, false},
		{"fs", FloydSteinberg, false},
		{"bayer", Bayer, false},
		{"ordered", Ordered, false},
		{"riemersma", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDither) {
				t.Errorf("ParseAlgorithm(%q) error = %v, want ErrUnknownDither", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}
}

func TestDiffusionReproducesMidGray(t *testing.T) {
	// A uniform mid-gray field dithered to black/white must come out
	// roughly balanced: spatial averaging stands in for the missing
	// tones.
	const size = 32
	out, err := Dither(uniformBuffer(size, size, 128), monoPalette(t), FloydSteinberg)
	if err != nil {
		t.Fatal(err)
	}
	white := 0
	for _, idx := range out.Pix {
		if idx == 1 {
			white++
		}
	}
	total := size * size
	if white == 0 || white == total {
		t.Fatalf("diffusion produced a flat field: %d/%d white", white, total)
	}
	mean := float64(white) * 255 / float64(total)
	if mean < 112 || mean > 144 {
		t.Errorf("dithered mean = %.1f, want within 128±16", mean)
	}
}

func TestOrderedIsPurePerPixel(t *testing.T) {
	pal := monoPalette(t)

	// Same value and position, different surroundings: the index at
	// the probed cell must not change.
	a := uniformBuffer(8, 8, 128)
	b := uniformBuffer(8, 8, 128)
	for i := range b.Pix {
		if i%3 == 0 && i != b.offset(2, 3) {
			b.Pix[i] = 250
		}
	}
	b.Pix[b.offset(2, 3)] = 128
	b.Pix[b.offset(2, 3)+1] = 128
	b.Pix[b.offset(2, 3)+2] = 128

	for _, algo := range []Algorithm{Bayer, Ordered} {
		outA, err := Dither(a, pal, algo)
		if err != nil {
			t.Fatal(err)
		}
		outB, err := Dither(b, pal, algo)
		if err != nil {
			t.Fatal(err)
		}
		if outA.ColorIndexAt(2, 3) != outB.ColorIndexAt(2, 3) {
			t.Errorf("%v: index at (2,3) depends on other pixels", algo)
		}
		again, err := Dither(a, pal, algo)
		if err != nil {
			t.Fatal(err)
		}
		for i := range outA.Pix {
			if outA.Pix[i] != again.Pix[i] {
				t.Fatalf("%v: repeated run differs at pixel %d", algo, i)
			}
		}
	}
}

func TestOrderedMidGrayMixesBothTones(t *testing.T) {
	const size = 32
	for _, algo := range []Algorithm{Bayer, Ordered} {
		out, err := Dither(uniformBuffer(size, size, 128), monoPalette(t), algo)
		if err != nil {
			t.Fatal(err)
		}
		white := 0
		for _, idx := range out.Pix {
			if idx == 1 {
				white++
			}
		}
		// Half the 16 matrix entries push mid-gray over the threshold.
		if white < 400 || white > 624 {
			t.Errorf("%v: %d/%d white pixels, want a near-even mix", algo, white, size*size)
		}
	}
}

func TestOrderedVariantsDiffer(t *testing.T) {
	// Same input, both ordered variants: the repeating patterns must
	// not be identical.
	out1, err := Dither(uniformBuffer(8, 8, 128), monoPalette(t), Bayer)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := Dither(uniformBuffer(8, 8, 128), monoPalette(t), Ordered)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range out1.Pix {
		if out1.Pix[i] != out2.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("bayer and ordered produced identical output")
	}
}

func TestDitherSinglePixel(t *testing.T) {
	pal := monoPalette(t)
	for _, algo := range []Algorithm{FloydSteinberg, Bayer, Ordered} {
		out, err := Dither(uniformBuffer(1, 1, 200), pal, algo)
		if err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if got := out.Bounds(); got.Dx() != 1 || got.Dy() != 1 {
			t.Errorf("%v: got %dx%d, want 1x1", algo, got.Dx(), got.Dy())
		}
		if idx := out.ColorIndexAt(0, 0); int(idx) >= len(pal) {
			t.Errorf("%v: index %d out of range", algo, idx)
		}
	}
}

func TestDitherEmptyBuffer(t *testing.T) {
	pal := monoPalette(t)
	for _, buf := range []*buffer{nil, {W: 0, H: 0}, {W: 4, H: 0}, {W: 0, H: 4}} {
		if _, err := Dither(buf, pal, FloydSteinberg); !errors.Is(err, ErrEmptyImage) {
			t.Errorf("Dither(%+v) error = %v, want ErrEmptyImage", buf, err)
		}
	}
}

func TestDiffusionDoesNotMutateInput(t *testing.T) {
	buf := uniformBuffer(8, 8, 100)
	if _, err := Dither(buf, monoPalette(t), FloydSteinberg); err != nil {
		t.Fatal(err)
	}
	for i, v := range buf.Pix {
		if v != 100 {
			t.Fatalf("input buffer mutated at %d: %v", i, v)
		}
	}
}
