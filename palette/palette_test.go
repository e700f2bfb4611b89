package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"gameboy", 4, false},
		{"dotmatrix", 2, false},
		{"cga", 16, false},
		{"apple2", 16, false},
		{"c64", 16, false},
		{"spectrum", 16, false},
		{"nonexistent", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pal, err := Get(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknown) {
					t.Fatalf("Get(%q) error = %v, want ErrUnknown", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) unexpected error: %v", tt.name, err)
			}
			if len(pal) != tt.size {
				t.Errorf("Get(%q) returned %d entries, want %d", tt.name, len(pal), tt.size)
			}
		})
	}
}

func TestPaletteEntriesDistinct(t *testing.T) {
	for _, name := range Names() {
		pal, err := Get(name)
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[[3]uint32]int, len(pal))
		for i, c := range pal {
			r, g, b, _ := c.RGBA()
			key := [3]uint32{r, g, b}
			if prev, ok := seen[key]; ok {
				t.Errorf("palette %q: entries %d and %d are identical", name, prev, i)
			}
			seen[key] = i
		}
	}
}

func TestNearestInRangeAndDeterministic(t *testing.T) {
	pal, err := Get("cga")
	if err != nil {
		t.Fatal(err)
	}
	probes := [][3]float32{
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{300, -40, 17.5}, {170, 85, 0}, {12, 200, 99},
	}
	for _, p := range probes {
		first := Nearest(p[0], p[1], p[2], pal)
		if first < 0 || first >= len(pal) {
			t.Fatalf("Nearest(%v) = %d, out of range", p, first)
		}
		if again := Nearest(p[0], p[1], p[2], pal); again != first {
			t.Errorf("Nearest(%v) not deterministic: %d then %d", p, first, again)
		}
	}
}

func TestNearestExactMatch(t *testing.T) {
	pal, err := Get("c64")
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range pal {
		r, g, b, _ := c.RGBA()
		got := Nearest(float32(r>>8), float32(g>>8), float32(b>>8), pal)
		if got != i {
			t.Errorf("Nearest of entry %d returned %d", i, got)
		}
	}
}

func TestNearestTieBreaksToFirst(t *testing.T) {
	// Two identical entries: the earlier one must win.
	pal := color.Palette{
		color.RGBA{R: 10, G: 10, B: 10, A: 255},
		color.RGBA{R: 10, G: 10, B: 10, A: 255},
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
	if got := Nearest(12, 12, 12, pal); got != 0 {
		t.Errorf("Nearest tie-break = %d, want 0", got)
	}
}

func TestSortByBrightness(t *testing.T) {
	pal := color.Palette{
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		color.RGBA{R: 0, G: 0, B: 0, A: 255},
		color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
	SortByBrightness(pal)
	for i := 1; i < len(pal); i++ {
		if luminance(pal[i-1]) > luminance(pal[i]) {
			t.Fatalf("palette not ordered darkest-first at index %d", i)
		}
	}
	r, g, b, _ := pal[0].RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("darkest entry is not black: %d %d %d", r, g, b)
	}
}
