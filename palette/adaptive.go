package palette

import (
	"image"
	"image/color"
	"math"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// ExtractMethod selects how an adaptive palette is pulled out of a
// source image.
type ExtractMethod int

const (
	ExtractDominant ExtractMethod = iota
	ExtractKMeans
)

func (m ExtractMethod) String() string {
	if m == ExtractKMeans {
		return "kmeans"
	}
	return "dominantcolor"
}

type weighted struct {
	col colorful.Color
	w   float64
}

// Extract derives a k-entry palette from the image. The result is
// ordered darkest-first and never exceeds k entries; it may be shorter
// for images with very few distinct colors. A nil return means the
// image yielded no usable samples.
func Extract(img image.Image, k int, method ExtractMethod) color.Palette {
	if img == nil || k <= 0 {
		return nil
	}
	var picked []colorful.Color
	if method == ExtractKMeans {
		picked = extractKMeans(img, k)
	}
	if len(picked) == 0 {
		picked = extractDominant(img, k)
	}
	if len(picked) == 0 {
		return nil
	}
	pal := make(color.Palette, len(picked))
	for i, c := range picked {
		r, g, b := c.Clamped().RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	SortByBrightness(pal)
	return pal
}

func extractDominant(img image.Image, k int) []colorful.Color {
	candidates := dominantcolor.FindWeight(img, max(24, k*4))
	cands := make([]weighted, 0, len(candidates))
	for _, c := range candidates {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		cands = append(cands, weighted{col: col.Clamped(), w: max(c.Weight, 1e-6)})
	}
	return pickDiverse(cands, k)
}

func extractKMeans(img image.Image, k int) []colorful.Color {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	// Subsample so kmeans stays tractable on large inputs.
	const maxSamples = 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/maxSamples)) + 1
	}
	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	workK := min(k*3, len(dataset))
	if workK <= 0 {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}
	cands := make([]weighted, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		cands = append(cands, weighted{col: col, w: float64(len(c.Observations))})
	}
	return pickDiverse(cands, k)
}

// pickDiverse greedily selects k candidates, seeding with the heaviest
// one and then scoring the rest by Lab distance to the current
// selection weighted toward frequent colors.
func pickDiverse(cands []weighted, k int) []colorful.Color {
	if len(cands) == 0 || k <= 0 {
		return nil
	}
	k = min(k, len(cands))

	maxW := 0.0
	labs := make([][3]float64, len(cands))
	for i, c := range cands {
		l, a, b := c.col.Lab()
		labs[i] = [3]float64{l, a, b}
		maxW = max(maxW, c.w)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	seed := 0
	for i := range cands {
		if cands[i].w > cands[seed].w {
			seed = i
		}
	}
	chosen := make([]int, 1, k)
	chosen[0] = seed
	taken := make([]bool, len(cands))
	taken[seed] = true

	for len(chosen) < k {
		best, bestScore := -1, -1.0
		for i := range cands {
			if taken[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range chosen {
				d0 := labs[i][0] - labs[s][0]
				d1 := labs[i][1] - labs[s][1]
				d2 := labs[i][2] - labs[s][2]
				minD2 = min(minD2, d0*d0+d1*d1+d2*d2)
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(cands[i].w/maxW))
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		chosen = append(chosen, best)
	}

	out := make([]colorful.Color, len(chosen))
	for i, idx := range chosen {
		out[i] = cands[idx].col
	}
	return out
}
