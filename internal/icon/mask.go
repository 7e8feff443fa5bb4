package icon

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// AutoRadius derives the corner radius for an edge length when no explicit
// radius was supplied: 20% of the edge, rounded to the nearest pixel.
func AutoRadius(edge int) int {
	return int(math.Round(0.2 * float64(edge)))
}

// RoundCorners returns a copy of img whose alpha channel is replaced by a
// rounded-rectangle mask of the given radius. The mask overwrites any
// existing alpha rather than multiplying with it. img itself is never
// modified. A radius ≤ 0 returns img unchanged.
func RoundCorners(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := cornerMask(w, h, radius)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, img.Pix)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x*4+3] = mask.Pix[y*mask.Stride+x]
		}
	}
	return out
}

// cornerMask rasterizes a filled rounded rectangle covering the whole w×h
// box and collapses the anti-aliased coverage to a two-level (0/255) mask.
func cornerMask(w, h, radius int) *image.Alpha {
	// A radius beyond half the smallest dimension would make the path
	// self-intersect and fill the whole box; clamp it like Pillow does.
	if r := min(w, h) / 2; radius > r {
		radius = r
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.Fill()

	mask := dc.AsMask()
	for i, v := range mask.Pix {
		if v >= 128 {
			mask.Pix[i] = 255
		} else {
			mask.Pix[i] = 0
		}
	}
	return mask
}
