package icon

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/Binkle/DefaultApplication/internal/imgload"
)

// BaseSize is the edge length of the full-resolution icon canvas.
const BaseSize = 1024

// Sizes lists the edge lengths of the exported icon variants, ascending.
var Sizes = []int{32, 128, 256, 512, 1024}

// Compose centers src on a BaseSize×BaseSize transparent canvas. Sources
// larger than the canvas are downscaled to fit with aspect ratio preserved;
// smaller sources keep their native resolution and get a transparent border.
func Compose(src *image.NRGBA) *image.NRGBA {
	scaled := resize.Thumbnail(BaseSize, BaseSize, src, resize.Lanczos3)

	canvas := image.NewNRGBA(image.Rect(0, 0, BaseSize, BaseSize))
	b := scaled.Bounds()
	x := (BaseSize - b.Dx()) / 2
	y := (BaseSize - b.Dy()) / 2
	// Over keeps transparent source pixels transparent on the canvas.
	draw.Draw(canvas, image.Rect(x, y, x+b.Dx(), y+b.Dy()), scaled, b.Min, draw.Over)

	return canvas
}

// Scale resizes img to an exact edge×edge square using Lanczos resampling.
func Scale(img *image.NRGBA, edge int) *image.NRGBA {
	return imgload.ToNRGBA(resize.Resize(uint(edge), uint(edge), img, resize.Lanczos3))
}
