package icon

import (
	"image"
	"image/color"
	"testing"
)

// solidNRGBA builds a fully opaque single-color test source.
func solidNRGBA(t *testing.T, w, h int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func TestCompose_CentersSmallSource(t *testing.T) {
	canvas := Compose(solidNRGBA(t, 400, 400))

	b := canvas.Bounds()
	if b.Dx() != BaseSize || b.Dy() != BaseSize {
		t.Fatalf("canvas is %dx%d, want %dx%d", b.Dx(), b.Dy(), BaseSize, BaseSize)
	}

	margin := (BaseSize - 400) / 2
	if a := canvas.NRGBAAt(margin-1, BaseSize/2).A; a != 0 {
		t.Errorf("pixel left of the source is not transparent (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(margin, BaseSize/2).A; a != 255 {
		t.Errorf("left edge of the source is not opaque (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(margin+399, BaseSize/2).A; a != 255 {
		t.Errorf("right edge of the source is not opaque (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(margin+400, BaseSize/2).A; a != 0 {
		t.Errorf("pixel right of the source is not transparent (alpha %d)", a)
	}
}

func TestCompose_DoesNotUpscale(t *testing.T) {
	canvas := Compose(solidNRGBA(t, 100, 50))

	mx := (BaseSize - 100) / 2
	my := (BaseSize - 50) / 2

	// Embedded at native resolution, so the color survives untouched
	got := canvas.NRGBAAt(mx+50, my+25)
	want := color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	if got != want {
		t.Errorf("center pixel is %v, want %v", got, want)
	}
	if a := canvas.NRGBAAt(mx+100, my+25).A; a != 0 {
		t.Errorf("border right of the source is not transparent (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(mx+50, my-1).A; a != 0 {
		t.Errorf("border above the source is not transparent (alpha %d)", a)
	}
}

func TestCompose_PreservesAspectRatio(t *testing.T) {
	// 2:1 source twice the canvas width scales to 1024x512
	canvas := Compose(solidNRGBA(t, 2048, 1024))

	if a := canvas.NRGBAAt(0, BaseSize/2).A; a != 255 {
		t.Errorf("scaled source should span the full width (alpha %d at x=0)", a)
	}
	top := (BaseSize - 512) / 2
	if a := canvas.NRGBAAt(BaseSize/2, top-1).A; a != 0 {
		t.Errorf("pixel above the scaled source is not transparent (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(BaseSize/2, top).A; a != 255 {
		t.Errorf("top edge of the scaled source is not opaque (alpha %d)", a)
	}
	if a := canvas.NRGBAAt(BaseSize/2, top+512).A; a != 0 {
		t.Errorf("pixel below the scaled source is not transparent (alpha %d)", a)
	}
}

func TestScale_ProducesExactSquares(t *testing.T) {
	canvas := Compose(solidNRGBA(t, 400, 400))
	for _, s := range Sizes {
		out := Scale(canvas, s)
		b := out.Bounds()
		if b.Dx() != s || b.Dy() != s {
			t.Errorf("size %d: got %dx%d", s, b.Dx(), b.Dy())
		}
	}
}
