package imgload

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens the source image at path and normalizes it to a 4-channel
// NRGBA representation. Sources without an alpha channel come back fully
// opaque. SVG sources are rasterized at their declared viewbox size; all
// other formats go through the registered decoders.
func Load(path string) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img in non-premultiplied RGBA form, copying only when
// the underlying representation differs.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func loadSVG(path string) (*image.NRGBA, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	svg, err := oksvg.ReadIconStream(in)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	w, h := int(svg.ViewBox.W), int(svg.ViewBox.H)
	if w <= 0 || h <= 0 {
		// No usable viewbox; rasterize at the base icon resolution.
		w, h = 1024, 1024
	}
	svg.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return ToNRGBA(rgba), nil
}

// Info describes a source image without decoding its pixels.
type Info struct {
	Width    int
	Height   int
	Format   string // registered decoder name, or "svg"
	HasAlpha bool
}

// GetInfo reads header-level metadata for the image at path. SVG sources
// are fully rasterized since they carry no decodable header.
func GetInfo(path string) (*Info, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err := loadSVG(path)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		return &Info{Width: b.Dx(), Height: b.Dy(), Format: "svg", HasAlpha: true}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Info{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Format:   format,
		HasAlpha: modelHasAlpha(cfg.ColorModel),
	}, nil
}

func modelHasAlpha(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
