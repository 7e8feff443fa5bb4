package pipeline

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Binkle/DefaultApplication/internal/icon"
	"github.com/Binkle/DefaultApplication/internal/imgload"
)

// Options controls a single icon generation run.
type Options struct {
	Rounded bool   // apply rounded-corner mask to every output
	Radius  int    // explicit corner radius; 0 derives 20% of each edge
	OutDir  string // destination directory for the PNG set
}

// Result holds the output of a run.
type Result struct {
	OutDir    string
	Files     []string // written file names, in write order
	SrcWidth  int
	SrcHeight int
}

// Run executes the full conversion: load → compose → mask → export.
// Writes icon.png plus one {s}x{s}.png per entry in icon.Sizes.
func Run(srcPath string, opts Options) (*Result, error) {
	// 1. Load the source and normalize to 4-channel
	src, err := imgload.Load(srcPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// 2. Center on the transparent base canvas
	canvas := icon.Compose(src)
	if opts.Rounded {
		canvas = icon.RoundCorners(canvas, radiusFor(opts, icon.BaseSize))
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", opts.OutDir, err)
	}

	res := &Result{
		OutDir:    opts.OutDir,
		SrcWidth:  src.Bounds().Dx(),
		SrcHeight: src.Bounds().Dy(),
	}

	// 3. Write the full-resolution base
	if err := writePNG(filepath.Join(opts.OutDir, "icon.png"), canvas); err != nil {
		return nil, fmt.Errorf("writing icon.png: %w", err)
	}
	res.Files = append(res.Files, "icon.png")

	// 4. Write each sized variant, re-masking at that scale.
	// An explicit radius applies verbatim at every size; only the derived
	// radius scales with the edge length.
	for _, s := range icon.Sizes {
		out := icon.Scale(canvas, s)
		if opts.Rounded {
			out = icon.RoundCorners(out, radiusFor(opts, s))
		}
		name := fmt.Sprintf("%dx%d.png", s, s)
		if err := writePNG(filepath.Join(opts.OutDir, name), out); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
	}

	return res, nil
}

func radiusFor(opts Options, edge int) int {
	if opts.Radius > 0 {
		return opts.Radius
	}
	return icon.AutoRadius(edge)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
