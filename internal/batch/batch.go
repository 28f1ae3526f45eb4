package batch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/JPM1118/spritegen/internal/palette"
	"github.com/JPM1118/spritegen/internal/sprites"
)

// DefaultOutDir is where sprites land when no directory is given.
const DefaultOutDir = "assets/sprites/generated/"

// Options describes one batch run.
type Options struct {
	Kind    sprites.Kind
	Palette string
	Size    int
	Count   int
	Scale   int
	Density float64
	OutDir  string
}

// Result describes one written sprite.
type Result struct {
	Name  string
	Path  string
	Bytes int64
}

// KB returns the file size in kilobytes.
func (r Result) KB() float64 {
	return float64(r.Bytes) / 1024
}

// Validate rejects options that would fail partway through a run.
// Sizes are deliberately not checked: degenerate sizes produce
// degenerate sprites.
func (o Options) Validate() error {
	if _, err := sprites.ParseKind(string(o.Kind)); err != nil {
		return err
	}
	if err := palette.Validate(o.Palette); err != nil {
		return err
	}
	if o.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", o.Count)
	}
	if o.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", o.Scale)
	}
	if o.Density < 0 || o.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %g", o.Density)
	}
	return nil
}

// Params returns the generator parameters for o. Call Validate first.
func (o Options) Params() sprites.Params {
	return sprites.Params{
		Kind:    o.Kind,
		Size:    o.Size,
		Palette: palette.MustLookup(o.Palette),
		Density: o.Density,
	}
}

// FileName returns the on-disk name of the index-th sprite of a batch.
func FileName(kind sprites.Kind, paletteName string, index int) string {
	return fmt.Sprintf("%s_%s_%03d.png", kind, paletteName, index)
}

// Render generates one sprite and applies the scale factor.
func Render(p sprites.Params, scale int, rng sprites.Stream) (*image.NRGBA, error) {
	img, err := sprites.Generate(p, rng)
	if err != nil {
		return nil, err
	}
	return sprites.Upscale(img, scale), nil
}

// Run generates opts.Count sprites from rng in order and writes each one to
// opts.OutDir, reporting progress to out. The first failure aborts the run;
// files already written are left in place.
func Run(opts Options, rng sprites.Stream, out io.Writer) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.OutDir == "" {
		opts.OutDir = DefaultOutDir
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	r := newReporter(out)
	r.start(opts)

	params := opts.Params()
	results := make([]Result, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		img, err := Render(params, opts.Scale, rng)
		if err != nil {
			return results, fmt.Errorf("generate %s sprite %d: %w", opts.Kind, i, err)
		}

		name := FileName(opts.Kind, opts.Palette, i)
		path := filepath.Join(opts.OutDir, name)
		n, err := Save(path, img)
		if err != nil {
			return results, err
		}

		res := Result{Name: name, Path: path, Bytes: n}
		results = append(results, res)
		r.wrote(res)
	}

	r.done(len(results), opts.OutDir)
	return results, nil
}

// Save encodes img as PNG at path and returns the number of bytes written.
func Save(path string, img image.Image) (int64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return int64(buf.Len()), nil
}
