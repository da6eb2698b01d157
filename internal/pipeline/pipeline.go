package pipeline

import (
	"bytes"
	"fmt"

	"github.com/davesmith10/anaglyph/internal/anaglyph"
	"github.com/davesmith10/anaglyph/internal/codec"
	"github.com/davesmith10/anaglyph/internal/color"
	"github.com/davesmith10/anaglyph/internal/ir"
)

// Options controls the full image→anaglyph pipeline.
type Options struct {
	OffsetX  int            // horizontal parallax in pixels, halved per viewpoint
	OffsetY  int            // vertical parallax in pixels, halved per viewpoint
	Coloring color.Coloring // filter pair
	Quality  int            // JPEG quality (1-100), ignored by lossless formats
}

// Result holds the output of a pipeline run.
type Result struct {
	Data      []byte // encoded anaglyph; nil for Compose
	Direction anaglyph.Direction
	SrcWidth  int
	SrcHeight int
	OutWidth  int
	OutHeight int
}

// Compose reads inputPath, builds the anaglyph and writes it to outputPath
// in the format implied by its extension.
func Compose(inputPath, outputPath string, opts Options) (*Result, error) {
	// 1. Decode
	src, _, err := codec.DecodeFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Composite
	out, dir, err := composite(src, opts)
	if err != nil {
		return nil, err
	}

	// 3. Encode
	if err := codec.EncodeFile(outputPath, out, codec.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return newResult(nil, dir, src, out), nil
}

// Run executes the pipeline in memory: decode → composite → encode.
func Run(data []byte, format codec.Format, opts Options) (*Result, error) {
	src, _, err := codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out, dir, err := composite(src, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, out, format, codec.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return newResult(buf.Bytes(), dir, src, out), nil
}

// Raw decodes inputPath and returns the unencoded anaglyph pixels.
func Raw(inputPath string, opts Options) (*ir.RGBImage, *Result, error) {
	src, _, err := codec.DecodeFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	out, dir, err := composite(src, opts)
	if err != nil {
		return nil, nil, err
	}
	return out, newResult(nil, dir, src, out), nil
}

func composite(src *ir.RGBImage, opts Options) (*ir.RGBImage, anaglyph.Direction, error) {
	c, err := anaglyph.New(src, opts.OffsetX, opts.OffsetY, opts.Coloring)
	if err != nil {
		return nil, 0, fmt.Errorf("composite: %w", err)
	}
	out, err := c.Composite()
	if err != nil {
		return nil, 0, fmt.Errorf("composite: %w", err)
	}
	return out, c.Geometry().Direction, nil
}

func newResult(data []byte, dir anaglyph.Direction, src, out *ir.RGBImage) *Result {
	return &Result{
		Data:      data,
		Direction: dir,
		SrcWidth:  src.Width,
		SrcHeight: src.Height,
		OutWidth:  out.Width,
		OutHeight: out.Height,
	}
}
