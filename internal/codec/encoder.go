package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/davesmith10/anaglyph/internal/ir"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG quality used when Options.Quality is zero.
const DefaultQuality = 90

// Options controls encoding.
type Options struct {
	Quality int // JPEG quality (1-100); 0 selects DefaultQuality
}

func (o Options) quality() int {
	switch {
	case o.Quality <= 0:
		return DefaultQuality
	case o.Quality > 100:
		return 100
	default:
		return o.Quality
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *ir.RGBImage, format Format, opts Options) error {
	if err := img.Validate(); err != nil {
		return &EncodeError{Err: err}
	}
	m := toRGBA(img)

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, m)
	case JPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: opts.quality()})
	case BMP:
		err = bmp.Encode(w, m)
	case TIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// EncodeFile encodes img into the format implied by path's extension and
// writes it to path.
func EncodeFile(path string, img *ir.RGBImage, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		var eerr *EncodeError
		if errors.As(err, &eerr) {
			eerr.Path = path
		}
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// toRGBA expands the RGB buffer into an opaque *image.RGBA.
func toRGBA(img *ir.RGBImage) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i < len(img.Pixels); i, j = i+3, j+4 {
		m.Pix[j] = img.Pixels[i]
		m.Pix[j+1] = img.Pixels[i+1]
		m.Pix[j+2] = img.Pixels[i+2]
		m.Pix[j+3] = 0xff
	}
	return m
}
