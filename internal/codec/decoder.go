package codec

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/davesmith10/anaglyph/internal/ir"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered raster format and returns its pixels as RGB8
// together with the format name. Alpha is discarded.
func Decode(r io.Reader) (*ir.RGBImage, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, format, &DecodeError{Err: errors.New("image has no pixels")}
	}
	return toRGB(src), format, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (*ir.RGBImage, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &DecodeError{Path: path, Err: err}
	}
	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		var derr *DecodeError
		if errors.As(err, &derr) {
			derr.Path = path
		}
		return nil, format, err
	}
	return img, format, nil
}

// toRGB copies src into a tightly packed RGB buffer anchored at (0,0).
func toRGB(src image.Image) *ir.RGBImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(nrgba, nrgba.Bounds(), src, b.Min, xdraw.Src)
	}

	out := ir.NewRGBImage(w, h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		dst := out.Pixels[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			dst[3*x] = row[4*x]
			dst[3*x+1] = row[4*x+1]
			dst[3*x+2] = row[4*x+2]
		}
	}
	return out
}
