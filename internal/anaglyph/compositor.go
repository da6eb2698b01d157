package anaglyph

import (
	"fmt"

	"github.com/davesmith10/anaglyph/internal/color"
	"github.com/davesmith10/anaglyph/internal/ir"
)

// Compositor pairs an immutable geometry and filter pair with a read-only
// view of the input image.
type Compositor struct {
	in       *ir.RGBImage
	geom     Geometry
	colors   color.ColorPair
	coloring color.Coloring
}

// New validates the offsets against img and returns a compositor for it.
// img is borrowed and never written.
func New(img *ir.RGBImage, offsetX, offsetY int, coloring color.Coloring) (*Compositor, error) {
	geom, err := NewGeometry(img.Width, img.Height, offsetX, offsetY)
	if err != nil {
		return nil, err
	}
	return &Compositor{
		in:       img,
		geom:     geom,
		colors:   coloring.Pair(),
		coloring: coloring,
	}, nil
}

// Geometry returns the sampling layout.
func (c *Compositor) Geometry() Geometry { return c.geom }

// Colors returns the filter pair.
func (c *Compositor) Colors() color.ColorPair { return c.colors }

// At returns output byte i. Bounds are only checked by Composite.
func (c *Compositor) At(i int) byte {
	a, b := c.geom.Sample(i)
	ch := i % 3
	return blend(c.in.Pixels[a], c.in.Pixels[b], c.colors.Left[ch], c.colors.Right[ch])
}

// Composite allocates the output image and fills it byte by byte.
func (c *Compositor) Composite() (*ir.RGBImage, error) {
	if err := c.checkBounds(); err != nil {
		return nil, err
	}

	Logger().Debug("anaglyph: compositing",
		"direction", c.geom.Direction.String(),
		"coloring", c.coloring.String(),
		"in", c.geom.InLen(),
		"out", c.geom.OutLen())

	out := ir.NewRGBImage(c.geom.OutWidth, c.geom.OutHeight)
	for i := range out.Pixels {
		out.Pixels[i] = c.At(i)
	}
	return out, nil
}

// checkBounds verifies the input buffer and the furthest sampled address
// before anything is allocated. Sample indices grow with i, so the last
// output byte yields the largest ones.
func (c *Compositor) checkBounds() error {
	if len(c.in.Pixels) != c.geom.InLen() {
		return fmt.Errorf("%w: input buffer has %d bytes, %dx%d RGB needs %d",
			ErrIndexOutOfRange, len(c.in.Pixels), c.geom.InWidth, c.geom.InHeight, c.geom.InLen())
	}
	a, b := c.geom.Sample(c.geom.OutLen() - 1)
	if hi := max(a, b); hi >= len(c.in.Pixels) {
		return fmt.Errorf("%w: index %d, buffer length %d", ErrIndexOutOfRange, hi, len(c.in.Pixels))
	}
	return nil
}

// Composite builds the anaglyph of img in one call.
func Composite(img *ir.RGBImage, offsetX, offsetY int, coloring color.Coloring) (*ir.RGBImage, error) {
	c, err := New(img, offsetX, offsetY, coloring)
	if err != nil {
		return nil, err
	}
	return c.Composite()
}

// blend weights each sample by its filter channel and halves the sum. The
// float-to-byte conversion truncates. The explicit float32 conversions
// forbid a fused multiply-add.
func blend(a, b byte, left, right float32) byte {
	return byte(float32(float32(a)*left*0.5) + float32(float32(b)*right*0.5))
}
