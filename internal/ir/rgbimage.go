package ir

import "fmt"

// RGBImage is the intermediate representation passed between the codec and
// the anaglyph compositor. Pixels are stored as interleaved R,G,B bytes
// (3 bytes per pixel, row-major order).
type RGBImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

// NewRGBImage allocates a zeroed width x height RGB buffer.
func NewRGBImage(width, height int) *RGBImage {
	return &RGBImage{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*3),
	}
}

// Validate checks that the buffer length matches the declared dimensions.
func (m *RGBImage) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", m.Width, m.Height)
	}
	if expected := m.Width * m.Height * 3; len(m.Pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d RGB, got %d", expected, m.Width, m.Height, len(m.Pixels))
	}
	return nil
}
