package anaglyph

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a sampled address would fall outside
// the input buffer.
var ErrIndexOutOfRange = errors.New("anaglyph: sample index out of range")

// GeometryError reports an offset that leaves no output pixels.
type GeometryError struct {
	Width, Height    int // input dimensions
	OffsetX, OffsetY int // requested (unhalved) offsets
}

func (e *GeometryError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("anaglyph: invalid input dimensions %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("anaglyph: offset (%d,%d) leaves an empty %dx%d output for %dx%d input",
		e.OffsetX, e.OffsetY, e.Width-abs(e.OffsetX/2), e.Height-abs(e.OffsetY/2), e.Width, e.Height)
}
