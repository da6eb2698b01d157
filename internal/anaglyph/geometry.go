package anaglyph

// Direction is the quadrant the shifted viewpoint moves toward.
type Direction int

const (
	BottomRight Direction = iota
	TopRight
	BottomLeft
	TopLeft
)

func (d Direction) String() string {
	switch d {
	case BottomRight:
		return "bottom-right"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case TopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// DirectionOf classifies halved offsets by sign. Zero counts as positive.
func DirectionOf(offsetX, offsetY int) Direction {
	switch {
	case offsetX >= 0 && offsetY >= 0:
		return BottomRight
	case offsetX >= 0:
		return TopRight
	case offsetY >= 0:
		return BottomLeft
	default:
		return TopLeft
	}
}

// Geometry is the sampling layout derived from the input size and the
// requested offsets.
type Geometry struct {
	OffsetX, OffsetY int // halved, signed
	Direction        Direction

	InWidth, InHeight   int
	OutWidth, OutHeight int

	dx, dy int // |OffsetX|, |OffsetY|
}

// NewGeometry halves the requested offsets (truncating toward zero) and
// crops the output by their absolute values. It fails with a *GeometryError
// when the output would be empty.
func NewGeometry(width, height, offsetX, offsetY int) (Geometry, error) {
	ox, oy := offsetX/2, offsetY/2
	g := Geometry{
		OffsetX:   ox,
		OffsetY:   oy,
		Direction: DirectionOf(ox, oy),
		InWidth:   width,
		InHeight:  height,
		OutWidth:  width - abs(ox),
		OutHeight: height - abs(oy),
		dx:        abs(ox),
		dy:        abs(oy),
	}
	if width <= 0 || height <= 0 || g.OutWidth <= 0 || g.OutHeight <= 0 {
		return Geometry{}, &GeometryError{Width: width, Height: height, OffsetX: offsetX, OffsetY: offsetY}
	}
	return g, nil
}

// InLen is the number of bytes in the input buffer.
func (g Geometry) InLen() int { return g.InWidth * g.InHeight * 3 }

// OutLen is the number of bytes in the output buffer.
func (g Geometry) OutLen() int { return g.OutWidth * g.OutHeight * 3 }

// Sample returns the input indices blended into output byte i: a pairs with
// the left filter, b with the right one. The shift is split into a row term
// (dy whole input lines) and a column term (dx pixels per output row, taken
// at row or row+1). No bounds checking is done.
func (g Geometry) Sample(i int) (a, b int) {
	row := i / (g.OutWidth * 3)
	rowTerm := g.dy * g.InWidth
	near := g.dx * row
	far := g.dx * (row + 1)

	switch g.Direction {
	case BottomRight:
		return i + 3*(rowTerm+far), i + 3*near
	case TopRight:
		return i + 3*far, i + 3*(rowTerm+near)
	case BottomLeft:
		return i + 3*(rowTerm+near), i + 3*far
	default:
		return i + 3*near, i + 3*(rowTerm+far)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
