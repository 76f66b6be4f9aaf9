package picture

import (
	"encoding/binary"
	"math"
)

// Rect is an axis-aligned rectangle. Min is the top-left corner (minimum
// coordinates); Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// NewRectFromPoints creates a rectangle from two corner points, normalized
// so Min <= Max.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// X returns the left edge of the rectangle.
func (r Rect) X() float64 { return r.MinX }

// Y returns the top edge of the rectangle.
func (r Rect) Y() float64 { return r.MinY }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Intersect returns the intersection of r and other, or an empty
// rectangle if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	result := Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}
	if result.IsEmpty() {
		return Rect{}
	}
	return result
}

// SizeHint returns the number of bytes WriteTo appends for this rectangle:
// four 32-bit floats (left, top, right, bottom).
func (r Rect) SizeHint() int { return 16 }

// WriteTo appends the rectangle's serialized form to buf.
func (r Rect) WriteTo(buf []byte) []byte {
	buf = appendF32(buf, float32(r.MinX))
	buf = appendF32(buf, float32(r.MinY))
	buf = appendF32(buf, float32(r.MaxX))
	buf = appendF32(buf, float32(r.MaxY))
	return buf
}

// IRect is an axis-aligned rectangle with integer bounds, used where a
// format wants exact pixel columns/rows rather than sub-pixel floats —
// the center patch of a nine-patch bitmap draw, for instance.
type IRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewIRect creates an integer rectangle from position and size.
func NewIRect(x, y, width, height int) IRect {
	return IRect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// SizeHint returns the number of bytes WriteTo appends for this
// rectangle: four 32-bit integers (left, top, right, bottom).
func (r IRect) SizeHint() int { return 16 }

// WriteTo appends the rectangle's serialized form to buf.
func (r IRect) WriteTo(buf []byte) []byte {
	buf = appendU32(buf, uint32(int32(r.MinX)))
	buf = appendU32(buf, uint32(int32(r.MinY)))
	buf = appendU32(buf, uint32(int32(r.MaxX)))
	buf = appendU32(buf, uint32(int32(r.MaxY)))
	return buf
}

// appendF32 appends the little-endian IEEE-754 bits of f to buf.
func appendF32(buf []byte, f float32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(f))
	return append(buf, tmp[:]...)
}

// appendU32 appends v to buf as a little-endian 32-bit word.
func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}
