package picture

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Matrix is a pure serialization carrier in this package: a Recorder
// caller builds whatever matrix it wants by its own means and hands it
// to Concat/SetMatrix/DrawBitmapMatrix/DrawTextOnPath, which record its
// six components via WriteTo without multiplying, inverting, or
// otherwise interpreting them.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// SizeHint returns the number of bytes WriteTo appends for this matrix:
// six 32-bit floats (a, b, c, d, e, f).
func (m Matrix) SizeHint() int { return 24 }

// WriteTo appends the matrix's serialized form to buf, in row-major
// a, b, c, d, e, f order.
func (m Matrix) WriteTo(buf []byte) []byte {
	buf = appendF32(buf, float32(m.A))
	buf = appendF32(buf, float32(m.B))
	buf = appendF32(buf, float32(m.C))
	buf = appendF32(buf, float32(m.D))
	buf = appendF32(buf, float32(m.E))
	buf = appendF32(buf, float32(m.F))
	return buf
}
