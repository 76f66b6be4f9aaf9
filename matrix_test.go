package picture

import (
	"math"
	"testing"
)

func TestMatrixSizeHintMatchesWriteTo(t *testing.T) {
	m := Matrix{A: 1, B: 0.5, C: 10, D: -0.5, E: 1, F: -20}
	buf := m.WriteTo(nil)
	if len(buf) != m.SizeHint() {
		t.Fatalf("len(WriteTo(nil)) = %d, want SizeHint() = %d", len(buf), m.SizeHint())
	}
}

func TestMatrixWriteToRoundTrip(t *testing.T) {
	m := Matrix{A: 1.25, B: -2.5, C: 3.75, D: 4.0, E: -5.5, F: 6.25}
	buf := m.WriteTo(nil)
	if len(buf) != 24 {
		t.Fatalf("len(WriteTo(nil)) = %d, want 24", len(buf))
	}

	want := []float32{
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	}
	for i, w := range want {
		got := readF32(buf, i*4)
		if got != w {
			t.Errorf("word %d = %v, want %v", i, got, w)
		}
	}
}

func TestMatrixWriteToAppends(t *testing.T) {
	prefix := []byte{1, 2, 3, 4}
	m := Matrix{A: 1, E: 1}
	buf := m.WriteTo(prefix)
	if len(buf) != len(prefix)+m.SizeHint() {
		t.Fatalf("len(buf) = %d, want %d", len(buf), len(prefix)+m.SizeHint())
	}
	for i, b := range prefix {
		if buf[i] != b {
			t.Fatalf("WriteTo overwrote prefix byte %d", i)
		}
	}
}

func readF32(buf []byte, offset int) float32 {
	bits := uint32(buf[offset]) | uint32(buf[offset+1])<<8 | uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
	return math.Float32frombits(bits)
}
