package recording

import "testing"

func TestEmitHeaderPeekRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		declaredSize uint32
	}{
		{"small", 12},
		{"exactly maxShortSize", maxShortSize},
		{"needs overflow word", maxShortSize + 1},
		{"large overflow", 10 * 1024 * 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWriter()
			off := emitHeader(w, OpDrawRect, tt.declaredSize)
			if off != 0 {
				t.Fatalf("header offset = %d, want 0", off)
			}
			op, size, headerLen := peek(w.bytes(), off)
			if op != OpDrawRect {
				t.Errorf("op = %v, want OpDrawRect", op)
			}
			if size != tt.declaredSize {
				t.Errorf("size = %d, want %d", size, tt.declaredSize)
			}
			if headerLen != headerWords(tt.declaredSize) {
				t.Errorf("headerLen = %d, want %d", headerLen, headerWords(tt.declaredSize))
			}
		})
	}
}

func TestConvertToNoopPreservesSize(t *testing.T) {
	w := newWriter()
	emitHeader(w, OpSave, 8)
	w.appendU32(0)

	convertToNoop(w.bytes(), 0)

	op, size, _ := peek(w.bytes(), 0)
	if op != OpNoop {
		t.Errorf("op = %v, want OpNoop", op)
	}
	if size != 8 {
		t.Errorf("size = %d, want 8 (preserved)", size)
	}
}

func TestConvertToNoopPreservesOverflowWord(t *testing.T) {
	w := newWriter()
	const big = maxShortSize + 100
	emitHeader(w, OpDrawData, big)
	w.appendBytes(make([]byte, int(big)-8))

	convertToNoop(w.bytes(), 0)

	op, size, headerLen := peek(w.bytes(), 0)
	if op != OpNoop {
		t.Errorf("op = %v, want OpNoop", op)
	}
	if size != big {
		t.Errorf("size = %d, want %d", size, big)
	}
	if headerLen != 2 {
		t.Errorf("headerLen = %d, want 2", headerLen)
	}
}

func TestIsDrawVerbAndIsBitmapDraw(t *testing.T) {
	if !isDrawVerb(OpDrawRect) {
		t.Error("OpDrawRect should be a draw verb")
	}
	if isDrawVerb(OpSave) {
		t.Error("OpSave should not be a draw verb")
	}
	if isDrawVerb(OpTranslate) {
		t.Error("OpTranslate should not be a draw verb")
	}
	if !isBitmapDraw(OpDrawBitmap) {
		t.Error("OpDrawBitmap should be a bitmap draw")
	}
	if isBitmapDraw(OpDrawRect) {
		t.Error("OpDrawRect should not be a bitmap draw")
	}
}
