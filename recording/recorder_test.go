package recording

import (
	"testing"

	"github.com/gogpu/picture"
)

// newBareRecorder builds a Recorder exactly like NewRecorder but without
// its implicit outermost save, so tests can assert on a scenario's exact
// byte layout without an extra SAVE/RESTORE wrapping it.
func newBareRecorder(opts ...Option) *Recorder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		w:        newWriter(),
		opts:     o,
		paints:   &paintDict{},
		paths:    newPathDict(),
		bitmaps:  newBitmapDict(),
		pictures: newPictureDict(),
	}
}

func ops(t *testing.T, r *Recorder) []Op {
	t.Helper()
	var out []Op
	buf := r.w.bytes()
	offset := 0
	for offset < len(buf) {
		op, size, _ := peek(buf, offset)
		out = append(out, op)
		offset += int(size)
	}
	return out
}

func wantOps(t *testing.T, got []Op, want ...Op) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
}

// TestEmptyMatrixClipSaveCollapsesEntirely grounds the recorder's Rule A
// in the same rewind-to-save-offset mechanism the stream format demands
// (see restoreOffsetStack and emitHeader): a SAVE whose body held only
// state changes and never a draw is provably inert — nothing ever
// observed the matrix/clip it set up — so the entire body, not merely the
// SAVE/RESTORE bracket, is safe to discard.
func TestEmptyMatrixClipSaveCollapsesEntirely(t *testing.T) {
	r := newBareRecorder()
	r.Save(SaveFlagsMatrixClip)
	r.Translate(1, 2)
	r.Restore()

	if got := ops(t, r); len(got) != 0 {
		t.Fatalf("ops = %v, want an empty stream", got)
	}
}

// TestSaveWithDrawKeepsBoth is scenario S2.
func TestSaveWithDrawKeepsBoth(t *testing.T) {
	r := newBareRecorder()
	r.Save(SaveFlagsMatrixClip)
	r.DrawRect(picture.NewRect(0, 0, 10, 10), picture.NewPaint())
	r.Restore()

	wantOps(t, ops(t, r), OpSave, OpDrawRect, OpRestore)
}

// TestSaveLayerNullPaintErasesItself is scenario S3.
func TestSaveLayerNullPaintErasesItself(t *testing.T) {
	r := newBareRecorder()
	bmp := picture.NewBitmap(4, 4)
	r.SaveLayer(SaveLayerRec{})
	r.DrawBitmap(bmp, 0, 0, nil)
	r.Restore()

	got := ops(t, r)
	var draws int
	for _, op := range got {
		switch op {
		case OpDrawBitmap:
			draws++
		case OpSaveLayer, OpRestore:
			t.Fatalf("ops = %v, want the save-layer folded away entirely", got)
		}
	}
	if draws != 1 {
		t.Fatalf("ops = %v, want exactly one DRAW_BITMAP", got)
	}

	pic := r.Finish()
	idx := lastDrawBitmapPaintIndex(t, pic)
	if idx != 0 {
		t.Errorf("folded draw's paint index = %d, want 0 (no paint)", idx)
	}
}

// TestSaveLayerPaintFoldsIntoBitmapPaint is scenario S4.
func TestSaveLayerPaintFoldsIntoBitmapPaint(t *testing.T) {
	r := newBareRecorder()
	bmp := picture.NewBitmap(4, 4)

	layerPaint := picture.NewPaint()
	layerPaint.SetBrush(picture.Solid(picture.RGBA2(1, 1, 1, 128.0/255.0)))
	drawPaint := picture.NewPaint()
	drawPaint.SetBrush(picture.Solid(picture.RGBA2(1, 0, 0, 1)))

	r.SaveLayer(SaveLayerRec{Paint: layerPaint})
	r.DrawBitmap(bmp, 0, 0, drawPaint)
	r.Restore()

	got := ops(t, r)
	for _, op := range got {
		if op == OpSaveLayer || op == OpRestore {
			t.Fatalf("ops = %v, want the save-layer folded away entirely", got)
		}
	}

	pic := r.Finish()
	idx := lastDrawBitmapPaintIndex(t, pic)
	merged, err := pic.PaintAt(idx)
	if err != nil {
		t.Fatalf("PaintAt(%d): %v", idx, err)
	}
	c, isSolid := merged.Color()
	if !isSolid {
		t.Fatal("merged paint is not solid")
	}
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("merged color RGB = (%v,%v,%v), want the draw's own red", c.R, c.G, c.B)
	}
	if c.A < 0.5 || c.A > 0.503 {
		t.Errorf("merged color alpha = %v, want the layer's ~0.502", c.A)
	}
}

func lastDrawBitmapPaintIndex(t *testing.T, pic *Picture) int {
	t.Helper()
	buf := pic.Commands()
	offset := 0
	idx := -1
	for offset < len(buf) {
		op, size, headerLen := peek(buf, offset)
		if op == OpDrawBitmap {
			idx = int(readU32(buf, offset+headerLen*4+4))
		}
		offset += int(size)
	}
	if idx < 0 {
		t.Fatal("no DRAW_BITMAP command found in picture")
	}
	return idx
}

func readU32(buf []byte, offset int) uint32 {
	return uint32(buf[offset]) | uint32(buf[offset+1])<<8 | uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
}

// TestRegionExpandingClipNeutralizesPriorPlaceholder is scenario S5.
func TestRegionExpandingClipNeutralizesPriorPlaceholder(t *testing.T) {
	r := newBareRecorder()
	r.Save(SaveFlagsMatrixClip)
	r.DrawRect(picture.NewRect(0, 0, 1, 1), picture.NewPaint()) // keep the save from collapsing
	r.ClipRect(picture.NewRect(0, 0, 10, 10), picture.OpIntersect, false)
	r.ClipRect(picture.NewRect(0, 0, 20, 20), picture.OpUnion, false)
	r.Restore()

	buf := r.w.bytes()
	offset := 0
	var placeholders []int
	var restoreOffset int
	for offset < len(buf) {
		op, size, headerLen := peek(buf, offset)
		if op == OpClipRect {
			placeholders = append(placeholders, offset+int(size)-4)
		}
		if op == OpRestore {
			restoreOffset = offset
		}
		offset += int(size)
		_ = headerLen
	}
	if len(placeholders) != 2 {
		t.Fatalf("found %d CLIP_RECT commands, want 2", len(placeholders))
	}
	if got := readU32(buf, placeholders[0]); got != 0 {
		t.Errorf("first (intersect) placeholder = %d, want 0 (neutralized)", got)
	}
	if got := readU32(buf, placeholders[1]); int(got) != restoreOffset {
		t.Errorf("second (union) placeholder = %d, want %d (the restore offset)", got, restoreOffset)
	}
}

// TestNestedPictureDedupByIdentity is scenario S6.
func TestNestedPictureDedupByIdentity(t *testing.T) {
	r := newBareRecorder()
	inner := newBareRecorder().Finish()

	r.DrawPicture(inner)
	r.DrawPicture(inner)

	if got := r.pictures.count(); got != 1 {
		t.Errorf("pictures.count() = %d, want 1", got)
	}
	if got := r.pictures.refCount(1); got != 2 {
		t.Errorf("refCount(1) = %d, want 2", got)
	}
}

func TestFinishDrainsUnbalancedScopes(t *testing.T) {
	r := NewRecorder(100, 100) // opens its own implicit outer save
	r.Save(SaveFlagsMatrixClip)
	r.DrawRect(picture.NewRect(0, 0, 10, 10), picture.NewPaint())
	// Deliberately omit the matching Restore: Finish must drain it, plus
	// the recorder's own implicit outer save, without panicking.
	pic := r.Finish()

	wantOps(t, opsOf(pic), OpSave, OpSave, OpDrawRect, OpRestore, OpRestore)
}

// TestNewRecorderImplicitSaveCollapsesWhenNothingIsDrawn exercises
// NewRecorder's implicit outer save through the same Rule A collapse a
// caller's own saves get: if the whole recording never drew anything,
// Finish's drain leaves nothing behind at all.
func TestNewRecorderImplicitSaveCollapsesWhenNothingIsDrawn(t *testing.T) {
	r := NewRecorder(100, 100)
	r.Translate(1, 2)
	pic := r.Finish()

	if got := opsOf(pic); len(got) != 0 {
		t.Errorf("ops = %v, want an empty stream", got)
	}
}

func opsOf(pic *Picture) []Op {
	var out []Op
	buf := pic.Commands()
	offset := 0
	for offset < len(buf) {
		op, size, _ := peek(buf, offset)
		out = append(out, op)
		offset += int(size)
	}
	return out
}

func TestRestoreUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Restore on an empty scope stack did not panic")
		}
	}()
	r := newBareRecorder()
	r.Restore()
}

func TestUseAfterFinishPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("calling a method after Finish did not panic")
		}
	}()
	r := newBareRecorder()
	r.Finish()
	r.Translate(1, 1)
}

func TestRoundTripSizeInvariant(t *testing.T) {
	r := newBareRecorder()
	r.Save(SaveFlagsMatrixClip)
	r.Translate(5, 5)
	r.DrawRect(picture.NewRect(0, 0, 10, 10), picture.NewPaint())
	r.ClipRect(picture.NewRect(0, 0, 5, 5), picture.OpIntersect, true)
	r.Restore()
	pic := r.Finish()

	buf := pic.Commands()
	sum := 0
	offset := 0
	for offset < len(buf) {
		_, size, _ := peek(buf, offset)
		sum += int(size)
		offset += int(size)
	}
	if sum != len(buf) {
		t.Errorf("sum of declared sizes = %d, want %d (total stream length)", sum, len(buf))
	}
}

func TestDrawRRectFastPaths(t *testing.T) {
	r := newBareRecorder()
	paint := picture.NewPaint()

	r.DrawRRect(picture.NewRRect(picture.NewRect(0, 0, 10, 10), 0, 0), paint)
	r.DrawRRect(picture.NewRRect(picture.NewRect(0, 0, 10, 10), 5, 5), paint)
	r.DrawRRect(picture.NewRRect(picture.NewRect(0, 0, 10, 20), 3, 3), paint)

	wantOps(t, ops(t, r), OpDrawRect, OpDrawOval, OpDrawRRect)
}

func TestClipPathRectFastPath(t *testing.T) {
	r := newBareRecorder()
	p := picture.NewPath()
	p.Rectangle(0, 0, 10, 10)

	r.ClipPath(p, picture.OpIntersect, false)

	wantOps(t, ops(t, r), OpClipRect)
}

func TestDisableRecordOptimizationsKeepsEmptySave(t *testing.T) {
	r := newBareRecorder(DisableRecordOptimizations())
	r.Save(SaveFlagsMatrixClip)
	r.Translate(1, 2)
	r.Restore()

	wantOps(t, ops(t, r), OpSave, OpTranslate, OpRestore)
}
