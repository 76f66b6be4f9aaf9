package recording

import (
	"testing"

	"github.com/gogpu/picture"
)

// TestRestoreOffsetStackUnopenedBackPatch exercises a scope that never
// recorded a clip: backPatch must leave the stream untouched (there is no
// placeholder chain to walk) and simply pop the stack.
func TestRestoreOffsetStackUnopenedBackPatch(t *testing.T) {
	w := newWriter()
	saveOffset := emitHeader(w, OpSave, 8)
	w.appendU32(uint32(SaveFlagsMatrixClip))

	var stack restoreOffsetStack
	stack.pushUnopened(saveOffset)

	before := append([]byte(nil), w.bytes()...)
	restoreOffset := emitHeader(w, OpRestore, 4)
	stack.backPatch(w, restoreOffset)

	if got := w.bytes()[:len(before)]; string(got) != string(before) {
		t.Errorf("backPatch on an unopened scope modified bytes preceding the restore: got %v, want %v", got, before)
	}
	if stack.depth() != 0 {
		t.Errorf("depth = %d, want 0", stack.depth())
	}
}

func TestRestoreOffsetStackPlaceholderChainBackPatch(t *testing.T) {
	w := newWriter()
	saveOffset := emitHeader(w, OpSave, 8)
	w.appendU32(uint32(SaveFlagsMatrixClip))

	var stack restoreOffsetStack
	stack.pushUnopened(saveOffset)

	p1 := stack.emitPlaceholder(w, picture.OpIntersect)
	p2 := stack.emitPlaceholder(w, picture.OpIntersect)

	restoreOffset := emitHeader(w, OpRestore, 4)
	stack.backPatch(w, restoreOffset)

	if got := w.readU32At(p1); int(got) != restoreOffset {
		t.Errorf("placeholder 1 = %d, want %d", got, restoreOffset)
	}
	if got := w.readU32At(p2); int(got) != restoreOffset {
		t.Errorf("placeholder 2 = %d, want %d", got, restoreOffset)
	}
}

// TestRestoreOffsetStackExpandingOpNeutralizes reproduces scenario S5: an
// Intersect clip's placeholder must be neutralized to 0 by a later Union
// clip in the same scope, while the Union's own placeholder still resolves
// normally to the eventual restore offset.
func TestRestoreOffsetStackExpandingOpNeutralizes(t *testing.T) {
	w := newWriter()
	saveOffset := emitHeader(w, OpSave, 8)
	w.appendU32(uint32(SaveFlagsMatrixClip))

	var stack restoreOffsetStack
	stack.pushUnopened(saveOffset)

	p1 := stack.emitPlaceholder(w, picture.OpIntersect)
	p2 := stack.emitPlaceholder(w, picture.OpUnion)

	restoreOffset := emitHeader(w, OpRestore, 4)
	stack.backPatch(w, restoreOffset)

	if got := w.readU32At(p1); got != 0 {
		t.Errorf("neutralized placeholder = %d, want 0", got)
	}
	if got := w.readU32At(p2); int(got) != restoreOffset {
		t.Errorf("union placeholder = %d, want %d", got, restoreOffset)
	}
}
