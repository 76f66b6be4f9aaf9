package recording

import "github.com/gogpu/picture"

// restoreOffsetStack tracks, for each currently open save scope, the
// placeholder chain an eventual RESTORE must back-patch: a linked list of
// clip-command placeholder words threaded through the command stream. A
// scope that never records a clip has no placeholder chain at all — its
// SAVE/SAVE_LAYER header carries only the flags word spec.md's payload
// gives it, never a restore-offset field — so closing such a scope is a
// no-op as far as the stream is concerned.
//
// Each entry is a signed 32-bit value using the sign bit as a tag:
//   - negative: -(header offset + 1) of the still-"unopened" SAVE/SAVE_LAYER
//     (biased by one so a header at stream offset 0 still encodes negative).
//     No clip has been recorded in this scope yet, and nothing in the
//     stream references this value; it exists purely so emitPlaceholder's
//     first call in the scope has a terminator to chain from.
//   - zero or positive: the stream offset of the most recently emitted
//     placeholder word in this scope's chain. Zero is a valid offset (the
//     very first word of the stream) and is never confused with "no
//     chain", because an empty chain is represented by the negative form
//     above, not by zero.
type restoreOffsetStack struct {
	entries []int32
}

// pushUnopened records a newly opened save scope whose SAVE/SAVE_LAYER
// header lives at headerOffset.
func (s *restoreOffsetStack) pushUnopened(headerOffset int) {
	s.entries = append(s.entries, -int32(headerOffset)-1) //nolint:gosec // offsets fit int32 for any realistic stream
}

// pop removes and returns the top entry, for use when a scope closes.
func (s *restoreOffsetStack) pop() int32 {
	n := len(s.entries) - 1
	v := s.entries[n]
	s.entries = s.entries[:n]
	return v
}

// depth reports how many scopes are currently open.
func (s *restoreOffsetStack) depth() int {
	return len(s.entries)
}

// top returns the current top entry without removing it.
func (s *restoreOffsetStack) top() int32 {
	return s.entries[len(s.entries)-1]
}

// setTop overwrites the current top entry in place.
func (s *restoreOffsetStack) setTop(v int32) {
	s.entries[len(s.entries)-1] = v
}

// emitPlaceholder appends a clip command's trailing placeholder word,
// links it into the current scope's chain, and returns the placeholder's
// stream offset. If op expands the clipped region (Union, XOR,
// ReverseDifference, Replace), every placeholder already in the chain is
// first neutralized to 0: a restore occurring before such a clip cannot
// validly back-patch into what the expanding clip has superseded, so the
// back-patch walk must stop there instead of silently overwriting state
// that the expanding clip has already replaced. With no scope open there
// is no RESTORE to jump to, so the placeholder is written as 0.
func (s *restoreOffsetStack) emitPlaceholder(w *writer, op picture.RegionOp) int {
	if s.depth() == 0 {
		return w.appendU32(0)
	}
	top := s.top()
	if op.Expands() && top >= 0 {
		// The existing chain is superseded; neutralize it and splice the
		// new placeholder directly onto the terminator the walk bottoms
		// out at, so the chain stays well-formed.
		top = s.neutralizeChain(w, top)
	}

	// Every placeholder word stores its own predecessor: either an
	// earlier placeholder's offset (top >= 0) or the negative "unopened"
	// value terminating the chain (top < 0). Writing a
	// bare 0 here would be indistinguishable from a genuine placeholder
	// that happens to live at stream offset 0.
	placeholderOffset := w.appendU32(uint32(top)) //nolint:gosec
	s.setTop(int32(placeholderOffset))            //nolint:gosec
	return placeholderOffset
}

// neutralizeChain walks the placeholder chain starting at head, writing 0
// into every slot, and returns the negative terminator value the walk
// bottomed out at. It does not modify the stack; the caller splices that
// terminator back in as the new chain head.
func (s *restoreOffsetStack) neutralizeChain(w *writer, head int32) int32 {
	for head >= 0 {
		next := int32(w.readU32At(int(head))) //nolint:gosec
		w.writeU32At(int(head), 0)
		head = next
	}
	return head
}

// backPatch closes the current scope: if it never recorded a clip, the
// walk never leaves the negative terminator and there is nothing in the
// stream to write. Otherwise every placeholder in the chain is walked and
// overwritten with restoreOffset, the stream offset the matching RESTORE
// was emitted at.
func (s *restoreOffsetStack) backPatch(w *writer, restoreOffset int) {
	head := s.pop()
	for head >= 0 {
		next := w.readU32At(int(head))
		w.writeU32At(int(head), uint32(restoreOffset)) //nolint:gosec
		head = int32(next)                             //nolint:gosec
	}
}
