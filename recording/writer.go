package recording

import (
	"encoding/binary"
	"math"
)

// writer is an append-only, 32-bit-aligned byte buffer. Every write grows
// the buffer by a whole number of words; overwrite and rewind operate on
// offsets already returned by a prior append, so alignment is always
// preserved by construction.
type writer struct {
	buf []byte
}

// newWriter creates an empty writer with a small initial capacity.
func newWriter() *writer {
	return &writer{buf: make([]byte, 0, 256)}
}

// bytesWritten returns the current length of the buffer in bytes, i.e.
// the offset the next append will land at.
func (w *writer) bytesWritten() int {
	return len(w.buf)
}

// bytes returns the writer's backing buffer. Callers must not retain the
// slice across further writer mutations.
func (w *writer) bytes() []byte {
	return w.buf
}

// appendU32 appends v as a little-endian 32-bit word and returns the
// offset it was written at.
func (w *writer) appendU32(v uint32) int {
	off := len(w.buf)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
	return off
}

// appendF32 appends f as a little-endian IEEE-754 32-bit float.
func (w *writer) appendF32(f float32) int {
	return w.appendU32(math.Float32bits(f))
}

// appendBytes appends raw bytes, zero-padding to the next 4-byte
// boundary. Returns the offset the data starts at.
func (w *writer) appendBytes(p []byte) int {
	off := len(w.buf)
	w.buf = append(w.buf, p...)
	if pad := len(w.buf) % 4; pad != 0 {
		w.buf = append(w.buf, make([]byte, 4-pad)...)
	}
	return off
}

// writeU32At overwrites the 32-bit word at offset with v. offset must
// have been returned by a prior appendU32/appendF32 (or otherwise be
// known to address a full word already in the buffer).
func (w *writer) writeU32At(offset int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[offset:offset+4], v)
}

// readU32At reads the 32-bit word at offset.
func (w *writer) readU32At(offset int) uint32 {
	return binary.LittleEndian.Uint32(w.buf[offset : offset+4])
}

// rewindTo truncates the buffer back to offset, discarding everything
// written after it. offset must be a previously valid writer position.
func (w *writer) rewindTo(offset int) {
	w.buf = w.buf[:offset]
}
