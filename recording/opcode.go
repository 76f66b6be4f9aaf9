package recording

import "encoding/binary"

// Op is a command stream opcode. The set is closed but extensible at the
// tail: new draw variants may be appended after the last defined value
// without disturbing the meaning of existing streams.
type Op uint8

const (
	// Scope.
	OpSave Op = iota
	OpSaveLayer
	OpRestore
	OpNoop

	// Transform.
	OpTranslate
	OpScale
	OpRotate
	OpSkew
	OpConcat
	OpSetMatrix

	// Clip.
	OpClipRect
	OpClipRRect
	OpClipPath
	OpClipRegion

	// Draws.
	OpDrawPaint
	OpDrawPoints
	OpDrawOval
	OpDrawRect
	OpDrawRRect
	OpDrawPath
	OpDrawBitmap
	OpDrawBitmapRect
	OpDrawBitmapMatrix
	OpDrawBitmapNine
	OpDrawSprite
	OpDrawText
	OpDrawTextTopBot
	OpDrawPosText
	OpDrawPosTextTopBot
	OpDrawPosTextH
	OpDrawPosTextHTopBot
	OpDrawTextOnPath
	OpDrawVertices
	OpDrawPicture
	OpDrawClear
	OpDrawData

	// Annotations.
	OpBeginCommentGroup
	OpComment
	OpEndCommentGroup

	opCount
)

var opNames = [...]string{
	OpSave:                 "SAVE",
	OpSaveLayer:             "SAVE_LAYER",
	OpRestore:               "RESTORE",
	OpNoop:                  "NOOP",
	OpTranslate:             "TRANSLATE",
	OpScale:                 "SCALE",
	OpRotate:                "ROTATE",
	OpSkew:                  "SKEW",
	OpConcat:                "CONCAT",
	OpSetMatrix:             "SET_MATRIX",
	OpClipRect:              "CLIP_RECT",
	OpClipRRect:             "CLIP_RRECT",
	OpClipPath:              "CLIP_PATH",
	OpClipRegion:            "CLIP_REGION",
	OpDrawPaint:             "DRAW_PAINT",
	OpDrawPoints:            "DRAW_POINTS",
	OpDrawOval:              "DRAW_OVAL",
	OpDrawRect:              "DRAW_RECT",
	OpDrawRRect:             "DRAW_RRECT",
	OpDrawPath:              "DRAW_PATH",
	OpDrawBitmap:            "DRAW_BITMAP",
	OpDrawBitmapRect:        "DRAW_BITMAP_RECT",
	OpDrawBitmapMatrix:      "DRAW_BITMAP_MATRIX",
	OpDrawBitmapNine:        "DRAW_BITMAP_NINE",
	OpDrawSprite:            "DRAW_SPRITE",
	OpDrawText:              "DRAW_TEXT",
	OpDrawTextTopBot:        "DRAW_TEXT_TOPBOT",
	OpDrawPosText:           "DRAW_POS_TEXT",
	OpDrawPosTextTopBot:     "DRAW_POS_TEXT_TOPBOT",
	OpDrawPosTextH:          "DRAW_POS_TEXT_H",
	OpDrawPosTextHTopBot:    "DRAW_POS_TEXT_H_TOPBOT",
	OpDrawTextOnPath:        "DRAW_TEXT_ON_PATH",
	OpDrawVertices:          "DRAW_VERTICES",
	OpDrawPicture:           "DRAW_PICTURE",
	OpDrawClear:             "DRAW_CLEAR",
	OpDrawData:              "DRAW_DATA",
	OpBeginCommentGroup:     "BEGIN_COMMENT_GROUP",
	OpComment:               "COMMENT",
	OpEndCommentGroup:       "END_COMMENT_GROUP",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "UNKNOWN_OP"
}

// drawVerbs is the explicit, enumerated set of opcodes that perform a
// visible draw. Rule A (collapse empty save) must abort if any of these
// — or SAVE_LAYER — appears between a SAVE and its RESTORE. The source
// this recorder is grounded on tested this with a numeric-adjacency range
// check on the opcode enum; that is an accident of enum ordering, not a
// contract, so this set names the opcodes explicitly instead.
var drawVerbs = map[Op]bool{
	OpDrawPaint:          true,
	OpDrawPoints:         true,
	OpDrawOval:           true,
	OpDrawRect:           true,
	OpDrawRRect:          true,
	OpDrawPath:           true,
	OpDrawBitmap:         true,
	OpDrawBitmapRect:     true,
	OpDrawBitmapMatrix:   true,
	OpDrawBitmapNine:     true,
	OpDrawSprite:         true,
	OpDrawText:           true,
	OpDrawTextTopBot:     true,
	OpDrawPosText:        true,
	OpDrawPosTextTopBot:  true,
	OpDrawPosTextH:       true,
	OpDrawPosTextHTopBot: true,
	OpDrawTextOnPath:     true,
	OpDrawVertices:       true,
	OpDrawPicture:        true,
	OpDrawClear:          true,
	OpDrawData:           true,
}

// isDrawVerb reports whether op is in the enumerated draw-verb set.
func isDrawVerb(op Op) bool {
	return drawVerbs[op]
}

// bitmapFamily is the set of draw ops Rule B's fold recognizes as "a
// single bitmap-family draw".
var bitmapFamily = map[Op]bool{
	OpDrawBitmap:       true,
	OpDrawBitmapRect:   true,
	OpDrawBitmapMatrix: true,
	OpDrawBitmapNine:   true,
	OpDrawSprite:       true,
}

// isBitmapDraw reports whether op draws a bitmap in a form Rule B may
// fold a save-layer's paint into.
func isBitmapDraw(op Op) bool {
	return bitmapFamily[op]
}

// sizeOverflow is the sentinel low-24-bit value signaling that the real
// byte count follows in an explicit overflow word.
const sizeOverflow = 1<<24 - 1

// maxShortSize is the largest declared size encodable directly in the
// header's low 24 bits.
const maxShortSize = sizeOverflow - 1

// headerWords returns how many 32-bit words emitHeader will write for
// declaredSize: 1 normally, 2 when the overflow word is needed.
func headerWords(declaredSize uint32) int {
	if declaredSize > maxShortSize {
		return 2
	}
	return 1
}

// emitHeader writes a command header for (op, declaredSize) at the
// writer's current tail and returns the header's offset. declaredSize is
// the full byte count of the command, header included.
func emitHeader(w *writer, op Op, declaredSize uint32) int {
	headerOffset := w.bytesWritten()
	if declaredSize > maxShortSize {
		w.appendU32(uint32(op)<<24 | sizeOverflow)
		w.appendU32(declaredSize)
	} else {
		w.appendU32(uint32(op)<<24 | declaredSize)
	}
	return headerOffset
}

// peek reads the header at offset within buf and returns the opcode,
// the command's declared byte count, and the number of words the header
// itself occupied (1, or 2 if an overflow word was present).
func peek(buf []byte, offset int) (op Op, size uint32, headerLen int) {
	word := binary.LittleEndian.Uint32(buf[offset : offset+4])
	op = Op(word >> 24)
	low := word & 0x00FFFFFF
	if low == sizeOverflow {
		size = binary.LittleEndian.Uint32(buf[offset+4 : offset+8])
		return op, size, 2
	}
	return op, low, 1
}

// convertToNoop overwrites the opcode byte of the header at offset with
// OpNoop, preserving the size field (and any overflow word) so peek still
// skips the correct number of bytes.
func convertToNoop(buf []byte, offset int) {
	word := binary.LittleEndian.Uint32(buf[offset : offset+4])
	word = uint32(OpNoop)<<24 | (word & 0x00FFFFFF)
	binary.LittleEndian.PutUint32(buf[offset:offset+4], word)
}
