package recording

// bitmapDrawRecord captures enough of a bitmap-family draw call for Rule B
// to patch its paint index in place later, without re-parsing or moving
// any bytes: paintSlotOffset is the absolute stream offset of the
// paint-index word that draw already wrote.
type bitmapDrawRecord struct {
	op              Op
	bitmapIdx       int
	paintIdx        int
	paintSlotOffset int
}

// scopeShape tracks the exact shape of the direct ops recorded in a
// scope's body so far, just enough to recognize Rule B's two fold
// patterns without re-parsing the byte stream at restore time.
type scopeShape int

const (
	shapeEmpty scopeShape = iota
	shapeClipPending
	shapeClipThenBitmapDraw
	shapeSingleBitmapDraw
	shapeChildSaveFold
	shapeOther
)

// scopeRecord is the in-memory bookkeeping kept alongside each open
// SAVE/SAVE_LAYER while its body is being recorded, so that Restore can
// decide whether Rule A or Rule B applies without re-parsing the bytes
// it is about to close over.
type scopeRecord struct {
	headerOffset    int
	op              Op        // OpSave or OpSaveLayer
	flags           SaveFlags // this scope's own flags word; only SAVE's value feeds Rule A
	paintIdx        int       // SAVE_LAYER's own paint index; unused for OpSave
	paintSlotOffset int       // SAVE_LAYER's paint-index word offset; unused for OpSave

	opCount        int  // direct ops recorded in this scope's body
	sawDrawOrLayer bool // any draw verb or nested SAVE_LAYER seen directly or in a descendant

	shape                   scopeShape
	pendingClipHeaderOffset int               // valid once shape reaches shapeClipPending
	bitmapDraw              *bitmapDrawRecord // valid for shapeSingleBitmapDraw/shapeClipThenBitmapDraw
	childSave               *childSaveRecord  // valid for shapeChildSaveFold
}

// childSaveRecord is the closed-out shape of a nested plain SAVE scope,
// retained by its parent long enough to check Rule B's second pattern:
// SAVE_LAYER, SAVE, CLIP_RECT, a single bitmap draw, RESTORE, RESTORE. It
// carries the three header offsets that must be converted to NOOP if the
// parent SAVE_LAYER does end up folding this shape away.
type childSaveRecord struct {
	sawOnlyClipThenBitmapDraw bool
	bitmapDraw                *bitmapDrawRecord
	saveHeaderOffset          int
	clipHeaderOffset          int
	restoreHeaderOffset       int
}

func newScopeRecord(headerOffset int, op Op, flags SaveFlags) *scopeRecord {
	return &scopeRecord{headerOffset: headerOffset, op: op, flags: flags}
}

// noteOp records a direct, non-bitmap-draw, non-child-save op (transform,
// a clip other than the first CLIP_RECT, any other draw verb, an
// annotation) in this scope's body. headerOffset is that op's own command
// header offset, retained only for the CLIP_RECT case in support of Rule
// B's second pattern.
func (s *scopeRecord) noteOp(op Op, headerOffset int) {
	s.opCount++
	if isDrawVerb(op) {
		s.sawDrawOrLayer = true
	}
	switch s.shape {
	case shapeEmpty:
		if op == OpClipRect {
			s.shape = shapeClipPending
			s.pendingClipHeaderOffset = headerOffset
			return
		}
		s.shape = shapeOther
	default:
		s.shape = shapeOther
	}
}

// noteBitmapDraw records a bitmap-family draw in this scope's body,
// updating shape toward whichever fold pattern (if any) it now matches.
func (s *scopeRecord) noteBitmapDraw(rec *bitmapDrawRecord) {
	s.opCount++
	s.sawDrawOrLayer = true
	switch s.shape {
	case shapeEmpty:
		s.shape = shapeSingleBitmapDraw
		s.bitmapDraw = rec
	case shapeClipPending:
		s.shape = shapeClipThenBitmapDraw
		s.bitmapDraw = rec
	default:
		s.shape = shapeOther
	}
}

// noteChildSaveLayer records that a nested SAVE_LAYER occurred directly
// in this scope's body. A SAVE_LAYER disqualifies an ancestor SAVE from
// Rule A (it is not "no draw verb or SAVE_LAYER"), and disqualifies both
// fold patterns regardless of where it appears.
func (s *scopeRecord) noteChildSaveLayer() {
	s.opCount++
	s.sawDrawOrLayer = true
	s.shape = shapeOther
}

// noteChildSave records that a nested plain SAVE occurred directly in
// this scope's body, along with how that child scope turned out once it
// closed. Used to check Rule B's clip-then-draw pattern one level down.
func (s *scopeRecord) noteChildSave(child *childSaveRecord) {
	s.opCount++
	switch s.shape {
	case shapeEmpty:
		if child.sawOnlyClipThenBitmapDraw {
			s.shape = shapeChildSaveFold
			s.childSave = child
			return
		}
		s.shape = shapeOther
	default:
		s.shape = shapeOther
	}
}

// closeAsChild summarizes this now-closing scope for an ancestor's Rule B
// pattern check: a plain SAVE whose body was exactly one CLIP_RECT
// followed by exactly one bitmap-family draw. restoreHeaderOffset is the
// offset of this scope's own RESTORE command, needed so the ancestor can
// NOOP it too if it ends up folding this shape away.
func (s *scopeRecord) closeAsChild(restoreHeaderOffset int) *childSaveRecord {
	if s.shape != shapeClipThenBitmapDraw {
		return &childSaveRecord{}
	}
	return &childSaveRecord{
		sawOnlyClipThenBitmapDraw: true,
		bitmapDraw:                s.bitmapDraw,
		saveHeaderOffset:          s.headerOffset,
		clipHeaderOffset:          s.pendingClipHeaderOffset,
		restoreHeaderOffset:       restoreHeaderOffset,
	}
}

// canCollapseEmpty implements Rule A's predicate: a SAVE (never a
// SAVE_LAYER — a layer always has an observable compositing effect even
// with nothing drawn into it) recorded with MatrixClip flags, whose body
// recorded no draw verb and no nested SAVE_LAYER anywhere, including
// inside descendant scopes that did not themselves collapse.
func (s *scopeRecord) canCollapseEmpty() bool {
	return s.op == OpSave && s.flags == SaveFlagsMatrixClip && !s.sawDrawOrLayer
}

// foldBitmapDraw implements Rule B. It returns the single bitmap draw
// that should replace this entire SAVE_LAYER scope, with its paint index
// already merged with the layer's paint, plus any additional header
// offsets (a nested SAVE/CLIP_RECT/RESTORE triple) that must also be
// converted to NOOP for the fold to take effect. ok is false if neither
// fold pattern matches.
func (s *scopeRecord) foldBitmapDraw(paints *paintDict) (rec bitmapDrawRecord, extraNoops []int, ok bool) {
	if s.op != OpSaveLayer {
		return bitmapDrawRecord{}, nil, false
	}

	var draw *bitmapDrawRecord
	switch s.shape {
	case shapeSingleBitmapDraw:
		draw = s.bitmapDraw
	case shapeChildSaveFold:
		draw = s.childSave.bitmapDraw
		extraNoops = []int{
			s.childSave.saveHeaderOffset,
			s.childSave.clipHeaderOffset,
			s.childSave.restoreHeaderOffset,
		}
	default:
		return bitmapDrawRecord{}, nil, false
	}

	mergedPaintIdx, merged := mergePaint(paints, s.paintIdx, draw.paintIdx)
	if !merged {
		return bitmapDrawRecord{}, nil, false
	}

	return bitmapDrawRecord{
		op:              draw.op,
		bitmapIdx:       draw.bitmapIdx,
		paintIdx:        mergedPaintIdx,
		paintSlotOffset: draw.paintSlotOffset,
	}, extraNoops, true
}

// mergePaint combines a SAVE_LAYER's paint with a draw's own paint per
// Rule B. A bitmap draw's paint supplies alpha, blend mode, and filtering
// — never a fill color, since the bitmap's own pixels already are the
// color — so the layer paint's RGB (if it has one at all) is irrelevant
// to the merge:
//   - no layer paint: the draw keeps its own paint unchanged.
//   - no draw paint: the draw adopts the layer's paint unchanged.
//   - both present: only merges when the layer paint is simple (no
//     shader, path effect, transfer mode, filter, rasterizer, looper, or
//     image filter) and the draw paint is already fully opaque. The fold
//     then replaces the draw paint's alpha with the layer paint's alpha.
//     Two paints independently carrying non-opaque alpha is deliberately
//     left unfolded rather than guessing a compositing formula for it.
func mergePaint(paints *paintDict, layerPaintIdx, drawPaintIdx int) (int, bool) {
	layerPaint, hasLayer := paints.byIndex(layerPaintIdx)
	drawPaint, hasDraw := paints.byIndex(drawPaintIdx)

	switch {
	case !hasLayer:
		return drawPaintIdx, true
	case !hasDraw:
		return layerPaintIdx, true
	}

	if !layerPaint.IsSimple() {
		return 0, false
	}
	layerColor, _ := layerPaint.Color() // IsSimple guarantees a solid brush
	drawColor, isDrawSolid := drawPaint.Color()
	if !isDrawSolid || drawColor.A != 1 {
		return 0, false
	}

	merged, err := drawPaint.WithAlpha(layerColor.A)
	if err != nil {
		return 0, false
	}
	return paints.intern(merged), true
}
