package recording

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/picture"
)

// appendF32 appends the little-endian IEEE-754 bits of f to buf. This
// package builds its own command bodies by hand rather than through
// picture's (unexported) equivalent, since dictionary indices and other
// stream-only fields have no picture.* type to hang a WriteTo off of.
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

// SaveFlags controls how a Save scope participates in the restore-time
// optimizer. SaveFlagsMatrixClip is the only flag a caller should
// normally pass; it marks a save whose sole purpose is establishing a
// matrix/clip scope, which is the shape Rule A is allowed to collapse
// away when nothing was ever drawn inside it.
type SaveFlags uint32

const (
	// SaveFlagsMatrixClip marks an ordinary save/restore pair guarding a
	// matrix and clip change. Passing anything else disables the
	// empty-save collapse for that scope, even if its body turns out
	// empty.
	SaveFlagsMatrixClip SaveFlags = 1 << iota
)

// SaveLayerRec bundles SaveLayer's optional arguments. A nil Bounds
// leaves the layer's extent to whatever the surrounding clip implies; a
// nil Paint leaves the layer composited with default (opaque, source-over)
// settings. Flags is carried through to the wire unexamined by the
// optimizer — Rule A never applies to a SAVE_LAYER regardless of its
// flags — for a playback implementation's own use.
type SaveLayerRec struct {
	Bounds *picture.Rect
	Paint  *picture.Paint
	Flags  SaveFlags
}

// PointMode selects how DrawPoints connects the points it is given.
type PointMode int

const (
	// PointModePoints draws each point independently.
	PointModePoints PointMode = iota
	// PointModeLines draws disjoint line segments between successive
	// pairs of points.
	PointModeLines
	// PointModePolygon draws a connected polyline through every point.
	PointModePolygon
)

// VertexMode selects how DrawVertices assembles its vertex list into
// triangles.
type VertexMode int

const (
	VertexModeTriangles VertexMode = iota
	VertexModeTriangleStrip
	VertexModeTriangleFan
)

// BitmapRectFlags modifies DrawBitmapRect's sampling behavior at the
// edges of its source rectangle.
type BitmapRectFlags uint32

const (
	// BitmapRectFlagsNone samples strictly within the source rectangle.
	BitmapRectFlagsNone BitmapRectFlags = 0
	// BitmapRectFlagsBleed permits sampling a sliver of the bitmap just
	// outside the source rectangle, avoiding edge artifacts when the
	// rectangle is scaled up.
	BitmapRectFlagsBleed BitmapRectFlags = 1 << 0
)

// Recorder builds a Picture by recording a sequence of drawing calls into
// a compact binary command stream, rather than executing them immediately.
// It is the sole writer of that stream: every exported method either
// appends a new command or closes a still-open Save/SaveLayer scope.
//
// A Recorder is not safe for concurrent use. Once Finish returns a
// Picture, the Recorder itself must not be used again.
type Recorder struct {
	w    *writer
	opts options

	paints   *paintDict
	paths    *pathDict
	bitmaps  *bitmapDict
	pictures *pictureDict

	restoreStack restoreOffsetStack
	scopes       []*scopeRecord

	width, height int
	finished      bool
}

// NewRecorder creates a Recorder for a picture nominally width x height
// device pixels in size, and opens the implicit outermost save scope that
// every recording carries for its own bookkeeping (callers never see or
// balance this one themselves — Finish drains back to it). The
// dimensions are metadata only — the recorder does not clip drawing
// calls to them.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Recorder{
		w:        newWriter(),
		opts:     o,
		paints:   &paintDict{},
		paths:    newPathDict(),
		bitmaps:  newBitmapDict(),
		pictures: newPictureDict(),
		width:    width,
		height:   height,
	}
	r.Save(SaveFlagsMatrixClip)
	return r
}

// Finish closes out recording and returns the immutable Picture. Any
// Save/SaveLayer calls a caller left unmatched are drained by an implicit
// Restore each, including the implicit outermost scope NewRecorder
// opened; a mismatched extra Restore past that point remains a panic
// (see Restore), since that can only be a programming error rather than
// an unbalanced-but-legal recording.
func (r *Recorder) Finish() *Picture {
	r.requireNotFinished()
	for len(r.scopes) != 0 {
		r.Restore()
	}
	r.finished = true

	pic := &Picture{
		width:    r.width,
		height:   r.height,
		commands: r.w.bytes(),
		paints:   r.paints.items,
		paths:    r.paths.items,
		bitmaps:  r.bitmaps.items,
		pictures: make([]*Picture, len(r.pictures.items)),
	}
	for i, entry := range r.pictures.items {
		pic.pictures[i] = entry.pic
	}
	return pic
}

func (r *Recorder) requireNotFinished() {
	if r.finished {
		panic("recording: Recorder used after Finish")
	}
}

// currentScope returns the innermost open scope, or nil at the top level.
func (r *Recorder) currentScope() *scopeRecord {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

func (r *Recorder) noteOpInCurrentScope(op Op, headerOffset int) {
	if s := r.currentScope(); s != nil {
		s.noteOp(op, headerOffset)
	}
}

func (r *Recorder) noteBitmapDrawInCurrentScope(rec *bitmapDrawRecord) {
	if s := r.currentScope(); s != nil {
		s.noteBitmapDraw(rec)
	}
}

// emit writes a fixed-shape command (no embedded dictionary slot the
// optimizer needs to overwrite later): a header sized to fit body, then
// body itself. It returns the command's header offset.
func (r *Recorder) emit(op Op, body []byte) int {
	plain := uint32(len(body)) + 4
	var headerOffset int
	if plain <= maxShortSize {
		headerOffset = emitHeader(r.w, op, plain)
	} else {
		headerOffset = emitHeader(r.w, op, uint32(len(body))+8)
	}
	r.w.appendBytes(body)
	r.noteOpInCurrentScope(op, headerOffset)
	return headerOffset
}

// emitBitmapDraw writes a bitmap-family draw command: bitmap index, then
// paint index (whose offset is recorded for Rule B), then geometry.
func (r *Recorder) emitBitmapDraw(op Op, bmp *picture.Bitmap, paint *picture.Paint, geometry []byte) {
	bitmapIdx := r.bitmaps.intern(bmp)
	paintIdx := r.paints.intern(paint)

	bodyLen := 8 + len(geometry)
	plain := uint32(bodyLen) + 4
	if plain <= maxShortSize {
		emitHeader(r.w, op, plain)
	} else {
		emitHeader(r.w, op, uint32(bodyLen)+8)
	}
	r.w.appendU32(uint32(bitmapIdx)) //nolint:gosec // dictionary indices never approach uint32 overflow
	paintSlotOffset := r.w.appendU32(uint32(paintIdx))
	r.w.appendBytes(geometry)

	r.noteBitmapDrawInCurrentScope(&bitmapDrawRecord{
		op:              op,
		bitmapIdx:       bitmapIdx,
		paintIdx:        paintIdx,
		paintSlotOffset: paintSlotOffset,
	})
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func packColor(c picture.RGBA) uint32 {
	toByte := func(v float64) uint32 {
		x := v*255 + 0.5
		if x < 0 {
			x = 0
		}
		if x > 255 {
			x = 255
		}
		return uint32(x)
	}
	return toByte(c.A)<<24 | toByte(c.R)<<16 | toByte(c.G)<<8 | toByte(c.B)
}

func appendString(buf []byte, s string) []byte {
	buf = appendU32(buf, uint32(len(s))) //nolint:gosec // comment/text payloads never approach uint32 overflow
	buf = append(buf, s...)
	if pad := len(buf) % 4; pad != 0 {
		buf = append(buf, make([]byte, 4-pad)...)
	}
	return buf
}

// --- Scope management -------------------------------------------------

// Save opens a new matrix/clip scope. Every Save must be matched by
// exactly one Restore; scopes may nest arbitrarily deep. The
// restore-offset stack tracks this scope's header offset purely as
// in-memory bookkeeping — until a clip command inside the scope records
// its own placeholder word, there is nothing in the stream for the
// eventual Restore to back-patch.
func (r *Recorder) Save(flags SaveFlags) {
	r.requireNotFinished()
	headerOffset := emitHeader(r.w, OpSave, 8)
	r.w.appendU32(uint32(flags))
	r.restoreStack.pushUnopened(headerOffset)
	r.scopes = append(r.scopes, newScopeRecord(headerOffset, OpSave, flags))
}

// SaveLayer opens a new scope that additionally composites everything
// drawn inside it as a single group, through rec.Paint, once the matching
// Restore closes it.
func (r *Recorder) SaveLayer(rec SaveLayerRec) {
	r.requireNotFinished()

	hasBounds := rec.Bounds != nil
	bodyLen := 4 // bounds-presence flag
	if hasBounds {
		bodyLen += rec.Bounds.SizeHint()
	}
	bodyLen += 4 // paint index
	bodyLen += 4 // flags

	headerOffset := emitHeader(r.w, OpSaveLayer, uint32(bodyLen)+4)
	r.w.appendU32(boolWord(hasBounds))
	if hasBounds {
		r.w.appendBytes(rec.Bounds.WriteTo(nil))
	}
	paintIdx := r.paints.intern(rec.Paint)
	paintSlotOffset := r.w.appendU32(uint32(paintIdx)) //nolint:gosec
	r.w.appendU32(uint32(rec.Flags))

	r.restoreStack.pushUnopened(headerOffset)
	scope := newScopeRecord(headerOffset, OpSaveLayer, rec.Flags)
	scope.paintIdx = paintIdx
	scope.paintSlotOffset = paintSlotOffset
	r.scopes = append(r.scopes, scope)
}

// Restore closes the innermost open Save/SaveLayer scope. If the
// optimizer is enabled (the default), it first checks whether this scope
// can be elided entirely (Rule A: an empty matrix/clip save) or folded
// into the single bitmap draw it wrapped (Rule B: a save-layer whose only
// effect was to composite one bitmap draw at an adjusted alpha).
func (r *Recorder) Restore() {
	r.requireNotFinished()
	if len(r.scopes) == 0 {
		panic("recording: Restore called without a matching Save/SaveLayer")
	}
	scope := r.scopes[len(r.scopes)-1]
	r.scopes = r.scopes[:len(r.scopes)-1]

	if !r.opts.disableOptimizations && scope.canCollapseEmpty() {
		picture.Logger().Debug("recording: optimizer collapsed empty save", "headerOffset", scope.headerOffset)
		r.w.rewindTo(scope.headerOffset)
		r.restoreStack.pop()
		r.closeScope(scope, true, nil)
		return
	}

	if !r.opts.disableOptimizations {
		if folded, extraNoops, ok := scope.foldBitmapDraw(r.paints); ok {
			picture.Logger().Debug("recording: optimizer folded save-layer into bitmap draw",
				"headerOffset", scope.headerOffset, "paintIndex", folded.paintIdx)
			buf := r.w.bytes()
			convertToNoop(buf, scope.headerOffset)
			for _, off := range extraNoops {
				convertToNoop(buf, off)
			}
			r.w.writeU32At(folded.paintSlotOffset, uint32(folded.paintIdx)) //nolint:gosec
			r.restoreStack.pop()
			r.closeScope(scope, false, &folded)
			return
		}
	}

	restoreOffset := emitHeader(r.w, OpRestore, 4)
	r.restoreStack.backPatch(r.w, restoreOffset)
	r.closeScope(scope, false, nil)
}

// closeScope propagates a just-closed scope's outcome into its parent's
// bookkeeping, so the parent can itself be considered for Rule A/Rule B
// when its own Restore runs.
func (r *Recorder) closeScope(scope *scopeRecord, collapsed bool, folded *bitmapDrawRecord) {
	parent := r.currentScope()
	if parent == nil {
		return
	}
	switch {
	case collapsed:
		// The scope vanished entirely; nothing to note in the parent.
	case folded != nil:
		parent.noteBitmapDraw(folded)
	case scope.op == OpSaveLayer:
		parent.noteChildSaveLayer()
	default:
		// A plain SAVE kept as-is. A RESTORE header offset is required to
		// build its childSaveRecord; Restore always emits one in this
		// branch (the fold path returns earlier), so bytesWritten()-4 is
		// its freshly written offset.
		restoreHeaderOffset := r.w.bytesWritten() - 4
		child := scope.closeAsChild(restoreHeaderOffset)
		parent.noteChildSave(child)
		if scope.sawDrawOrLayer {
			parent.sawDrawOrLayer = true
		}
	}
}

// --- Transforms ---------------------------------------------------------

// Translate concatenates a translation onto the current matrix.
func (r *Recorder) Translate(dx, dy float64) {
	r.requireNotFinished()
	var body []byte
	body = appendF32(body, float32(dx))
	body = appendF32(body, float32(dy))
	r.emit(OpTranslate, body)
}

// Scale concatenates a scale onto the current matrix.
func (r *Recorder) Scale(sx, sy float64) {
	r.requireNotFinished()
	var body []byte
	body = appendF32(body, float32(sx))
	body = appendF32(body, float32(sy))
	r.emit(OpScale, body)
}

// Rotate concatenates a rotation (radians) onto the current matrix.
func (r *Recorder) Rotate(radians float64) {
	r.requireNotFinished()
	var body []byte
	body = appendF32(body, float32(radians))
	r.emit(OpRotate, body)
}

// Skew concatenates a shear onto the current matrix.
func (r *Recorder) Skew(sx, sy float64) {
	r.requireNotFinished()
	var body []byte
	body = appendF32(body, float32(sx))
	body = appendF32(body, float32(sy))
	r.emit(OpSkew, body)
}

// Concat multiplies the current matrix by m.
func (r *Recorder) Concat(m picture.Matrix) {
	r.requireNotFinished()
	r.emit(OpConcat, m.WriteTo(nil))
}

// SetMatrix replaces the current matrix outright, discarding any prior
// concatenation within the current scope.
func (r *Recorder) SetMatrix(m picture.Matrix) {
	r.requireNotFinished()
	r.emit(OpSetMatrix, m.WriteTo(nil))
}

// --- Clips ---------------------------------------------------------------

// ClipRect intersects (or otherwise combines, per op) the current clip
// with rect.
func (r *Recorder) ClipRect(rect picture.Rect, op picture.RegionOp, antiAlias bool) {
	r.requireNotFinished()
	headerOffset := emitHeader(r.w, OpClipRect, 4+4+uint32(rect.SizeHint())+4)
	r.w.appendU32(packClipParams(op, antiAlias))
	r.w.appendBytes(rect.WriteTo(nil))
	r.restoreStack.emitPlaceholder(r.w, op)
	r.noteOpInCurrentScope(OpClipRect, headerOffset)
}

// ClipRRect combines the current clip with a rounded rectangle. A
// rounded rectangle with zero corner radii records as a plain ClipRect
// instead, so downstream consumers never have to special-case the
// degenerate shape.
func (r *Recorder) ClipRRect(rr picture.RRect, op picture.RegionOp, antiAlias bool) {
	r.requireNotFinished()
	if rr.IsRect() {
		r.ClipRect(rr.Rect, op, antiAlias)
		return
	}
	headerOffset := emitHeader(r.w, OpClipRRect, 4+4+uint32(rr.SizeHint())+4)
	r.w.appendU32(packClipParams(op, antiAlias))
	r.w.appendBytes(rr.WriteTo(nil))
	r.restoreStack.emitPlaceholder(r.w, op)
	r.noteOpInCurrentScope(OpClipRRect, headerOffset)
}

// ClipPath combines the current clip with an arbitrary path. A path that
// is exactly an axis-aligned rectangle records as a plain ClipRect
// instead.
func (r *Recorder) ClipPath(path *picture.Path, op picture.RegionOp, antiAlias bool) {
	r.requireNotFinished()
	if rect, ok := path.AsRect(); ok {
		r.ClipRect(rect, op, antiAlias)
		return
	}

	pathIdx := r.paths.intern(path)
	bodyLen := 4 + 4 // params + path index
	if r.opts.usePathBoundsForClip {
		bodyLen += 16 // a coarse bounds rect alongside the path index
	}
	headerOffset := emitHeader(r.w, OpClipPath, uint32(bodyLen)+4+4)
	r.w.appendU32(packClipParams(op, antiAlias))
	r.w.appendU32(uint32(pathIdx)) //nolint:gosec
	if r.opts.usePathBoundsForClip {
		r.w.appendBytes(pathBounds(path).WriteTo(nil))
	}
	r.restoreStack.emitPlaceholder(r.w, op)
	r.noteOpInCurrentScope(OpClipPath, headerOffset)
}

// pathBounds computes a path's axis-aligned bounding box from its raw
// control points (not its rendered outline — curves stay inside the hull
// of their control points but need not reach its edges, so this is a
// conservative estimate a playback implementation may choose to refine
// or trust as-is).
func pathBounds(path *picture.Path) picture.Rect {
	first := true
	var bounds picture.Rect
	extend := func(p picture.Point) {
		if first {
			bounds = picture.Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			return
		}
		if p.X < bounds.MinX {
			bounds.MinX = p.X
		}
		if p.Y < bounds.MinY {
			bounds.MinY = p.Y
		}
		if p.X > bounds.MaxX {
			bounds.MaxX = p.X
		}
		if p.Y > bounds.MaxY {
			bounds.MaxY = p.Y
		}
	}
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case picture.MoveTo:
			extend(e.Point)
		case picture.LineTo:
			extend(e.Point)
		case picture.QuadTo:
			extend(e.Control)
			extend(e.Point)
		case picture.CubicTo:
			extend(e.Control1)
			extend(e.Control2)
			extend(e.Point)
		}
	}
	return bounds
}

// ClipRegion combines the current clip with an already-rasterized
// region. Regions carry no anti-aliasing concept of their own.
func (r *Recorder) ClipRegion(region picture.Region, op picture.RegionOp) {
	r.requireNotFinished()
	headerOffset := emitHeader(r.w, OpClipRegion, 4+4+uint32(region.SizeHint())+4)
	r.w.appendU32(packClipParams(op, false))
	r.w.appendBytes(region.WriteTo(nil))
	r.restoreStack.emitPlaceholder(r.w, op)
	r.noteOpInCurrentScope(OpClipRegion, headerOffset)
}

// --- Draws ---------------------------------------------------------------

// Clear wipes the entire destination to c, ignoring the current clip and
// paint. It carries only a packed color, not a full Paint, since a clear
// has no style to speak of.
func (r *Recorder) Clear(c picture.RGBA) {
	r.requireNotFinished()
	var body []byte
	body = appendU32(body, packColor(c))
	r.emit(OpDrawClear, body)
}

// DrawPaint fills the entire current clip with paint.
func (r *Recorder) DrawPaint(paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	r.emit(OpDrawPaint, body)
}

// DrawPoints draws pts as independent points, line segments, or a
// polyline, per mode.
func (r *Recorder) DrawPoints(mode PointMode, pts []picture.Point, paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx))    //nolint:gosec
	body = appendU32(body, uint32(mode))        //nolint:gosec
	body = appendU32(body, uint32(len(pts)))    //nolint:gosec
	for _, p := range pts {
		body = appendF32(body, float32(p.X))
		body = appendF32(body, float32(p.Y))
	}
	r.emit(OpDrawPoints, body)
}

// DrawRect fills or strokes rect with paint.
func (r *Recorder) DrawRect(rect picture.Rect, paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = append(body, rect.WriteTo(nil)...)
	r.emit(OpDrawRect, body)
}

// DrawOval fills or strokes the oval inscribed in rect with paint.
func (r *Recorder) DrawOval(rect picture.Rect, paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = append(body, rect.WriteTo(nil)...)
	r.emit(OpDrawOval, body)
}

// DrawRRect fills or strokes a rounded rectangle with paint. Degenerate
// shapes are recorded through the cheaper DrawRect/DrawOval commands:
// zero corner radii record as DrawRect, and corners that exactly inscribe
// an oval in the bounds record as DrawOval.
func (r *Recorder) DrawRRect(rr picture.RRect, paint *picture.Paint) {
	r.requireNotFinished()
	switch {
	case rr.IsRect():
		r.DrawRect(rr.Rect, paint)
		return
	case rr.IsOval():
		r.DrawOval(rr.Rect, paint)
		return
	}
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = append(body, rr.WriteTo(nil)...)
	r.emit(OpDrawRRect, body)
}

// DrawPath fills or strokes an arbitrary path with paint. A path that is
// exactly an axis-aligned rectangle records as the cheaper DrawRect
// instead.
func (r *Recorder) DrawPath(path *picture.Path, paint *picture.Paint) {
	r.requireNotFinished()
	if rect, ok := path.AsRect(); ok {
		r.DrawRect(rect, paint)
		return
	}
	paintIdx := r.paints.intern(paint)
	pathIdx := r.paths.intern(path)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = appendU32(body, uint32(pathIdx))  //nolint:gosec
	r.emit(OpDrawPath, body)
}

// DrawBitmap draws bmp with its top-left corner at (x, y).
func (r *Recorder) DrawBitmap(bmp *picture.Bitmap, x, y float64, paint *picture.Paint) {
	r.requireNotFinished()
	var geometry []byte
	geometry = appendF32(geometry, float32(x))
	geometry = appendF32(geometry, float32(y))
	r.emitBitmapDraw(OpDrawBitmap, bmp, paint, geometry)
}

// DrawBitmapRect draws the src sub-rectangle of bmp (or the whole bitmap,
// if src is nil) stretched to fill dst.
func (r *Recorder) DrawBitmapRect(bmp *picture.Bitmap, src *picture.Rect, dst picture.Rect, paint *picture.Paint, flags BitmapRectFlags) {
	r.requireNotFinished()
	hasSrc := src != nil
	var geometry []byte
	geometry = appendU32(geometry, boolWord(hasSrc))
	if hasSrc {
		geometry = append(geometry, src.WriteTo(nil)...)
	}
	geometry = append(geometry, dst.WriteTo(nil)...)
	geometry = appendU32(geometry, uint32(flags))
	r.emitBitmapDraw(OpDrawBitmapRect, bmp, paint, geometry)
}

// DrawBitmapMatrix draws bmp transformed by m, in addition to whatever
// matrix is already current.
func (r *Recorder) DrawBitmapMatrix(bmp *picture.Bitmap, m picture.Matrix, paint *picture.Paint) {
	r.requireNotFinished()
	r.emitBitmapDraw(OpDrawBitmapMatrix, bmp, paint, m.WriteTo(nil))
}

// DrawBitmapNine draws bmp as a nine-patch: the center rectangle stretches
// to fill dst while the eight surrounding regions stretch along one axis
// only (edges) or not at all (corners).
func (r *Recorder) DrawBitmapNine(bmp *picture.Bitmap, center picture.IRect, dst picture.Rect, paint *picture.Paint) {
	r.requireNotFinished()
	var geometry []byte
	geometry = append(geometry, center.WriteTo(nil)...)
	geometry = append(geometry, dst.WriteTo(nil)...)
	r.emitBitmapDraw(OpDrawBitmapNine, bmp, paint, geometry)
}

// DrawSprite draws bmp at an integer device-space offset, ignoring the
// current matrix's scale and rotation (only its translation, rounded to
// whole pixels, applies). Useful for cursors, watermarks, and other
// overlays that must stay crisp regardless of the surrounding transform.
func (r *Recorder) DrawSprite(bmp *picture.Bitmap, x, y int, paint *picture.Paint) {
	r.requireNotFinished()
	var geometry []byte
	geometry = appendU32(geometry, uint32(int32(x))) //nolint:gosec
	geometry = appendU32(geometry, uint32(int32(y))) //nolint:gosec
	r.emitBitmapDraw(OpDrawSprite, bmp, paint, geometry)
}

// DrawText draws text with its baseline origin at (x, y). topBot, when
// non-nil, supplies the font's ascent/descent extent (top, bottom) so a
// playback implementation can compute the text's bounds without shaping
// it first; font shaping itself is outside this package's scope.
func (r *Recorder) DrawText(text string, x, y float64, paint *picture.Paint, topBot *[2]float64) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = appendString(body, text)
	body = appendF32(body, float32(x))
	body = appendF32(body, float32(y))
	op := OpDrawText
	if topBot != nil {
		op = OpDrawTextTopBot
		body = appendF32(body, float32(topBot[0]))
		body = appendF32(body, float32(topBot[1]))
	}
	r.emit(op, body)
}

// DrawPosText draws text with each position in positions giving the
// exact placement of the corresponding glyph. The caller is responsible
// for having already shaped text into one position per glyph.
func (r *Recorder) DrawPosText(text string, positions []picture.Point, paint *picture.Paint, topBot *[2]float64) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = appendString(body, text)
	body = appendU32(body, uint32(len(positions))) //nolint:gosec
	for _, p := range positions {
		body = appendF32(body, float32(p.X))
		body = appendF32(body, float32(p.Y))
	}
	op := OpDrawPosText
	if topBot != nil {
		op = OpDrawPosTextTopBot
		body = appendF32(body, float32(topBot[0]))
		body = appendF32(body, float32(topBot[1]))
	}
	r.emit(op, body)
}

// DrawPosTextH draws text with each glyph's X position given by xs and a
// single shared baseline Y, the common case where only horizontal
// placement varies (e.g. kerned runs within one line).
func (r *Recorder) DrawPosTextH(text string, xs []float64, y float64, paint *picture.Paint, topBot *[2]float64) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = appendString(body, text)
	body = appendU32(body, uint32(len(xs))) //nolint:gosec
	for _, x := range xs {
		body = appendF32(body, float32(x))
	}
	body = appendF32(body, float32(y))
	op := OpDrawPosTextH
	if topBot != nil {
		op = OpDrawPosTextHTopBot
		body = appendF32(body, float32(topBot[0]))
		body = appendF32(body, float32(topBot[1]))
	}
	r.emit(op, body)
}

// DrawTextOnPath draws text flowed along path, additionally transformed
// by matrix if it is non-nil.
func (r *Recorder) DrawTextOnPath(text string, path *picture.Path, matrix *picture.Matrix, paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	pathIdx := r.paths.intern(path)
	hasMatrix := matrix != nil
	var body []byte
	body = appendU32(body, uint32(paintIdx)) //nolint:gosec
	body = appendString(body, text)
	body = appendU32(body, uint32(pathIdx)) //nolint:gosec
	body = appendU32(body, boolWord(hasMatrix))
	if hasMatrix {
		body = append(body, matrix.WriteTo(nil)...)
	}
	r.emit(OpDrawTextOnPath, body)
}

// DrawVertices draws a triangle mesh. colors and texCoords are optional
// per-vertex attributes; either may be nil. indices, if non-empty, draws
// the mesh indexed rather than in vertex order.
func (r *Recorder) DrawVertices(mode VertexMode, positions []picture.Point, colors []picture.RGBA, texCoords []picture.Point, indices []uint16, paint *picture.Paint) {
	r.requireNotFinished()
	paintIdx := r.paints.intern(paint)
	var body []byte
	body = appendU32(body, uint32(paintIdx))        //nolint:gosec
	body = appendU32(body, uint32(mode))            //nolint:gosec
	body = appendU32(body, uint32(len(positions)))  //nolint:gosec
	for _, p := range positions {
		body = appendF32(body, float32(p.X))
		body = appendF32(body, float32(p.Y))
	}

	body = appendU32(body, boolWord(len(colors) > 0))
	if len(colors) > 0 {
		for _, c := range colors {
			body = appendU32(body, packColor(c))
		}
	}

	body = appendU32(body, boolWord(len(texCoords) > 0))
	if len(texCoords) > 0 {
		for _, p := range texCoords {
			body = appendF32(body, float32(p.X))
			body = appendF32(body, float32(p.Y))
		}
	}

	body = appendU32(body, uint32(len(indices))) //nolint:gosec
	idxBytes := make([]byte, 0, len(indices)*2)
	for _, idx := range indices {
		idxBytes = append(idxBytes, byte(idx), byte(idx>>8))
	}
	if pad := len(idxBytes) % 4; pad != 0 {
		idxBytes = append(idxBytes, make([]byte, 4-pad)...)
	}
	body = append(body, idxBytes...)

	r.emit(OpDrawVertices, body)
}

// DrawPicture replays a previously recorded Picture as a single command.
// pic is interned by identity and reference-counted: the same *Picture
// drawn multiple times into this recording shares one dictionary entry.
func (r *Recorder) DrawPicture(pic *Picture) {
	r.requireNotFinished()
	pictureIdx := r.pictures.intern(pic)
	var body []byte
	body = appendU32(body, uint32(pictureIdx)) //nolint:gosec
	r.emit(OpDrawPicture, body)
}

// DrawData records an opaque, application-defined byte payload in the
// command stream without interpreting it. A playback implementation that
// does not recognize the payload is expected to skip it.
func (r *Recorder) DrawData(data []byte) {
	r.requireNotFinished()
	var body []byte
	body = appendU32(body, uint32(len(data))) //nolint:gosec
	body = append(body, data...)
	if pad := len(body) % 4; pad != 0 {
		body = append(body, make([]byte, 4-pad)...)
	}
	r.emit(OpDrawData, body)
}

// --- Annotations -----------------------------------------------------------

// BeginCommentGroup opens a named group of Comment annotations, purely
// for a downstream tool's benefit (e.g. grouping the commands a single
// higher-level drawing call expanded into). It has no effect on playback.
func (r *Recorder) BeginCommentGroup(description string) {
	r.requireNotFinished()
	r.emit(OpBeginCommentGroup, appendString(nil, description))
}

// Comment records a single key/value annotation.
func (r *Recorder) Comment(key, value string) {
	r.requireNotFinished()
	var body []byte
	body = appendString(body, key)
	body = appendString(body, value)
	r.emit(OpComment, body)
}

// EndCommentGroup closes the group opened by the most recent
// BeginCommentGroup.
func (r *Recorder) EndCommentGroup() {
	r.requireNotFinished()
	r.emit(OpEndCommentGroup, nil)
}
