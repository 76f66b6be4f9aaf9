package picture

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PathEffect transforms the geometry of a stroke before it is filled
// (dashing, corner rounding). A nil PathEffect means no such transform.
type PathEffect interface {
	pathEffectMarker()
}

// Xfermode overrides how a paint's color combines with the destination.
// A nil Xfermode means ordinary source-over compositing.
type Xfermode interface {
	xfermodeMarker()
}

// MaskFilter post-processes a draw's alpha mask (blur, emboss).
type MaskFilter interface {
	maskFilterMarker()
}

// ColorFilter transforms every color a paint produces before compositing.
type ColorFilter interface {
	colorFilterMarker()
}

// Rasterizer replaces the default path-to-mask rasterization policy.
type Rasterizer interface {
	rasterizerMarker()
}

// DrawLooper runs a paint's draw one or more times with per-pass
// adjustments (e.g. drop shadows).
type DrawLooper interface {
	drawLooperMarker()
}

// ImageFilter post-processes the rendered output of a draw (blur, displace)
// before it is composited onto the destination.
type ImageFilter interface {
	imageFilterMarker()
}

// Paint represents the styling information for drawing.
//
// A Paint with no Shader, PathEffect, Xfermode, MaskFilter, ColorFilter,
// Rasterizer, Looper or ImageFilter attached — only a flat Brush color and
// the basic stroke style fields — is a "simple" paint. Simple-ness gates
// the recorder's save-layer paint fold (see IsSimple).
type Paint struct {
	// Brush is the fill or stroke brush. A SolidBrush keeps the paint
	// simple; any other Brush (gradients, patterns) counts as a shader
	// effect and disqualifies it.
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// FillRule is the fill rule for paths.
	FillRule FillRule

	// Antialias enables anti-aliasing.
	Antialias bool

	// PathEffect, Xfermode, MaskFilter, ColorFilter, Rasterizer, Looper
	// and ImageFilter are the optional effect slots a "simple" paint
	// (together with a solid Brush) must leave empty.
	PathEffect  PathEffect
	Xfermode    Xfermode
	MaskFilter  MaskFilter
	ColorFilter ColorFilter
	Rasterizer  Rasterizer
	Looper      DrawLooper
	ImageFilter ImageFilter
}

// NewPaint creates a new Paint with default values: an opaque black solid
// brush, 1-unit butt-capped miter-joined strokes, non-zero fill rule, and
// anti-aliasing enabled.
func NewPaint() *Paint {
	return &Paint{
		Brush:      Solid(Black),
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
		FillRule:   FillRuleNonZero,
		Antialias:  true,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	q := *p
	return &q
}

// SetBrush sets the brush for this Paint.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
}

// GetBrush returns the current brush, defaulting to opaque black.
func (p *Paint) GetBrush() Brush {
	if p.Brush != nil {
		return p.Brush
	}
	return Solid(Black)
}

// ColorAt returns the color at the given position.
func (p *Paint) ColorAt(x, y float64) RGBA {
	return p.GetBrush().ColorAt(x, y)
}

// Color reports the paint's flat color when its brush is solid, and
// whether the brush was in fact solid. A non-solid brush (gradient,
// pattern) has no single color and reports ok=false.
func (p *Paint) Color() (c RGBA, ok bool) {
	sb, isSolid := p.GetBrush().(SolidBrush)
	if !isSolid {
		return RGBA{}, false
	}
	return sb.Color, true
}

// HasShader reports whether the paint's brush is a shader-backed effect
// (anything other than a flat SolidBrush).
func (p *Paint) HasShader() bool {
	_, isSolid := p.GetBrush().(SolidBrush)
	return !isSolid
}

// IsSimple reports whether the paint carries only a flat color and basic
// stroke style — no path effect, shader, transfer mode, mask filter,
// color filter, rasterizer, draw looper, or image filter. The recorder's
// save-layer paint fold (Rule B) requires the save layer's paint to be
// simple before it merges the layer's alpha into a draw's paint.
func (p *Paint) IsSimple() bool {
	return p.PathEffect == nil &&
		!p.HasShader() &&
		p.Xfermode == nil &&
		p.MaskFilter == nil &&
		p.ColorFilter == nil &&
		p.Rasterizer == nil &&
		p.Looper == nil &&
		p.ImageFilter == nil
}

// WithAlpha returns a clone of p with its solid brush's alpha replaced by
// alpha. It returns ErrNotSolid if p's brush is not a SolidBrush.
func (p *Paint) WithAlpha(alpha float64) (*Paint, error) {
	c, ok := p.Color()
	if !ok {
		return nil, ErrNotSolid
	}
	q := p.Clone()
	c.A = alpha
	q.Brush = Solid(c)
	return q, nil
}
