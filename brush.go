package picture

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// The Brush pattern follows vello/peniko Rust conventions, providing a
// type-safe way to represent different brush types (solid colors, gradients,
// images).
//
// Supported brush types:
//   - SolidBrush: A single solid color, the only brush a simple paint may carry.
//   - GradientBrush implementations: shader-backed brushes that disqualify a
//     paint from the recorder's save-layer paint fold.
//
// Example usage:
//
//	p.SetBrush(picture.Solid(picture.Red))
//	p.SetBrush(picture.SolidRGB(0.5, 0.5, 0.5))
//	p.SetBrush(picture.SolidHex("#FF5733"))
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	// For pattern-based brushes, this samples the pattern at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
// It implements the Brush interface and always returns the same color.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := picture.Solid(picture.Red)
//	brush := picture.Solid(picture.RGBA{R: 1, G: 0, B: 0, A: 1})
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates a SolidBrush from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
//
// Example:
//
//	brush := picture.SolidRGB(1, 0, 0) // Red
//	brush := picture.SolidRGB(0.5, 0.5, 0.5) // Gray
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidRGBA creates a SolidBrush from RGBA components (0-1 range).
//
// Example:
//
//	brush := picture.SolidRGBA(1, 0, 0, 0.5) // Semi-transparent red
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA2(r, g, b, a)}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
//
// Example:
//
//	brush := picture.SolidHex("#FF5733")
//	brush := picture.SolidHex("FF5733")
//	brush := picture.SolidHex("#F53")
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
//
// Example:
//
//	opaqueBrush := picture.Solid(picture.Red)
//	semiBrush := opaqueBrush.WithAlpha(0.5)
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{
		Color: RGBA{
			R: b.Color.R,
			G: b.Color.G,
			B: b.Color.B,
			A: alpha,
		},
	}
}

// Opaque returns a new SolidBrush with alpha set to 1.0.
func (b SolidBrush) Opaque() SolidBrush {
	return b.WithAlpha(1.0)
}

// Transparent returns a new SolidBrush with alpha set to 0.0.
func (b SolidBrush) Transparent() SolidBrush {
	return b.WithAlpha(0.0)
}

// Lerp performs linear interpolation between two solid brushes.
// Returns a new SolidBrush with the interpolated color.
//
// Example:
//
//	red := picture.Solid(picture.Red)
//	blue := picture.Solid(picture.Blue)
//	purple := red.Lerp(blue, 0.5)
func (b SolidBrush) Lerp(other SolidBrush, t float64) SolidBrush {
	return SolidBrush{Color: b.Color.Lerp(other.Color, t)}
}

// GradientBrush marks a brush backed by a shader-like effect (gradient,
// image pattern) rather than a flat color. Paint.IsSimple treats any
// GradientBrush as a shader effect, matching the "no shader" requirement
// of a simple paint.
type GradientBrush interface {
	Brush

	// gradientMarker seals this sub-interface to this package.
	gradientMarker()
}

// ImageBrush samples a Bitmap as a repeating tile pattern. It is a
// GradientBrush: any paint carrying one is never "simple" and is ignored
// by the recorder's save-layer paint fold.
type ImageBrush struct {
	Bitmap *Bitmap
}

func (ImageBrush) brushMarker()    {}
func (ImageBrush) gradientMarker() {}

// ColorAt samples the underlying bitmap, tiling it across the plane.
func (b ImageBrush) ColorAt(x, y float64) RGBA {
	if b.Bitmap == nil || b.Bitmap.Width() == 0 || b.Bitmap.Height() == 0 {
		return Transparent
	}
	w, h := b.Bitmap.Width(), b.Bitmap.Height()
	px := int(x) % w
	if px < 0 {
		px += w
	}
	py := int(y) % h
	if py < 0 {
		py += h
	}
	return b.Bitmap.GetPixel(px, py)
}
