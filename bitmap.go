package picture

import (
	"crypto/sha256"
	"encoding/binary"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap is a rectangular RGBA pixel buffer, the recorder's unit of raster
// image data. Bitmaps are interned by value in the recorder's bitmap
// dictionary, so two Bitmaps with identical dimensions and pixels collapse
// to the same dictionary index regardless of how they were constructed.
type Bitmap struct {
	width  int
	height int
	pix    []uint8 // non-premultiplied RGBA, 4 bytes per pixel, row-major
}

// NewBitmap creates a new, transparent bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// NewBitmapFromImage canonicalizes an arbitrary image.Image into a Bitmap
// by drawing it into a fresh image.NRGBA buffer. Routing every source
// through golang.org/x/image/draw means two images with the same visible
// pixels always produce byte-identical Bitmaps — a precondition for the
// bitmap dictionary's value-equality dedup — even when the sources use
// different underlying color.Model or stride.
func NewBitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Bitmap{
		width:  dst.Rect.Dx(),
		height: dst.Rect.Dy(),
		pix:    dst.Pix,
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int { return b.height }

// Data returns the raw pixel data (RGBA format, row-major).
func (b *Bitmap) Data() []uint8 { return b.pix }

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// silently ignored.
func (b *Bitmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = uint8(clamp255(c.R * 255))
	b.pix[i+1] = uint8(clamp255(c.G * 255))
	b.pix[i+2] = uint8(clamp255(c.B * 255))
	b.pix[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return Transparent.
func (b *Bitmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return RGBA{
		R: float64(b.pix[i+0]) / 255,
		G: float64(b.pix[i+1]) / 255,
		B: float64(b.pix[i+2]) / 255,
		A: float64(b.pix[i+3]) / 255,
	}
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color { return b.GetPixel(x, y).Color() }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// Equal reports whether two bitmaps have identical dimensions and pixels.
// This is the dictionary's value-equality predicate for bitmaps.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	if len(b.pix) != len(other.pix) {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// ContentHash returns a digest of the bitmap's dimensions and pixels,
// suitable as a dictionary bucket key. Two equal bitmaps always hash to
// the same digest; a hash collision still requires an Equal check before
// two distinct bitmaps may be treated as the same dictionary entry.
func (b *Bitmap) ContentHash() [32]byte {
	h := sha256.New()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(b.width))   // #nosec G115 -- bitmap dimensions never approach uint32 overflow
	binary.LittleEndian.PutUint32(dims[4:8], uint32(b.height))  // #nosec G115
	_, _ = h.Write(dims[:])
	_, _ = h.Write(b.pix)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// SizeHint returns the number of bytes Bitmap.WriteTo would write for this
// bitmap, letting callers pre-size a command's declared byte-count without
// performing the write.
func (b *Bitmap) SizeHint() int {
	return 8 + len(b.pix) // width, height, then raw pixels
}

// WriteTo appends the bitmap's serialized form (width, height, raw RGBA
// pixels) to buf and returns the extended slice. This is the
// stable byte contract the recorder's writer relies on; playback owns the
// inverse decode.
func (b *Bitmap) WriteTo(buf []byte) []byte {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(b.width))  // #nosec G115
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(b.height)) // #nosec G115
	buf = append(buf, hdr[:]...)
	buf = append(buf, b.pix...)
	return buf
}
