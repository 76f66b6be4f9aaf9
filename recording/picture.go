package recording

import "github.com/gogpu/picture"

// Picture is the finished, immutable output of a Recorder: a flattened
// command stream plus the dictionaries it references by index. A Picture
// may itself be drawn into another recording with Recorder.DrawPicture,
// in which case it is interned by identity and reference-counted for as
// long as any recording holds it.
type Picture struct {
	width, height int

	commands []byte

	paints   []*picture.Paint
	paths    []*picture.Path
	bitmaps  []*picture.Bitmap
	pictures []*Picture
}

// Width returns the nominal width, in device pixels, the recording was
// created for.
func (p *Picture) Width() int { return p.width }

// Height returns the nominal height, in device pixels, the recording was
// created for.
func (p *Picture) Height() int { return p.height }

// Commands returns the raw encoded command stream. The slice is owned by
// the Picture and must not be mutated.
func (p *Picture) Commands() []byte { return p.commands }

// PaintAt returns the paint dictionary entry at a 1-based index, as
// emitted in the command stream. It returns picture.ErrInvalidIndex for
// index 0 (the "no paint" sentinel) or an out-of-range index.
func (p *Picture) PaintAt(index int) (*picture.Paint, error) {
	if index <= 0 || index > len(p.paints) {
		return nil, picture.ErrInvalidIndex
	}
	return p.paints[index-1], nil
}

// PathAt returns the path dictionary entry at a 1-based index. It
// returns picture.ErrInvalidIndex for index 0 or an out-of-range index.
func (p *Picture) PathAt(index int) (*picture.Path, error) {
	if index <= 0 || index > len(p.paths) {
		return nil, picture.ErrInvalidIndex
	}
	return p.paths[index-1], nil
}

// BitmapAt returns the bitmap dictionary entry at a 1-based index. It
// returns picture.ErrInvalidIndex for index 0 or an out-of-range index.
func (p *Picture) BitmapAt(index int) (*picture.Bitmap, error) {
	if index <= 0 || index > len(p.bitmaps) {
		return nil, picture.ErrInvalidIndex
	}
	return p.bitmaps[index-1], nil
}

// PictureAt returns the nested-picture dictionary entry at a 1-based
// index. It returns picture.ErrInvalidIndex for index 0 or an
// out-of-range index.
func (p *Picture) PictureAt(index int) (*Picture, error) {
	if index <= 0 || index > len(p.pictures) {
		return nil, picture.ErrInvalidIndex
	}
	return p.pictures[index-1], nil
}

// OpCount walks the command stream and reports how many top-level
// commands it contains, without decoding their bodies. Mainly useful for
// tests asserting on optimizer behavior (e.g. that an empty save/restore
// pair left no trace).
func (p *Picture) OpCount() int {
	n := 0
	offset := 0
	for offset < len(p.commands) {
		_, size, _ := peek(p.commands, offset)
		offset += int(size)
		n++
	}
	return n
}
