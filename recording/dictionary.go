package recording

import (
	"reflect"

	"github.com/gogpu/picture"
)

// logNewEntry emits a debug-level record for a dictionary's first sighting
// of a value, per picture.Logger's documented debug-level contract for
// per-command recorder diagnostics. Lookups that hit an existing entry are
// not logged; they are the expected common case, not a diagnostic event.
func logNewEntry(kind string, index int) {
	picture.Logger().Debug("recording: interned new value", "dict", kind, "index", index)
}

// paintDict interns *picture.Paint values by deep value-equality,
// returning 1-based indices. Looking up an already-present paint returns
// its existing index unchanged.
type paintDict struct {
	items []*picture.Paint
}

// intern returns p's dictionary index, inserting it if it has not been
// seen before. A nil paint interns to 0, the "absent" sentinel.
func (d *paintDict) intern(p *picture.Paint) int {
	if p == nil {
		return 0
	}
	for i, existing := range d.items {
		if reflect.DeepEqual(existing, p) {
			return i + 1
		}
	}
	d.items = append(d.items, p)
	idx := len(d.items)
	logNewEntry("paint", idx)
	return idx
}

// byIndex returns the paint at a 1-based index, for the optimizer's
// unflatten step. ok is false for index 0 or an out-of-range index.
func (d *paintDict) byIndex(index int) (p *picture.Paint, ok bool) {
	if index <= 0 || index > len(d.items) {
		return nil, false
	}
	return d.items[index-1], true
}

// count reports how many distinct paints have been interned.
func (d *paintDict) count() int { return len(d.items) }

// pathDict interns *picture.Path values by pointer identity. Paths are
// typically large and mutable during construction, so deduplicating by
// value would be both expensive and semantically wrong once a caller
// continues to append to a path they already recorded.
type pathDict struct {
	items []*picture.Path
	index map[*picture.Path]int
}

func newPathDict() *pathDict {
	return &pathDict{index: make(map[*picture.Path]int)}
}

// intern returns path's dictionary index, inserting it on first sight.
func (d *pathDict) intern(path *picture.Path) int {
	if path == nil {
		return 0
	}
	if idx, ok := d.index[path]; ok {
		return idx
	}
	d.items = append(d.items, path)
	idx := len(d.items)
	d.index[path] = idx
	logNewEntry("path", idx)
	return idx
}

func (d *pathDict) count() int { return len(d.items) }

// bitmapDict interns *picture.Bitmap values by pixel-content equality.
// Candidates are first bucketed by content hash so repeated interning of
// the same bitmap stays close to O(1); a hash collision falls back to a
// full Equal comparison before two bitmaps are treated as identical.
type bitmapDict struct {
	items  []*picture.Bitmap
	byHash map[[32]byte][]int // content hash -> 1-based indices sharing it
}

func newBitmapDict() *bitmapDict {
	return &bitmapDict{byHash: make(map[[32]byte][]int)}
}

// intern returns bmp's dictionary index, inserting it on first sight.
func (d *bitmapDict) intern(bmp *picture.Bitmap) int {
	if bmp == nil {
		return 0
	}
	hash := bmp.ContentHash()
	for _, idx := range d.byHash[hash] {
		if d.items[idx-1].Equal(bmp) {
			return idx
		}
	}
	d.items = append(d.items, bmp)
	idx := len(d.items)
	d.byHash[hash] = append(d.byHash[hash], idx)
	logNewEntry("bitmap", idx)
	return idx
}

func (d *bitmapDict) count() int { return len(d.items) }

// pictureEntry tracks a nested picture's owning reference count.
type pictureEntry struct {
	pic      *Picture
	refCount int
}

// pictureDict interns *Picture values by pointer identity and holds an
// owning reference (via refCount) for the lifetime of the recorder that
// owns this dictionary.
type pictureDict struct {
	items []*pictureEntry
	index map[*Picture]int
}

func newPictureDict() *pictureDict {
	return &pictureDict{index: make(map[*Picture]int)}
}

// intern returns pic's dictionary index. The first time a given *Picture
// is seen, its reference count is set to 1 (the recorder's owning
// reference); subsequent interns of the same pointer bump the count
// without allocating a new slot.
func (d *pictureDict) intern(pic *Picture) int {
	if pic == nil {
		return 0
	}
	if idx, ok := d.index[pic]; ok {
		d.items[idx-1].refCount++
		return idx
	}
	d.items = append(d.items, &pictureEntry{pic: pic, refCount: 1})
	idx := len(d.items)
	d.index[pic] = idx
	logNewEntry("picture", idx)
	return idx
}

// refCount returns the current reference count for the picture at a
// 1-based index, or 0 if the index is invalid.
func (d *pictureDict) refCount(index int) int {
	if index <= 0 || index > len(d.items) {
		return 0
	}
	return d.items[index-1].refCount
}

func (d *pictureDict) count() int { return len(d.items) }
