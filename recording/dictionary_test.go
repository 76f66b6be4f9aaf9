package recording

import (
	"testing"

	"github.com/gogpu/picture"
)

func TestPaintDictIdempotence(t *testing.T) {
	d := &paintDict{}
	p1 := picture.NewPaint()
	p2 := picture.NewPaint() // distinct pointer, equal value

	i1 := d.intern(p1)
	i2 := d.intern(p2)
	if i1 != i2 {
		t.Errorf("interning an equal-value paint got a new index: %d != %d", i1, i2)
	}
	if d.count() != 1 {
		t.Errorf("count = %d, want 1", d.count())
	}

	other := picture.NewPaint()
	other.SetBrush(picture.Solid(picture.Red))
	i3 := d.intern(other)
	if i3 == i1 {
		t.Error("a distinct paint value interned to the same index")
	}
	if d.count() != 2 {
		t.Errorf("count = %d, want 2", d.count())
	}
}

func TestPaintDictNilIsSentinel(t *testing.T) {
	d := &paintDict{}
	if idx := d.intern(nil); idx != 0 {
		t.Errorf("intern(nil) = %d, want 0", idx)
	}
	if d.count() != 0 {
		t.Errorf("count = %d, want 0", d.count())
	}
}

func TestPathDictIdentityNotValue(t *testing.T) {
	d := newPathDict()
	a := picture.NewPath()
	a.MoveTo(0, 0)
	b := picture.NewPath()
	b.MoveTo(0, 0) // same shape, distinct pointer

	if d.intern(a) == d.intern(b) {
		t.Error("pathDict deduplicated by value; it must dedupe by identity only")
	}
	if d.intern(a) != d.intern(a) {
		t.Error("interning the same pointer twice must return the same index")
	}
	if d.count() != 2 {
		t.Errorf("count = %d, want 2", d.count())
	}
}

func TestBitmapDictValueEquality(t *testing.T) {
	d := newBitmapDict()
	a := picture.NewBitmap(2, 2)
	a.SetPixel(0, 0, picture.Red)
	b := picture.NewBitmap(2, 2)
	b.SetPixel(0, 0, picture.Red)

	ia := d.intern(a)
	ib := d.intern(b)
	if ia != ib {
		t.Errorf("two bitmaps with identical pixels interned to different indices: %d != %d", ia, ib)
	}

	c := picture.NewBitmap(2, 2)
	c.SetPixel(0, 0, picture.Blue)
	if ic := d.intern(c); ic == ia {
		t.Error("a bitmap with different pixels interned to the same index")
	}
}

func TestPictureDictIdentityAndRefCount(t *testing.T) {
	d := newPictureDict()
	pic := &Picture{width: 10, height: 10}

	i1 := d.intern(pic)
	i2 := d.intern(pic)
	if i1 != i2 {
		t.Errorf("interning the same *Picture twice got different indices: %d != %d", i1, i2)
	}
	if got := d.refCount(i1); got != 2 {
		t.Errorf("refCount = %d, want 2", got)
	}

	other := &Picture{width: 10, height: 10}
	if d.intern(other) == i1 {
		t.Error("a distinct *Picture with equal fields interned to the same index")
	}
}
