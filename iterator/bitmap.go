package iterator

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/james-lawrence/prefetch/internal/bitmapx"
)

// Bitmap iterates over the set bits of m in ascending order. a nil bitmap is empty.
// m must not be modified while iterating.
func Bitmap(m *roaring.Bitmap) *bitmap {
	m = bitmapx.Lazy(m)
	return &bitmap{m: m, i: m.Iterator()}
}

type bitmap struct {
	m   *roaring.Bitmap
	i   roaring.IntPeekable
	cur uint32
}

func (t *bitmap) Next() bool {
	if !t.i.HasNext() {
		return false
	}

	t.cur = t.i.Next()
	return true
}

func (t *bitmap) At() uint32 {
	return t.cur
}

func (t *bitmap) Err() error {
	return nil
}

func (t *bitmap) Rewind() error {
	t.i = t.m.Iterator()
	return nil
}
