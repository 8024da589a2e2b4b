package bitmapx

import (
	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/exp/constraints"
)

// Lazy ...
func Lazy(m *roaring.Bitmap) *roaring.Bitmap {
	if m != nil {
		return m
	}

	return roaring.New()
}

// Range bitmap with every bit in [min, max] set.
func Range[T constraints.Integer](min, max T) *roaring.Bitmap {
	m := roaring.New()
	m.AddRange(uint64(min), uint64(max)+1)
	return m
}

// Sparse bitmap with every nth bit in [0, max) set.
func Sparse[T constraints.Integer](max, n T) *roaring.Bitmap {
	m := roaring.New()
	for i := T(0); i < max; i += n {
		m.Add(uint32(i))
	}
	return m
}
