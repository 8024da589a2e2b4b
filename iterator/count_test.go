package iterator

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCount(t *testing.T) {
	t.Run("steps from start", func(t *testing.T) {
		c := qt.New(t)
		taken, err := Take(Count[int64](10, 10), 4)
		c.Assert(err, qt.IsNil)
		c.Assert(taken, qt.DeepEquals, []int64{10, 20, 30, 40})
	})

	t.Run("wraps on overflow", func(t *testing.T) {
		c := qt.New(t)
		taken, err := Take(Count[uint8](math.MaxUint8, 1), 2)
		c.Assert(err, qt.IsNil)
		c.Assert(taken, qt.DeepEquals, []uint8{math.MaxUint8, 0})
	})

	t.Run("rewind", func(t *testing.T) {
		c := qt.New(t)
		it := Count(5, -1)
		_, err := Take(it, 3)
		c.Assert(err, qt.IsNil)
		c.Assert(it.Rewind(), qt.IsNil)
		c.Assert(it.Next(), qt.IsTrue)
		c.Assert(it.At(), qt.Equals, 5)
	})
}
