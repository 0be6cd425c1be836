package booleanop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHoles(t *testing.T) {
	t.Run("empty polygon", func(t *testing.T) {
		p := &Polygon{}
		assert.NotPanics(t, p.ComputeHoles)
	})

	t.Run("single contour is normalised to counterclockwise", func(t *testing.T) {
		c := square(0, 0, 2)
		c.SetClockwise()
		p := NewPolygon(c)
		p.ComputeHoles()
		assert.True(t, p.Contour(0).CounterClockwise())
		assert.True(t, p.Contour(0).External())
		assert.Equal(t, 0, p.Contour(0).Depth)
	})

	t.Run("disjoint contours are all external", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 2), square(5, 0, 2), square(0, 5, 2))
		p.ComputeHoles()
		for i, c := range p.Contours {
			assert.True(t, c.External(), "contour %d", i)
			assert.Equal(t, 0, c.Depth, "contour %d", i)
			assert.True(t, c.CounterClockwise(), "contour %d", i)
		}
	})

	t.Run("square with one hole", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 10), square(3, 3, 4))
		p.ComputeHoles()

		outer := p.Contour(0)
		hole := p.Contour(1)
		assert.True(t, outer.External())
		assert.Equal(t, []int{1}, outer.HoleIDs)
		assert.Equal(t, 0, hole.HoleOf)
		assert.Equal(t, 1, hole.Depth)
		assert.True(t, hole.Clockwise())
		assert.True(t, outer.CounterClockwise())
	})

	t.Run("island inside a hole", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 10), square(2, 2, 6), square(4, 4, 2))
		p.ComputeHoles()

		outer, hole, island := p.Contour(0), p.Contour(1), p.Contour(2)

		assert.Equal(t, []int{1}, outer.HoleIDs)
		assert.Equal(t, 0, hole.HoleOf)
		assert.Equal(t, 1, hole.Depth)
		// The island hangs off the hole, one level deeper, and is a
		// filled region again.
		assert.Equal(t, []int{2}, hole.HoleIDs)
		assert.Equal(t, 1, island.HoleOf)
		assert.Equal(t, 2, island.Depth)
		assert.True(t, island.CounterClockwise())
		assert.True(t, hole.Clockwise())
	})

	t.Run("two holes in the same parent", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 10), square(1, 1, 2), square(1, 5, 2))
		p.ComputeHoles()

		assert.ElementsMatch(t, []int{1, 2}, p.Contour(0).HoleIDs)
		assert.Equal(t, 0, p.Contour(1).HoleOf)
		assert.Equal(t, 0, p.Contour(2).HoleOf)
		assert.Equal(t, 1, p.Contour(1).Depth)
		assert.Equal(t, 1, p.Contour(2).Depth)
	})

	t.Run("sibling hole found through another hole's top edge", func(t *testing.T) {
		// The second hole sits directly above the first, so the segment
		// below its leftmost vertex is the first hole's top edge rather
		// than an edge of the parent.
		p := NewPolygon(square(0, 0, 10), square(4, 1, 2), square(4, 4, 2))
		p.ComputeHoles()

		assert.ElementsMatch(t, []int{1, 2}, p.Contour(0).HoleIDs)
		assert.Equal(t, 0, p.Contour(2).HoleOf)
		assert.Equal(t, 1, p.Contour(2).Depth)
	})

	t.Run("recomputation resets earlier results", func(t *testing.T) {
		p := NewPolygon(square(0, 0, 10), square(3, 3, 4))
		p.ComputeHoles()
		p.ComputeHoles()
		assert.Equal(t, []int{1}, p.Contour(0).HoleIDs)
		assert.Equal(t, 1, p.Contour(1).Depth)
	})
}
