package booleanop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue(t *testing.T) {
	t.Run("dequeues in sweep order regardless of insertion order", func(t *testing.T) {
		seq := 0
		// Left events at x = 2, 0, 1; their right events interleave.
		segments := []*SweepEvent{
			makeEventPair(&seq, Point{2, 0}, Point{3, 1}, SubjectPolygon),
			makeEventPair(&seq, Point{0, 0}, Point{5, 1}, SubjectPolygon),
			makeEventPair(&seq, Point{1, 2}, Point{4, 2}, ClippingPolygon),
		}
		var q eventQueue
		for _, le := range segments {
			q.Enqueue(le)
			q.Enqueue(le.Other)
		}

		require.Equal(t, 6, q.Len())
		var order []*SweepEvent
		for !q.Empty() {
			order = append(order, q.Dequeue())
		}
		for i := 0; i+1 < len(order); i++ {
			assert.True(t, eventLess(order[i], order[i+1]),
				"events %d and %d dequeued out of order", i, i+1)
		}
		assert.Equal(t, 0, q.Len())
	})

	t.Run("coincident events dequeue in construction order", func(t *testing.T) {
		seq := 0
		first := makeEventPair(&seq, Point{0, 0}, Point{1, 0}, SubjectPolygon)
		second := makeEventPair(&seq, Point{0, 0}, Point{1, 0}, SubjectPolygon)
		third := makeEventPair(&seq, Point{0, 0}, Point{1, 0}, SubjectPolygon)

		var q eventQueue
		q.Enqueue(third)
		q.Enqueue(first)
		q.Enqueue(second)

		assert.Equal(t, first, q.Dequeue())
		assert.Equal(t, second, q.Dequeue())
		assert.Equal(t, third, q.Dequeue())
	})

	t.Run("grows while draining", func(t *testing.T) {
		// The sweep enqueues subdivision products mid-drain; the queue
		// must keep them ordered relative to what is already there.
		seq := 0
		a := makeEventPair(&seq, Point{0, 0}, Point{4, 0}, SubjectPolygon)
		var q eventQueue
		q.Enqueue(a)
		q.Enqueue(a.Other)

		assert.Equal(t, a, q.Dequeue())
		mid := makeEventPair(&seq, Point{2, 0}, Point{3, 0}, ClippingPolygon)
		q.Enqueue(mid)
		q.Enqueue(mid.Other)

		assert.Equal(t, mid, q.Dequeue())
		assert.Equal(t, mid.Other, q.Dequeue())
		assert.Equal(t, a.Other, q.Dequeue())
	})
}
