package booleanop

import "container/heap"

// The event queue is a binary min-heap on eventLess. A bare heap is not
// stable, but eventLess ends in the construction-order tiebreak, which
// gives the same effect: equal-priority events dequeue in the order they
// were created.

type eventHeap []*SweepEvent

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return eventLess(h[i], h[j]) }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(*SweepEvent)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

type eventQueue struct {
	h eventHeap
}

func (q *eventQueue) Enqueue(e *SweepEvent) {
	heap.Push(&q.h, e)
}

func (q *eventQueue) Dequeue() *SweepEvent {
	return heap.Pop(&q.h).(*SweepEvent)
}

func (q *eventQueue) Len() int { return len(q.h) }

func (q *eventQueue) Empty() bool { return len(q.h) == 0 }
