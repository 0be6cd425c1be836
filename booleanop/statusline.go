package booleanop

import "sort"

// The status line holds the left events of the segments currently cut by
// the sweep line, ordered bottom to top by segmentLess.
//
// It is a sorted slice with binary-search insertion. Insert and remove
// shift the tail, which costs O(n), but neighbour lookup is O(1), and
// the sweep consults neighbours far more often than it mutates. The
// slice also keeps every contained event's PosSL equal to its index, so
// removal by index needs no search at all.
type statusLine struct {
	events []*SweepEvent
}

// Insert e into sorted position and return its index. Every event at or
// after the insertion point has its PosSL updated.
func (sl *statusLine) Insert(e *SweepEvent) int {
	i := sort.Search(len(sl.events), func(j int) bool {
		return segmentLess(e, sl.events[j])
	})
	sl.events = append(sl.events, nil)
	copy(sl.events[i+1:], sl.events[i:])
	sl.events[i] = e
	for j := i; j < len(sl.events); j++ {
		sl.events[j].PosSL = j
	}
	return i
}

// Remove the event at index i, fixing up the PosSL of everything that
// shifts down.
func (sl *statusLine) Remove(i int) {
	copy(sl.events[i:], sl.events[i+1:])
	sl.events[len(sl.events)-1] = nil
	sl.events = sl.events[:len(sl.events)-1]
	for j := i; j < len(sl.events); j++ {
		sl.events[j].PosSL = j
	}
}

// The event directly below index i, or nil at the bottom.
func (sl *statusLine) Prev(i int) *SweepEvent {
	if i <= 0 {
		return nil
	}
	return sl.events[i-1]
}

// The event directly above index i, or nil at the top.
func (sl *statusLine) Next(i int) *SweepEvent {
	if i+1 >= len(sl.events) {
		return nil
	}
	return sl.events[i+1]
}

func (sl *statusLine) Len() int { return len(sl.events) }
