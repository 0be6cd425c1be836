package booleanop

// The connector: after the sweep has labelled every event, assemble the
// events that made it into the result into closed contours, attributing
// holes and depth as it goes.

func (b *booleanOp) connectEdges() {
	// Keep an event iff its left half is in the result.
	resultEvents := make([]*SweepEvent, 0, len(b.sortedEvents))
	for _, se := range b.sortedEvents {
		if (se.Left && se.InResult) || (!se.Left && se.Other.InResult) {
			resultEvents = append(resultEvents, se)
		}
	}

	// Processing order is almost comparator order, but subdivision can
	// enqueue events behind the sweep, so the slice needs a final stable
	// sort. Adjacent swaps to a fixed point preserve construction order
	// among equal events.
	sorted := false
	for !sorted {
		sorted = true
		for i := 0; i+1 < len(resultEvents); i++ {
			if eventLess(resultEvents[i+1], resultEvents[i]) {
				resultEvents[i], resultEvents[i+1] = resultEvents[i+1], resultEvents[i]
				sorted = false
			}
		}
	}

	// After this, resultEvents[resultEvents[i].Pos] is the partner of
	// resultEvents[i].
	for i, se := range resultEvents {
		se.Pos = i
	}
	for _, se := range resultEvents {
		if !se.Left {
			se.Pos, se.Other.Pos = se.Other.Pos, se.Pos
		}
	}

	processed := make([]bool, len(resultEvents))
	for i := range resultEvents {
		if processed[i] {
			continue
		}
		contourID := b.result.NContours()
		contour := b.initializeContourFromContext(resultEvents[i], contourID)
		b.result.Add(contour)

		pos := i
		initial := resultEvents[i].Point
		contour.Add(initial)
		// The ring is closed by the segment whose far end returns to the
		// initial point, so that point is never appended twice.
		for resultEvents[pos].Other.Point != initial {
			processed[pos] = true
			se := resultEvents[pos]
			se.OutputContourID = contourID
			if se.Left {
				se.ResultInOut = false
			} else {
				se.Other.ResultInOut = true
				se.Other.OutputContourID = contourID
			}

			// Jump to the partner, which closes out this segment, then
			// move on to the next unprocessed event at that point.
			pos = se.Pos
			processed[pos] = true
			resultEvents[pos].OutputContourID = contourID
			contour.Add(resultEvents[pos].Point)

			pos = nextPos(pos, resultEvents, processed, i)
			if pos == i || pos >= len(resultEvents) || pos < 0 {
				break
			}
		}
		// The closing segment's pair still needs to be marked and
		// attributed.
		processed[pos] = true
		processed[resultEvents[pos].Pos] = true
		resultEvents[pos].OutputContourID = contourID
		resultEvents[pos].Other.ResultInOut = true
		resultEvents[pos].Other.OutputContourID = contourID
	}

	// Orientation is enforced only now: holes at odd depth clockwise,
	// everything else counterclockwise. External contours are
	// counterclockwise regardless of depth; an island floating in a
	// cavity is external even though it sits at the cavity's depth.
	for _, contour := range b.result.Contours {
		if !contour.External() && contour.Depth%2 == 1 {
			contour.SetClockwise()
		} else {
			contour.SetCounterClockwise()
		}
	}
}

// A new contour starts at its lexicographically smallest event, so the
// contour below that event in the status line (recorded during the
// sweep as PrevInResult) tells us everything about nesting: if we are
// inside the lower contour's region we are a hole (or sibling hole); if
// the lower contour's region is below and closed off, we are a new
// external contour at the same depth.
func (b *booleanOp) initializeContourFromContext(e *SweepEvent, contourID int) *Contour {
	contour := NewContour()
	if e.PrevInResult == nil {
		contour.Depth = 0
		return contour
	}

	// The lower event was emitted into its contour before this one
	// started, so its output contour id is already valid.
	lowerContourID := e.PrevInResult.OutputContourID
	lowerContour := b.result.Contour(lowerContourID)
	if e.PrevInResult.ResultTransition > 0 {
		// The region between the lower contour and us is inside the
		// result, so the new contour is a hole (or an island at the same
		// level as one).
		if lowerContour.External() {
			lowerContour.AddHole(contourID)
			contour.HoleOf = lowerContourID
			contour.Depth = lowerContour.Depth + 1
		} else {
			// The lower contour is itself a hole; we hang off the same
			// parent at the same depth.
			parentID := lowerContour.HoleOf
			b.result.Contour(parentID).AddHole(contourID)
			contour.HoleOf = parentID
			contour.Depth = lowerContour.Depth
		}
	} else {
		// We are outside the lower contour: a new external contour at its
		// depth.
		contour.Depth = lowerContour.Depth
	}
	return contour
}

// nextPos finds where the contour walk continues from pos: the next
// unprocessed event sharing the current point, scanning forward first
// and then backward. When everything after pos at the point is
// processed, the backward scan from pos-1 skips processed events and
// stops at the first unprocessed one above origPos, or at origPos
// itself, which terminates the walk.
func nextPos(pos int, resultEvents []*SweepEvent, processed []bool, origPos int) int {
	p := resultEvents[pos].Point
	newPos := pos + 1
	for newPos < len(resultEvents) && resultEvents[newPos].Point == p {
		if !processed[newPos] {
			return newPos
		}
		newPos++
	}
	newPos = pos - 1
	for newPos > origPos && processed[newPos] {
		newPos--
	}
	return newPos
}
