package booleanop

import "math"

// Op selects which Boolean operation Compute performs.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	Xor
)

func (op Op) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	}
	return "invalid"
}

// When set, the engine prints a colored status-line dump and renders a
// PNG snapshot of the sweep for every processed event. The terminal
// equivalent of stepping through the operation in a debugger.
var TraceSweep = false

// Compute performs the Boolean operation op on subject and clipping and
// returns the result as a new polygon. The inputs are not modified.
// Result contours carry depth, parent and hole-index information, with
// external contours counterclockwise and odd-depth holes clockwise.
//
// Internal failures (including an operation code that is not one of the
// four) panic with an OpError; the root package's wrappers recover and
// return it as an error.
func Compute(subject, clipping *Polygon, operation Op) *Polygon {
	if operation < Intersection || operation > Xor {
		fatalf("invalid boolean operation code %d", int(operation))
	}
	b := &booleanOp{
		subject:   subject,
		clipping:  clipping,
		operation: operation,
		result:    &Polygon{},
	}
	return b.run()
}

// The engine owns everything a single operation touches: the queue, the
// status line, the event arena, and the accumulating result. One
// instance per operation; never shared.
type booleanOp struct {
	subject   *Polygon
	clipping  *Polygon
	operation Op

	eq eventQueue
	sl statusLine
	// Every event allocated during the run, in construction order. The
	// events cross-reference each other (Other, PrevInResult), so they
	// all stay alive until the operation returns.
	arena []*SweepEvent
	// Events in the order the main loop processed them.
	sortedEvents []*SweepEvent

	result *Polygon
}

func (b *booleanOp) run() *Polygon {
	subjectBB := b.subject.BoundingBox()
	clippingBB := b.clipping.BoundingBox()
	if result, done := b.trivialOperation(subjectBB, clippingBB); done {
		return result
	}

	contourID := 0
	for _, c := range b.subject.Contours {
		for i := 0; i < c.NEdges(); i++ {
			b.processSegment(c.Segment(i), SubjectPolygon, contourID)
		}
		contourID++
	}
	for _, c := range b.clipping.Contours {
		for i := 0; i < c.NEdges(); i++ {
			b.processSegment(c.Segment(i), ClippingPolygon, contourID)
		}
		contourID++
	}

	// Once the sweep passes the end of either operand, the rest of the
	// events cannot affect an intersection result; once it passes the end
	// of the subject, they cannot affect a difference result.
	minMaxX := math.Min(subjectBB.Max.X, clippingBB.Max.X)

	for !b.eq.Empty() {
		e := b.eq.Dequeue()
		if (b.operation == Intersection && e.Point.X > minMaxX) ||
			(b.operation == Difference && e.Point.X > subjectBB.Max.X) {
			break
		}
		b.sortedEvents = append(b.sortedEvents, e)
		if TraceSweep {
			b.dbgPrintStep(e)
			b.dbgDrawStep(e)
		}

		if e.Left {
			it := b.sl.Insert(e)
			prev := b.sl.Prev(it)
			next := b.sl.Next(it)
			b.computeFields(e, prev)
			if next != nil {
				if b.possibleIntersection(e, next) == 2 {
					b.computeFields(e, prev)
					b.computeFields(next, e)
				}
			}
			if prev != nil {
				if b.possibleIntersection(prev, e) == 2 {
					b.computeFields(prev, b.sl.Prev(prev.PosSL))
					b.computeFields(e, prev)
				}
			}
		} else {
			// Right endpoint: the paired segment leaves the status line,
			// and its former neighbours become adjacent.
			left := e.Other
			prev := b.sl.Prev(left.PosSL)
			next := b.sl.Next(left.PosSL)
			b.sl.Remove(left.PosSL)
			if prev != nil && next != nil {
				b.possibleIntersection(prev, next)
			}
		}
	}

	b.connectEdges()
	return b.result
}

// Results that can be produced from the bounding boxes alone, without
// running the sweep.
func (b *booleanOp) trivialOperation(subjectBB, clippingBB Rect) (*Polygon, bool) {
	if b.subject.NContours() == 0 || b.clipping.NContours() == 0 {
		switch b.operation {
		case Difference:
			return b.subject.Clone(), true
		case Union, Xor:
			if b.subject.NContours() == 0 {
				return b.clipping.Clone(), true
			}
			return b.subject.Clone(), true
		}
		// Intersection with an empty operand is empty.
		return &Polygon{}, true
	}
	if !subjectBB.Overlaps(clippingBB) {
		switch b.operation {
		case Difference:
			return b.subject.Clone(), true
		case Union, Xor:
			result := b.subject.Clone()
			result.Join(b.clipping)
			return result, true
		}
		return &Polygon{}, true
	}
	return nil, false
}

func (b *booleanOp) newEvent(p Point, left bool, pol PolygonType) *SweepEvent {
	e := &SweepEvent{
		Point: p,
		Left:  left,
		Pol:   pol,
		seq:   len(b.arena),
	}
	b.arena = append(b.arena, e)
	return e
}

// Turn one polygon edge into its two linked events and enqueue both.
func (b *booleanOp) processSegment(s Segment, pol PolygonType, contourID int) {
	if s.Degenerate() {
		// Zero-length edges carry no geometry; drop them silently.
		return
	}
	e1 := b.newEvent(s.Source, true, pol)
	e2 := b.newEvent(s.Target, true, pol)
	e1.Other, e2.Other = e2, e1
	e1.ContourID, e2.ContourID = contourID, contourID
	if s.Min() == s.Source {
		e2.Left = false
	} else {
		e1.Left = false
	}
	b.eq.Enqueue(e1)
	b.eq.Enqueue(e2)
}

// computeFields sets the labelling of left event e from prev, the event
// directly below it in the status line (nil when e is at the bottom).
func (b *booleanOp) computeFields(e, prev *SweepEvent) {
	if prev == nil {
		// Nothing below: looking up from the bottom, the first crossing
		// of e enters its own polygon, and the other polygon is absent.
		e.InOut = false
		e.OtherInOut = true
	} else if e.Pol == prev.Pol {
		e.InOut = !prev.InOut
		e.OtherInOut = prev.OtherInOut
	} else {
		e.InOut = !prev.OtherInOut
		if prev.Vertical() {
			e.OtherInOut = !prev.InOut
		} else {
			e.OtherInOut = prev.InOut
		}
	}

	// The closest segment below that made it into the result, skipping
	// vertical segments, which cannot be "below" anything for hole
	// attribution purposes.
	if prev != nil {
		if !prev.InResult || prev.Vertical() {
			e.PrevInResult = prev.PrevInResult
		} else {
			e.PrevInResult = prev
		}
	} else {
		e.PrevInResult = nil
	}

	e.InResult = b.inResult(e)
	if e.InResult {
		if b.insideResult(e) {
			e.ResultTransition = TransitionContributing
		} else {
			e.ResultTransition = TransitionNonContributing
		}
	} else {
		e.ResultTransition = TransitionNeutral
	}
}

// Does left event e belong to the boundary of the result?
func (b *booleanOp) inResult(e *SweepEvent) bool {
	switch e.Type {
	case EdgeNormal:
		switch b.operation {
		case Intersection:
			return !e.OtherInOut
		case Union:
			return e.OtherInOut
		case Difference:
			return (e.Pol == SubjectPolygon && e.OtherInOut) ||
				(e.Pol == ClippingPolygon && !e.OtherInOut)
		case Xor:
			return true
		}
	case EdgeSameTransition:
		return b.operation == Intersection || b.operation == Union
	case EdgeDifferentTransition:
		return b.operation == Difference
	}
	// Non-contributing edges never appear in the result.
	return false
}

// Is the region just above e's segment inside the result region? The
// connector uses this to tell a hole boundary from an outer boundary.
func (b *booleanOp) insideResult(e *SweepEvent) bool {
	thisIn := !e.InOut
	thatIn := !e.OtherInOut
	switch b.operation {
	case Intersection:
		return thisIn && thatIn
	case Union:
		return thisIn || thatIn
	case Xor:
		return thisIn != thatIn
	}
	// Difference
	if e.Pol == SubjectPolygon {
		return thisIn && !thatIn
	}
	return thatIn && !thisIn
}

// possibleIntersection handles a possible crossing between the segments
// of two active left events. Returns 0 for no interaction, 1 for a
// point crossing, 2 when the segments share their left endpoint (the
// caller must refresh labels), 3 for the other overlap shapes.
func (b *booleanOp) possibleIntersection(le1, le2 *SweepEvent) int {
	n, q0, _ := FindIntersection(le1.Segment(), le2.Segment())
	if n == 0 {
		return 0
	}
	if n == 1 && (le1.Point == le2.Point || le1.Other.Point == le2.Other.Point) {
		// The segments only meet at a shared endpoint.
		return 0
	}
	if n == 2 && le1.Pol == le2.Pol {
		// Overlapping edges of the same polygon. The input is degenerate;
		// treat the pair as non-intersecting rather than guessing.
		return 0
	}

	if n == 1 {
		if le1.Point != q0 && le1.Other.Point != q0 {
			b.divideSegment(le1, q0)
		}
		if le2.Point != q0 && le2.Other.Point != q0 {
			b.divideSegment(le2, q0)
		}
		return 1
	}

	// The segments overlap. Order the four endpoints along the sweep; a
	// nil entry marks a pair of coincident endpoints.
	sorted := make([]*SweepEvent, 0, 4)
	leftShared := le1.Point == le2.Point
	if leftShared {
		sorted = append(sorted, nil)
	} else if eventLess(le1, le2) {
		sorted = append(sorted, le1, le2)
	} else {
		sorted = append(sorted, le2, le1)
	}
	rightShared := le1.Other.Point == le2.Other.Point
	if rightShared {
		sorted = append(sorted, nil)
	} else if eventLess(le1.Other, le2.Other) {
		sorted = append(sorted, le1.Other, le2.Other)
	} else {
		sorted = append(sorted, le2.Other, le1.Other)
	}

	if leftShared {
		// The segments start together. Only one of them can contribute to
		// the result; the other records how the two polygons cross it.
		le2.Type = EdgeNonContributing
		if le1.InOut == le2.InOut {
			le1.Type = EdgeSameTransition
		} else {
			le1.Type = EdgeDifferentTransition
		}
		if !rightShared {
			// The longer segment continues past the shared piece.
			b.divideSegment(sorted[2].Other, sorted[1].Point)
		}
		return 2
	}

	if rightShared {
		// The segments end together: cut the earlier one where the later
		// one starts.
		b.divideSegment(sorted[0], sorted[1].Point)
		return 3
	}

	if sorted[0] != sorted[3].Other {
		// Partial overlap; each segment is cut at the other's interior
		// endpoint.
		b.divideSegment(sorted[0], sorted[1].Point)
		b.divideSegment(sorted[1], sorted[2].Point)
		return 3
	}

	// One segment contains the other: the container is cut at both of
	// the contained segment's endpoints.
	b.divideSegment(sorted[0], sorted[1].Point)
	b.divideSegment(sorted[3].Other, sorted[2].Point)
	return 3
}

// divideSegment splits the segment of left event le at interior point p,
// producing a right event for the left half and a left event for the
// right half, and enqueues both.
func (b *booleanOp) divideSegment(le *SweepEvent, p Point) {
	re := le.Other

	// Right event of the left sub-segment.
	r := b.newEvent(p, false, le.Pol)
	r.Other = le
	r.ContourID = le.ContourID
	// Left event of the right sub-segment.
	l := b.newEvent(p, true, le.Pol)
	l.Other = re
	l.ContourID = le.ContourID

	if eventLess(re, l) {
		// Rounding pushed the new left event past the old right event in
		// queue order. Swap the side flags so each pair still processes
		// left end first.
		re.Left = true
		l.Left = false
	}

	re.Other = l
	le.Other = r

	b.eq.Enqueue(l)
	b.eq.Enqueue(r)
}
