package booleanop

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/polybool/dbg"
)

// Which operand a segment came from. Difference is the only operation
// that cares, but the labelling machinery tracks it for every segment.
type PolygonType int

const (
	SubjectPolygon PolygonType = iota
	ClippingPolygon
)

func (pt PolygonType) String() string {
	if pt == SubjectPolygon {
		return "subject"
	}
	return "clipping"
}

// Classification of a segment for the Boolean labelling. Segments start
// Normal; overlap handling may reclassify them, and the transition is
// one-way.
type EdgeType int

const (
	EdgeNormal EdgeType = iota
	EdgeNonContributing
	EdgeSameTransition
	EdgeDifferentTransition
)

// Per-event outcome used by the connector to decide hole nesting and
// depth. Contributing means the region above the segment is inside the
// operation's result; Neutral means the segment is not in the result at
// all.
type ResultTransition int

const (
	TransitionNonContributing ResultTransition = -1
	TransitionNeutral         ResultTransition = 0
	TransitionContributing    ResultTransition = 1
)

// A sweep event is one endpoint of a segment, as seen by the sweep line.
// Each segment gets two events that point at each other through Other.
// Events are allocated once, live in the engine's arena for the whole
// run, and are mutated freely by the sweep; none of the cross-references
// own anything.
type SweepEvent struct {
	Point Point
	// Is Point the left (lexicographically smaller) endpoint of the
	// segment (Point, Other.Point)? Subdivision fix-ups may flip this at
	// most once, to repair rounding inversions.
	Left  bool
	Other *SweepEvent
	// Operand the segment belongs to.
	Pol PolygonType
	// Input contour the segment came from. Contour ids increment across
	// both operands, so they are unique per run.
	ContourID int
	Type      EdgeType

	// The fields below are only meaningful on left events.

	// Does the segment represent an inside-outside transition of its own
	// polygon, for a vertical ray from below?
	InOut bool
	// The InOut of the closest segment from the other polygon below this
	// one in the status line.
	OtherInOut bool
	// Index of this event in the status line while it is active.
	PosSL int
	// Closest active segment below this one that is in the result and is
	// not vertical. Never points at a vertical segment.
	PrevInResult *SweepEvent
	// Does the segment belong to the result of the operation?
	InResult         bool
	ResultTransition ResultTransition

	// The fields below are used by the connector.

	// Index into the result-event list; after position assignment,
	// resultEvents[e.Pos] is e's partner.
	Pos int
	// Direction bit used while walking a contour.
	ResultInOut bool
	// Output contour this event was emitted into.
	OutputContourID int

	// Construction order. It is the final tiebreaker in both
	// comparators, which makes them strict total orders and the whole
	// run deterministic.
	seq int
}

// The segment associated with the event.
func (e *SweepEvent) Segment() Segment {
	return NewSegment(e.Point, e.Other.Point)
}

// Is the segment below point p? The orientation of the stored endpoints
// depends on which side of the pair this event is, so the two cases feed
// the signed area in opposite order.
func (e *SweepEvent) Below(p Point) bool {
	if e.Left {
		return SignedArea(e.Point, e.Other.Point, p) > 0
	}
	return SignedArea(e.Other.Point, e.Point, p) > 0
}

func (e *SweepEvent) Above(p Point) bool {
	return !e.Below(p)
}

func (e *SweepEvent) Vertical() bool {
	return e.Point.X == e.Other.Point.X
}

func (e *SweepEvent) String() string {
	side := "R"
	if e.Left {
		side = "L"
	}
	name := dbg.Name(e)
	if e.Pol == SubjectPolygon {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Magenta(name).String()
	}
	return fmt.Sprintf("%s %s (%g, %g) -> (%g, %g) [%s]",
		name, side, e.Point.X, e.Point.Y, e.Other.Point.X, e.Other.Point.Y, e.Pol)
}

// eventLess is the queue order: true when a must be processed before b.
// Keys, in order: smaller x, then smaller y, then right endpoints before
// left ones, then the segment that is below, then subject before
// clipping, and finally construction order so that fully coincident
// events dequeue in insertion order.
func eventLess(a, b *SweepEvent) bool {
	if a.Point.X != b.Point.X {
		return a.Point.X < b.Point.X
	}
	if a.Point.Y != b.Point.Y {
		return a.Point.Y < b.Point.Y
	}
	if a.Left != b.Left {
		return !a.Left
	}
	if area := SignedArea(a.Point, a.Other.Point, b.Other.Point); area != 0 {
		// Same point; the event whose segment is below comes first.
		return a.Below(b.Other.Point)
	}
	if a.Pol != b.Pol {
		return a.Pol < b.Pol
	}
	return a.seq < b.seq
}

// segmentLess is the status-line order over active left events: true
// when x's segment is below y's segment on the sweep line.
//
// The comparison depends on geometry that is only valid while both
// segments are active, so its result is stable exactly as long as
// neither event's segment changes. Subdivision only ever shortens a
// segment along its own line, which preserves this order.
func segmentLess(x, y *SweepEvent) bool {
	if x == y {
		return false
	}
	if SignedArea(x.Point, x.Other.Point, y.Point) != 0 ||
		SignedArea(x.Point, x.Other.Point, y.Other.Point) != 0 {
		// Segments are not collinear.
		// If they share their left endpoint, sort by the right one.
		if x.Point == y.Point {
			return x.Below(y.Other.Point)
		}
		// Different left endpoints on the same vertical: lower y first.
		if x.Point.X == y.Point.X {
			return x.Point.Y < y.Point.Y
		}
		if eventLess(x, y) {
			// x entered the sweep first, so y's left endpoint decides.
			return x.Below(y.Point)
		}
		// y entered the sweep first, so x's left endpoint decides.
		return y.Above(x.Point)
	}
	// Collinear segments. No geometric key can separate them, so fall
	// back on deterministic bookkeeping: operand, then contour, then
	// construction order.
	if x.Pol != y.Pol {
		return x.Pol < y.Pol
	}
	if x.Point == y.Point {
		if x.Other.Point != y.Other.Point && x.ContourID != y.ContourID {
			return x.ContourID < y.ContourID
		}
		return x.seq < y.seq
	}
	return eventLess(x, y)
}
