package booleanop

import "math"

// An edge of a polygon, directed from Source to Target. The
// lexicographically smaller and larger endpoints are cached at
// construction; the sweep asks for the smaller one once per edge at
// ingestion to decide which event is the left one.
type Segment struct {
	Source, Target Point

	min, max Point
}

func NewSegment(source, target Point) Segment {
	s := Segment{Source: source, Target: target}
	if source.Before(target) {
		s.min, s.max = source, target
	} else {
		s.min, s.max = target, source
	}
	return s
}

// The lexicographically smaller endpoint.
func (s Segment) Min() Point { return s.min }

// The lexicographically larger endpoint.
func (s Segment) Max() Point { return s.max }

// A degenerate segment has coincident endpoints. Degenerate segments are
// dropped at ingestion and must never reach the event queue.
func (s Segment) Degenerate() bool {
	return s.Source == s.Target
}

func (s Segment) Vertical() bool {
	return s.Source.X == s.Target.X
}

func (s Segment) BoundingBox() Rect {
	return Rect{Min: s.Source.Min(s.Target), Max: s.Source.Max(s.Target)}
}

// How close a computed intersection point must be to a segment endpoint
// before we snap it onto that endpoint exactly. Downstream code detects
// shared endpoints with exact comparison, so without the snap, an
// intersection that "should" land on a vertex would instead subdivide
// the segment into a sliver.
const snapTolerance = 1e-9

// FindIntersection computes the intersection of two segments. It returns
// the number of intersection points (0, 1 or 2) along with the points
// themselves: a single point in q0, or the endpoints of the shared
// collinear piece in q0 and q1.
//
// All returned points are clamped into the axis-aligned rectangle common
// to both segment bounding boxes, which bounds the numerical drift of
// the parametric solve.
func FindIntersection(a, b Segment) (n int, q0, q1 Point) {
	clip := a.BoundingBox().Intersect(b.BoundingBox())
	if clip.IsEmpty() {
		return 0, Point{}, Point{}
	}

	p0 := a.Source
	d0 := a.Target.Sub(p0)
	p1 := b.Source
	d1 := b.Target.Sub(p1)
	e := p1.Sub(p0)

	kross := d0.Cross(d1)
	if kross != 0 {
		// The lines are not parallel. Solve for the parameter on each
		// segment and reject if either solution falls outside it.
		s := e.Cross(d1) / kross
		if s < 0 || s > 1 {
			return 0, Point{}, Point{}
		}
		t := e.Cross(d0) / kross
		if t < 0 || t > 1 {
			return 0, Point{}, Point{}
		}
		q0 = Point{p0.X + s*d0.X, p0.Y + s*d0.Y}
		q0 = snapToEndpoints(q0, a, b)
		q0 = clip.Clamp(q0)
		return 1, q0, Point{}
	}

	// The lines are parallel. If the vector between them is not also
	// collinear with the direction, the segments never meet.
	if e.Cross(d0) != 0 {
		return 0, Point{}, Point{}
	}

	// Collinear segments. Project b's endpoints onto a's parameter space
	// and intersect the two parameter intervals.
	sqrLen0 := d0.SquaredLength()
	s0 := d0.Dot(e) / sqrLen0
	s1 := s0 + d0.Dot(d1)/sqrLen0
	smin := math.Min(s0, s1)
	smax := math.Max(s0, s1)
	w, overlap := intersectIntervals(0, 1, smin, smax)
	if overlap == 0 {
		return 0, Point{}, Point{}
	}

	q0 = Point{p0.X + w[0]*d0.X, p0.Y + w[0]*d0.Y}
	q0 = clip.Clamp(snapToEndpoints(q0, a, b))
	if overlap == 1 {
		return 1, q0, Point{}
	}
	q1 = Point{p0.X + w[1]*d0.X, p0.Y + w[1]*d0.Y}
	q1 = clip.Clamp(snapToEndpoints(q1, a, b))
	return 2, q0, q1
}

// Intersect the interval [u0, u1] with [v0, v1]. Returns the overlap
// endpoints and how many of them are distinct: 0 for disjoint intervals,
// 1 when they touch at a single value, 2 for a proper overlap.
func intersectIntervals(u0, u1, v0, v1 float64) (w [2]float64, n int) {
	if u1 < v0 || u0 > v1 {
		return w, 0
	}
	if u1 == v0 {
		w[0] = u1
		return w, 1
	}
	if u0 == v1 {
		w[0] = u0
		return w, 1
	}
	w[0] = math.Max(u0, v0)
	w[1] = math.Min(u1, v1)
	return w, 2
}

func snapToEndpoints(p Point, a, b Segment) Point {
	for _, end := range [4]Point{a.Source, a.Target, b.Source, b.Target} {
		if p.Dist(end) < snapTolerance {
			return end
		}
	}
	return p
}
