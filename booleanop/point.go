package booleanop

import "math"

// Note that all geometry in this package uses exact float64 comparison,
// not tolerance-based equality. The sweep relies on subdivided segments
// sharing endpoint coordinates bit-for-bit, so points must never be
// nudged once created. The only place coordinates get adjusted is inside
// FindIntersection, before the point enters the event machinery.
type Point struct {
	X float64
	Y float64
}

// Componentwise minimum.
func (p Point) Min(q Point) Point {
	return Point{math.Min(p.X, q.X), math.Min(p.Y, q.Y)}
}

// Componentwise maximum.
func (p Point) Max(q Point) Point {
	return Point{math.Max(p.X, q.X), math.Max(p.Y, q.Y)}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// The z component of the 3D cross product, treating both points as
// vectors in the plane. Positive when q is counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) SquaredLength() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lexicographic order: x first, then y. This is the order in which the
// sweep line visits points, so "before" means "processed earlier" for
// points that differ geometrically.
func (p Point) Before(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Twice the signed area of the triangle (p0, p1, p2). Positive when the
// triangle winds counterclockwise, zero iff the points are collinear.
func SignedArea(p0, p1, p2 Point) float64 {
	return (p0.X-p2.X)*(p1.Y-p2.Y) - (p1.X-p2.X)*(p0.Y-p2.Y)
}

// An axis-aligned bounding rectangle. The empty rectangle has Min > Max,
// which makes union and intersection work without special cases.
type Rect struct {
	Min, Max Point
}

func EmptyRect() Rect {
	return Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

func (r Rect) IsEmpty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

func (r Rect) AddPoint(p Point) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// The intersection may be empty; rectangles that merely touch along an
// edge or at a corner produce a degenerate (zero width or height) but
// non-empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
}

func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Clamp p into the rectangle. Used to bound numerical drift on computed
// intersection points.
func (r Rect) Clamp(p Point) Point {
	return p.Max(r.Min).Min(r.Max)
}
