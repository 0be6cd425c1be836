package booleanop

// A closed ring of vertices. The edge from the last vertex back to the
// first is implicit; rings never repeat their starting point.
//
// A contour also carries its position in the hole hierarchy of the
// polygon that owns it: the indices of the contours that are its direct
// holes, its nesting depth, and the index of the contour it is a hole
// of. Those fields are filled in by ComputeHoles on an input polygon, or
// by the connector when the contour is the product of a Boolean
// operation.
type Contour struct {
	Points []Point

	// Indices (within the owning polygon) of this contour's holes.
	HoleIDs []int
	// Nesting depth: 0 for outermost contours, 1 for their holes, 2 for
	// islands inside those holes, and so on. Odd depth means the contour
	// bounds excluded area.
	Depth int
	// Index of the contour this one is a direct hole (or island) of, or
	// -1 for external contours.
	HoleOf int

	// The clockwise test is an O(n) signed area computation, and the
	// comparators may ask for it repeatedly, so it is cached. Any
	// mutation of Points must go through methods that reset cwValid.
	cwValid bool
	cw      bool
}

func NewContour(points ...Point) *Contour {
	return &Contour{Points: points, HoleOf: -1}
}

func (c *Contour) NVertices() int { return len(c.Points) }

// A ring has exactly as many edges as vertices.
func (c *Contour) NEdges() int { return len(c.Points) }

func (c *Contour) Vertex(i int) Point { return c.Points[i] }

// The i-th edge. The last edge wraps around to the first vertex.
func (c *Contour) Segment(i int) Segment {
	if i == len(c.Points)-1 {
		return NewSegment(c.Points[i], c.Points[0])
	}
	return NewSegment(c.Points[i], c.Points[i+1])
}

func (c *Contour) BoundingBox() Rect {
	bb := EmptyRect()
	for _, p := range c.Points {
		bb = bb.AddPoint(p)
	}
	return bb
}

// Twice the signed area of the ring, by the shoelace formula. Positive
// for counterclockwise winding.
func (c *Contour) SignedArea() float64 {
	area := 0.0
	for i, p := range c.Points {
		q := c.Points[circularIndex(i+1, len(c.Points))]
		area += p.Cross(q)
	}
	return area
}

func (c *Contour) Clockwise() bool {
	if !c.cwValid {
		c.cw = c.SignedArea() < 0
		c.cwValid = true
	}
	return c.cw
}

func (c *Contour) CounterClockwise() bool {
	return !c.Clockwise()
}

// Reverse the winding in place.
func (c *Contour) Reverse() {
	for i, j := 0, len(c.Points)-1; i < j; i, j = i+1, j-1 {
		c.Points[i], c.Points[j] = c.Points[j], c.Points[i]
	}
	if c.cwValid {
		c.cw = !c.cw
	}
}

func (c *Contour) SetClockwise() {
	if c.CounterClockwise() {
		c.Reverse()
	}
}

func (c *Contour) SetCounterClockwise() {
	if c.Clockwise() {
		c.Reverse()
	}
}

func (c *Contour) Add(p Point) {
	c.Points = append(c.Points, p)
	c.cwValid = false
}

func (c *Contour) AddHole(id int) {
	c.HoleIDs = append(c.HoleIDs, id)
}

func (c *Contour) External() bool { return c.HoleOf < 0 }

func (c *Contour) Clear() {
	c.Points = nil
	c.HoleIDs = nil
	c.Depth = 0
	c.HoleOf = -1
	c.cwValid = false
}

func (c *Contour) Clone() *Contour {
	dup := &Contour{
		Points:  append([]Point(nil), c.Points...),
		HoleIDs: append([]int(nil), c.HoleIDs...),
		Depth:   c.Depth,
		HoleOf:  c.HoleOf,
		cwValid: c.cwValid,
		cw:      c.cw,
	}
	return dup
}

// Even-odd point containment by crossing count. This is provided for
// testing hole attribution; it deliberately knows nothing about the
// sweep machinery.
func (c *Contour) ContainsPointByEvenOdd(p Point) bool {
	return c.crossingCount(p)%2 == 1
}

func (c *Contour) crossingCount(p Point) int {
	count := 0
	for i, vertex := range c.Points {
		next := c.Points[circularIndex(i+1, len(c.Points))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// x coordinate where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)/(next.Y-vertex.Y)*(next.X-vertex.X)
		if x > p.X {
			count++
		}
	}
	return count
}

// Like the raw modulo operator, but always non-negative, for indexing
// rings.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// An ordered list of contours. The zero value is the empty polygon.
type Polygon struct {
	Contours []*Contour
}

func NewPolygon(contours ...*Contour) *Polygon {
	return &Polygon{Contours: contours}
}

func (p *Polygon) NContours() int { return len(p.Contours) }

func (p *Polygon) Contour(i int) *Contour { return p.Contours[i] }

func (p *Polygon) Add(c *Contour) {
	p.Contours = append(p.Contours, c)
}

func (p *Polygon) Last() *Contour {
	return p.Contours[len(p.Contours)-1]
}

func (p *Polygon) PopBack() {
	p.Contours = p.Contours[:len(p.Contours)-1]
}

func (p *Polygon) NVertices() int {
	n := 0
	for _, c := range p.Contours {
		n += c.NVertices()
	}
	return n
}

func (p *Polygon) BoundingBox() Rect {
	bb := EmptyRect()
	for _, c := range p.Contours {
		bb = bb.Union(c.BoundingBox())
	}
	return bb
}

// The sum of the contour signed areas. With the orientation invariant in
// place (even depth counterclockwise, odd depth clockwise) this is twice
// the enclosed area, holes subtracted.
func (p *Polygon) SignedArea() float64 {
	area := 0.0
	for _, c := range p.Contours {
		area += c.SignedArea()
	}
	return area
}

// Join appends every contour of other to p. Hole indices refer to
// positions within the owning polygon, so the appended contours have
// theirs shifted past p's existing contours.
func (p *Polygon) Join(other *Polygon) {
	offset := len(p.Contours)
	for _, c := range other.Contours {
		dup := c.Clone()
		for i := range dup.HoleIDs {
			dup.HoleIDs[i] += offset
		}
		if dup.HoleOf >= 0 {
			dup.HoleOf += offset
		}
		p.Contours = append(p.Contours, dup)
	}
}

func (p *Polygon) Clone() *Polygon {
	dup := &Polygon{Contours: make([]*Contour, len(p.Contours))}
	for i, c := range p.Contours {
		dup.Contours[i] = c.Clone()
	}
	return dup
}
