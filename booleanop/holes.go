package booleanop

import "sort"

// ComputeHoles fills in the hole hierarchy of a standalone polygon: for
// every contour, which contour it is a direct hole (or island) of, its
// depth, and its children. Orientation is normalised to the same
// invariant the Boolean operations produce: even depth
// counterclockwise, odd depth clockwise.
//
// This is a reduced sweep. Contours cannot intersect each other (the
// polygon is assumed well formed), so no subdivision is needed: the
// nesting of a contour is decided entirely by the segment directly
// below its leftmost vertex the moment that vertex is reached.
func (p *Polygon) ComputeHoles() {
	for _, c := range p.Contours {
		c.HoleIDs = nil
		c.Depth = 0
		c.HoleOf = -1
	}
	if p.NContours() < 2 {
		if p.NContours() == 1 {
			p.Contour(0).SetCounterClockwise()
		}
		return
	}

	events := make([]*SweepEvent, 0, p.NVertices()*2)
	seq := 0
	for id, c := range p.Contours {
		// Normalise before building events so that the in-out flag of
		// every edge has a single interpretation: left-to-right edges are
		// bottom edges with the contour interior above them.
		c.SetCounterClockwise()
		for i := 0; i < c.NEdges(); i++ {
			s := c.Segment(i)
			if s.Vertical() {
				// Vertical edges carry no in-out information for a
				// vertical ray and confuse the reduced status line.
				continue
			}
			e1 := &SweepEvent{Point: s.Source, Left: true, ContourID: id, seq: seq}
			e2 := &SweepEvent{Point: s.Target, Left: true, ContourID: id, seq: seq + 1}
			seq += 2
			e1.Other, e2.Other = e2, e1
			if s.Source.X < s.Target.X {
				e2.Left = false
				e1.InOut = false
			} else {
				e1.Left = false
				e2.InOut = true
			}
			events = append(events, e1, e2)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return eventLess(events[i], events[j])
	})

	var sl statusLine
	processedContour := make([]bool, p.NContours())
	nprocessed := 0
	for _, e := range events {
		if nprocessed >= p.NContours() {
			break
		}
		if !e.Left {
			sl.Remove(e.Other.PosSL)
			continue
		}
		sl.Insert(e)
		if processedContour[e.ContourID] {
			continue
		}
		// First (leftmost) edge of this contour: the segment directly
		// below decides the nesting.
		processedContour[e.ContourID] = true
		nprocessed++
		c := p.Contour(e.ContourID)
		prev := sl.Prev(e.PosSL)
		switch {
		case prev == nil:
			// Nothing below: outermost contour.
		case !prev.InOut:
			// The edge below is a bottom edge, so we are inside its
			// contour: a direct hole (or island) of it.
			parent := p.Contour(prev.ContourID)
			parent.AddHole(e.ContourID)
			c.HoleOf = prev.ContourID
			c.Depth = parent.Depth + 1
		case p.Contour(prev.ContourID).HoleOf >= 0:
			// The edge below is the top edge of a hole, so we sit in the
			// same parent as that hole.
			parentID := p.Contour(prev.ContourID).HoleOf
			p.Contour(parentID).AddHole(e.ContourID)
			c.HoleOf = parentID
			c.Depth = p.Contour(prev.ContourID).Depth
		default:
			// Above the top edge of an external contour: outside it.
		}
	}

	for _, c := range p.Contours {
		if c.Depth%2 == 1 {
			c.SetClockwise()
		} else {
			c.SetCounterClockwise()
		}
	}
}
