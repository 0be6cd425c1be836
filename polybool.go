// Boolean operations on 2D polygons.
//
// This package computes the intersection, union, difference or
// symmetric difference of two planar polygons using the sweep-line
// algorithm of Martínez, Rueda and Feito. The operands may have any
// number of contours, may contain holes, and may touch themselves at
// isolated points; the result carries full hole-nesting and depth
// information on every contour.
package polybool

import "github.com/osuushi/polybool/booleanop"

type Point = booleanop.Point
type Contour = booleanop.Contour
type Polygon = booleanop.Polygon
type Op = booleanop.Op

const (
	OpIntersection = booleanop.Intersection
	OpUnion        = booleanop.Union
	OpDifference   = booleanop.Difference
	OpXor          = booleanop.Xor
)

// Intersection returns the region covered by both polygons.
func Intersection(subject, clipping *Polygon) (*Polygon, error) {
	return Compute(subject, clipping, OpIntersection)
}

// Union returns the region covered by either polygon.
func Union(subject, clipping *Polygon) (*Polygon, error) {
	return Compute(subject, clipping, OpUnion)
}

// Difference returns the region covered by subject but not clipping.
func Difference(subject, clipping *Polygon) (*Polygon, error) {
	return Compute(subject, clipping, OpDifference)
}

// Xor returns the region covered by exactly one of the polygons.
func Xor(subject, clipping *Polygon) (*Polygon, error) {
	return Compute(subject, clipping, OpXor)
}

// Compute performs op on the two polygons. The inputs are never
// modified. External contours of the result wind counterclockwise and
// odd-depth holes clockwise.
func Compute(subject, clipping *Polygon, op Op) (result *Polygon, err error) {
	defer func() {
		recoveredErr := booleanop.HandleBooleanOpPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return booleanop.Compute(subject, clipping, op), nil
}
