package booleanop

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs polygons. This is not a
// full (or even correct) svg handler. It parses the SVG, expects exactly
// one polygon element, and converts that into a one-contour CCW
// polygon. If anything goes wrong, it exits through log.Fatalf.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	contour := NewContour()
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		contour.Add(Point{x, y})
	}

	contour.SetCounterClockwise()
	return NewPolygon(contour)
}

func TestFixtureLoading(t *testing.T) {
	fixture := LoadFixture("square")
	require.Equal(t, 1, fixture.NContours())
	assert.Equal(t, 4, fixture.NVertices())
	assert.True(t, fixture.Contour(0).CounterClockwise())
	assert.Equal(t, 200.0, fixture.SignedArea())
}

func TestFixtureOperations(t *testing.T) {
	names := []string{"square", "diamond", "l_shape"}
	for _, subjectName := range names {
		for _, clippingName := range names {
			subjectName, clippingName := subjectName, clippingName
			t.Run(subjectName+" vs "+clippingName, func(t *testing.T) {
				subject := LoadFixture(subjectName)
				clipping := LoadFixture(clippingName)

				intersection := Compute(subject, clipping, Intersection)
				union := Compute(subject, clipping, Union)
				difference := Compute(subject, clipping, Difference)
				xor := Compute(subject, clipping, Xor)

				// The four results partition the union, so the areas must
				// reconcile no matter the shapes.
				assert.InDelta(t,
					subject.SignedArea()+clipping.SignedArea(),
					union.SignedArea()+intersection.SignedArea(), 1e-9)
				assert.InDelta(t,
					union.SignedArea()-intersection.SignedArea(),
					xor.SignedArea(), 1e-9)
				assert.InDelta(t,
					subject.SignedArea()-intersection.SignedArea(),
					difference.SignedArea(), 1e-9)

				for _, result := range []*Polygon{intersection, union, difference, xor} {
					assertOrientationInvariant(t, result)
					assertNoZeroLengthEdges(t, result)
				}
			})
		}
	}
}
