package booleanop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reader and writer for the plain-text polygon format used by our test
// fixtures and the demo driver:
//
//	<n_contours>
//	for each contour:
//	  <n_vertices>
//	  <x y>           repeated n_vertices times
//	<optionally, lines of the form "<id>: <hole_id> <hole_id> ...">
//
// Vertices may also be separated by arbitrary whitespace rather than
// strict line breaks; the reader only cares about token order. That
// holds for the hole lines too: a hole list starts at an "<id>:" token
// and runs until the next such token, wherever the line breaks fall.

// ReadPolygon parses a polygon from r.
func ReadPolygon(r io.Reader) (*Polygon, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
	nextInt := func(what string) (int, error) {
		tok, ok := next()
		if !ok {
			return 0, errors.Errorf("polygon file ended while reading %s", what)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s %q", what, tok)
		}
		return n, nil
	}
	nextFloat := func(what string) (float64, error) {
		tok, ok := next()
		if !ok {
			return 0, errors.Errorf("polygon file ended while reading %s", what)
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s %q", what, tok)
		}
		return f, nil
	}

	ncontours, err := nextInt("contour count")
	if err != nil {
		return nil, err
	}
	polygon := &Polygon{}
	for i := 0; i < ncontours; i++ {
		nvertices, err := nextInt("vertex count")
		if err != nil {
			return nil, err
		}
		contour := NewContour()
		for j := 0; j < nvertices; j++ {
			x, err := nextFloat("x coordinate")
			if err != nil {
				return nil, err
			}
			y, err := nextFloat("y coordinate")
			if err != nil {
				return nil, err
			}
			contour.Add(Point{x, y})
		}
		polygon.Add(contour)
	}

	// Trailing hole lines: "<id>: <hole> <hole> ...". In word-split
	// terms, an id token ending in a colon starts a hole list that runs
	// until the next such token.
	current := -1
	for {
		tok, ok := next()
		if !ok {
			break
		}
		if strings.HasSuffix(tok, ":") {
			id, err := strconv.Atoi(strings.TrimSuffix(tok, ":"))
			if err != nil || id < 0 || id >= polygon.NContours() {
				return nil, errors.Errorf("invalid hole list owner %q", tok)
			}
			current = id
			continue
		}
		if current < 0 {
			return nil, errors.Errorf("unexpected trailing token %q", tok)
		}
		hole, err := strconv.Atoi(tok)
		if err != nil || hole < 0 || hole >= polygon.NContours() {
			return nil, errors.Errorf("invalid hole id %q", tok)
		}
		polygon.Contour(current).AddHole(hole)
		polygon.Contour(hole).HoleOf = current
		polygon.Contour(hole).Depth = polygon.Contour(current).Depth + 1
	}
	return polygon, nil
}

// ReadPolygonFile parses the polygon stored at path.
func ReadPolygonFile(path string) (*Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open polygon file %s", path)
	}
	defer f.Close()
	polygon, err := ReadPolygon(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return polygon, nil
}

// WritePolygon writes p to w in the same text format, one vertex per
// line, with hole lists appended for every contour that has holes.
func WritePolygon(w io.Writer, p *Polygon) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, p.NContours())
	for _, c := range p.Contours {
		fmt.Fprintln(bw, c.NVertices())
		for _, v := range c.Points {
			fmt.Fprintf(bw, "\t%g %g\n", v.X, v.Y)
		}
	}
	for id, c := range p.Contours {
		if len(c.HoleIDs) == 0 {
			continue
		}
		fmt.Fprintf(bw, "%d:", id)
		for _, hole := range c.HoleIDs {
			fmt.Fprintf(bw, " %d", hole)
		}
		fmt.Fprintln(bw)
	}
	return errors.Wrap(bw.Flush(), "writing polygon")
}

// WritePolygonFile writes p to a new file at path.
func WritePolygonFile(path string, p *Polygon) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create polygon file %s", path)
	}
	defer f.Close()
	return WritePolygon(f, p)
}
