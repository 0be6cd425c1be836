package booleanop

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering. DbgDraw and the sweep snapshots dump PNGs to /tmp
// and cat them straight into the terminal, which is as close to a GUI
// as this library gets.

const dbgDrawPadding = 20

type dbgCanvas struct {
	c     *gg.Context
	scale float64
	min   Point
}

func newDbgCanvas(bb Rect, scale float64) *dbgCanvas {
	width := int(scale*(bb.Max.X-bb.Min.X)) + dbgDrawPadding*2
	height := int(scale*(bb.Max.Y-bb.Min.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left, then map the
	// bounding box into the padded viewport.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-bb.Min.X, -bb.Min.Y)
	return &dbgCanvas{c: c, scale: scale, min: bb.Min}
}

func (d *dbgCanvas) tracePolygon(p *Polygon) {
	for _, contour := range p.Contours {
		if contour.NVertices() == 0 {
			continue
		}
		d.c.MoveTo(contour.Points[0].X, contour.Points[0].Y)
		for _, v := range contour.Points[1:] {
			d.c.LineTo(v.X, v.Y)
		}
		d.c.ClosePath()
	}
}

func (d *dbgCanvas) show(path string) {
	d.c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}

// DbgDraw renders the polygon filled with the even-odd rule (so holes
// show as holes) and cats it to the terminal.
func (p *Polygon) DbgDraw(scale float64) {
	bb := p.BoundingBox()
	if bb.IsEmpty() {
		fmt.Println("(empty polygon)")
		return
	}
	d := newDbgCanvas(bb, scale)
	d.c.SetLineWidth(2 / scale)
	d.tracePolygon(p)
	d.c.SetRGB(0, 0.5, 0)
	d.c.FillPreserve()
	d.c.SetRGB(0, 1, 1)
	d.c.Stroke()
	d.show("/tmp/polybool.png")
}

// DrawPNG renders the polygon to a PNG file without involving the
// terminal.
func (p *Polygon) DrawPNG(path string, scale float64) error {
	bb := p.BoundingBox()
	if bb.IsEmpty() {
		bb = Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	}
	d := newDbgCanvas(bb, scale)
	d.c.SetLineWidth(2 / scale)
	d.tracePolygon(p)
	d.c.SetRGB(0, 0.5, 0)
	d.c.FillPreserve()
	d.c.SetRGB(0, 1, 1)
	d.c.Stroke()
	return d.c.SavePNG(path)
}

// One frame of the sweep: both operands in outline, the active status
// line segments highlighted, and the event point just processed marked
// with the sweep line through it.
func (b *booleanOp) dbgDrawStep(e *SweepEvent) {
	bb := b.subject.BoundingBox().Union(b.clipping.BoundingBox())
	scale := 400 / math.Max(bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y)
	d := newDbgCanvas(bb, scale)

	d.c.SetLineWidth(1 / scale)
	d.tracePolygon(b.subject)
	d.c.SetRGB(0, 0.7, 0.7)
	d.c.Stroke()
	d.tracePolygon(b.clipping)
	d.c.SetRGB(0.7, 0, 0.7)
	d.c.Stroke()

	// Status line segments, bottom to top.
	d.c.SetLineWidth(3 / scale)
	d.c.SetRGB(1, 1, 0)
	for _, le := range b.sl.events {
		d.c.MoveTo(le.Point.X, le.Point.Y)
		d.c.LineTo(le.Other.Point.X, le.Other.Point.Y)
	}
	d.c.Stroke()

	// The sweep line and the current event point.
	d.c.SetLineWidth(1 / scale)
	d.c.SetRGB(1, 1, 1)
	d.c.MoveTo(e.Point.X, bb.Min.Y)
	d.c.LineTo(e.Point.X, bb.Max.Y)
	d.c.Stroke()
	d.c.SetRGB(1, 0, 0)
	d.c.DrawCircle(e.Point.X, e.Point.Y, 3/scale)
	d.c.Fill()

	d.show("/tmp/polybool_sweep.png")
}

// Print the processed event and the status line, bottom to top, in the
// terminal. Event names and colors come from the String method.
func (b *booleanOp) dbgPrintStep(e *SweepEvent) {
	fmt.Println("process", e)
	for i := b.sl.Len() - 1; i >= 0; i-- {
		fmt.Printf("  sl[%d] %v\n", i, b.sl.events[i])
	}
}
