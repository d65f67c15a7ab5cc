package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const plotPadding = 20

// Plot accumulates entities and renders them into a PNG with the origin at
// the bottom left. Lines are unbounded, so they are clipped to the view
// computed from the bounded entities; a plot holding nothing but lines
// falls back to a window around the origin.
type Plot struct {
	points    []Point
	segments  []Segment
	lines     []Line
	triangles []Triangle
}

func (pl *Plot) AddPoint(p Point)     { pl.points = append(pl.points, p) }
func (pl *Plot) AddSegment(s Segment) { pl.segments = append(pl.segments, s) }
func (pl *Plot) AddLine(l Line)       { pl.lines = append(pl.lines, l) }
func (pl *Plot) AddSlopeLine(l SlopeLine) {
	pl.lines = append(pl.lines, l.GeneralForm())
}
func (pl *Plot) AddTriangle(t Triangle) { pl.triangles = append(pl.triangles, t) }

func (pl *Plot) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	for _, p := range pl.points {
		grow(p)
	}
	for _, s := range pl.segments {
		grow(s.a)
		grow(s.b)
	}
	for _, t := range pl.triangles {
		grow(t.sides[0].a)
		grow(t.sides[1].a)
		grow(t.sides[2].a)
	}
	if math.IsInf(minX, 1) { // Nothing bounded, frame the origin
		return -10, -10, 10, 10
	}
	if maxX-minX == 0 {
		maxX++
	}
	if maxY-minY == 0 {
		maxY++
	}
	return minX, minY, maxX, maxY
}

func (pl *Plot) SavePNG(path string, scale float64) error {
	minX, minY, maxX, maxY := pl.bounds()

	// Set up the context
	width := int(scale*(maxX-minX)) + plotPadding*2
	height := int(scale*(maxY-minY)) + plotPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding, scale, translate to min
	c.Translate(plotPadding, plotPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)

	for _, t := range pl.triangles {
		c.MoveTo(t.sides[0].a.x, t.sides[0].a.y)
		c.LineTo(t.sides[1].a.x, t.sides[1].a.y)
		c.LineTo(t.sides[2].a.x, t.sides[2].a.y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(0, 1, 1)
	for _, s := range pl.segments {
		c.DrawLine(s.a.x, s.a.y, s.b.x, s.b.y)
		c.Stroke()
	}

	c.SetRGB(1, 0.5, 0)
	for _, l := range pl.lines {
		x1, y1, x2, y2 := clipLine(l, minX, minY, maxX, maxY)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range pl.points {
		c.DrawCircle(p.x, p.y, 3/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// Cat previews a rendered plot on a terminal that supports inline images.
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Two points of the line on the edges of the view. Vertical lines get a
// constant-x chord; everything else is evaluated at the horizontal bounds
// and left for the renderer to clip.
func clipLine(l Line, minX, minY, maxX, maxY float64) (x1, y1, x2, y2 float64) {
	if l.ParallelToY() {
		x := -l.c / l.a
		return x, minY, x, maxY
	}
	yAt := func(x float64) float64 { return -(l.a*x + l.c) / l.b }
	return minX, yAt(minX), maxX, yAt(maxX)
}
