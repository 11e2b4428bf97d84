package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/softpolygon/planar/dbg"
)

// This is for debugging purposes only

// Padding around the shape so boundary features aren't clipped
const dbgDrawPadding = 100

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon %s <%d verts>", p.DbgName(), len(p.verts))
}

// DbgName colors the polygon's readable name by what the cache
// already knows: green for convex, yellow for simple but not convex,
// red for non-simple, cyan when nothing is classified yet.
func (p *Polygon) DbgName() string {
	name := dbg.Name(p)
	switch {
	case p.cache.convex.known && p.cache.convex.value:
		name = aurora.Green(name).String()
	case p.cache.simple.known && p.cache.simple.value:
		name = aurora.Yellow(name).String()
	case p.cache.simple.known:
		name = aurora.Red(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return name
}

// Helper to draw and print the polygon in the terminal (iTerm only)
// for debugging. The interior is filled with the nonzero winding
// rule, so what shows up filled is exactly what ContainsPoint reports
// as inside. Extra points (query points, tangent vertices) are drawn
// as dots on top.
func (p *Polygon) dbgDraw(scale float64, marks ...Vec2) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, v := range p.verts {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	for _, m := range marks {
		minX = math.Min(minX, m.X)
		minY = math.Min(minY, m.Y)
		maxX = math.Max(maxX, m.X)
		maxY = math.Max(maxY, m.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleWinding()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(p.verts[0].X, p.verts[0].Y)
	for _, v := range p.verts[1:] {
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if centroid, ok := p.Centroid(); ok {
		c.DrawCircle(centroid.X, centroid.Y, 4/scale)
		c.SetRGB(1, 1, 1)
		c.Fill()
	}
	for _, m := range marks {
		c.DrawCircle(m.X, m.Y, 4/scale)
		c.SetRGB(1, 0, 1)
		c.Fill()
	}

	c.SavePNG("/tmp/polygon.png")
	imgcat.CatFile("/tmp/polygon.png", os.Stdout)
}
