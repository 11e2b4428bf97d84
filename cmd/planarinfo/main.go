package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/softpolygon/planar"
)

// Inspect a polygon from the command line. Input on stdin should be
// newline separated points in the form "x y". The tool classifies the
// polygon, reports its centroid, and optionally answers containment
// and tangent queries or renders the shape to a PNG.

var (
	epsilon = kingpin.Flag("epsilon", "Comparison tolerance.").
		Default("1e-5").Float64()
	convexHint = kingpin.Flag("convex", "Promise that the input polygon is convex, skipping classification.").
			Bool()
	simpleHint = kingpin.Flag("simple", "Promise that the input polygon is simple, skipping the intersection sweep.").
			Bool()
	containsArg = kingpin.Flag("contains", "Test whether the point \"x,y\" is inside the polygon.").
			PlaceHolder("X,Y").String()
	tangentsArg = kingpin.Flag("tangents", "Find the tangent vertices from the exterior point \"x,y\".").
			PlaceHolder("X,Y").String()
	renderPath = kingpin.Flag("render", "Render the polygon to a PNG file.").
			PlaceHolder("FILE").String()
	catRender = kingpin.Flag("cat", "Print the rendered PNG to the terminal (iTerm only).").
			Bool()
	renderScale = kingpin.Flag("scale", "Pixels per input unit when rendering.").
			Default("50").Float64()
)

func main() {
	kingpin.Parse()
	planar.SetEpsilon(*epsilon)

	verts := readPoints(os.Stdin)
	poly, err := buildPolygon(verts)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	fmt.Printf("Read %d vertices\n", poly.Len())
	fmt.Printf("convex:     %v\n", poly.IsConvex())
	fmt.Printf("simple:     %v\n", poly.IsSimple())
	fmt.Printf("degenerate: %v\n", poly.IsDegenerate())
	if centroid, ok := poly.Centroid(); ok {
		fmt.Printf("centroid:   %v\n", centroid)
	} else {
		fmt.Println("centroid:   none")
	}

	if *containsArg != "" {
		pt := parseFlagPoint("contains", *containsArg)
		fmt.Printf("contains %v: %v\n", pt, poly.ContainsPoint(pt))
	}
	if *tangentsArg != "" {
		pt := parseFlagPoint("tangents", *tangentsArg)
		left, right := poly.TangentsToPoint(pt)
		fmt.Printf("tangents from %v: left %v, right %v\n", pt, left, right)
	}
	if *renderPath != "" {
		render(poly, *renderPath, *renderScale)
		if *catRender {
			imgcat.CatFile(*renderPath, os.Stdout)
		}
	}
}

func buildPolygon(verts []planar.Vec2) (*planar.Polygon, error) {
	switch {
	case *convexHint:
		return planar.NewConvexPolygon(verts)
	case *simpleHint:
		return planar.NewSimplePolygon(verts)
	default:
		return planar.NewPolygon(verts)
	}
}

func readPoints(in *os.File) []planar.Vec2 {
	verts := []planar.Vec2{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("expected \"x y\", got %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("bad x coordinate in %q", line)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("bad y coordinate in %q", line)
		}
		verts = append(verts, planar.V(x, y))
	}
	return verts
}

func parseFlagPoint(flag, arg string) planar.Vec2 {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		kingpin.Fatalf("--%s: expected \"x,y\", got %q", flag, arg)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		kingpin.Fatalf("--%s: expected \"x,y\", got %q", flag, arg)
	}
	return planar.V(x, y)
}

const renderPadding = 20

func render(poly *planar.Polygon, path string, scale float64) {
	verts := poly.Vertices()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Fill with the winding rule so the image agrees with ContainsPoint
	c.SetFillRuleWinding()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(verts[0].X, verts[0].Y)
	for _, v := range verts[1:] {
		c.LineTo(v.X, v.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if centroid, ok := poly.Centroid(); ok {
		c.DrawCircle(centroid.X, centroid.Y, 4/scale)
		c.SetRGB(1, 1, 1)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		kingpin.Fatalf("rendering %s: %v", path, err)
	}
}
