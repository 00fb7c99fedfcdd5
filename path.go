package ratingbar

import (
	"math"

	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcTolerance is the maximum distance in pixels between a flattened arc
// segment and the true circle.
const arcTolerance = 0.25

// maxArcSegments caps the flattening of very large arcs.
const maxArcSegments = 256

// Path is a 2D outline made of straight segments, stored as a
// seehuhn.de/go/geom path. Arcs are flattened into line commands when they
// are appended, so every contour is a plain polygon.
//
// A Path may hold several contours; each MoveTo starts a new one. Shapes in
// this package always produce a single closed contour.
type Path struct {
	data geompath.Data
	// start is the index in data.Coords of the open contour's first point,
	// or -1 when no contour is open.
	start int
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{start: -1}
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt Vec2) {
	p.start = len(p.data.Coords)
	p.data.Cmds = append(p.data.Cmds, geompath.CmdMoveTo)
	p.data.Coords = append(p.data.Coords, vec.Vec2{X: pt.X, Y: pt.Y})
}

// LineTo appends a straight segment to pt. Starts a contour if none is open.
func (p *Path) LineTo(pt Vec2) {
	if p.start < 0 {
		p.MoveTo(pt)
		return
	}
	if prev := p.data.Coords[len(p.data.Coords)-1]; prev.X == pt.X && prev.Y == pt.Y {
		return
	}
	p.data.Cmds = append(p.data.Cmds, geompath.CmdLineTo)
	p.data.Coords = append(p.data.Coords, vec.Vec2{X: pt.X, Y: pt.Y})
}

// Arc appends a circular arc around center. Angles are in degrees, measured
// from the +X axis toward +Y (clockwise on screen, since Y grows downward).
// A positive sweep increases the angle. A straight segment joins the current
// point to the arc's start, matching how path builders usually treat arcs.
func (p *Path) Arc(center Vec2, radius, startDeg, sweepDeg float64) {
	start := arcPoint(center, radius, startDeg)
	p.LineTo(start)
	if radius <= 0 || sweepDeg == 0 {
		return
	}
	n := arcSegments(radius, sweepDeg)
	for i := 1; i <= n; i++ {
		a := startDeg + sweepDeg*float64(i)/float64(n)
		p.LineTo(arcPoint(center, radius, a))
	}
}

// Close ends the open contour. The closing segment back to the first point
// is implicit, so a final point repeating the first one is dropped.
func (p *Path) Close() {
	if p.start < 0 {
		return
	}
	last := len(p.data.Coords) - 1
	if last > p.start {
		first, end := p.data.Coords[p.start], p.data.Coords[last]
		if first == end {
			p.data.Coords = p.data.Coords[:last]
			p.data.Cmds = p.data.Cmds[:len(p.data.Cmds)-1]
		}
	}
	p.data.Cmds = append(p.data.Cmds, geompath.CmdClose)
	p.start = -1
}

// Data returns the underlying command list. Renderers walk it with
// [Path.Walk]; callers MUST NOT mutate it.
func (p *Path) Data() *geompath.Data {
	return &p.data
}

// Walk calls moveTo, lineTo and closePath for each command in order.
func (p *Path) Walk(moveTo, lineTo func(x, y float64), closePath func()) {
	ci := 0
	for _, cmd := range p.data.Cmds {
		switch cmd {
		case geompath.CmdMoveTo:
			pt := p.data.Coords[ci]
			moveTo(pt.X, pt.Y)
			ci++
		case geompath.CmdLineTo:
			pt := p.data.Coords[ci]
			lineTo(pt.X, pt.Y)
			ci++
		case geompath.CmdQuadTo:
			ci += 2
		case geompath.CmdCubeTo:
			ci += 3
		case geompath.CmdClose:
			closePath()
		}
	}
}

// Contours returns the flattened contours as point lists.
func (p *Path) Contours() [][]Vec2 {
	var out [][]Vec2
	p.Walk(
		func(x, y float64) { out = append(out, []Vec2{{x, y}}) },
		func(x, y float64) {
			last := len(out) - 1
			out[last] = append(out[last], Vec2{x, y})
		},
		func() {},
	)
	return out
}

// Points returns the points of the first contour, or nil for an empty path.
func (p *Path) Points() []Vec2 {
	c := p.Contours()
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Closed reports whether every contour of the path has been closed.
func (p *Path) Closed() bool {
	if len(p.data.Cmds) == 0 {
		return false
	}
	open := false
	for _, cmd := range p.data.Cmds {
		switch cmd {
		case geompath.CmdMoveTo:
			if open {
				return false
			}
			open = true
		case geompath.CmdClose:
			open = false
		}
	}
	return !open
}

// Bounds returns the axis-aligned bounding box of all points.
func (p *Path) Bounds() Rect {
	if len(p.data.Coords) == 0 {
		return Rect{}
	}
	first := p.data.Coords[0]
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, pt := range p.data.Coords[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether (x, y) is inside the path using the non-zero
// winding rule. Self-intersecting outlines such as a star drawn tip to tip
// count their overlapping center as inside.
func (p *Path) Contains(x, y float64) bool {
	winding := 0
	for _, c := range p.Contours() {
		n := len(c)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := c[i], c[(i+1)%n]
			if a.Y <= y {
				if b.Y > y && cross(a, b, x, y) > 0 {
					winding++
				}
			} else if b.Y <= y && cross(a, b, x, y) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// Area returns the signed area enclosed by the contours (shoelace formula).
// Contours wound clockwise on screen are positive.
func (p *Path) Area() float64 {
	var sum float64
	for _, c := range p.Contours() {
		n := len(c)
		for i := 0; i < n; i++ {
			a, b := c[i], c[(i+1)%n]
			sum += a.X*b.Y - b.X*a.Y
		}
	}
	return sum / 2
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := &Path{start: p.start}
	out.data.Cmds = append(out.data.Cmds, p.data.Cmds...)
	out.data.Coords = make([]vec.Vec2, len(p.data.Coords))
	for i, pt := range p.data.Coords {
		out.data.Coords[i] = vec.Vec2{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b Vec2, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

func arcPoint(center Vec2, radius, deg float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{center.X + radius*cos, center.Y + radius*sin}
}

// arcSegments picks a segment count so the chord error stays within
// arcTolerance.
func arcSegments(radius, sweepDeg float64) int {
	sweep := math.Abs(sweepDeg) * math.Pi / 180
	step := math.Pi / 2
	if radius > arcTolerance {
		step = 2 * math.Acos(1-arcTolerance/radius)
	}
	n := int(math.Ceil(sweep / step))
	if n < 1 {
		n = 1
	}
	if n > maxArcSegments {
		n = maxArcSegments
	}
	return n
}
