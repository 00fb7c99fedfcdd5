package ratingbar

import (
	"fmt"
	"math"
	"sort"
)

// Shape produces a closed outline for a bounding rectangle. Implementations
// are stateless; the same rectangle always yields the same path.
type Shape interface {
	Path(r Rect) *Path
}

// ShapeFunc adapts an ordinary function to the Shape interface.
type ShapeFunc func(r Rect) *Path

// Path calls f(r).
func (f ShapeFunc) Path(r Rect) *Path {
	return f(r)
}

// Rectangle fills its whole bounding rectangle.
type Rectangle struct{}

// Path implements Shape.
func (Rectangle) Path(r Rect) *Path {
	p := NewPath()
	p.MoveTo(Vec2{r.X, r.Y})
	p.LineTo(Vec2{r.X + r.Width, r.Y})
	p.LineTo(Vec2{r.X + r.Width, r.Y + r.Height})
	p.LineTo(Vec2{r.X, r.Y + r.Height})
	p.Close()
	return p
}

// Triangle has its apex at the top center and its base along the bottom edge.
type Triangle struct{}

// Path implements Shape.
func (Triangle) Path(r Rect) *Path {
	w, h := r.Width, r.Height
	p := NewPath()
	p.MoveTo(Vec2{r.X, r.Y + h})
	p.LineTo(Vec2{r.X + w, r.Y + h})
	p.LineTo(Vec2{r.X + 0.5*w, r.Y})
	p.Close()
	return p
}

// Hexagon is flat-topped with its slanted sides inset 20% from the left and
// right edges; the side points sit at mid-height.
type Hexagon struct{}

// Path implements Shape.
func (Hexagon) Path(r Rect) *Path {
	w, h := r.Width, r.Height
	p := NewPath()
	p.MoveTo(Vec2{r.X + 0.2*w, r.Y})
	p.LineTo(Vec2{r.X + 0.8*w, r.Y})
	p.LineTo(Vec2{r.X + w, r.Y + 0.5*h})
	p.LineTo(Vec2{r.X + 0.8*w, r.Y + h})
	p.LineTo(Vec2{r.X + 0.2*w, r.Y + h})
	p.LineTo(Vec2{r.X, r.Y + 0.5*h})
	p.Close()
	return p
}

// Circle is the largest circle centered in the rectangle.
type Circle struct{}

// Path implements Shape.
func (Circle) Path(r Rect) *Path {
	radius := math.Min(r.Width, r.Height) / 2
	p := NewPath()
	p.Arc(r.Center(), radius, 0, 360)
	p.Close()
	return p
}

// Capsule is a rectangle whose shorter sides are fully rounded.
type Capsule struct{}

// Path implements Shape.
func (Capsule) Path(r Rect) *Path {
	rad := math.Min(r.Width, r.Height) / 2
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	p := NewPath()
	p.MoveTo(Vec2{x0 + rad, y0})
	p.LineTo(Vec2{x1 - rad, y0})
	p.Arc(Vec2{x1 - rad, y0 + rad}, rad, -90, 90)
	p.LineTo(Vec2{x1, y1 - rad})
	p.Arc(Vec2{x1 - rad, y1 - rad}, rad, 0, 90)
	p.LineTo(Vec2{x0 + rad, y1})
	p.Arc(Vec2{x0 + rad, y1 - rad}, rad, 90, 90)
	p.LineTo(Vec2{x0, y0 + rad})
	p.Arc(Vec2{x0 + rad, y0 + rad}, rad, 180, 90)
	p.Close()
	return p
}

// starOuterRatio is the fraction of the half-width reached by the star tips.
const starOuterRatio = 0.95

// RoundedStar is a five-point star with rounded tips. Its size follows the
// rectangle's width; tall rectangles leave room above and below, short ones
// let the tips overflow vertically.
type RoundedStar struct {
	// CornerRadius is the radius of each tip arc. Values below zero or not
	// smaller than the tip distance produce sharp tips.
	CornerRadius float64
}

// Path implements Shape. The outline is traced tip to tip, each tip as an arc
// of 144° between the tangent points of the two edges meeting there, so the
// contour crosses itself; fill it with the non-zero rule.
func (s RoundedStar) Path(r Rect) *Path {
	center := r.Center()
	outer := r.Width / 2 * starOuterRatio
	rc := s.CornerRadius
	if rc < 0 || rc >= outer {
		rc = 0
	}
	rn := outer - rc

	p := NewPath()
	// Starting at -18° lands the third tip at 270°, straight up.
	angle := -18.0
	for i := 0; i < 5; i++ {
		tip := arcPoint(center, rn, angle)
		start := arcPoint(tip, rc, angle-72)
		if i == 0 {
			p.MoveTo(start)
		}
		p.Arc(tip, rc, angle-72, 144)
		angle += 144
	}
	p.Close()
	return p
}

// ShapeNames lists the names accepted by ShapeByName, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(namedShapes))
	for n := range namedShapes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var namedShapes = map[string]Shape{
	"star":      RoundedStar{CornerRadius: 5},
	"sharpstar": RoundedStar{},
	"triangle":  Triangle{},
	"circle":    Circle{},
	"hexagon":   Hexagon{},
	"capsule":   Capsule{},
	"rectangle": Rectangle{},
}

// ShapeByName returns a built-in shape for command-line and config use.
func ShapeByName(name string) (Shape, error) {
	s, ok := namedShapes[name]
	if !ok {
		return nil, fmt.Errorf("ratingbar: unknown shape %q", name)
	}
	return s, nil
}
