package ratingbar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	geompath "seehuhn.de/go/geom/path"
)

func TestPathLineToSkipsDuplicates(t *testing.T) {
	p := NewPath()
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{10, 0})
	p.LineTo(Vec2{10, 0})
	p.LineTo(Vec2{10, 10})
	p.LineTo(Vec2{0, 0})
	p.Close()

	want := []Vec2{{0, 0}, {10, 0}, {10, 10}}
	if diff := cmp.Diff(want, p.Points()); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if !p.Closed() {
		t.Error("path should be closed")
	}
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	p := NewPath()
	p.LineTo(Vec2{5, 5})
	if len(p.Contours()) != 1 {
		t.Fatalf("contours = %d, want 1", len(p.Contours()))
	}
	if p.Closed() {
		t.Error("open contour reported closed")
	}
}

func TestPathEmpty(t *testing.T) {
	p := NewPath()
	if p.Points() != nil {
		t.Error("empty path should have no points")
	}
	if p.Closed() {
		t.Error("empty path should not be closed")
	}
	if p.Contains(0, 0) {
		t.Error("empty path contains nothing")
	}
	p.Close() // no contour, no panic
}

func TestPathArcEndpoints(t *testing.T) {
	p := NewPath()
	p.Arc(Vec2{0, 0}, 10, 0, 90)

	pts := p.Points()
	if len(pts) < 3 {
		t.Fatalf("arc flattened to %d points, want several", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-10) > 1e-9 || math.Abs(first.Y) > 1e-9 {
		t.Errorf("first = %v, want (10, 0)", first)
	}
	// A positive sweep turns toward +Y.
	if math.Abs(last.X) > 1e-9 || math.Abs(last.Y-10) > 1e-9 {
		t.Errorf("last = %v, want (0, 10)", last)
	}
	for _, pt := range pts {
		if r := math.Hypot(pt.X, pt.Y); math.Abs(r-10) > 1e-9 {
			t.Errorf("point %v off the circle (r = %v)", pt, r)
		}
	}
}

func TestArcSegments(t *testing.T) {
	small := arcSegments(2, 90)
	large := arcSegments(200, 90)
	if small >= large {
		t.Errorf("segments small=%d large=%d, want more for the larger radius", small, large)
	}
	if n := arcSegments(1e9, 360); n != maxArcSegments {
		t.Errorf("huge arc = %d segments, want cap %d", n, maxArcSegments)
	}
	if n := arcSegments(0.1, 1); n != 1 {
		t.Errorf("tiny arc = %d segments, want 1", n)
	}
}

func TestPathBoundsAndTranslate(t *testing.T) {
	p := Rectangle{}.Path(Rect{X: 5, Y: 10, Width: 20, Height: 30})
	if diff := cmp.Diff(Rect{X: 5, Y: 10, Width: 20, Height: 30}, p.Bounds()); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	moved := p.Translate(100, -10)
	if diff := cmp.Diff(Rect{X: 105, Y: 0, Width: 20, Height: 30}, moved.Bounds()); diff != "" {
		t.Errorf("translated bounds mismatch (-want +got):\n%s", diff)
	}
	if !moved.Closed() {
		t.Error("translate should keep closed flags")
	}
	// The original is untouched.
	if p.Bounds().X != 5 {
		t.Error("Translate mutated the source path")
	}
}

func TestPathContainsNonZero(t *testing.T) {
	// Two overlapping squares wound the same way: the overlap is inside
	// under the non-zero rule, where even-odd would leave a hole.
	p := NewPath()
	square := func(x, y float64) {
		p.MoveTo(Vec2{x, y})
		p.LineTo(Vec2{x + 10, y})
		p.LineTo(Vec2{x + 10, y + 10})
		p.LineTo(Vec2{x, y + 10})
		p.Close()
	}
	square(0, 0)
	square(5, 5)

	tests := []struct {
		x, y float64
		want bool
	}{
		{2, 2, true},
		{7, 7, true}, // overlap
		{12, 12, true},
		{12, 2, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPathCommands(t *testing.T) {
	p := Triangle{}.Path(Rect{Width: 10, Height: 10})
	d := p.Data()
	// MoveTo + 2 LineTo + Close
	if len(d.Cmds) != 4 {
		t.Fatalf("got %d commands, want 4", len(d.Cmds))
	}
	if d.Cmds[0] != geompath.CmdMoveTo {
		t.Errorf("first command = %v, want MoveTo", d.Cmds[0])
	}
	for i, cmd := range d.Cmds[1:3] {
		if cmd != geompath.CmdLineTo {
			t.Errorf("command %d = %v, want LineTo", i+1, cmd)
		}
	}
	if d.Cmds[3] != geompath.CmdClose {
		t.Errorf("last command = %v, want Close", d.Cmds[3])
	}
	if len(d.Coords) != 3 {
		t.Errorf("coords = %d, want 3", len(d.Coords))
	}
}

func TestPathWalk(t *testing.T) {
	p := NewPath()
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{4, 0})
	p.LineTo(Vec2{4, 4})
	p.Close()
	p.MoveTo(Vec2{10, 10})
	p.LineTo(Vec2{12, 10})
	p.LineTo(Vec2{12, 12})
	p.Close()

	var ops []string
	p.Walk(
		func(x, y float64) { ops = append(ops, "M") },
		func(x, y float64) { ops = append(ops, "L") },
		func() { ops = append(ops, "Z") },
	)
	want := []string{"M", "L", "L", "Z", "M", "L", "L", "Z"}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	if got := len(p.Contours()); got != 2 {
		t.Errorf("contours = %d, want 2", got)
	}
	if !p.Closed() {
		t.Error("both contours are closed")
	}
}

func TestPathClosedWithOpenContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{1, 0})
	p.Close()
	p.MoveTo(Vec2{5, 5})
	p.LineTo(Vec2{6, 5})
	if p.Closed() {
		t.Error("second contour is still open")
	}
}

func TestPathArea(t *testing.T) {
	rect := Rectangle{}.Path(Rect{Width: 20, Height: 10})
	if got := math.Abs(rect.Area()); got != 200 {
		t.Errorf("rectangle area = %v, want 200", got)
	}
	tri := Triangle{}.Path(Rect{Width: 10, Height: 10})
	if got := math.Abs(tri.Area()); got != 50 {
		t.Errorf("triangle area = %v, want 50", got)
	}
	if NewPath().Area() != 0 {
		t.Error("empty path has no area")
	}
}
