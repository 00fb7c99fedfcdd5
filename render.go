package ratingbar

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the bar onto dst with its top-left corner at (x, y), using
// the presented (animated) offset.
//
// Each part is drawn twice: the whole outline in the background color, then
// the outline again in the fill color through a scissor that ends at the
// part's fill width. Outlines are filled with the non-zero rule so
// self-intersecting shapes render solid.
func (b *Bar) Draw(dst *ebiten.Image, x, y float64) {
	DrawParts(dst, b.Parts(), x, y)
}

// DrawParts renders precomputed parts onto dst at (x, y). Exposed for hosts
// that lay out bars themselves.
func DrawParts(dst *ebiten.Image, parts []Part, x, y float64) {
	bounds := dst.Bounds()
	for i := range parts {
		p := &parts[i]
		path := toVectorPath(p.Outline, x, y)

		if p.BackgroundColor.A > 0 {
			fillPath(dst, path, p.BackgroundColor)
		}

		if p.Fill <= 0 || p.FillColor.A <= 0 {
			continue
		}
		x0 := x + p.Bounds.X
		clip := image.Rect(
			int(math.Round(x0)), bounds.Min.Y,
			int(math.Round(x0+p.Fill)), bounds.Max.Y,
		).Intersect(bounds)
		if clip.Empty() {
			continue
		}
		sub := dst.SubImage(clip).(*ebiten.Image)
		fillPath(sub, path, p.FillColor)
	}
}

// fillPath fills path onto dst with a solid color. Sub-images keep the
// parent's coordinate space, so the same path can be reused for clipping.
func fillPath(dst *ebiten.Image, path *vector.Path, c Color) {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c.RGBA())
	vector.FillPath(dst, path,
		&vector.FillOptions{FillRule: vector.FillRuleNonZero},
		&vector.DrawPathOptions{AntiAlias: true, ColorScale: cs},
	)
}

// toVectorPath converts an outline into an ebiten vector path translated by
// (dx, dy).
func toVectorPath(p *Path, dx, dy float64) *vector.Path {
	var vp vector.Path
	if p == nil {
		return &vp
	}
	p.Walk(
		func(x, y float64) { vp.MoveTo(float32(x+dx), float32(y+dy)) },
		func(x, y float64) { vp.LineTo(float32(x+dx), float32(y+dy)) },
		vp.Close,
	)
	return &vp
}
