// Package raster renders rating bars in software, without a GPU or window.
//
// It draws the same [ratingbar.Layout] the ebiten renderer uses, filling each
// outline with golang.org/x/image/vector. Handy for thumbnails, server-side
// images and golden tests.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/phanxgames/ratingbar"
	"golang.org/x/image/vector"
)

// Options controls software rendering.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
	// Padding adds transparent space around the bar, in unscaled pixels.
	Padding float64
	// Background fills the whole image first. Zero alpha leaves it clear.
	Background ratingbar.Color
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	return o
}

// RenderRating draws a bar configured by cfg showing rating. The rating is
// clamped to [0, Parts] just as a mounted bar would clamp it.
func RenderRating(cfg ratingbar.Config, rating float64, opts Options) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	// Round-trip through the offset to clamp the rating.
	rating = ratingbar.RatingForOffset(cfg, ratingbar.OffsetForRating(cfg, rating))
	offset := ratingbar.OffsetForRating(cfg, rating)
	return Render(ratingbar.Layout(cfg, offset), cfg.Size(), opts), nil
}

// RenderBar draws a live bar at its presented offset.
func RenderBar(b *ratingbar.Bar, opts Options) *image.RGBA {
	return Render(b.Parts(), b.Size(), opts)
}

// Render draws parts into a new image sized to hold a bar of the given size.
func Render(parts []ratingbar.Part, size ratingbar.Vec2, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	s := opts.Scale
	pad := opts.Padding
	w := int(math.Ceil((size.X + 2*pad) * s))
	h := int(math.Ceil((size.Y + 2*pad) * s))
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))

	if opts.Background.A > 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background.RGBA()), image.Point{}, draw.Src)
	}

	mask := image.NewAlpha(dst.Bounds())
	for _, p := range parts {
		clear(mask.Pix)
		rasterize(mask, p.Outline, pad, s)

		if p.BackgroundColor.A > 0 {
			draw.DrawMask(dst, dst.Bounds(), image.NewUniform(p.BackgroundColor.RGBA()),
				image.Point{}, mask, image.Point{}, draw.Over)
		}
		if p.Fill <= 0 || p.FillColor.A <= 0 {
			continue
		}
		x0 := (p.Bounds.X + pad) * s
		clip := image.Rect(
			int(math.Round(x0)), 0,
			int(math.Round(x0+p.Fill*s)), h,
		).Intersect(dst.Bounds())
		if clip.Empty() {
			continue
		}
		draw.DrawMask(dst, clip, image.NewUniform(p.FillColor.RGBA()),
			image.Point{}, mask, clip.Min, draw.Over)
	}
	return dst
}

// rasterize accumulates the outline's coverage into mask. Overlapping
// windings saturate, so self-intersecting outlines fill solid.
func rasterize(mask *image.Alpha, outline *ratingbar.Path, pad, scale float64) {
	if outline == nil {
		return
	}
	b := mask.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	px := func(v float64) float32 { return float32((v + pad) * scale) }
	outline.Walk(
		func(x, y float64) { z.MoveTo(px(x), px(y)) },
		func(x, y float64) { z.LineTo(px(x), px(y)) },
		z.ClosePath,
	)
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
