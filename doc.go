// Package ratingbar is an interactive rating control for [Ebitengine].
//
// A bar is a horizontal row of identical shapes (stars, triangles, hexagons,
// capsules, circles) whose fill shows a fractional rating between zero and
// the number of shapes. Users drag across the row to set the rating; host
// code sets the same value through a shared [Binding], and the two stay in
// sync.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	rating := ratingbar.NewBinding(0)
//	bar, err := ratingbar.NewBar(rating, ratingbar.Config{
//		Shape:           ratingbar.RoundedStar{CornerRadius: 5},
//		FillColor:       ratingbar.Color{R: 1, G: 0.8, B: 0, A: 1},
//		BackgroundColor: ratingbar.Color{R: 1, G: 1, B: 1, A: 0.2},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	host := ratingbar.NewHost()
//	host.Add(bar, 170, 200)
//	ratingbar.Run(host, ratingbar.RunConfig{Title: "Rate it", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Host.Update]
// and [Host.Draw] directly, or skip the Host and feed pointer positions to
// [Bar.Drag], call [Bar.Update] once per tick, and render with [Bar.Draw].
//
// # Synchronization
//
// The rating and the bar's drag offset determine each other:
//
//	rating = clamp(offset / totalWidth * parts, 0, parts)
//	offset = rating * totalWidth / parts
//
// where totalWidth is the shapes' width plus the gaps between them. A change
// on one side recomputes the other, and each direction stops when nothing
// changes, so a settled bar is a fixed point. Out-of-range ratings written by
// the host come back clamped.
//
// # Drawing
//
// [Layout] is a pure function from a configuration and an offset to one
// [Part] per shape, holding the shape's outline and how much of it is filled.
// The ebiten renderer, the software rasterizer in ratingbar/raster and the
// terminal view in ratingbar/term all draw from it. Changes are animated
// with a [Curve]: gween easing tweens or harmonica springs. Set
// [Widget.Label] to print the rating beside a placed bar.
//
// All types in this package must be used from a single goroutine, normally
// the game loop.
//
// [Ebitengine]: https://ebitengine.org
package ratingbar
