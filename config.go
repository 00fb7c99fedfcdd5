package ratingbar

import (
	"errors"
	"fmt"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultWidth   = 300.0
	DefaultHeight  = 60.0
	DefaultParts   = 5
	DefaultSpacing = 5.0

	// NoSpacing lays the shapes out edge to edge. A zero Spacing means
	// DefaultSpacing, so a gapless row needs this value (any negative
	// Spacing works the same).
	NoSpacing = -1.0
)

var (
	// ErrInvalidParts is returned when a bar would have fewer than one shape.
	ErrInvalidParts = errors.New("parts must be at least 1")
	// ErrInvalidSize is returned for a negative width or height.
	ErrInvalidSize = errors.New("width and height must not be negative")
	// ErrNoShape is returned when Config.Shape is nil.
	ErrNoShape = errors.New("shape is required")
)

// Config describes a rating bar. It is copied when the bar is built and never
// changes afterwards.
type Config struct {
	// Width is the combined width of all shapes, excluding spacing.
	// Zero means DefaultWidth.
	Width float64
	// Height is the height of each shape. Zero means DefaultHeight.
	Height float64
	// Parts is the number of shapes and the maximum rating.
	// Zero means DefaultParts; negative values are rejected.
	Parts int
	// Spacing is the gap between neighbouring shapes. It widens the bar.
	// Zero means DefaultSpacing; use NoSpacing (or any negative value) for a
	// gapless row.
	Spacing float64

	Shape           Shape
	FillColor       Color
	BackgroundColor Color

	// Curve controls how the drawn fill follows changes.
	// Nil means CurveBouncy.
	Curve Curve
}

// withDefaults returns a copy of c with zero fields filled in.
func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Parts == 0 {
		c.Parts = DefaultParts
	}
	switch {
	case c.Spacing == 0:
		c.Spacing = DefaultSpacing
	case c.Spacing < 0:
		c.Spacing = 0
	}
	if c.Curve == nil {
		c.Curve = CurveBouncy
	}
	return c
}

// Validate reports whether c, after defaults, describes a usable bar.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.Parts < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidParts, c.Parts)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w (width %g, height %g)", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Shape == nil {
		return ErrNoShape
	}
	return nil
}

// PartWidth returns the width of one shape.
func (c Config) PartWidth() float64 {
	c = c.withDefaults()
	return c.Width / float64(c.Parts)
}

// TotalWidth returns the full width of the row including spacing.
func (c Config) TotalWidth() float64 {
	c = c.withDefaults()
	return c.Width + float64(c.Parts-1)*c.Spacing
}

// Size returns the full width of the row and the shape height.
func (c Config) Size() Vec2 {
	c = c.withDefaults()
	return Vec2{X: c.TotalWidth(), Y: c.Height}
}
