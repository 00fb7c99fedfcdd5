package ratingbar

import (
	"fmt"
	"math"
)

// offsetTolerance is the relative slack used when comparing a recomputed
// offset with the current one. It absorbs the round-off of converting
// rating -> offset -> rating so the two directions settle.
const offsetTolerance = 1e-9

// Bar is an interactive row of shapes showing a fractional rating.
//
// The rating lives in a Binding owned by the host. The bar keeps a private
// drag offset in pixels; a change to either one recomputes the other, and
// each direction stops as soon as the recomputed value matches. Dragging
// writes the binding, and external writes to the binding move the fill.
//
// The offset changes instantly; what is drawn follows it through the bar's
// Curve. Call Update once per frame to advance that animation.
type Bar struct {
	cfg    Config
	rating *Binding
	handle CallbackHandle

	mounted bool

	offset    float64 // model drag offset
	presented float64 // animated offset used for drawing
	motion    Motion

	outlines []*Path
	parts    []Part

	step        int
	transitions int

	// OnChange is called with every in-range rating the bar observes while
	// mounted, whether it came from a drag or from the host.
	OnChange func(rating float64)
	// OnStep is called when the whole part of the rating changes, e.g. from
	// 2.9 to 3.0. Useful for ticks and haptics.
	OnStep func(step int)
}

// NewBar builds a bar bound to rating. Zero fields of cfg take their defaults;
// note that this includes Spacing, so pass NoSpacing for shapes that touch.
// The bar does nothing until Mount is called. Panics if rating is nil.
func NewBar(rating *Binding, cfg Config) (*Bar, error) {
	if rating == nil {
		panic("ratingbar: nil rating binding")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ratingbar: %w", err)
	}
	cfg = cfg.withDefaults()

	b := &Bar{
		cfg:      cfg,
		rating:   rating,
		outlines: make([]*Path, cfg.Parts),
		parts:    make([]Part, 0, cfg.Parts),
	}
	for i := range b.outlines {
		b.outlines[i] = cfg.Shape.Path(PartBounds(cfg, i))
	}
	return b, nil
}

// MustNewBar is like NewBar but panics on an invalid config.
func MustNewBar(rating *Binding, cfg Config) *Bar {
	b, err := NewBar(rating, cfg)
	if err != nil {
		panic(err)
	}
	return b
}

// Mount attaches the bar to its binding and seeds the offset from the current
// rating, so a non-zero rating is visible right away. A rating outside
// [0, Parts] is corrected in the binding. Calling Mount twice is a no-op.
func (b *Bar) Mount() {
	if b.mounted {
		return
	}
	b.mounted = true
	b.handle = b.rating.Observe(b.ratingChanged)
	v := b.rating.Get()
	r := clamp(v, 0, float64(b.cfg.Parts))
	b.step = stepOf(r)
	b.setOffset(OffsetForRating(b.cfg, r))
	if r != v {
		b.rating.Set(r)
	}
}

// Unmount detaches the bar from its binding and discards the offset and any
// running animation. The binding keeps its value.
func (b *Bar) Unmount() {
	if !b.mounted {
		return
	}
	b.handle.Remove()
	b.handle = CallbackHandle{}
	b.mounted = false
	b.offset = 0
	b.presented = 0
	b.motion = nil
}

// Mounted reports whether the bar is attached to its binding.
func (b *Bar) Mounted() bool {
	return b.mounted
}

// Drag moves the offset to x, a horizontal position in bar-local pixels. The
// position is not clamped; the rating derived from it is.
func (b *Bar) Drag(x float64) {
	b.setOffset(x)
}

// Update advances the fill animation by dt seconds.
func (b *Bar) Update(dt float32) {
	if b.motion == nil {
		return
	}
	v, done := b.motion.Update(dt)
	b.presented = v
	if done {
		b.motion = nil
	}
}

// Animating reports whether the drawn fill is still catching up.
func (b *Bar) Animating() bool {
	return b.motion != nil
}

// Config returns the bar's configuration with defaults applied.
func (b *Bar) Config() Config {
	return b.cfg
}

// Binding returns the rating binding the bar writes to.
func (b *Bar) Binding() *Binding {
	return b.rating
}

// Rating returns the current rating.
func (b *Bar) Rating() float64 {
	return b.rating.Get()
}

// Offset returns the drag offset the fill is heading toward.
func (b *Bar) Offset() float64 {
	return b.offset
}

// PresentedOffset returns the offset currently drawn.
func (b *Bar) PresentedOffset() float64 {
	return b.presented
}

// Size returns the bar's full width (shapes plus spacing) and height.
func (b *Bar) Size() Vec2 {
	return b.cfg.Size()
}

// Transitions returns how many offset/rating recomputations have actually
// changed something since the bar was built.
func (b *Bar) Transitions() int {
	return b.transitions
}

// Parts returns the draw instructions at the presented offset. The returned
// slice is reused by the next call and MUST NOT be retained.
func (b *Bar) Parts() []Part {
	b.parts = appendLayout(b.parts, b.cfg, b.outlines, b.presented)
	return b.parts
}

// TargetParts returns the draw instructions once the animation settles.
func (b *Bar) TargetParts() []Part {
	return appendLayout(nil, b.cfg, b.outlines, b.offset)
}

// setOffset records a new model offset, animates toward it, and derives the
// rating from it. Unchanged offsets and NaN stop here; infinite offsets pin
// to the ends of the row.
func (b *Bar) setOffset(x float64) {
	if math.IsNaN(x) {
		return
	}
	if math.IsInf(x, 0) {
		x = clamp(x, 0, b.cfg.TotalWidth())
	}
	if x == b.offset {
		return
	}
	b.offset = x
	b.transitions++
	b.animateTo(x)
	b.rating.Set(RatingForOffset(b.cfg, x))
}

// ratingChanged runs whenever the binding changes while mounted.
func (b *Bar) ratingChanged(v float64) {
	parts := float64(b.cfg.Parts)
	inRange := v >= 0 && v <= parts
	if inRange {
		b.notify(v)
		if !b.mounted {
			// OnChange unmounted the bar.
			return
		}
	}
	r := clamp(v, 0, parts)
	target := OffsetForRating(b.cfg, r)
	if !b.sameOffset(target) {
		b.offset = target
		b.transitions++
		b.animateTo(target)
	}
	// Out-of-range values and NaN come back clamped through the binding.
	if !inRange {
		b.rating.Set(r)
	}
}

func (b *Bar) animateTo(x float64) {
	m := b.cfg.Curve.Start(b.presented, x, b.motion)
	if v, ok := m.(instantMotion); ok {
		b.presented = float64(v)
		b.motion = nil
		return
	}
	b.motion = m
}

func (b *Bar) sameOffset(x float64) bool {
	tol := offsetTolerance * math.Max(1, b.cfg.TotalWidth())
	return math.Abs(x-b.offset) <= tol
}

func (b *Bar) notify(v float64) {
	if b.OnChange != nil {
		b.OnChange(v)
	}
	if s := stepOf(v); s != b.step {
		b.step = s
		if b.OnStep != nil {
			b.OnStep(s)
		}
	}
}

func stepOf(v float64) int {
	return int(math.Floor(v))
}
