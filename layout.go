package ratingbar

// Part is the draw instruction for one shape of a bar, in the bar's local
// coordinates (origin at the top-left of the first shape).
type Part struct {
	Index int
	// Bounds is the rectangle the shape occupies.
	Bounds Rect
	// Fill is the filled width measured from Bounds.X, in [0, Bounds.Width].
	Fill float64
	// Outline is the shape's closed path inside Bounds.
	Outline *Path

	FillColor       Color
	BackgroundColor Color
}

// FillBounds returns the filled portion of the part as a rectangle.
func (p Part) FillBounds() Rect {
	r := p.Bounds
	r.Width = p.Fill
	return r
}

// Fraction returns how much of the part is filled, in [0, 1].
func (p Part) Fraction() float64 {
	if p.Bounds.Width == 0 {
		return 0
	}
	return p.Fill / p.Bounds.Width
}

// RatingForOffset converts a horizontal drag offset into a rating clamped to
// [0, Parts].
func RatingForOffset(c Config, offset float64) float64 {
	c = c.withDefaults()
	total := c.TotalWidth()
	parts := float64(c.Parts)
	if total == 0 {
		return 0
	}
	return clamp(offset/total*parts, 0, parts)
}

// OffsetForRating converts a rating into the drag offset that displays it.
// The rating is not clamped; feed the result through RatingForOffset to
// normalize out-of-range values.
func OffsetForRating(c Config, rating float64) float64 {
	c = c.withDefaults()
	return rating * c.TotalWidth() / float64(c.Parts)
}

// FillAmount returns the filled width of shape i for a drag offset. Each shape
// starts filling only once the offset has passed every earlier shape and its
// trailing gap, so the result is non-increasing in i and lies within
// [0, PartWidth].
func FillAmount(c Config, offset float64, i int) float64 {
	c = c.withDefaults()
	pw := c.PartWidth()
	return clamp(offset-float64(i)*(pw+c.Spacing), 0, pw)
}

// PartBounds returns the rectangle of shape i in bar-local coordinates. It
// returns the zero Rect for a config with fewer than one part.
func PartBounds(c Config, i int) Rect {
	c = c.withDefaults()
	if c.Parts < 1 {
		return Rect{}
	}
	pw := c.PartWidth()
	return Rect{X: float64(i) * (pw + c.Spacing), Width: pw, Height: c.Height}
}

// Layout returns the draw instructions for every shape at the given offset.
// It returns nil when c does not pass Validate.
func Layout(c Config, offset float64) []Part {
	if c.Validate() != nil {
		return nil
	}
	c = c.withDefaults()
	outlines := make([]*Path, c.Parts)
	for i := range outlines {
		outlines[i] = c.Shape.Path(PartBounds(c, i))
	}
	return appendLayout(nil, c, outlines, offset)
}

// appendLayout fills buf with parts built from precomputed outlines.
func appendLayout(buf []Part, c Config, outlines []*Path, offset float64) []Part {
	buf = buf[:0]
	for i := 0; i < c.Parts; i++ {
		buf = append(buf, Part{
			Index:           i,
			Bounds:          PartBounds(c, i),
			Fill:            FillAmount(c, offset, i),
			Outline:         outlines[i],
			FillColor:       c.FillColor,
			BackgroundColor: c.BackgroundColor,
		})
	}
	return buf
}
