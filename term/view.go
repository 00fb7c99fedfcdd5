// Package term draws a rating bar in a terminal with tcell and lets the
// user drag it with the mouse or nudge it with the arrow keys.
//
// Each shape becomes a run of cells; partially filled cells use the
// left-aligned eighth blocks, so a terminal bar still shows fractional
// ratings at 1/8-cell resolution.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/ratingbar"
)

const (
	defaultCellsPerPart = 4
	defaultGapCells     = 1
	defaultKeyStep      = 0.5
)

// eighths holds the left-aligned partial blocks from 1/8 to 7/8.
var eighths = [...]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉'}

const fullBlock = '█'

// View renders a bar on one terminal row.
type View struct {
	Bar *ratingbar.Bar

	// X and Y are the cell position of the first shape.
	X, Y int
	// CellsPerPart is the number of columns per shape. Zero means 4.
	CellsPerPart int
	// GapCells is the number of columns between shapes. Zero means 1;
	// negative means none.
	GapCells int
	// KeyStep is how far one arrow key press moves the rating. Zero means 0.5.
	KeyStep float64
	// Backdrop is the terminal color translucent bar colors are blended
	// onto. Zero means black.
	Backdrop ratingbar.Color
	// ShowValue prints the numeric rating after the bar.
	ShowValue bool

	dragging bool
}

// NewView creates a view for bar at cell (x, y) with default sizing.
func NewView(bar *ratingbar.Bar, x, y int) *View {
	return &View{Bar: bar, X: x, Y: y, ShowValue: true}
}

func (v *View) cellsPerPart() int {
	if v.CellsPerPart <= 0 {
		return defaultCellsPerPart
	}
	return v.CellsPerPart
}

func (v *View) gapCells() int {
	switch {
	case v.GapCells == 0:
		return defaultGapCells
	case v.GapCells < 0:
		return 0
	}
	return v.GapCells
}

// Width returns the number of columns the bar occupies, excluding the value.
func (v *View) Width() int {
	parts := v.Bar.Config().Parts
	return parts*v.cellsPerPart() + (parts-1)*v.gapCells()
}

// Draw paints the bar at its presented offset.
func (v *View) Draw(s tcell.Screen) {
	cpp := v.cellsPerPart()
	gap := v.gapCells()
	cfg := v.Bar.Config()
	pw := cfg.PartWidth()

	col := v.X
	for i, p := range v.Bar.Parts() {
		fillStyle := tcell.StyleDefault.
			Foreground(v.blend(p.FillColor)).
			Background(v.blend(p.BackgroundColor))
		emptyStyle := tcell.StyleDefault.Background(v.blend(p.BackgroundColor))

		frac := 0.0
		if pw > 0 {
			frac = p.Fill / pw
		}
		for j := 0; j < cpp; j++ {
			r, style := cellRune(frac*float64(cpp)-float64(j)), fillStyle
			if r == ' ' {
				style = emptyStyle
			}
			s.SetContent(col+j, v.Y, r, nil, style)
		}
		col += cpp
		if i < len(v.Bar.Parts())-1 {
			for j := 0; j < gap; j++ {
				s.SetContent(col+j, v.Y, ' ', nil, tcell.StyleDefault)
			}
			col += gap
		}
	}

	if v.ShowValue {
		label := fmt.Sprintf(" %.2f/%d", v.Bar.Rating(), cfg.Parts)
		for k, r := range label {
			s.SetContent(col+k, v.Y, r, nil, tcell.StyleDefault)
		}
	}
}

// cellRune picks the block for a cell filled by the given amount (any real
// number; values outside [0, 1] clamp).
func cellRune(amount float64) rune {
	if amount <= 0 {
		return ' '
	}
	if amount >= 1 {
		return fullBlock
	}
	n := int(math.Round(amount * 8))
	switch {
	case n <= 0:
		return ' '
	case n >= 8:
		return fullBlock
	}
	return eighths[n-1]
}

// blend flattens a translucent color onto the backdrop, since terminals have
// no alpha.
func (v *View) blend(c ratingbar.Color) tcell.Color {
	base := colorful.Color{R: v.Backdrop.R, G: v.Backdrop.G, B: v.Backdrop.B}
	top := colorful.Color{R: c.R, G: c.G, B: c.B}
	out := base.BlendRgb(top, math.Max(0, math.Min(1, c.A))).Clamped()
	r, g, b := out.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// OffsetForColumn converts a column relative to X into a bar offset in
// pixels. A column maps to its right edge, so clicking a cell fills it.
// Columns outside the bar extrapolate linearly and are clamped by the bar.
func (v *View) OffsetForColumn(col int) float64 {
	cfg := v.Bar.Config()
	cpp := v.cellsPerPart()
	gap := v.gapCells()
	pw := cfg.PartWidth()
	stride := cpp + gap

	if col < 0 {
		return float64(col+1) * pw / float64(cpp)
	}
	i := col / stride
	within := col % stride
	if i >= cfg.Parts {
		extra := col - v.Width() + 1
		return cfg.TotalWidth() + float64(extra)*pw/float64(cpp)
	}
	base := float64(i) * (pw + cfg.Spacing)
	if within < cpp {
		return base + float64(within+1)/float64(cpp)*pw
	}
	return base + pw + float64(within-cpp+1)/float64(gap)*cfg.Spacing
}

// HandleEvent applies mouse and key events to the bar. Reports whether the
// event was consumed.
//
// A left-button press on the bar's row starts a drag; while the button stays
// down every mouse event moves the bar, even off the row. Left and Right
// move the rating by KeyStep, Home and End jump to the ends.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 == 0 {
			if v.dragging {
				v.dragging = false
				return true
			}
			return false
		}
		if !v.dragging {
			if y != v.Y || x < v.X || x >= v.X+v.Width() {
				return false
			}
			v.dragging = true
		}
		v.Bar.Drag(v.OffsetForColumn(x - v.X))
		return true

	case *tcell.EventKey:
		binding := v.Bar.Binding()
		parts := float64(v.Bar.Config().Parts)
		step := v.KeyStep
		if step <= 0 {
			step = defaultKeyStep
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			binding.Set(math.Max(0, binding.Get()-step))
		case tcell.KeyRight:
			binding.Set(math.Min(parts, binding.Get()+step))
		case tcell.KeyHome:
			binding.Set(0)
		case tcell.KeyEnd:
			binding.Set(parts)
		default:
			return false
		}
		return true
	}
	return false
}

// Dragging reports whether a mouse drag is in progress.
func (v *View) Dragging() bool {
	return v.dragging
}
