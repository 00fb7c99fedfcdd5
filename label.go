package ratingbar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// defaultLabelFormat shows the rating with one decimal.
const defaultLabelFormat = "%.1f"

// labelGap is the space between a bar and its label, in pixels.
const labelGap = 12

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ratingbar: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// Label prints a widget's rating to the right of its bar.
type Label struct {
	Font  *Font
	Color Color
	// Format is a fmt verb string applied to the rating, and to the number of
	// parts if it has a second verb. Empty means "%.1f".
	Format string
}

// Text returns the label string for a bar.
func (l *Label) Text(b *Bar) string {
	format := l.Format
	if format == "" {
		format = defaultLabelFormat
	}
	args := []any{b.Rating()}
	if strings.Count(format, "%")-2*strings.Count(format, "%%") > 1 {
		args = append(args, b.Config().Parts)
	}
	return fmt.Sprintf(format, args...)
}

// draw renders the label for w, vertically centered on the bar.
func (l *Label) draw(dst *ebiten.Image, w *Widget) {
	if l.Font == nil {
		return
	}
	s := l.Text(w.Bar)
	_, h := l.Font.MeasureString(s)
	size := w.Bar.Size()

	op := &text.DrawOptions{}
	op.GeoM.Translate(w.X+size.X+labelGap, w.Y+(size.Y-h)/2)
	op.ColorScale.ScaleWithColor(l.Color.RGBA())
	op.LineSpacing = l.Font.lh
	text.Draw(dst, s, l.Font.face, op)
}
