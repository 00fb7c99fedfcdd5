package ratingbar

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Widget places a bar on a Host.
type Widget struct {
	Bar *Bar
	// X and Y are the screen position of the bar's top-left corner.
	X, Y float64

	Visible      bool
	Interactable bool

	// OnPointer, if set, receives every pointer event routed to this widget.
	OnPointer func(PointerContext)
	// Label, if set, prints the rating next to the bar.
	Label *Label

	host *Host
}

// Bounds returns the widget's screen rectangle.
func (w *Widget) Bounds() Rect {
	size := w.Bar.Size()
	return Rect{X: w.X, Y: w.Y, Width: size.X, Height: size.Y}
}

// Host owns a set of bars on screen: it routes pointer input to them,
// advances their animations, and draws them. It plays the part of a view
// hierarchy for hosts that do not have one.
//
// Host is not safe for concurrent use; call it from the ebiten game loop.
type Host struct {
	widgets []*Widget

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	updateFunc func() error
	debug      bool
	stats      frameStats

	// Input state
	handlers     handlerRegistry
	captured     [maxPointers]*Widget
	pointers     [maxPointers]pointerState
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue     []pointerSample
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		ScreenshotDir: "screenshots",
		dragDeadZone:  defaultDragDeadZone,
	}
}

// Add mounts bar and places it at (x, y). Returns the widget so callers can
// move it or attach callbacks.
func (h *Host) Add(bar *Bar, x, y float64) *Widget {
	if bar == nil {
		panic("ratingbar: cannot add nil bar")
	}
	w := &Widget{Bar: bar, X: x, Y: y, Visible: true, Interactable: true, host: h}
	h.widgets = append(h.widgets, w)
	bar.Mount()
	if h.debug {
		debugf("mounted bar %d at (%g, %g), rating %.3f", len(h.widgets)-1, x, y, bar.Rating())
	}
	return w
}

// Remove unmounts the widget's bar and takes it off the host. No-op if the
// widget belongs to another host.
func (h *Host) Remove(w *Widget) {
	if w == nil || w.host != h {
		return
	}
	for i, c := range h.widgets {
		if c != w {
			continue
		}
		copy(h.widgets[i:], h.widgets[i+1:])
		h.widgets[len(h.widgets)-1] = nil
		h.widgets = h.widgets[:len(h.widgets)-1]
		break
	}
	for i := range h.captured {
		if h.captured[i] == w {
			h.captured[i] = nil
		}
	}
	for i := range h.pointers {
		if h.pointers[i].hit == w {
			h.pointers[i].hit = nil
		}
	}
	w.Bar.Unmount()
	w.host = nil
}

// Widgets returns the widgets in draw order. The returned slice MUST NOT be
// mutated.
func (h *Host) Widgets() []*Widget {
	return h.widgets
}

// SetUpdateFunc sets a callback run once per Update after input handling.
// Use it for host logic such as keyboard shortcuts that write bindings.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// and transition counts are logged to stderr.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Update runs the scripted test step, processes input, calls the update
// function, and advances every bar's animation by one tick.
func (h *Host) Update() error {
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()

	if h.updateFunc != nil {
		if err := h.updateFunc(); err != nil {
			return err
		}
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	h.advance(dt)

	if h.debug {
		h.stats.updateTime = time.Since(t0)
	}
	return nil
}

// advance steps every bar's animation by dt seconds.
func (h *Host) advance(dt float32) {
	for _, w := range h.widgets {
		w.Bar.Update(dt)
	}
}

// Draw clears the screen, draws every visible bar, and flushes queued
// screenshots.
func (h *Host) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	if h.ClearColor.A > 0 {
		screen.Fill(h.ClearColor.RGBA())
	}
	for _, w := range h.widgets {
		if !w.Visible {
			continue
		}
		w.Bar.Draw(screen, w.X, w.Y)
		if w.Label != nil {
			w.Label.draw(screen, w)
		}
	}

	h.flushScreenshots(screen)

	if h.debug {
		h.stats.drawTime = time.Since(t0)
		h.debugLog()
	}
}
