package ratingbar

// pointerSample is one queued synthetic pointer state, in screen pixels.
// The host replays samples one per frame through the same path as the mouse.
type pointerSample struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (h *Host) queuePointer(x, y float64, pressed bool) {
	h.injectQueue = append(h.injectQueue, pointerSample{
		x: x, y: y, pressed: pressed, button: MouseButtonLeft,
	})
}

// InjectPress queues a left-button press at (x, y).
func (h *Host) InjectPress(x, y float64) {
	h.queuePointer(x, y, true)
}

// InjectMove queues a held-button sample at (x, y). Between a press and a
// release it drags whatever bar the press landed on.
func (h *Host) InjectMove(x, y float64) {
	h.queuePointer(x, y, true)
}

// InjectRelease queues a left-button release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.queuePointer(x, y, false)
}

// InjectClick queues a press and release at one point, two frames in all.
// On a bar this is a tap, which sets the rating under the pointer.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a straight drag from (fromX, fromY) to (toX, toY) spread
// over frames frames: one press, frames-2 evenly spaced moves, one release
// at the end point. frames below 2 is raised to 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	h.InjectPress(fromX, fromY)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectRating queues a tap on w at the point that displays rating, halfway
// down the bar. Out-of-range ratings tap just past the matching end.
func (h *Host) InjectRating(w *Widget, rating float64) {
	cfg := w.Bar.Config()
	x := w.X + OffsetForRating(cfg, clamp(rating, 0, float64(cfg.Parts)))
	h.InjectClick(x, w.Y+cfg.Height/2)
}

// PendingInjections reports how many synthetic samples are still queued.
func (h *Host) PendingInjections() int {
	return len(h.injectQueue)
}

// processInjectedInput replays the oldest queued sample as pointer 0 and
// reports whether it did. While samples remain, the real mouse is ignored.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	s := h.injectQueue[0]
	h.injectQueue = append(h.injectQueue[:0], h.injectQueue[1:]...)
	h.processPointer(0, s.x, s.y, s.pressed, s.button)
	return true
}
