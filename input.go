package ratingbar

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// PointerContext carries pointer event data. Local coordinates are relative
// to the widget's top-left corner.
type PointerContext struct {
	Type      EventType
	Widget    *Widget
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	PointerID int
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      *Widget
	dragging bool
	button   MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	byType map[EventType][]pointerHandler
	nextID uint32
}

func (r *handlerRegistry) add(t EventType, fn func(PointerContext)) CallbackHandle {
	if r.byType == nil {
		r.byType = make(map[EventType][]pointerHandler)
	}
	r.nextID++
	id := r.nextID
	r.byType[t] = append(r.byType[t], pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, remove: func(id uint32) { r.remove(t, id) }}
}

// remove drops the entry from the slice to avoid nil iteration waste.
func (r *handlerRegistry) remove(t EventType, id uint32) {
	s := r.byType[t]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			r.byType[t] = s[:len(s)-1]
			return
		}
	}
}

// On registers a host-level callback for one event type. Host callbacks run
// before the widget's own OnPointer callback.
func (h *Host) On(t EventType, fn func(PointerContext)) CallbackHandle {
	return h.handlers.add(t, fn)
}

// CapturePointer routes all events for pointerID to the given widget.
func (h *Host) CapturePointer(pointerID int, w *Widget) {
	if pointerID >= 0 && pointerID < maxPointers {
		h.captured[pointerID] = w
	}
}

// ReleasePointer stops routing events for pointerID to a captured widget.
func (h *Host) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		h.captured[pointerID] = nil
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (h *Host) SetDragDeadZone(pixels float64) {
	h.dragDeadZone = pixels
}

// --- Hit testing ---

// hitTest finds the topmost interactable widget at (x, y). Widgets added
// later sit on top. Returns nil if nothing is hit.
func (h *Host) hitTest(x, y float64) *Widget {
	for i := len(h.widgets) - 1; i >= 0; i-- {
		w := h.widgets[i]
		if !w.Visible || !w.Interactable {
			continue
		}
		if w.Bounds().Contains(x, y) {
			return w
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Host.Update to handle all mouse and touch
// input. An injected event replaces real mouse input for that frame.
func (h *Host) processInput() {
	if !h.processInjectedInput() {
		h.processMousePointer()
	}
	h.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (h *Host) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If pointer is already down, the stored button is used instead so it
	// cannot change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	h.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
//
// A press on a bar captures the pointer until release. Every drag sample
// moves the bar's offset to the pointer's local X; a release without any
// drag counts as a tap and sets the offset once.
func (h *Host) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &h.pointers[pointerID]

	var target *Widget
	if h.captured[pointerID] != nil {
		target = h.captured[pointerID]
	} else {
		target = h.hitTest(x, y)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = target
		ps.dragging = false
		if target != nil {
			h.captured[pointerID] = target
		}
		h.fire(EventPointerDown, target, pointerID, x, y, ps, 0, 0)

	case !pressed && ps.down:
		if ps.dragging {
			h.fire(EventDragEnd, ps.hit, pointerID, x, y, ps, x-ps.lastX, y-ps.lastY)
		} else if ps.hit != nil && ps.hit == target {
			if ps.hit.Bar != nil && ps.button == MouseButtonLeft {
				ps.hit.Bar.Drag(x - ps.hit.X)
			}
			h.fire(EventTap, target, pointerID, x, y, ps, 0, 0)
		}
		h.fire(EventPointerUp, target, pointerID, x, y, ps, 0, 0)

		h.captured[pointerID] = nil
		ps.down = false
		ps.hit = nil
		ps.dragging = false

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > h.dragDeadZone {
					ps.dragging = true
					h.fire(EventDragStart, ps.hit, pointerID, x, y, ps, dx, dy)
				}
			}
			if ps.dragging {
				if ps.hit != nil && ps.hit.Bar != nil && ps.button == MouseButtonLeft {
					ps.hit.Bar.Drag(x - ps.hit.X)
				}
				h.fire(EventDrag, ps.hit, pointerID, x, y, ps, x-ps.lastX, y-ps.lastY)
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// --- Event dispatch ---

func (h *Host) fire(t EventType, w *Widget, pointerID int, x, y float64, ps *pointerState, dx, dy float64) {
	ctx := PointerContext{
		Type:    t,
		Widget:  w,
		GlobalX: x, GlobalY: y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: dx, DeltaY: dy,
		Button:    ps.button,
		PointerID: pointerID,
	}
	if w != nil {
		ctx.LocalX = x - w.X
		ctx.LocalY = y - w.Y
	}
	// Host-level handlers first.
	for _, hd := range h.handlers.byType[t] {
		hd.fn(ctx)
	}
	if w != nil && w.OnPointer != nil {
		w.OnPointer(ctx)
	}
	h.stats.events++
}
