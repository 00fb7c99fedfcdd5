package ratingbar

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and activity counters.
// Only reported when Host.debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	events     int

	lastTransitions int
}

// debugLog prints timing and activity for the last frame to stderr, then
// resets the per-frame counters.
func (h *Host) debugLog() {
	if !h.debug {
		return
	}
	transitions, animating := 0, 0
	for _, w := range h.widgets {
		transitions += w.Bar.Transitions()
		if w.Bar.Animating() {
			animating++
		}
	}
	delta := transitions - h.stats.lastTransitions
	h.stats.lastTransitions = transitions

	// Idle frames are not worth a line.
	if h.stats.events == 0 && delta == 0 && animating == 0 {
		return
	}
	debugf("update: %v | draw: %v | events: %d | transitions: %d | animating: %d/%d",
		h.stats.updateTime, h.stats.drawTime, h.stats.events, delta, animating, len(h.widgets))
	h.stats.events = 0
}

func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[ratingbar] "+format+"\n", args...)
}
