package term

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	tickSampleRate = beep.SampleRate(48000)
	tickLength     = 60 * time.Millisecond
	tickBaseFreq   = 440.0
)

// Ticker plays a short click whenever a bar crosses a whole step. Wire
// Ticker.Tick to Bar.OnStep. Until Init succeeds Tick does nothing, so a
// machine without audio still runs.
type Ticker struct {
	sr    beep.SampleRate
	ready bool
}

// NewTicker returns a silent ticker; call Init to open the speaker.
func NewTicker() *Ticker {
	return &Ticker{sr: tickSampleRate}
}

// Init opens the default audio device.
func (t *Ticker) Init() error {
	if t.ready {
		return nil
	}
	if err := speaker.Init(t.sr, t.sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	t.ready = true
	return nil
}

// Tick plays the click for step. Higher steps sound higher.
func (t *Ticker) Tick(step int) {
	if !t.ready {
		return
	}
	if s := t.stream(step); s != nil {
		speaker.Play(s)
	}
}

// Close stops playback and releases the audio device.
func (t *Ticker) Close() {
	if !t.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	t.ready = false
}

// stream builds one click, or nil if the pitch is out of range for the
// sample rate.
func (t *Ticker) stream(step int) beep.Streamer {
	sine, err := generators.SineTone(t.sr, tickFrequency(step))
	if err != nil {
		return nil
	}
	return beep.Take(t.sr.N(tickLength), newDecay(t.sr, sine))
}

// tickFrequency climbs a whole tone per step.
func tickFrequency(step int) float64 {
	return tickBaseFreq * math.Pow(2, float64(step)/6)
}

// decay shapes a tone with a fast attack and an exponential tail.
type decay struct {
	src beep.Streamer
	sr  beep.SampleRate
	pos int
}

func newDecay(sr beep.SampleRate, src beep.Streamer) *decay {
	return &decay{src: src, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.src.Stream(samples)
	for i := range samples[:n] {
		t := float64(d.pos) / float64(d.sr)
		gain := 0.25 * math.Min(t/0.002, 1) * math.Exp(-t*60)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.src.Err()
}
