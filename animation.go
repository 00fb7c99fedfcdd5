package ratingbar

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve decides how the drawn fill travels from one offset to the next.
// Tween curves come from gween easing functions; spring curves are simulated
// with harmonica and carry their velocity into the next change.
type Curve interface {
	// Start begins a motion from one value to another. prev is the motion
	// being replaced, or nil; springs read its velocity.
	Start(from, to float64, prev Motion) Motion
}

// Motion is an in-flight animation of a single value.
type Motion interface {
	// Update advances the motion by dt seconds and returns the new value and
	// whether the motion has reached its target.
	Update(dt float32) (value float64, done bool)
	// Value returns the most recent value without advancing.
	Value() float64
}

// Predefined curves.
var (
	// CurveNone jumps straight to the target.
	CurveNone Curve = noneCurve{}
	// CurveLinear moves at constant speed over 0.35 s.
	CurveLinear Curve = CurveEase(ease.Linear, 0.35)
	// CurveSmooth decelerates over 0.35 s without overshoot.
	CurveSmooth Curve = CurveEase(ease.OutCubic, 0.35)
	// CurveSnappy decelerates sharply over 0.25 s.
	CurveSnappy Curve = CurveEase(ease.OutQuart, 0.25)
	// CurveBouncy is a 0.5 s spring with a small overshoot. It is the default.
	CurveBouncy Curve = CurveSpring(2*math.Pi/0.5, 0.7)
)

// CurveEase returns a tween curve using a gween easing function.
func CurveEase(fn ease.TweenFunc, duration float32) Curve {
	return tweenCurve{fn: fn, duration: duration}
}

// CurveSpring returns a damped spring curve. angularFrequency is in radians
// per second; dampingRatio below 1 overshoots, 1 is critically damped.
func CurveSpring(angularFrequency, dampingRatio float64) Curve {
	return springCurve{frequency: angularFrequency, damping: dampingRatio}
}

// --- none ---

type noneCurve struct{}

func (noneCurve) Start(_, to float64, _ Motion) Motion {
	return instantMotion(to)
}

type instantMotion float64

func (m instantMotion) Update(float32) (float64, bool) { return float64(m), true }
func (m instantMotion) Value() float64                 { return float64(m) }

// --- tween ---

type tweenCurve struct {
	fn       ease.TweenFunc
	duration float32
}

func (c tweenCurve) Start(from, to float64, _ Motion) Motion {
	if c.duration <= 0 || from == to {
		return instantMotion(to)
	}
	return &tweenMotion{
		tween: gween.New(float32(from), float32(to), c.duration, c.fn),
		value: from,
		to:    to,
	}
}

type tweenMotion struct {
	tween *gween.Tween
	value float64
	to    float64
}

func (m *tweenMotion) Update(dt float32) (float64, bool) {
	v, finished := m.tween.Update(dt)
	if finished {
		// Report the exact target rather than its float32 rounding.
		m.value = m.to
		return m.value, true
	}
	m.value = float64(v)
	return m.value, false
}

func (m *tweenMotion) Value() float64 { return m.value }

// --- spring ---

// Settling thresholds for springs, in pixels and pixels per second.
const (
	springRestDistance = 0.01
	springRestVelocity = 0.1
)

type springCurve struct {
	frequency float64
	damping   float64
}

func (c springCurve) Start(from, to float64, prev Motion) Motion {
	m := &springMotion{
		frequency: c.frequency,
		damping:   c.damping,
		pos:       from,
		target:    to,
	}
	if p, ok := prev.(*springMotion); ok {
		m.vel = p.vel
	}
	return m
}

type springMotion struct {
	frequency float64
	damping   float64
	spring    harmonica.Spring
	springDt  float32

	pos, vel float64
	target   float64
}

func (m *springMotion) Update(dt float32) (float64, bool) {
	if dt <= 0 {
		return m.pos, m.settled()
	}
	// harmonica bakes the time step into the spring coefficients.
	if dt != m.springDt {
		m.spring = harmonica.NewSpring(float64(dt), m.frequency, m.damping)
		m.springDt = dt
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if m.settled() {
		m.pos = m.target
		m.vel = 0
		return m.pos, true
	}
	return m.pos, false
}

func (m *springMotion) Value() float64 { return m.pos }

func (m *springMotion) settled() bool {
	return math.Abs(m.pos-m.target) < springRestDistance &&
		math.Abs(m.vel) < springRestVelocity
}
