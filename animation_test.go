package ratingbar

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// run advances m in fixed steps until it finishes or maxSteps is reached.
func run(m Motion, dt float32, maxSteps int) (steps int, value float64, done bool) {
	for steps = 1; steps <= maxSteps; steps++ {
		value, done = m.Update(dt)
		if done {
			return steps, value, true
		}
	}
	return maxSteps, value, false
}

func TestCurveNoneIsInstant(t *testing.T) {
	m := CurveNone.Start(0, 100, nil)
	if m.Value() != 100 {
		t.Errorf("Value = %v, want 100", m.Value())
	}
	v, done := m.Update(0.016)
	if v != 100 || !done {
		t.Errorf("Update = (%v, %v), want (100, true)", v, done)
	}
}

func TestTweenReachesTarget(t *testing.T) {
	m := CurveEase(ease.Linear, 1.0).Start(10, 110, nil)

	// Exact halves avoid float32 accumulation drift.
	v, done := m.Update(0.5)
	if done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(v-60) > 0.01 {
		t.Errorf("halfway = %v, want ~60", v)
	}
	v, done = m.Update(0.5)
	if !done {
		t.Fatal("expected done after full duration")
	}
	if v != 110 {
		t.Errorf("final = %v, want exactly 110", v)
	}
}

func TestTweenZeroDurationOrNoDistance(t *testing.T) {
	if _, ok := CurveEase(ease.Linear, 0).Start(0, 5, nil).(instantMotion); !ok {
		t.Error("zero duration should be instant")
	}
	if _, ok := CurveSmooth.Start(5, 5, nil).(instantMotion); !ok {
		t.Error("no distance should be instant")
	}
}

func TestPredefinedTweensFinish(t *testing.T) {
	for name, c := range map[string]Curve{
		"linear": CurveLinear,
		"smooth": CurveSmooth,
		"snappy": CurveSnappy,
	} {
		steps, v, done := run(c.Start(0, 320, nil), 1.0/60, 60)
		if !done {
			t.Errorf("%s: not done after %d steps", name, steps)
			continue
		}
		if v != 320 {
			t.Errorf("%s: final = %v, want 320", name, v)
		}
	}
}

func TestSmoothDeceleratesEarly(t *testing.T) {
	lin := CurveLinear.Start(0, 100, nil)
	smooth := CurveSmooth.Start(0, 100, nil)
	l, _ := lin.Update(0.1)
	s, _ := smooth.Update(0.1)
	if s <= l {
		t.Errorf("OutCubic at 0.1s = %v, want ahead of linear %v", s, l)
	}
}

func TestSpringSettles(t *testing.T) {
	m := CurveBouncy.Start(0, 320, nil)
	steps, v, done := run(m, 1.0/60, 600)
	if !done {
		t.Fatalf("spring not settled after %d steps (at %v)", steps, v)
	}
	if v != 320 {
		t.Errorf("settled value = %v, want exactly 320", v)
	}
	if vel := m.(*springMotion).vel; math.Abs(vel) >= springRestVelocity {
		t.Errorf("settled with velocity %v, want below %v", vel, springRestVelocity)
	}
}

func TestSpringRestThresholds(t *testing.T) {
	if springRestDistance != 0.01 || springRestVelocity != 0.1 {
		t.Errorf("rest thresholds = (%v px, %v px/s), want (0.01, 0.1)",
			springRestDistance, springRestVelocity)
	}
}

func TestSpringOvershoots(t *testing.T) {
	m := CurveBouncy.Start(0, 100, nil)
	peak := 0.0
	for i := 0; i < 120; i++ {
		v, done := m.Update(1.0 / 60)
		peak = math.Max(peak, v)
		if done {
			break
		}
	}
	if peak <= 100 {
		t.Errorf("underdamped spring peak = %v, want overshoot past 100", peak)
	}
}

func TestCriticallyDampedSpringDoesNotOvershoot(t *testing.T) {
	m := CurveSpring(2*math.Pi/0.5, 1).Start(0, 100, nil)
	for i := 0; i < 600; i++ {
		v, done := m.Update(1.0 / 60)
		if v > 100+springRestDistance {
			t.Fatalf("step %d: %v overshoots", i, v)
		}
		if done {
			return
		}
	}
	t.Fatal("spring did not settle")
}

func TestSpringCarriesVelocity(t *testing.T) {
	first := CurveBouncy.Start(0, 100, nil)
	for i := 0; i < 5; i++ {
		first.Update(1.0 / 60)
	}
	vel := first.(*springMotion).vel
	if vel <= 0 {
		t.Fatalf("velocity = %v, want positive", vel)
	}

	next := CurveBouncy.Start(first.Value(), 200, first)
	if got := next.(*springMotion).vel; got != vel {
		t.Errorf("retargeted velocity = %v, want %v", got, vel)
	}
	fresh := CurveBouncy.Start(first.Value(), 200, CurveSmooth.Start(0, 1, nil))
	if got := fresh.(*springMotion).vel; got != 0 {
		t.Errorf("velocity from a tween = %v, want 0", got)
	}
}

func TestSpringZeroDt(t *testing.T) {
	m := CurveBouncy.Start(0, 50, nil)
	v, done := m.Update(0)
	if v != 0 || done {
		t.Errorf("Update(0) = (%v, %v), want (0, false)", v, done)
	}
}
