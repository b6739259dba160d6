// Package gesture implements the card interaction core: the pan-gesture
// decision engine, the tap-gesture flip controller and the animation curves
// they hand to the rendering layer. Animations are pure value(t) functions
// decoupled from any rendering clock; completion is an explicit call made by
// the host when its clock finishes, never a blocking wait.
package gesture

import (
	"math"
	"time"
)

// Easing maps normalized progress in [0,1] to eased progress in [0,1]
type Easing func(p float64) float64

// Linear easing
func Linear(p float64) float64 { return p }

// EaseInOutCubic accelerates through the first half and decelerates through
// the second, matching the feel of the platform timing curve.
func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	d := -2*p + 2
	return 1 - d*d*d/2
}

// Timing is a fixed-duration interpolation between two values
type Timing struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Easing // nil means EaseInOutCubic
}

// Value returns the interpolated value at elapsed time t, clamped to the
// animation's endpoints outside [0, Duration].
func (a Timing) Value(t time.Duration) float64 {
	if a.Duration <= 0 || t >= a.Duration {
		return a.To
	}
	if t <= 0 {
		return a.From
	}
	p := float64(t) / float64(a.Duration)
	ease := a.Ease
	if ease == nil {
		ease = EaseInOutCubic
	}
	return a.From + (a.To-a.From)*ease(p)
}

// Done reports whether the animation has reached its end value at time t
func (a Timing) Done(t time.Duration) bool {
	return t >= a.Duration
}

// Spring is a closed-form damped spring settling toward To from From with
// zero initial velocity. Used for snap-back so a released card eases home
// instead of jumping.
type Spring struct {
	From      float64
	To        float64
	Damping   float64 // c
	Stiffness float64 // k
	Mass      float64 // m, zero means 1
}

// springRestDelta is the displacement below which a spring counts as settled
const springRestDelta = 0.01

// Value returns the spring position at elapsed time t
func (s Spring) Value(t time.Duration) float64 {
	if t <= 0 {
		return s.From
	}

	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	x0 := s.From - s.To
	if x0 == 0 {
		return s.To
	}

	omega0 := math.Sqrt(s.Stiffness / mass)
	zeta := s.Damping / (2 * math.Sqrt(s.Stiffness*mass))
	sec := t.Seconds()

	if zeta < 1 {
		// Underdamped: decaying oscillation
		omegaD := omega0 * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * omega0 * sec)
		return s.To + x0*envelope*(math.Cos(omegaD*sec)+(zeta*omega0/omegaD)*math.Sin(omegaD*sec))
	}

	// Critically damped or overdamped: no oscillation
	envelope := math.Exp(-omega0 * sec)
	return s.To + x0*envelope*(1+omega0*sec)
}

// Settled reports whether the spring's decay envelope has dropped below the
// rest threshold at time t.
func (s Spring) Settled(t time.Duration) bool {
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	x0 := math.Abs(s.From - s.To)
	if x0 == 0 {
		return true
	}
	omega0 := math.Sqrt(s.Stiffness / mass)
	zeta := math.Min(s.Damping/(2*math.Sqrt(s.Stiffness*mass)), 1)
	return x0*math.Exp(-zeta*omega0*t.Seconds()) < springRestDelta
}
