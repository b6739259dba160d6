package gesture

import (
	"math"
	"time"
)

// Face is a side of the card
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

func (f Face) String() string {
	if f == FaceBack {
		return "back"
	}
	return "front"
}

// FlipConfig tunes the tap-to-flip interaction
type FlipConfig struct {
	// Duration of the rotation animation
	Duration time.Duration
	// MaxTapDuration is the longest press still classified as a tap. Longer
	// presses are not flips; they fall through to drag handling.
	MaxTapDuration time.Duration
}

// DefaultFlipConfig returns the constants the flip was tuned against
func DefaultFlipConfig() FlipConfig {
	return FlipConfig{
		Duration:       400 * time.Millisecond,
		MaxTapDuration: 250 * time.Millisecond,
	}
}

// Flip is the tap-gesture state machine toggling the card's binary
// front/back orientation. Rotation runs over [0,1]: 0 is front-facing, 1 is
// back-facing. Toggling is a pure function of the current face; interrupting
// a running animation snaps to its target state before toggling again, so
// rapid taps never corrupt state or average stale values.
type Flip struct {
	cfg      FlipConfig
	face     Face
	rotation float64 // resting rotation: 0 or 1
	onChange func(Face)
}

// NewFlip creates a front-facing flip controller. onChange is invoked on
// every toggle with the new face; nil is allowed.
func NewFlip(cfg FlipConfig, onChange func(Face)) *Flip {
	return &Flip{cfg: cfg, onChange: onChange}
}

// Face returns the current (target) face
func (f *Flip) Face() Face { return f.face }

// Rotation returns the resting rotation for the current face
func (f *Flip) Rotation() float64 { return f.rotation }

// Flipped reports whether the card shows its back
func (f *Flip) Flipped() bool { return f.face == FaceBack }

// Tap classifies a press by duration and toggles on success. Returns the
// rotation animation and true for a tap; returns nil and false when the
// press exceeded MaxTapDuration and should be handled as a drag instead.
func (f *Flip) Tap(pressDuration time.Duration) (*Timing, bool) {
	if pressDuration > f.cfg.MaxTapDuration {
		return nil, false
	}
	return f.Toggle(), true
}

// Toggle flips the card, returning the rotation animation for the host to
// drive. State changes immediately; the animation is presentation only.
func (f *Flip) Toggle() *Timing {
	from := f.rotation
	var to float64
	if f.rotation < 0.5 {
		to = 1
		f.face = FaceBack
	} else {
		to = 0
		f.face = FaceFront
	}
	f.rotation = to

	if f.onChange != nil {
		f.onChange(f.face)
	}

	return &Timing{From: from, To: to, Duration: f.cfg.Duration}
}

// FrontAngle returns the front face's rotation in degrees for a rotation
// value in [0,1]: 0 degrees front-facing through 180 fully flipped.
func FrontAngle(rotation float64) float64 {
	return rotation * 180
}

// BackAngle returns the back face's rotation in degrees, offset 180 degrees
// from the front so the two faces rotate in lockstep.
func BackAngle(rotation float64) float64 {
	return 180 + rotation*180
}

// FaceVisible reports whether a face at the given angle faces the viewer.
// A face is culled once its rotation places it past 90 degrees in either
// direction, so at no animation frame are both faces legible at once.
func FaceVisible(angleDegrees float64) bool {
	return math.Cos(angleDegrees*math.Pi/180) > 0
}

// FrontVisible reports whether the front face is the one facing the viewer
// at the given rotation value.
func FrontVisible(rotation float64) bool {
	return FaceVisible(FrontAngle(rotation))
}

// BackVisible reports whether the back face is the one facing the viewer at
// the given rotation value.
func BackVisible(rotation float64) bool {
	return FaceVisible(BackAngle(rotation))
}
