package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlip_ToggleParity(t *testing.T) {
	f := NewFlip(DefaultFlipConfig(), nil)
	assert.Equal(t, FaceFront, f.Face())

	f.Toggle()
	assert.Equal(t, FaceBack, f.Face())
	assert.True(t, f.Flipped())

	f.Toggle()
	assert.Equal(t, FaceFront, f.Face())
	assert.False(t, f.Flipped())
}

func TestFlip_OnChange(t *testing.T) {
	var seen []Face
	f := NewFlip(DefaultFlipConfig(), func(face Face) { seen = append(seen, face) })

	f.Toggle()
	f.Toggle()
	f.Toggle()
	assert.Equal(t, []Face{FaceBack, FaceFront, FaceBack}, seen)
}

func TestFlip_TapDurationClassification(t *testing.T) {
	f := NewFlip(DefaultFlipConfig(), nil)

	// Long press is not a flip; it falls through to drag handling
	anim, ok := f.Tap(300 * time.Millisecond)
	assert.False(t, ok)
	assert.Nil(t, anim)
	assert.Equal(t, FaceFront, f.Face())

	anim, ok = f.Tap(100 * time.Millisecond)
	assert.True(t, ok)
	require.NotNil(t, anim)
	assert.Equal(t, FaceBack, f.Face())
	assert.Equal(t, 0.0, anim.From)
	assert.Equal(t, 1.0, anim.To)
	assert.Equal(t, 400*time.Millisecond, anim.Duration)
}

func TestFlip_RapidTogglesStaySane(t *testing.T) {
	f := NewFlip(DefaultFlipConfig(), nil)

	// Interrupting mid-animation snaps to the nearest stable state; rotation
	// endpoints must always be exactly 0 or 1, never an average of stale
	// values.
	for i := 0; i < 25; i++ {
		anim := f.Toggle()
		assert.Contains(t, []float64{0, 1}, anim.From)
		assert.Contains(t, []float64{0, 1}, anim.To)
		assert.NotEqual(t, anim.From, anim.To)
	}
	// Odd number of toggles from front ends on back
	assert.Equal(t, FaceBack, f.Face())
}

func TestFlip_BackfaceCulling(t *testing.T) {
	// Sweep the rotation range: at every sampled frame exactly one face is
	// within 90 degrees of the viewer.
	for r := 0.0; r <= 1.0; r += 0.05 {
		front := FrontVisible(r)
		back := BackVisible(r)
		assert.NotEqual(t, front, back, "rotation %.2f: exactly one face must be legible", r)
	}

	assert.True(t, FrontVisible(0))
	assert.False(t, BackVisible(0))
	assert.False(t, FrontVisible(1))
	assert.True(t, BackVisible(1))
}

func TestFlip_FaceAngles(t *testing.T) {
	// Faces rotate in lockstep offset by 180 degrees
	for r := 0.0; r <= 1.0; r += 0.25 {
		assert.InDelta(t, 180, BackAngle(r)-FrontAngle(r), 1e-9)
	}
	assert.Equal(t, 0.0, FrontAngle(0))
	assert.Equal(t, 180.0, FrontAngle(1))
	assert.Equal(t, 360.0, BackAngle(1))
}
