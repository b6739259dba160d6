package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/dailydeck/internal/models"
)

type recorder struct {
	haptics   int
	decisions []models.DecisionKind
}

func newTestEngine() (*Engine, *recorder) {
	rec := &recorder{}
	e := NewEngine(DefaultConfig(), Callbacks{
		OnHaptic:   func() { rec.haptics++ },
		OnDecision: func(k models.DecisionKind) { rec.decisions = append(rec.decisions, k) },
	})
	return e, rec
}

func TestEngine_HapticFiresOncePerCrossing(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())

	// Drag from rest to threshold+50 to threshold+100: one pulse total
	e.Update(0, 0)
	e.Update(170, 0)
	e.Update(220, 0)
	assert.Equal(t, 1, rec.haptics)

	// Still above threshold: no re-fire
	e.Update(300, 0)
	assert.Equal(t, 1, rec.haptics)
}

func TestEngine_HapticRearmsBelowThreshold(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())

	e.Update(170, 0)
	assert.Equal(t, 1, rec.haptics)
	assert.True(t, e.ThresholdCrossed())

	e.Update(50, 0)
	assert.False(t, e.ThresholdCrossed())

	e.Update(-170, 0)
	assert.Equal(t, 2, rec.haptics, "haptic must re-arm after returning below threshold")
}

func TestEngine_CommitDirection(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		want     models.DecisionKind
	}{
		{"right past threshold accepts", 121, 0, models.DecisionAccepted},
		{"left past threshold rejects", -121, 0, models.DecisionRejected},
		{"velocity commit from rest accepts", 0, 900, models.DecisionAccepted},
		{"negative velocity commit rejects", 0, -900, models.DecisionRejected},
		{"offset sign wins over velocity", -130, 900, models.DecisionRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEngine()
			require.True(t, e.Begin())
			e.Update(tt.offset, 0)

			rel := e.End(tt.offset, tt.velocity)
			require.True(t, rel.Committed)
			require.NotNil(t, rel.Commit)
			assert.Equal(t, tt.want, rel.Commit.Kind)
			assert.Equal(t, PhaseCommitting, e.Phase())

			rel.Commit.Complete()
			assert.Equal(t, []models.DecisionKind{tt.want}, rec.decisions)
			assert.Equal(t, PhaseIdle, e.Phase())
		})
	}
}

func TestEngine_SnapBackBelowThreshold(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())
	e.Update(119, 30)

	rel := e.End(119, 0)
	require.False(t, rel.Committed)
	require.Nil(t, rel.Commit)
	require.NotNil(t, rel.Snap)
	assert.Equal(t, PhaseSnappingBack, e.Phase())
	assert.False(t, e.ThresholdCrossed())

	// The spring starts at the release offset and settles to zero
	x, _ := rel.Snap.Value(0)
	assert.InDelta(t, 119, x, 1e-9)
	x, y := rel.Snap.Value(5 * time.Second)
	assert.InDelta(t, 0, x, 0.01)
	assert.InDelta(t, 0, y, 0.01)
	assert.True(t, rel.Snap.Settled(5*time.Second))

	rel.Snap.Complete()
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.OffsetX())
	assert.Empty(t, rec.decisions, "snap-back must not create a decision")
}

func TestEngine_DecisionFiresExactlyOnce(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())
	e.Update(200, 0)

	rel := e.End(200, 0)
	require.True(t, rel.Committed)

	rel.Commit.Complete()
	rel.Commit.Complete()
	rel.Commit.Complete()
	assert.Len(t, rec.decisions, 1)
}

func TestEngine_TeardownInvalidatesCommit(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())
	e.Update(200, 0)
	rel := e.End(200, 0)
	require.True(t, rel.Committed)

	// Card unmounts mid-animation: the callback must not fire afterwards
	e.Teardown()
	rel.Commit.Complete()
	assert.Empty(t, rec.decisions)
	assert.Equal(t, PhaseIdle, e.Phase())
}

func TestEngine_NewCycleInvalidatesStaleCommit(t *testing.T) {
	e, rec := newTestEngine()
	require.True(t, e.Begin())
	e.Update(200, 0)
	stale := e.End(200, 0).Commit
	require.NotNil(t, stale)

	// A new gesture starts before the old commit animation finished
	require.True(t, e.Begin())
	stale.Complete()
	assert.Empty(t, rec.decisions, "stale commit must not fire against the new cycle")
}

func TestEngine_DisabledInputIsNoOp(t *testing.T) {
	e, rec := newTestEngine()
	e.SetDisabled(true)

	assert.False(t, e.Begin())
	e.Update(300, 0)
	rel := e.End(300, 0)
	assert.False(t, rel.Committed)
	assert.Nil(t, rel.Commit)
	assert.Nil(t, rel.Snap)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.Equal(t, 0.0, e.OffsetX())
	assert.Zero(t, rec.haptics)
	assert.Empty(t, rec.decisions)
}

func TestEngine_UpdateOutsideDraggingIsNoOp(t *testing.T) {
	e, rec := newTestEngine()
	e.Update(300, 0)
	assert.Equal(t, 0.0, e.OffsetX())
	assert.Zero(t, rec.haptics)
}

func TestEngine_Rotation(t *testing.T) {
	e, _ := newTestEngine()
	require.True(t, e.Begin())

	e.Update(0, 0)
	assert.Equal(t, 0.0, e.Rotation())

	// Linear up to twice the threshold, clamped beyond
	e.Update(120, 0)
	assert.InDelta(t, 7.5, e.Rotation(), 1e-9)
	e.Update(240, 0)
	assert.InDelta(t, 15, e.Rotation(), 1e-9)
	e.Update(500, 0)
	assert.InDelta(t, 15, e.Rotation(), 1e-9)
	e.Update(-500, 0)
	assert.InDelta(t, -15, e.Rotation(), 1e-9)
}

func TestEngine_Overlays(t *testing.T) {
	e, _ := newTestEngine()
	require.True(t, e.Begin())

	e.Update(0, 0)
	assert.Equal(t, 0.0, e.AcceptOverlay())
	assert.Equal(t, 0.0, e.RejectOverlay())

	e.Update(60, 0)
	assert.InDelta(t, 0.45, e.AcceptOverlay(), 1e-9)
	assert.Equal(t, 0.0, e.RejectOverlay())

	e.Update(120, 0)
	assert.InDelta(t, 0.9, e.AcceptOverlay(), 1e-9)
	e.Update(400, 0)
	assert.InDelta(t, 0.9, e.AcceptOverlay(), 1e-9, "overlay clamps at full intensity")

	e.Update(-120, 0)
	assert.Equal(t, 0.0, e.AcceptOverlay())
	assert.InDelta(t, 0.9, e.RejectOverlay(), 1e-9)
}

func TestEngine_VerticalDamping(t *testing.T) {
	e, _ := newTestEngine()
	require.True(t, e.Begin())
	e.Update(10, 100)
	assert.InDelta(t, 10, e.OffsetY(), 1e-9)
}

func TestEngine_CommitAnimationCurves(t *testing.T) {
	e, _ := newTestEngine()
	require.True(t, e.Begin())
	e.Update(150, 0)
	rel := e.End(150, 0)
	require.True(t, rel.Committed)

	x, opacity := rel.Commit.Value(0)
	assert.InDelta(t, 150, x, 1e-9)
	assert.InDelta(t, 1, opacity, 1e-9)

	x, opacity = rel.Commit.Value(time.Second)
	assert.InDelta(t, 400, x, 1e-9, "fly distance is configured, not drag-derived")
	assert.InDelta(t, 0, opacity, 1e-9)
	assert.True(t, rel.Commit.Done(time.Second))
}

func TestTiming_Endpoints(t *testing.T) {
	a := Timing{From: 10, To: 20, Duration: 100 * time.Millisecond}
	assert.Equal(t, 10.0, a.Value(0))
	assert.Equal(t, 20.0, a.Value(100*time.Millisecond))
	assert.Equal(t, 20.0, a.Value(time.Hour))

	mid := a.Value(50 * time.Millisecond)
	assert.Greater(t, mid, 10.0)
	assert.Less(t, mid, 20.0)
}
