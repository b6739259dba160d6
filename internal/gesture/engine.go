package gesture

import (
	"time"

	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/models"
)

// Phase is the engine's position in the per-gesture cycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseSnappingBack
)

// Config carries the gesture tuning constants. These are configuration, not
// derived values; changing them changes commit behavior.
type Config struct {
	Threshold         float64 // px drag distance at which a release commits
	VelocityThreshold float64 // px/s release velocity at which a release commits
	FlyDistance       float64 // px the card flies off-screen on commit, independent of drag distance
	MaxTilt           float64 // degrees of rotation at twice the threshold
	OverlayMax        float64 // overlay intensity at the threshold
	VerticalDamping   float64 // vertical drag multiplier

	CommitDuration time.Duration // fly-away translation
	FadeDuration   time.Duration // opacity fade to zero

	SpringDamping   float64 // snap-back spring
	SpringStiffness float64
}

// DefaultConfig returns the constants the interaction was tuned against
func DefaultConfig() Config {
	return Config{
		Threshold:         120,
		VelocityThreshold: 800,
		FlyDistance:       400,
		MaxTilt:           15,
		OverlayMax:        0.9,
		VerticalDamping:   0.1,
		CommitDuration:    250 * time.Millisecond,
		FadeDuration:      200 * time.Millisecond,
		SpringDamping:     20,
		SpringStiffness:   200,
	}
}

// ConfigFrom builds a gesture Config from the application interaction config
func ConfigFrom(ic common.InteractionConfig) Config {
	cfg := DefaultConfig()
	cfg.Threshold = ic.SwipeThreshold
	cfg.VelocityThreshold = ic.VelocityThreshold
	cfg.FlyDistance = ic.FlyDistance
	cfg.MaxTilt = ic.MaxTilt
	cfg.OverlayMax = ic.OverlayMax
	cfg.VerticalDamping = ic.VerticalDamping
	cfg.CommitDuration = ic.CommitDuration()
	cfg.FadeDuration = ic.FadeDuration()
	return cfg
}

// Callbacks are the side-effecting capabilities the engine invokes. Both are
// optional; a nil callback is skipped.
type Callbacks struct {
	// OnHaptic fires exactly once per threshold crossing while dragging
	OnHaptic func()
	// OnDecision fires exactly once per committed gesture cycle, after the
	// commit animation completes
	OnDecision func(models.DecisionKind)
}

// Engine is the pan-gesture state machine:
//
//	Idle -> Dragging -> Committing -> Idle
//	                 -> SnappingBack -> Idle
//
// Updates are O(1) arithmetic; geometry (rotation, overlays) is recomputed
// from the current offset on demand. Not safe for concurrent use: all input
// arrives from the single UI event loop.
type Engine struct {
	cfg Config
	cb  Callbacks

	phase    Phase
	disabled bool

	offsetX float64
	offsetY float64
	crossed bool

	// cycle invalidates in-flight animation side effects: a Complete() from
	// a previous gesture cycle or after Teardown is a no-op.
	cycle uint64
}

// NewEngine creates an engine in the Idle phase
func NewEngine(cfg Config, cb Callbacks) *Engine {
	return &Engine{cfg: cfg, cb: cb}
}

// SetDisabled gates gesture input. The engine is disabled while the item
// already has a Decision or while the card is flipped; input during disabled
// is a silent no-op, not an error.
func (e *Engine) SetDisabled(disabled bool) {
	e.disabled = disabled
}

// Disabled reports whether gesture input is currently ignored
func (e *Engine) Disabled() bool { return e.disabled }

// Phase returns the current phase
func (e *Engine) Phase() Phase { return e.phase }

// OffsetX returns the current horizontal offset
func (e *Engine) OffsetX() float64 { return e.offsetX }

// OffsetY returns the current (damped) vertical offset
func (e *Engine) OffsetY() float64 { return e.offsetY }

// ThresholdCrossed reports whether the drag is currently past the commit
// threshold (in either direction).
func (e *Engine) ThresholdCrossed() bool { return e.crossed }

// Begin starts a new gesture cycle. Returns false without state change if
// the engine is disabled. Starting a new cycle invalidates any in-flight
// commit or snap-back animation's side effects.
func (e *Engine) Begin() bool {
	if e.disabled {
		return false
	}
	e.cycle++
	e.phase = PhaseDragging
	e.offsetX = 0
	e.offsetY = 0
	e.crossed = false
	return true
}

// Update tracks a drag movement. translationX/translationY are cumulative
// offsets from the gesture start. Fires the haptic callback on the
// false->true threshold-crossing edge; the haptic re-arms when the drag
// returns below the threshold. No-op outside the Dragging phase.
func (e *Engine) Update(translationX, translationY float64) {
	if e.phase != PhaseDragging {
		return
	}

	e.offsetX = translationX
	e.offsetY = translationY * e.cfg.VerticalDamping

	over := abs(translationX) > e.cfg.Threshold
	if over && !e.crossed {
		e.crossed = true
		if e.cb.OnHaptic != nil {
			e.cb.OnHaptic()
		}
	} else if !over && e.crossed {
		e.crossed = false
	}
}

// End releases the drag. The gesture commits iff the final offset exceeds
// the distance threshold or the release velocity exceeds the velocity
// threshold; otherwise the card snaps back. Commit direction is the sign of
// the horizontal offset (positive accepts, negative rejects); a pure
// velocity commit from a zero offset takes its direction from the velocity.
// No-op outside the Dragging phase.
func (e *Engine) End(translationX, velocityX float64) Release {
	if e.phase != PhaseDragging {
		return Release{}
	}

	e.offsetX = translationX

	if abs(translationX) > e.cfg.Threshold || abs(velocityX) > e.cfg.VelocityThreshold {
		direction := translationX
		if direction == 0 {
			direction = velocityX
		}
		kind := models.DecisionAccepted
		fly := e.cfg.FlyDistance
		if direction < 0 {
			kind = models.DecisionRejected
			fly = -fly
		}

		e.phase = PhaseCommitting
		return Release{
			Committed: true,
			Commit: &Commit{
				Kind: kind,
				Translate: Timing{
					From:     translationX,
					To:       fly,
					Duration: e.cfg.CommitDuration,
				},
				Fade: Timing{
					From:     1,
					To:       0,
					Duration: e.cfg.FadeDuration,
				},
				engine: e,
				cycle:  e.cycle,
			},
		}
	}

	e.phase = PhaseSnappingBack
	e.crossed = false
	return Release{
		Snap: &SnapBack{
			X:      Spring{From: translationX, To: 0, Damping: e.cfg.SpringDamping, Stiffness: e.cfg.SpringStiffness},
			Y:      Spring{From: e.offsetY, To: 0, Damping: e.cfg.SpringDamping, Stiffness: e.cfg.SpringStiffness},
			engine: e,
			cycle:  e.cycle,
		},
	}
}

// Teardown cancels the current gesture cycle, invalidating any in-flight
// animation's side effects. Called on card unmount; a commit animation
// completing after teardown must not invoke the decision callback.
func (e *Engine) Teardown() {
	e.cycle++
	e.phase = PhaseIdle
	e.offsetX = 0
	e.offsetY = 0
	e.crossed = false
}

// Rotation returns the card tilt in degrees: a linear interpolation of the
// horizontal offset over [-2*threshold, 2*threshold] onto
// [-maxTilt, maxTilt], clamped beyond.
func (e *Engine) Rotation() float64 {
	span := 2 * e.cfg.Threshold
	return clamp(e.offsetX/span, -1, 1) * e.cfg.MaxTilt
}

// AcceptOverlay returns the accept-overlay intensity: 0 at rest rising
// linearly to OverlayMax at +threshold, clamped.
func (e *Engine) AcceptOverlay() float64 {
	return clamp(e.offsetX/e.cfg.Threshold, 0, 1) * e.cfg.OverlayMax
}

// RejectOverlay returns the reject-overlay intensity, mirroring
// AcceptOverlay for negative offsets.
func (e *Engine) RejectOverlay() float64 {
	return clamp(-e.offsetX/e.cfg.Threshold, 0, 1) * e.cfg.OverlayMax
}

// Release is the outcome of ending a drag: either a commit animation or a
// snap-back animation, never both.
type Release struct {
	Committed bool
	Commit    *Commit
	Snap      *SnapBack
}

// Commit is the fly-away animation of a committed swipe. The host drives
// Value with its own clock and calls Complete when done; Complete delivers
// the decision callback exactly once, and not at all if the cycle was torn
// down or superseded in the meantime.
type Commit struct {
	Kind      models.DecisionKind
	Translate Timing
	Fade      Timing

	engine    *Engine
	cycle     uint64
	delivered bool
}

// Value returns the card's horizontal offset and opacity at elapsed time t
func (c *Commit) Value(t time.Duration) (x, opacity float64) {
	return c.Translate.Value(t), c.Fade.Value(t)
}

// Done reports whether both commit curves have finished at time t
func (c *Commit) Done(t time.Duration) bool {
	return c.Translate.Done(t) && c.Fade.Done(t)
}

// Complete settles the engine back to Idle and delivers the decision.
// Idempotent; a stale Complete after Teardown or a new gesture is a no-op.
func (c *Commit) Complete() {
	if c.delivered || c.engine.cycle != c.cycle {
		return
	}
	c.delivered = true
	c.engine.phase = PhaseIdle
	c.engine.offsetX = 0
	c.engine.offsetY = 0
	c.engine.crossed = false
	if c.engine.cb.OnDecision != nil {
		c.engine.cb.OnDecision(c.Kind)
	}
}

// SnapBack springs the card home after a release below the commit threshold
type SnapBack struct {
	X Spring
	Y Spring

	engine *Engine
	cycle  uint64
}

// Value returns the card offsets at elapsed time t
func (s *SnapBack) Value(t time.Duration) (x, y float64) {
	return s.X.Value(t), s.Y.Value(t)
}

// Settled reports whether both springs are at rest at time t
func (s *SnapBack) Settled(t time.Duration) bool {
	return s.X.Settled(t) && s.Y.Settled(t)
}

// Complete settles the engine back to Idle with offsets reset. Stale calls
// after Teardown or a new gesture are no-ops.
func (s *SnapBack) Complete() {
	if s.engine.cycle != s.cycle {
		return
	}
	s.engine.phase = PhaseIdle
	s.engine.offsetX = 0
	s.engine.offsetY = 0
	s.engine.crossed = false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
