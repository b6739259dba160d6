// Package notify implements transient user notifications with a single
// visible slot and timed auto-dismissal. Showing a new notification replaces
// the current one and restarts the dismissal timer.
package notify

import (
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/interfaces"
)

// DefaultDismissDelay is used when the configured delay is zero
const DefaultDismissDelay = 3 * time.Second

// Service implements interfaces.Notifier
type Service struct {
	mu      sync.Mutex
	delay   time.Duration
	logger  arbor.ILogger
	current interfaces.Notification
	timer   *time.Timer
	subs    []func(interfaces.Notification)

	// gen invalidates stale timer callbacks: Stop() cannot cancel an
	// AfterFunc whose goroutine is already in flight, so each Show bumps the
	// generation and a timer firing for an older one is a no-op.
	gen uint64
}

// NewService creates a notifier with the given auto-dismiss delay
func NewService(delay time.Duration, logger arbor.ILogger) *Service {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}
	return &Service{delay: delay, logger: logger}
}

// Show displays a notification, replacing any visible one. The dismissal
// timer restarts even when the same message is shown again.
func (s *Service) Show(message string, kind interfaces.NotificationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.current = interfaces.Notification{Message: message, Kind: kind, Visible: true}
	s.timer = time.AfterFunc(s.delay, func() { s.autoDismiss(gen) })

	s.logger.Debug().Str("kind", string(kind)).Str("message", message).Msg("Notification shown")
	s.notifyLocked()
}

// Dismiss hides the current notification immediately
func (s *Service) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissLocked()
}

func (s *Service) autoDismiss(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.dismissLocked()
}

func (s *Service) dismissLocked() {
	if !s.current.Visible {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.current.Visible = false
	s.notifyLocked()
}

// Current returns the notification state
func (s *Service) Current() interfaces.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers an observer invoked on every state change
func (s *Service) Subscribe(fn func(interfaces.Notification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) notifyLocked() {
	for _, fn := range s.subs {
		fn(s.current)
	}
}
