// Package preferences persists the user profile produced by onboarding:
// the completion flag, the chosen interest/sector selections, and a 0..100
// tuning scalar. The profile shapes presentation only; it never alters the
// deterministic daily selection.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/interfaces"
	"github.com/ternarybob/dailydeck/internal/models"
)

const storageKey = "preferences-storage"

// Service owns the persisted user preferences
type Service struct {
	mu      sync.Mutex
	storage interfaces.KeyValueStorage
	logger  arbor.ILogger
	prefs   models.Preferences
}

// NewService loads preferences from storage. A missing key or a read
// failure yields the defaults.
func NewService(storage interfaces.KeyValueStorage, logger arbor.ILogger) *Service {
	s := &Service{
		storage: storage,
		logger:  logger,
		prefs:   models.DefaultPreferences(),
	}
	s.load()
	return s
}

func (s *Service) load() {
	raw, err := s.storage.Get(context.Background(), storageKey)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load preferences, using defaults")
		return
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.logger.Warn().Err(err).Msg("Corrupt preferences, using defaults")
		return
	}
	s.prefs = prefs
}

func (s *Service) persistLocked() {
	raw, err := json.Marshal(s.prefs)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode preferences")
		return
	}
	if err := s.storage.Set(context.Background(), storageKey, string(raw)); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist preferences")
	}
}

// Get returns a copy of the current preferences
func (s *Service) Get() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.prefs
	out.Selections = append([]string(nil), s.prefs.Selections...)
	return out
}

// OnboardingComplete reports whether onboarding has been finished
func (s *Service) OnboardingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.OnboardingComplete
}

// SetOnboardingComplete records onboarding completion
func (s *Service) SetOnboardingComplete(complete bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.OnboardingComplete = complete
	s.persistLocked()
}

// SetSelections replaces the selection set
func (s *Service) SetSelections(selections []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.Selections = append([]string(nil), selections...)
	s.persistLocked()
}

// ToggleSelection adds the selection if absent, removes it if present
func (s *Service) ToggleSelection(selection string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sel := range s.prefs.Selections {
		if sel == selection {
			s.prefs.Selections = append(s.prefs.Selections[:i], s.prefs.Selections[i+1:]...)
			s.persistLocked()
			return
		}
	}
	s.prefs.Selections = append(s.prefs.Selections, selection)
	s.persistLocked()
}

// SetScalar stores the tuning scalar, clamped to 0..100
func (s *Service) SetScalar(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	s.prefs.Scalar = value
	s.persistLocked()
}

// Reset restores the defaults. Saved collections are owned elsewhere and
// are not touched.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = models.DefaultPreferences()
	s.persistLocked()
	s.logger.Info().Msg("Preferences reset to defaults")
}
