// Package speech narrates knowledge cards through a platform synthesizer.
// The service owns the speaking flag so the card surface can render a
// play/stop toggle without tracking playback itself.
package speech

import (
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/interfaces"
	"github.com/ternarybob/dailydeck/internal/models"
)

// Service drives card narration over an injected Synthesizer
type Service struct {
	mu       sync.Mutex
	synth    interfaces.Synthesizer
	logger   arbor.ILogger
	speaking bool
}

// NewService creates a speech service bound to a synthesizer
func NewService(synth interfaces.Synthesizer, logger arbor.ILogger) *Service {
	return &Service{synth: synth, logger: logger}
}

// BuildScript flattens a card into the narration script: title, teaser and
// explanation, then the example, fun fact and related concepts with spoken
// labels, all joined into one utterance.
func BuildScript(card models.KnowledgeCard) string {
	segments := []string{
		card.Title + ".",
		card.Teaser,
		card.Explanation,
		"Example: " + card.Example,
		"Fun fact: " + card.FunFact,
		"Related concepts: " + strings.Join(card.RelatedConcepts, ", ") + ".",
	}
	return strings.Join(segments, " ")
}

// Speak starts narrating the card, replacing any in-flight narration
func (s *Service) Speak(card models.KnowledgeCard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	script := BuildScript(card)
	if err := s.synth.Speak(script, s.onDone); err != nil {
		s.logger.Warn().Err(err).Str("card", card.ID).Msg("Failed to start narration")
		s.speaking = false
		return
	}
	s.speaking = true
	s.logger.Debug().Str("card", card.ID).Msg("Narration started")
}

// Stop cancels any in-flight narration
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Service) stopLocked() {
	s.synth.Stop()
	s.speaking = false
}

// Toggle stops if speaking, otherwise starts narrating the card
func (s *Service) Toggle(card models.KnowledgeCard) {
	s.mu.Lock()
	speaking := s.speaking
	s.mu.Unlock()

	if speaking {
		s.Stop()
		return
	}
	s.Speak(card)
}

// IsSpeaking reports whether narration is in flight
func (s *Service) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

func (s *Service) onDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speaking = false
}
