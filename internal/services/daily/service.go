// Package daily owns the day's selections and the per-slot decision records.
// Selections are recomputed, never stored: the same date and catalog always
// yield the same picks. Decisions exist at most once per slot per date and
// are cleared only by an explicit Refresh, never implicitly by time passing
// during a session.
package daily

import (
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/models"
	"github.com/ternarybob/dailydeck/internal/selection"
)

// Catalog is the read-only view of a content catalog the service selects
// from. Implemented by catalog.Cards and catalog.Stocks.
type Catalog interface {
	Size() int
	IDAt(i int) string
}

// SlotSpec binds a decision slot to its selection salt
type SlotSpec struct {
	Slot models.Slot
	Salt string
}

// KnowledgeSlots returns the single-channel slot set of the knowledge skin
func KnowledgeSlots() []SlotSpec {
	return []SlotSpec{
		{Slot: models.SlotDaily, Salt: selection.SaltDaily},
	}
}

// StockSlots returns the dual-channel slot set of the stocks skin. Order
// matters: the first slot is the primary channel for collision advancement.
func StockSlots() []SlotSpec {
	return []SlotSpec{
		{Slot: models.SlotProprietary, Salt: selection.SaltProprietary},
		{Slot: models.SlotInstitutional, Salt: selection.SaltInstitutional},
	}
}

// Service computes today's picks and records decisions against them
type Service struct {
	mu      sync.Mutex
	catalog Catalog
	slots   []SlotSpec
	clock   func() time.Time
	logger  arbor.ILogger

	date      string
	picks     map[models.Slot]string
	decisions map[models.Slot]models.Decision
}

// NewService creates a daily service and computes the current date's picks.
// The catalog must be non-empty and at least one slot must be configured.
func NewService(catalog Catalog, slots []SlotSpec, logger arbor.ILogger) (*Service, error) {
	if catalog == nil || catalog.Size() == 0 {
		return nil, fmt.Errorf("daily: catalog must not be empty")
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("daily: at least one slot is required")
	}
	if logger == nil {
		logger = common.GetLogger()
	}

	s := &Service{
		catalog: catalog,
		slots:   slots,
		clock:   time.Now,
		logger:  logger,
	}
	s.refreshLocked()
	return s, nil
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	s.refreshLocked()
	return s
}

// Date returns the date the current picks were computed for
func (s *Service) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// PickID returns the item id selected for a slot
func (s *Service) PickID(slot models.Slot) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.picks[slot]
	return id, ok
}

// Decide records the user's decision for a slot. The first call per slot per
// date creates the Decision and returns created=true; subsequent calls are
// no-ops returning the existing record, since gesture input on an
// already-decided item is disabled rather than an error.
func (s *Service) Decide(slot models.Slot, kind models.DecisionKind) (models.Decision, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.decisions[slot]; ok {
		return existing, false
	}
	itemID, ok := s.picks[slot]
	if !ok {
		s.logger.Warn().Str("slot", string(slot)).Msg("Decision for unknown slot ignored")
		return models.Decision{}, false
	}

	decision := models.NewDecision(itemID, slot, kind, s.clock())
	s.decisions[slot] = decision

	s.logger.Info().
		Str("slot", string(slot)).
		Str("item_id", itemID).
		Str("kind", string(kind)).
		Msg("Decision recorded")

	return decision, true
}

// Decision returns the recorded decision for a slot, if any
func (s *Service) Decision(slot models.Slot) (models.Decision, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.decisions[slot]
	return d, ok
}

// Decided reports whether a slot already carries a decision. Consumers use
// this to disable the gesture engine for the slot's card.
func (s *Service) Decided(slot models.Slot) bool {
	_, ok := s.Decision(slot)
	return ok
}

// Refresh recomputes picks for the clock's current date and clears all
// decisions. This is the only operation that resets decision state.
func (s *Service) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
}

func (s *Service) refreshLocked() {
	s.date = common.FormatISODate(s.clock().UTC())
	s.decisions = make(map[models.Slot]models.Decision)
	s.picks = make(map[models.Slot]string, len(s.slots))

	n := s.catalog.Size()
	taken := make(map[int]bool, len(s.slots))
	for _, spec := range s.slots {
		idx := selection.SelectIndex(s.date, spec.Salt, n)
		// Later channels never collide with earlier ones: on collision the
		// index deterministically advances to the next free slot modulo n.
		for taken[idx] && len(taken) < n {
			idx = (idx + 1) % n
		}
		taken[idx] = true
		s.picks[spec.Slot] = s.catalog.IDAt(idx)
	}

	s.logger.Debug().Str("date", s.date).Int("slots", len(s.slots)).Msg("Daily picks computed")
}
