package models

import (
	"time"

	"github.com/google/uuid"
)

// DecisionKind is the outcome of a committed swipe
type DecisionKind string

const (
	DecisionAccepted DecisionKind = "accepted"
	DecisionRejected DecisionKind = "rejected"
)

// Slot is a logical decision channel. Each slot carries independent Decision
// state for the current date.
type Slot string

const (
	SlotDaily         Slot = "daily"
	SlotProprietary   Slot = "proprietary"
	SlotInstitutional Slot = "institutional"
)

// Decision records the user's response to an item. Created at most once per
// slot per date; immutable once created; cleared only by an explicit daily
// refresh. Existence of a Decision disables further gesture input for the
// item it covers.
type Decision struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"itemId"`
	Slot      Slot         `json:"slot"`
	Kind      DecisionKind `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDecision creates a Decision stamped with the given clock time
func NewDecision(itemID string, slot Slot, kind DecisionKind, at time.Time) Decision {
	return Decision{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		Slot:      slot,
		Kind:      kind,
		Timestamp: at,
	}
}
