package models

// Preferences holds the selections gathered during onboarding. Persisted
// across sessions; resettable to defaults without touching saved entries
// (saved data has its own lifecycle).
//
// Note: preferences are currently inert with respect to daily selection,
// which is a function of date and salt only. The fields are persisted as
// the structural integration point for future weighting.
type Preferences struct {
	OnboardingComplete bool     `json:"onboardingComplete"`
	Selections         []string `json:"selections"`
	Scalar             int      `json:"scalar"` // 0..100
}

// DefaultPreferences returns the first-run preference state
func DefaultPreferences() Preferences {
	return Preferences{
		OnboardingComplete: false,
		Selections:         []string{},
		Scalar:             50,
	}
}
