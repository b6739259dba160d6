package interfaces

// Haptics is the platform haptic feedback capability. The gesture engine
// invokes Impact on threshold crossings; implementations must be cheap and
// non-blocking.
type Haptics interface {
	Impact()
}

// Synthesizer is the platform text-to-speech capability. Speak starts
// playback of a script and invokes done when playback finishes or is
// interrupted. Stop cancels any in-flight playback.
type Synthesizer interface {
	Speak(script string, done func()) error
	Stop()
}

// NotificationKind classifies transient user-facing notifications
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a transient user-facing message with auto-dismiss semantics
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
	Visible bool             `json:"visible"`
}

// Notifier is the transient notification surface consumed by the screen layer
type Notifier interface {
	Show(message string, kind NotificationKind)
	Dismiss()
	Current() Notification
	Subscribe(fn func(Notification))
}
