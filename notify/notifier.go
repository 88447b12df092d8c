package notify

// Notification kinds, mirroring the toast levels the front-end renders.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
	KindWarning = "warning"
)

// Notifier is the fire-and-forget notification sink the managers emit user
// feedback through. No delivery guarantee is required.
type Notifier interface {
	Notify(kind, message string)
}

// Navigator is invoked after checkout completion and certain workflow
// transitions to move the client to another route.
type Navigator interface {
	NavigateTo(route string)
}

// Multi fans a notification out to several sinks.
type Multi []Notifier

func (m Multi) Notify(kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

// Discard drops everything. Handy default for tests and headless runs.
type Discard struct{}

func (Discard) Notify(kind, message string) {}

func (Discard) NavigateTo(route string) {}
