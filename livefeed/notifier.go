package livefeed

// Notification mirrors the toast payload the front-end renders.
type Notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// HubNotifier broadcasts notifications over the feed. It satisfies
// notify.Notifier and notify.Navigator.
type HubNotifier struct{}

func (HubNotifier) Notify(kind, message string) {
	broadcast(Message{Event: EventNotification, Data: Notification{Kind: kind, Message: message}})
}

func (HubNotifier) NavigateTo(route string) {
	broadcast(Message{Event: "navigate", Data: map[string]string{"route": route}})
}
