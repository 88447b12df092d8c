package notify

import (
	"github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to a logrus logger, mapping the kind to
// the closest log level.
type LogNotifier struct {
	Logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(kind, message string) {
	if n.Logger == nil {
		return
	}
	entry := n.Logger.WithField("kind", kind)
	switch kind {
	case KindError:
		entry.Error(message)
	case KindWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

func (n *LogNotifier) NavigateTo(route string) {
	if n.Logger == nil {
		return
	}
	n.Logger.WithField("route", route).Info("navigate")
}
