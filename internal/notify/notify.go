// Package notify defines the transient-notification contract the engine
// emits user-visible status messages through. How messages are displayed is
// the host's concern; the engine only produces a message and a severity.
package notify

import "log/slog"

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notifier receives user-visible status messages. Implementations must not
// block or fail in a way that aborts the operation that emitted the message.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to a structured logger. It is the
// default when no host notifier is wired in.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger falls back to
// slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case SeverityError:
		n.logger.Error("notification", "message", message)
	default:
		n.logger.Info("notification", "message", message)
	}
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(severity Severity, message string) {
	for _, n := range m {
		n.Notify(severity, message)
	}
}
