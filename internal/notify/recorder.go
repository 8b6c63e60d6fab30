package notify

import "sync"

// Notification is one recorded message.
type Notification struct {
	Severity Severity
	Message  string
}

// Recorder is a Notifier that captures messages for inspection in tests and
// for hosts that poll rather than push.
type Recorder struct {
	mu   sync.Mutex
	msgs []Notification
}

// Notify implements Notifier.
func (r *Recorder) Notify(severity Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, Notification{Severity: severity, Message: message})
}

// All returns a copy of the recorded notifications in emission order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.msgs))
	copy(out, r.msgs)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return Notification{}, false
	}
	return r.msgs[len(r.msgs)-1], true
}

// Reset discards all recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = nil
}
