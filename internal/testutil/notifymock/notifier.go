package notifymock

import (
	"sync"

	"microloan-backend/internal/notify"
)

// Notifier captures enqueued messages for assertions.
type Notifier struct {
	mu       sync.Mutex
	Messages []notify.Message
}

func (n *Notifier) Enqueue(m notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Messages = append(n.Messages, m)
}

// Kinds returns the enqueued message kinds in order.
func (n *Notifier) Kinds() []notify.Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Kind, 0, len(n.Messages))
	for _, m := range n.Messages {
		out = append(out, m.Kind)
	}
	return out
}
