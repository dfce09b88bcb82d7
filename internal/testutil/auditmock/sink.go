package auditmock

import (
	"context"
	"sync"

	"microloan-backend/internal/domain/audit"
)

var _ audit.Sink = (*Sink)(nil)

type Recorded struct {
	Action  string
	ActorID string
	Payload any
}

// Sink captures audit entries for assertions.
type Sink struct {
	mu      sync.Mutex
	Entries []Recorded
}

func (s *Sink) Record(_ context.Context, action, actorID string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, Recorded{Action: action, ActorID: actorID, Payload: payload})
}

// Actions returns the recorded action names in order.
func (s *Sink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, e.Action)
	}
	return out
}
