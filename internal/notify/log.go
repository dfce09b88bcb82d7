package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogSender stands in for SES when outbound email is disabled; it records
// what would have been sent.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(_ context.Context, m Message) error {
	r := render(m)
	s.Log.Info("email delivery disabled, logging notification",
		zap.String("kind", string(m.Kind)),
		zap.String("to", m.To),
		zap.String("subject", r.Subject))
	return nil
}
