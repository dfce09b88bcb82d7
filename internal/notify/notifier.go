// Package notify delivers applicant/borrower emails decoupled from the
// mutations that trigger them: usecases enqueue a Message only after their
// transaction commits, and a background dispatcher performs the send. A
// failed send is logged and counted, never propagated to the caller.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"microloan-backend/internal/infrastructure/metrics"
)

type Kind string

const (
	KindApplicationReceived    Kind = "application_received"
	KindApplicationConditional Kind = "application_conditionally_approved"
	KindApplicationApproved    Kind = "application_approved"
	KindApplicationRejected    Kind = "application_rejected"
	KindPaymentReminder        Kind = "payment_reminder"
)

type Message struct {
	Kind       Kind
	To         string
	Name       string
	Amount     float64
	Conditions string
	Reason     string
	DueDate    time.Time
	AmountDue  float64
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

const sendTimeout = 15 * time.Second

type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	queue  chan Message

	once sync.Once
	wg   sync.WaitGroup
}

func NewDispatcher(s Sender, log *zap.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Dispatcher{sender: s, log: log, queue: make(chan Message, buffer)}
}

// Start launches the send loop. Close drains and stops it.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for m := range d.queue {
			d.deliver(m)
		}
	}()
}

// Enqueue never blocks the caller: when the queue is full the message is
// dropped and logged, matching the fire-and-forget contract.
func (d *Dispatcher) Enqueue(m Message) {
	select {
	case d.queue <- m:
	default:
		metrics.NotificationsSent.WithLabelValues(string(m.Kind), "dropped").Inc()
		d.log.Warn("notification queue full, dropping message",
			zap.String("kind", string(m.Kind)),
			zap.String("to", m.To))
	}
}

func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) deliver(m Message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := d.sender.Send(ctx, m); err != nil {
		metrics.NotificationsSent.WithLabelValues(string(m.Kind), "error").Inc()
		d.log.Error("failed to send notification",
			zap.String("kind", string(m.Kind)),
			zap.String("to", m.To),
			zap.Error(err))
		return
	}
	metrics.NotificationsSent.WithLabelValues(string(m.Kind), "ok").Inc()
}
