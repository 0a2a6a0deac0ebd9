// Package notify delivers appointment notifications without ever making an
// HTTP request wait on them.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Sender delivers one message to one destination (a phone number).
type Sender interface {
	Send(ctx context.Context, destination, message string) error
}

// LogSender is the stand-in for the disabled WhatsApp integration: it logs
// what would have been sent and reports success.
type LogSender struct {
	log *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{log: logger}
}

func (s *LogSender) Send(ctx context.Context, destination, message string) error {
	s.log.Info("whatsapp (mock)", "to", destination, "message", message)
	return nil
}

// Delivery is the observable outcome of one dispatched notification.
type Delivery struct {
	ID          string
	Destination string
	Message     string
	Err         error
	SentAt      time.Time
}

// Dispatcher runs sends on their own goroutines and publishes each outcome
// on a buffered channel. Publication never blocks: when nobody is draining
// Results, outcomes are dropped, so callers stay fire-and-forget while tests
// can still assert what was sent.
type Dispatcher struct {
	sender  Sender
	log     *log.Logger
	results chan Delivery
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		log:     logger,
		results: make(chan Delivery, 16),
	}
}

// Dispatch queues one send and returns immediately.
func (d *Dispatcher) Dispatch(destination, message string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		del := Delivery{
			ID:          uuid.New().String(),
			Destination: destination,
			Message:     message,
			SentAt:      time.Now(),
		}
		del.Err = d.sender.Send(context.Background(), destination, message)
		if del.Err != nil {
			d.log.Warn("notification failed", "id", del.ID, "to", destination, "err", del.Err)
		}
		select {
		case d.results <- del:
		default:
		}
	}()
}

// Results exposes delivery outcomes. Draining it is optional.
func (d *Dispatcher) Results() <-chan Delivery {
	return d.results
}

// Wait blocks until every dispatched send has finished. The server calls it
// once during shutdown; tests call it before reading Results.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
