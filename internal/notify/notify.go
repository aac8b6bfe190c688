// Package notify delivers ledger events to business members.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// Recipient is a member reachable by one or more sinks
type Recipient struct {
	UserID         uint
	Email          string
	TelegramChatID string
}

// Message is a rendered ledger event. Text may carry Telegram-style HTML
// (<b>, <i>); callers escape user supplied values.
type Message struct {
	BusinessID uint
	Type       string
	Title      string
	Text       string
}

// Sink delivers a message to one recipient. Sinks that lack credentials or a
// recipient address return nil without doing anything.
type Sink interface {
	Name() string
	Notify(ctx context.Context, to Recipient, msg Message) error
}

// Observer is told the outcome of every delivery attempt
type Observer func(sink string, err error)

// Multi fans a message out to every sink. One failing sink does not stop the others.
type Multi struct {
	sinks   []Sink
	observe Observer
}

// NewMulti combines sinks; observe may be nil
func NewMulti(observe Observer, sinks ...Sink) *Multi {
	return &Multi{sinks: sinks, observe: observe}
}

// Name implements Sink
func (m *Multi) Name() string {
	return "multi"
}

// Notify implements Sink. The returned error joins every sink failure.
func (m *Multi) Notify(ctx context.Context, to Recipient, msg Message) error {
	var errs []error
	for _, sink := range m.sinks {
		err := sink.Notify(ctx, to, msg)
		if m.observe != nil {
			m.observe(sink.Name(), err)
		}
		if err != nil {
			logger.Warn("Notification delivery failed",
				"sink", sink.Name(),
				"user_id", to.UserID,
				"type", msg.Type,
				"error", err.Error())
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}
