// Package service implements the business rules for accounts and posts on top
// of the storage interfaces. It knows nothing about HTTP.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/devsocial/internal/server/events"
)

// Recorder receives domain counters. *metrics.Metrics implements it
type Recorder interface {
	RecordRegistration()
	RecordLogin(success bool)
	RecordPostAction(action string)
}

// Options holds optional collaborators shared by the services
type Options struct {
	Publisher    events.Publisher
	Metrics      Recorder
	Now          func() time.Time
	PasswordCost int
}

func (o Options) withDefaults() Options {
	if o.Publisher == nil {
		o.Publisher = events.Nop{}
	}
	if o.Metrics == nil {
		o.Metrics = nopRecorder{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type nopRecorder struct{}

func (nopRecorder) RecordRegistration()     {}
func (nopRecorder) RecordLogin(bool)        {}
func (nopRecorder) RecordPostAction(string) {}

// publish отправляет событие; ошибка только логируется и не влияет на результат запроса
func publish(ctx context.Context, logger *slog.Logger, p events.Publisher, event events.Event) {
	if err := p.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event",
			slog.String("subject", event.Subject),
			slog.Any("error", err))
	}
}

// validID проверяет, что id является UUID. Некорректный id трактуется как "не найдено"
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
