// Package audit records an audit trail of accepted submissions from the
// domain events the submission service publishes.
package audit

import (
	"context"
	"fmt"

	"trusthome_backend/internal/events"
	"trusthome_backend/platform/logger"

	platformevents "trusthome_backend/platform/events"
)

// Subscriber logs one structured audit entry per submission event.
type Subscriber struct {
	log *logger.Logger
}

// NewSubscriber creates the audit subscriber and registers it on the bus.
func NewSubscriber(bus events.Bus, log *logger.Logger) *Subscriber {
	s := &Subscriber{log: log}
	bus.Subscribe(events.SubmissionStored{}.EventName(), s)
	bus.Subscribe(events.ViewingScheduled{}.EventName(), s)
	return s
}

// Handle processes a submission event.
func (s *Subscriber) Handle(ctx context.Context, event platformevents.Event) error {
	switch e := event.(type) {
	case events.SubmissionStored:
		s.log.Info("submission_stored",
			"submission_id", e.SubmissionID.String(),
			"form", e.Form,
			"email", e.Email,
			"channels", e.Channels,
		)
	case events.ViewingScheduled:
		s.log.Info("viewing_scheduled",
			"submission_id", e.SubmissionID.String(),
			"viewing_date", e.ViewingDate,
			"time_slot", e.TimeSlot,
			"contact_name", e.ContactName,
		)
	default:
		return fmt.Errorf("unexpected event %s", event.EventName())
	}
	return nil
}

// Compile-time check that Subscriber implements events.Handler
var _ platformevents.Handler = (*Subscriber)(nil)
