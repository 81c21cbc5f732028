package events

import (
	platformevents "trusthome_backend/platform/events"

	"github.com/google/uuid"
)

// SubmissionStored is published after a form submission has been accepted:
// persistence attempted and at least one notification channel reached.
type SubmissionStored struct {
	platformevents.BaseEvent
	SubmissionID uuid.UUID
	Form         string // hero, contact, booking, group_booking, quiz, property_request
	Email        string
	Channels     int // number of channel dispatches that succeeded
}

// EventName returns the unique event identifier.
func (e SubmissionStored) EventName() string { return "submissions.stored" }

// ViewingScheduled is published when a booking or group-booking submission
// carries a future viewing date, so the reminder scheduler can pick it up.
type ViewingScheduled struct {
	platformevents.BaseEvent
	SubmissionID uuid.UUID
	ViewingDate  string // YYYY-MM-DD
	TimeSlot     string
	ContactName  string
}

// EventName returns the unique event identifier.
func (e ViewingScheduled) EventName() string { return "submissions.viewing_scheduled" }
