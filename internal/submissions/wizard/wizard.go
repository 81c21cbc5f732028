// Package wizard implements the multi-step booking flow as a server-side
// session state machine.
package wizard

import (
	"sync"
	"time"

	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/platform/apperr"

	"github.com/google/uuid"
)

// State names a wizard step.
type State string

const (
	StateSelecting  State = "selecting"
	StateScheduling State = "scheduling"
	StateContact    State = "contact"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

// Mode distinguishes the single-property flow from the group flow.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeGroup  Mode = "group"
)

// Session accumulates booking data across wizard steps. All methods lock the
// session; callers hold no other session while calling.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	Mode      Mode
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time

	propertyID  int64
	propertyIDs []int64
	viewing     domain.Viewing
	contact     domain.Contact
	contactSet  bool
}

// NewSingle starts a session for one property. The flow begins at the
// scheduling step because the selection is already known.
func NewSingle(propertyID int64, now time.Time) (*Session, error) {
	if propertyID <= 0 {
		return nil, apperr.Validation("property id is required")
	}
	return &Session{
		ID:         uuid.New(),
		Mode:       ModeSingle,
		State:      StateScheduling,
		CreatedAt:  now,
		UpdatedAt:  now,
		propertyID: propertyID,
	}, nil
}

// NewGroup starts a session for a multi-property viewing. The flow begins at
// the selection step.
func NewGroup(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Mode:      ModeGroup,
		State:     StateSelecting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Select records the chosen properties and advances to scheduling. Only the
// group flow has a selection step, and it cannot be left with an empty
// selection.
func (s *Session) Select(propertyIDs []int64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Mode != ModeGroup {
		return apperr.Conflict("single-property bookings have no selection step")
	}
	if s.State != StateSelecting {
		return apperr.Conflict("selection is already closed")
	}
	if len(propertyIDs) == 0 {
		return apperr.Validation("at least one property must be selected")
	}
	s.propertyIDs = append([]int64(nil), propertyIDs...)
	s.State = StateScheduling
	s.UpdatedAt = now
	return nil
}

// Schedule records the viewing preferences and advances to the contact step.
// A date is required and may not be in the past.
func (s *Session) Schedule(v domain.Viewing, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateScheduling {
		return apperr.Conflict("session is not at the scheduling step")
	}
	if err := validateViewing(v, now); err != nil {
		return err
	}
	s.viewing = v
	s.State = StateContact
	s.UpdatedAt = now
	return nil
}

// SetContact records the submitter's contact details. The session stays at
// the contact step until Submit freezes it.
func (s *Session) SetContact(c domain.Contact, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateContact {
		return apperr.Conflict("session is not at the contact step")
	}
	if c.Name == "" || c.Email == "" || c.Phone == "" {
		return apperr.Validation("name, email and phone are required")
	}
	s.contact = c
	s.contactSet = true
	s.UpdatedAt = now
	return nil
}

// Back returns to the previous step without discarding any recorded data.
func (s *Session) Back(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.State {
	case StateContact:
		s.State = StateScheduling
	case StateScheduling:
		if s.Mode != ModeGroup {
			return apperr.Conflict("scheduling is the first step of this booking")
		}
		s.State = StateSelecting
	default:
		return apperr.Conflict("cannot go back from this step")
	}
	s.UpdatedAt = now
	return nil
}

// Submit freezes the accumulated data into a payload and moves the session
// to the submitting step while delivery is attempted. The caller reports the
// outcome with Finish or Reopen. The contact step must have been completed.
func (s *Session) Submit(now time.Time) (domain.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State == StateSubmitted {
		return nil, apperr.Conflict("booking was already submitted")
	}
	if s.State == StateSubmitting {
		return nil, apperr.Conflict("booking submission is in progress")
	}
	if s.State != StateContact || !s.contactSet {
		return nil, apperr.Conflict("contact details are required before submitting")
	}

	var payload domain.Payload
	if s.Mode == ModeGroup {
		payload = domain.GroupBookingRequest{
			PropertyIDs: append([]int64(nil), s.propertyIDs...),
			Viewing:     s.viewing,
			Contact:     s.contact,
		}
	} else {
		payload = domain.BookingRequest{
			PropertyID: s.propertyID,
			Viewing:    s.viewing,
			Contact:    s.contact,
		}
	}
	if err := payload.Validate(now); err != nil {
		return nil, err
	}
	s.State = StateSubmitting
	s.UpdatedAt = now
	return payload, nil
}

// Finish marks a delivered submission as final.
func (s *Session) Finish(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateSubmitting {
		return apperr.Conflict("no submission is in progress")
	}
	s.State = StateSubmitted
	s.UpdatedAt = now
	return nil
}

// Reopen returns a session whose delivery failed on every channel to the
// contact step, keeping all accumulated data so the booking can be
// resubmitted without re-entering it.
func (s *Session) Reopen(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateSubmitting {
		return apperr.Conflict("no submission is in progress")
	}
	s.State = StateContact
	s.UpdatedAt = now
	return nil
}

// Snapshot is a read-only view of a session for API responses.
type Snapshot struct {
	ID          uuid.UUID      `json:"id"`
	Mode        Mode           `json:"mode"`
	State       State          `json:"state"`
	PropertyID  int64          `json:"propertyId,omitempty"`
	PropertyIDs []int64        `json:"propertyIds,omitempty"`
	Viewing     domain.Viewing `json:"viewing"`
	Contact     domain.Contact `json:"contact"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Snapshot returns a copy of the session's current data.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:          s.ID,
		Mode:        s.Mode,
		State:       s.State,
		PropertyID:  s.propertyID,
		PropertyIDs: append([]int64(nil), s.propertyIDs...),
		Viewing:     s.viewing,
		Contact:     s.contact,
		UpdatedAt:   s.UpdatedAt,
	}
}

func validateViewing(v domain.Viewing, now time.Time) error {
	if v.Date == "" {
		return apperr.Validation("viewing date is required")
	}
	date, err := time.Parse(domain.DateLayout, v.Date)
	if err != nil {
		return apperr.Validation("viewing date must be formatted as YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return apperr.Validation("viewing date cannot be in the past")
	}
	if !v.TimeSlot.Valid() {
		return apperr.Validation("unknown time slot")
	}
	if v.Guests < 1 {
		return apperr.Validation("guest count must be at least 1")
	}
	return nil
}
