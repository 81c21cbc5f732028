// Package domain defines the submission payload variants and their
// validation rules.
package domain

import (
	"time"

	"trusthome_backend/platform/apperr"
)

// Kind identifies a submission form variant.
type Kind string

const (
	KindHero            Kind = "hero"
	KindContact         Kind = "contact"
	KindBooking         Kind = "booking"
	KindGroupBooking    Kind = "group_booking"
	KindQuiz            Kind = "quiz"
	KindPropertyRequest Kind = "property_request"
)

// DateLayout is the wire format for viewing dates.
const DateLayout = "2006-01-02"

// Payload is a closed set of submission variants. Validate checks the
// variant's invariants against the given wall-clock time; an invalid payload
// is rejected before persistence or dispatch.
type Payload interface {
	Kind() Kind
	Validate(now time.Time) error
}

// Contact is the submitter identification block shared by most variants.
type Contact struct {
	Name  string
	Email string
	Phone string
}

func (c Contact) validate() error {
	if c.Name == "" {
		return apperr.Validation("name is required")
	}
	if c.Email == "" {
		return apperr.Validation("email is required")
	}
	if c.Phone == "" {
		return apperr.Validation("phone is required")
	}
	return nil
}

// Viewing carries the scheduling preferences shared by the booking variants.
type Viewing struct {
	Date               string
	TimeSlot           TimeSlot
	Language           Language
	Guests             int
	Transport          bool
	Refreshments       bool
	RefreshmentDetails string
	WithChildren       bool
	WithPets           bool
	Comment            string
}

// validate checks the scheduling block. When dateRequired is false, an empty
// date passes and a set date is still checked against now.
func (v Viewing) validate(now time.Time, dateRequired bool) error {
	if v.Date == "" {
		if dateRequired {
			return apperr.Validation("viewing date is required")
		}
	} else {
		date, err := time.Parse(DateLayout, v.Date)
		if err != nil {
			return apperr.Validation("viewing date must be formatted as YYYY-MM-DD")
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			return apperr.Validation("viewing date cannot be in the past")
		}
	}
	if !v.TimeSlot.Valid() {
		return apperr.Validation("unknown time slot")
	}
	if v.Guests < 1 {
		return apperr.Validation("guest count must be at least 1")
	}
	return nil
}

// HeroCapture is the minimal lead form on the landing page.
type HeroCapture struct {
	Contact
}

func (HeroCapture) Kind() Kind { return KindHero }

func (p HeroCapture) Validate(time.Time) error {
	return p.Contact.validate()
}

// ContactMessage is the full contact form with an optional subject.
type ContactMessage struct {
	Contact
	Subject string
	Message string
}

func (ContactMessage) Kind() Kind { return KindContact }

func (p ContactMessage) Validate(time.Time) error {
	if err := p.Contact.validate(); err != nil {
		return err
	}
	if p.Message == "" {
		return apperr.Validation("message is required")
	}
	return nil
}

// BookingRequest is a viewing request for a single property.
type BookingRequest struct {
	PropertyID int64
	Viewing
	Contact
}

func (BookingRequest) Kind() Kind { return KindBooking }

func (p BookingRequest) Validate(now time.Time) error {
	if p.PropertyID <= 0 {
		return apperr.Validation("property id is required")
	}
	if err := p.Viewing.validate(now, true); err != nil {
		return err
	}
	return p.Contact.validate()
}

// GroupBookingRequest is a viewing request covering several properties in
// one visit.
type GroupBookingRequest struct {
	PropertyIDs []int64
	Viewing
	Contact
}

func (GroupBookingRequest) Kind() Kind { return KindGroupBooking }

func (p GroupBookingRequest) Validate(now time.Time) error {
	if len(p.PropertyIDs) == 0 {
		return apperr.Validation("at least one property must be selected")
	}
	if err := p.Viewing.validate(now, true); err != nil {
		return err
	}
	return p.Contact.validate()
}

// QuizAnswer pairs one quiz question with the visitor's answer. An empty
// Answer means the question was skipped.
type QuizAnswer struct {
	Question string
	Answer   string
}

// QuizResult carries the ordered quiz answers plus the contact block
// collected on the final step.
type QuizResult struct {
	Answers []QuizAnswer
	Contact
}

func (QuizResult) Kind() Kind { return KindQuiz }

func (p QuizResult) Validate(time.Time) error {
	if len(p.Answers) == 0 {
		return apperr.Validation("quiz answers are required")
	}
	return p.Contact.validate()
}

// PropertyRequest is the free-form "find me a property" lead request with a
// price range and optional preferred viewing date.
type PropertyRequest struct {
	Preferences string
	PriceMin    int64
	PriceMax    int64
	Viewing
	Contact
}

func (PropertyRequest) Kind() Kind { return KindPropertyRequest }

func (p PropertyRequest) Validate(now time.Time) error {
	if p.Preferences == "" {
		return apperr.Validation("preferences are required")
	}
	if p.PriceMin < 0 || p.PriceMax < p.PriceMin {
		return apperr.Validation("price range is invalid")
	}
	if err := p.Viewing.validate(now, false); err != nil {
		return err
	}
	return p.Contact.validate()
}

// Compile-time checks that every variant implements Payload
var (
	_ Payload = HeroCapture{}
	_ Payload = ContactMessage{}
	_ Payload = BookingRequest{}
	_ Payload = GroupBookingRequest{}
	_ Payload = QuizResult{}
	_ Payload = PropertyRequest{}
)
