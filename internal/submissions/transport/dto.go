// Package transport defines the wire DTOs for the submission endpoints.
package transport

import (
	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/platform/phone"
	"trusthome_backend/platform/sanitize"
)

// ContactFields is the submitter block shared by every form.
type ContactFields struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=5,max=20"`
}

func (c ContactFields) ToDomain() domain.Contact {
	return domain.Contact{
		Name:  sanitize.Text(c.Name),
		Email: sanitize.Text(c.Email),
		Phone: phone.NormalizeE164(c.Phone),
	}
}

// ViewingFields carries the scheduling preferences of the booking forms.
type ViewingFields struct {
	Date               string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot           string `json:"timeSlot" validate:"required,oneof=morning afternoon evening"`
	Language           string `json:"language" validate:"required,oneof=en ru ge he ar"`
	Guests             int    `json:"guests" validate:"required,min=1,max=20"`
	Transport          bool   `json:"transport"`
	Refreshments       bool   `json:"refreshments"`
	RefreshmentDetails string `json:"refreshmentDetails,omitempty" validate:"max=500"`
	WithChildren       bool   `json:"withChildren"`
	WithPets           bool   `json:"withPets"`
	Comment            string `json:"comment,omitempty" validate:"max=2000"`
}

func (v ViewingFields) ToDomain() domain.Viewing {
	return domain.Viewing{
		Date:               v.Date,
		TimeSlot:           domain.TimeSlot(v.TimeSlot),
		Language:           domain.Language(v.Language),
		Guests:             v.Guests,
		Transport:          v.Transport,
		Refreshments:       v.Refreshments,
		RefreshmentDetails: sanitize.Text(v.RefreshmentDetails),
		WithChildren:       v.WithChildren,
		WithPets:           v.WithPets,
		Comment:            sanitize.Text(v.Comment),
	}
}

// HeroRequest is the landing-page lead form body.
type HeroRequest struct {
	ContactFields
}

// ToDomain converts the request into its payload variant.
func (r HeroRequest) ToDomain() domain.HeroCapture {
	return domain.HeroCapture{Contact: r.ContactFields.ToDomain()}
}

// ContactRequest is the contact form body.
type ContactRequest struct {
	ContactFields
	Subject string `json:"subject,omitempty" validate:"max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// ToDomain converts the request into its payload variant.
func (r ContactRequest) ToDomain() domain.ContactMessage {
	return domain.ContactMessage{
		Contact: r.ContactFields.ToDomain(),
		Subject: sanitize.Text(r.Subject),
		Message: sanitize.Text(r.Message),
	}
}

// BookingRequest is the single-property viewing request body.
type BookingRequest struct {
	PropertyID int64 `json:"propertyId" validate:"required,min=1"`
	ViewingFields
	ContactFields
}

// ToDomain converts the request into its payload variant.
func (r BookingRequest) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		PropertyID: r.PropertyID,
		Viewing:    r.ViewingFields.ToDomain(),
		Contact:    r.ContactFields.ToDomain(),
	}
}

// GroupBookingRequest is the multi-property viewing request body.
type GroupBookingRequest struct {
	PropertyIDs []int64 `json:"propertyIds" validate:"required,min=1,dive,min=1"`
	ViewingFields
	ContactFields
}

// ToDomain converts the request into its payload variant.
func (r GroupBookingRequest) ToDomain() domain.GroupBookingRequest {
	return domain.GroupBookingRequest{
		PropertyIDs: r.PropertyIDs,
		Viewing:     r.ViewingFields.ToDomain(),
		Contact:     r.ContactFields.ToDomain(),
	}
}

// QuizAnswer is one question/answer pair, in quiz order.
type QuizAnswer struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"max=500"`
}

// QuizRequest is the completed quiz body.
type QuizRequest struct {
	Answers []QuizAnswer `json:"answers" validate:"required,min=1,dive"`
	ContactFields
}

// ToDomain converts the request into its payload variant.
func (r QuizRequest) ToDomain() domain.QuizResult {
	answers := make([]domain.QuizAnswer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, domain.QuizAnswer{
			Question: sanitize.Text(a.Question),
			Answer:   sanitize.Text(a.Answer),
		})
	}
	return domain.QuizResult{Answers: answers, Contact: r.ContactFields.ToDomain()}
}

// PropertyRequestRequest is the property search lead form body.
type PropertyRequestRequest struct {
	Preferences string `json:"preferences" validate:"required,min=1,max=5000"`
	PriceMin    int64  `json:"priceMin" validate:"min=0"`
	PriceMax    int64  `json:"priceMax" validate:"min=0,gtefield=PriceMin"`
	ViewingFields
	ContactFields
}

// ToDomain converts the request into its payload variant.
func (r PropertyRequestRequest) ToDomain() domain.PropertyRequest {
	return domain.PropertyRequest{
		Preferences: sanitize.Text(r.Preferences),
		PriceMin:    r.PriceMin,
		PriceMax:    r.PriceMax,
		Viewing:     r.ViewingFields.ToDomain(),
		Contact:     r.ContactFields.ToDomain(),
	}
}

// SubmissionResponse acknowledges an accepted submission.
type SubmissionResponse struct {
	Success bool `json:"success"`
}
