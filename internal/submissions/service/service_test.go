package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trusthome_backend/internal/email"
	"trusthome_backend/internal/events"
	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/internal/submissions/format"
	"trusthome_backend/platform/apperr"
	platformevents "trusthome_backend/platform/events"
	"trusthome_backend/platform/logger"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type testConfig struct{}

func (testConfig) GetTelegramBotToken() string       { return "token" }
func (testConfig) GetTelegramGroupChatID() string    { return "-100200" }
func (testConfig) GetTelegramPersonalChatID() string { return "300400" }
func (testConfig) IsTelegramEnabled() bool           { return true }
func (testConfig) GetDispatchTimeout() time.Duration { return time.Second }
func (testConfig) GetAdminEmail() string             { return "admin@trusthome.ge" }

type fakeRepo struct {
	fail     bool
	inserted []string
}

func (r *fakeRepo) record(form string) (uuid.UUID, error) {
	if r.fail {
		return uuid.Nil, errors.New("connection refused")
	}
	r.inserted = append(r.inserted, form)
	return uuid.New(), nil
}

func (r *fakeRepo) InsertHero(context.Context, domain.HeroCapture) (uuid.UUID, error) {
	return r.record("hero")
}
func (r *fakeRepo) InsertContact(context.Context, domain.ContactMessage) (uuid.UUID, error) {
	return r.record("contact")
}
func (r *fakeRepo) InsertBooking(context.Context, domain.BookingRequest) (uuid.UUID, error) {
	return r.record("booking")
}
func (r *fakeRepo) InsertGroupBooking(context.Context, domain.GroupBookingRequest) (uuid.UUID, error) {
	return r.record("group_booking")
}
func (r *fakeRepo) InsertQuizResponse(context.Context, domain.QuizResult) (uuid.UUID, error) {
	return r.record("quiz")
}
func (r *fakeRepo) InsertPropertyRequest(context.Context, domain.PropertyRequest) (uuid.UUID, error) {
	return r.record("property_request")
}

type fakeChat struct {
	mu    sync.Mutex
	ok    bool
	sends []string // chat ids in send order
	texts []string
}

func (c *fakeChat) SendMessage(_ context.Context, chatID string, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends = append(c.sends, chatID)
	c.texts = append(c.texts, text)
	return c.ok
}

type fakeEmail struct {
	mu         sync.Mutex
	adminErr   error
	userErr    error
	adminSends []email.AdminNotification
	userSends  []email.UserConfirmation
}

func (e *fakeEmail) SendAdminNotification(_ context.Context, n email.AdminNotification) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.adminSends = append(e.adminSends, n)
	return e.adminErr
}

func (e *fakeEmail) SendUserConfirmation(_ context.Context, c email.UserConfirmation) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.userSends = append(e.userSends, c)
	return e.userErr
}

type fakeReader struct {
	props []format.Property
	err   error
}

func (r *fakeReader) ListByIDs(context.Context, []int64) ([]format.Property, error) {
	return r.props, r.err
}

type fakeBus struct {
	mu        sync.Mutex
	published []platformevents.Event
}

func (b *fakeBus) Publish(_ context.Context, event platformevents.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
}

func (b *fakeBus) PublishSync(ctx context.Context, event platformevents.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *fakeBus) Subscribe(string, platformevents.Handler) {}

type fixture struct {
	svc    *Service
	repo   *fakeRepo
	chat   *fakeChat
	email  *fakeEmail
	reader *fakeReader
	bus    *fakeBus
}

func newFixture(chatOK bool, adminErr error) *fixture {
	f := &fixture{
		repo:   &fakeRepo{},
		chat:   &fakeChat{ok: chatOK},
		email:  &fakeEmail{adminErr: adminErr},
		reader: &fakeReader{},
		bus:    &fakeBus{},
	}
	f.svc = New(f.repo, f.chat, f.email, f.reader, testConfig{}, logger.New("test"))
	f.svc.SetEventBus(f.bus)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func validContact() domain.Contact {
	return domain.Contact{Name: "Anna", Email: "anna@example.com", Phone: "+995555123456"}
}

func validViewing() domain.Viewing {
	return domain.Viewing{
		Date:     "2025-03-15",
		TimeSlot: domain.SlotMorning,
		Language: domain.LangEnglish,
		Guests:   2,
	}
}

func TestContactSucceedsWhenOneChannelDelivers(t *testing.T) {
	// Chat fails, email delivers: the submission is still accepted.
	f := newFixture(false, nil)

	err := f.svc.SubmitContact(context.Background(), domain.ContactMessage{
		Contact: validContact(),
		Message: "Здравствуйте",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	if len(f.chat.sends) != 1 {
		t.Fatalf("chat sends = %d, want 1", len(f.chat.sends))
	}
	if len(f.email.adminSends) != 1 {
		t.Fatalf("admin emails = %d, want 1", len(f.email.adminSends))
	}
	if got := f.email.adminSends[0].ToEmail; got != "admin@trusthome.ge" {
		t.Fatalf("admin email recipient = %q", got)
	}
}

func TestContactFailsWhenAllChannelsFail(t *testing.T) {
	f := newFixture(false, email.ErrChannelDisabled)

	err := f.svc.SubmitContact(context.Background(), domain.ContactMessage{
		Contact: validContact(),
		Message: "Здравствуйте",
	})
	if err == nil {
		t.Fatal("expected failure when every channel fails")
	}
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("error kind = %v, want unavailable", apperr.GetKind(err))
	}

	// The row was still written: persistence is independent of dispatch.
	if len(f.repo.inserted) != 1 {
		t.Fatalf("inserted = %v, want one contact row", f.repo.inserted)
	}
	if len(f.bus.published) != 0 {
		t.Fatal("no event must be published for a failed submission")
	}
}

func TestInvalidPayloadSkipsPersistenceAndDispatch(t *testing.T) {
	f := newFixture(true, nil)

	err := f.svc.SubmitContact(context.Background(), domain.ContactMessage{
		Contact: domain.Contact{Name: "Anna"},
		Message: "Привет",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("error kind = %v, want validation", apperr.GetKind(err))
	}
	if len(f.repo.inserted) != 0 {
		t.Fatal("invalid payload must not be persisted")
	}
	if len(f.chat.sends) != 0 {
		t.Fatal("invalid payload must not be dispatched")
	}
}

func TestPersistenceFailureDoesNotBlockDispatch(t *testing.T) {
	f := newFixture(true, nil)
	f.repo.fail = true

	err := f.svc.SubmitHero(context.Background(), domain.HeroCapture{Contact: validContact()})
	if err != nil {
		t.Fatalf("SubmitHero: %v", err)
	}
	if len(f.chat.sends) != 1 {
		t.Fatalf("chat sends = %d, want 1", len(f.chat.sends))
	}
}

func TestBookingNotifiesBothChats(t *testing.T) {
	f := newFixture(true, nil)
	f.reader.props = []format.Property{{
		ID: 42, Title: "Sea View Apartment", Location: "Batumi",
		Price: 1200, Category: "rent", Type: "Апартаменты",
		Bedrooms: 2, Bathrooms: 1, Area: 65,
	}}

	err := f.svc.SubmitBooking(context.Background(), domain.BookingRequest{
		PropertyID: 42,
		Viewing:    validViewing(),
		Contact:    validContact(),
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	if len(f.chat.sends) != 2 {
		t.Fatalf("chat sends = %d, want 2", len(f.chat.sends))
	}
	targets := map[string]bool{}
	for _, id := range f.chat.sends {
		targets[id] = true
	}
	if !targets["-100200"] || !targets["300400"] {
		t.Fatalf("expected group and personal chats, got %v", f.chat.sends)
	}
	if f.chat.texts[0] != f.chat.texts[1] {
		t.Fatal("both chats must receive the same formatted message")
	}
}

func TestBookingSurvivesPropertyResolutionFailure(t *testing.T) {
	f := newFixture(true, nil)
	f.reader.err = errors.New("connection refused")

	err := f.svc.SubmitBooking(context.Background(), domain.BookingRequest{
		PropertyID: 42,
		Viewing:    validViewing(),
		Contact:    validContact(),
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if len(f.chat.sends) != 2 {
		t.Fatalf("chat sends = %d, want 2", len(f.chat.sends))
	}
}

func TestGroupBookingDispatchesChatAndEmails(t *testing.T) {
	f := newFixture(true, nil)
	f.reader.props = []format.Property{
		{ID: 3, Title: "Flat A", Location: "Tbilisi", Price: 900, Category: "rent"},
		{ID: 9, Title: "Flat B", Location: "Batumi", Price: 120000, Category: "sale"},
	}

	err := f.svc.SubmitGroupBooking(context.Background(), domain.GroupBookingRequest{
		PropertyIDs: []int64{3, 9},
		Viewing:     validViewing(),
		Contact:     validContact(),
	})
	if err != nil {
		t.Fatalf("SubmitGroupBooking: %v", err)
	}

	if len(f.chat.sends) != 2 {
		t.Fatalf("chat sends = %d, want 2", len(f.chat.sends))
	}
	if len(f.email.adminSends) != 1 {
		t.Fatalf("admin emails = %d, want 1", len(f.email.adminSends))
	}
	if len(f.email.userSends) != 1 {
		t.Fatalf("user confirmations = %d, want 1", len(f.email.userSends))
	}
	if got := f.email.userSends[0].ToEmail; got != "anna@example.com" {
		t.Fatalf("confirmation recipient = %q", got)
	}
}

func TestSuccessfulSubmissionPublishesEvent(t *testing.T) {
	f := newFixture(true, nil)

	err := f.svc.SubmitQuiz(context.Background(), domain.QuizResult{
		Answers: []domain.QuizAnswer{{Question: "Спален?", Answer: "2"}},
		Contact: validContact(),
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if len(f.bus.published) != 1 {
		t.Fatalf("published events = %d, want 1", len(f.bus.published))
	}
	stored, ok := f.bus.published[0].(events.SubmissionStored)
	if !ok {
		t.Fatalf("event type = %T, want SubmissionStored", f.bus.published[0])
	}
	if stored.Form != "quiz" || stored.Channels != 2 {
		t.Fatalf("unexpected event: %+v", stored)
	}
}

func TestBookingPublishesViewingScheduled(t *testing.T) {
	f := newFixture(true, nil)

	err := f.svc.SubmitBooking(context.Background(), domain.BookingRequest{
		PropertyID: 42,
		Viewing:    validViewing(),
		Contact:    validContact(),
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	var scheduled *events.ViewingScheduled
	for _, e := range f.bus.published {
		if v, ok := e.(events.ViewingScheduled); ok {
			scheduled = &v
		}
	}
	if scheduled == nil {
		t.Fatal("viewing scheduled event missing")
	}
	if scheduled.ViewingDate != "2025-03-15" || scheduled.ContactName != "Anna" {
		t.Fatalf("unexpected event: %+v", scheduled)
	}
}
