// Package service coordinates form submissions: validation, best-effort
// persistence and concurrent notification dispatch with at-least-one-success
// aggregation.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trusthome_backend/internal/email"
	"trusthome_backend/internal/events"
	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/internal/submissions/format"
	"trusthome_backend/internal/submissions/repository"
	"trusthome_backend/platform/apperr"
	"trusthome_backend/platform/config"
	platformevents "trusthome_backend/platform/events"
	"trusthome_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ChatSender sends one chat message. A false return covers both transport
// failures and a disabled channel.
type ChatSender interface {
	SendMessage(ctx context.Context, chatID string, text string) bool
}

// PropertyReader resolves property ids into the listing data embedded in
// booking messages. Unknown ids are skipped.
type PropertyReader interface {
	ListByIDs(ctx context.Context, ids []int64) ([]format.Property, error)
}

// ReminderScheduler enqueues a viewing reminder for a future booking.
type ReminderScheduler interface {
	ScheduleViewingReminder(ctx context.Context, submissionID uuid.UUID, viewingDate string, slot domain.TimeSlot, contactName string) error
}

// Config is the narrow configuration surface the submission service needs.
type Config interface {
	config.TelegramConfig
	config.DispatchConfig
	GetAdminEmail() string
}

// Service implements the submission pipeline for every form variant.
type Service struct {
	repo       repository.Repository
	chat       ChatSender
	email      email.Sender
	properties PropertyReader
	cfg        Config
	log        *logger.Logger

	eventBus  events.Bus
	reminders ReminderScheduler

	now func() time.Time
}

// New creates a new submission service.
func New(repo repository.Repository, chat ChatSender, sender email.Sender, properties PropertyReader, cfg Config, log *logger.Logger) *Service {
	return &Service{
		repo:       repo,
		chat:       chat,
		email:      sender,
		properties: properties,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// SetEventBus injects the event bus (set after construction to break circular deps).
func (s *Service) SetEventBus(bus events.Bus) {
	s.eventBus = bus
}

// SetReminderScheduler injects the viewing reminder scheduler. Nil means
// reminders are disabled.
func (s *Service) SetReminderScheduler(r ReminderScheduler) {
	s.reminders = r
}

// SubmitHero handles the landing-page lead form.
func (s *Service) SubmitHero(ctx context.Context, p domain.HeroCapture) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertHero(ctx, p)
	})

	message := format.HeroCapture(p, now)
	jobs := []dispatchJob{
		s.groupChatJob(message),
		s.adminEmailJob(p.Contact, "Заявка с главной страницы",
			"Пользователь оставил контакты на главной странице", now),
	}
	return s.finish(ctx, p.Kind(), id, p.Email, jobs)
}

// SubmitContact handles the contact form.
func (s *Service) SubmitContact(ctx context.Context, p domain.ContactMessage) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertContact(ctx, p)
	})

	subject := p.Subject
	if subject == "" {
		subject = "Новая заявка"
	}
	message := format.ContactMessage(p, now)
	jobs := []dispatchJob{
		s.groupChatJob(message),
		s.adminEmailJob(p.Contact, subject, p.Message, now),
	}
	return s.finish(ctx, p.Kind(), id, p.Email, jobs)
}

// SubmitBooking handles a single-property viewing request.
func (s *Service) SubmitBooking(ctx context.Context, p domain.BookingRequest) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertBooking(ctx, p)
	})

	props := s.resolveProperties(ctx, []int64{p.PropertyID})
	message := format.Booking(p, props[0], now)
	jobs := s.chatJobs(message)
	if err := s.finish(ctx, p.Kind(), id, p.Email, jobs); err != nil {
		return err
	}
	s.scheduleReminder(ctx, id, p.Viewing, p.Name)
	return nil
}

// SubmitGroupBooking handles a viewing request covering several properties.
// Besides the chat notifications it emails the admin and sends the submitter
// a confirmation.
func (s *Service) SubmitGroupBooking(ctx context.Context, p domain.GroupBookingRequest) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertGroupBooking(ctx, p)
	})

	props := s.resolveProperties(ctx, p.PropertyIDs)
	message := format.GroupBooking(p, props, now)
	summary := format.PropertySummary(props)

	jobs := s.chatJobs(message)
	adminBody := fmt.Sprintf("Дата: %s\nВремя: %s\n\n%s", p.Date, p.TimeSlot.Label(), summary)
	jobs = append(jobs,
		s.adminEmailJob(p.Contact, "Групповая заявка на просмотр недвижимости", adminBody, now),
		dispatchJob{channel: "email", target: p.Email, run: func(ctx context.Context) bool {
			err := s.email.SendUserConfirmation(ctx, email.UserConfirmation{
				ToEmail:        p.Email,
				UserName:       p.Name,
				Properties:     summary,
				SubmissionTime: format.Timestamp(now),
			})
			return s.emailOK("user_confirmation", err)
		}},
	)
	if err := s.finish(ctx, p.Kind(), id, p.Email, jobs); err != nil {
		return err
	}
	s.scheduleReminder(ctx, id, p.Viewing, p.Name)
	return nil
}

// SubmitQuiz handles a completed apartment-finder quiz.
func (s *Service) SubmitQuiz(ctx context.Context, p domain.QuizResult) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertQuizResponse(ctx, p)
	})

	message := format.QuizResult(p, now)
	return s.finish(ctx, p.Kind(), id, p.Email, s.chatJobs(message))
}

// SubmitPropertyRequest handles the free-form property search request.
func (s *Service) SubmitPropertyRequest(ctx context.Context, p domain.PropertyRequest) error {
	now := s.now()
	if err := s.reject(p, now); err != nil {
		return err
	}

	id := s.persist(ctx, p.Kind(), func() (uuid.UUID, error) {
		return s.repo.InsertPropertyRequest(ctx, p)
	})

	message := format.PropertyRequest(p, now)
	jobs := []dispatchJob{
		s.groupChatJob(message),
		s.adminEmailJob(p.Contact, "Заявка на подбор недвижимости", p.Preferences, now),
	}
	return s.finish(ctx, p.Kind(), id, p.Email, jobs)
}

// reject validates the payload and logs the rejection reason. Invalid
// payloads never reach persistence or dispatch.
func (s *Service) reject(p domain.Payload, now time.Time) error {
	if err := p.Validate(now); err != nil {
		s.log.SubmissionRejected(string(p.Kind()), err.Error())
		return err
	}
	return nil
}

// persist runs one best-effort insert. A failed write is logged and the
// pipeline continues; the returned id is uuid.Nil in that case.
func (s *Service) persist(ctx context.Context, kind domain.Kind, insert func() (uuid.UUID, error)) uuid.UUID {
	id, err := insert()
	if err != nil {
		s.log.DatabaseError("insert_"+string(kind), err)
		return uuid.Nil
	}
	return id
}

// resolveProperties loads listing data for the formatter. Resolution
// failures degrade to bare id blocks rather than blocking the submission.
func (s *Service) resolveProperties(ctx context.Context, ids []int64) []format.Property {
	props, err := s.properties.ListByIDs(ctx, ids)
	if err != nil {
		s.log.DatabaseError("resolve_properties", err)
		props = nil
	}
	known := make(map[int64]format.Property, len(props))
	for _, p := range props {
		known[p.ID] = p
	}
	out := make([]format.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := known[id]; ok {
			out = append(out, p)
		} else {
			out = append(out, format.Property{ID: id})
		}
	}
	return out
}

// dispatchJob is one channel delivery attempt.
type dispatchJob struct {
	channel string
	target  string
	run     func(ctx context.Context) bool
}

// groupChatJob sends one message to the group chat.
func (s *Service) groupChatJob(message string) dispatchJob {
	chatID := s.cfg.GetTelegramGroupChatID()
	return dispatchJob{channel: "telegram", target: "group", run: func(ctx context.Context) bool {
		return s.chat.SendMessage(ctx, chatID, message)
	}}
}

// chatJobs sends one message to both the group and the personal chat.
func (s *Service) chatJobs(message string) []dispatchJob {
	personalID := s.cfg.GetTelegramPersonalChatID()
	return []dispatchJob{
		s.groupChatJob(message),
		{channel: "telegram", target: "personal", run: func(ctx context.Context) bool {
			return s.chat.SendMessage(ctx, personalID, message)
		}},
	}
}

// adminEmailJob sends the admin notification email.
func (s *Service) adminEmailJob(c domain.Contact, subject, body string, now time.Time) dispatchJob {
	return dispatchJob{channel: "email", target: "admin", run: func(ctx context.Context) bool {
		err := s.email.SendAdminNotification(ctx, email.AdminNotification{
			ToEmail:        s.cfg.GetAdminEmail(),
			FromName:       c.Name,
			FromEmail:      c.Email,
			Phone:          c.Phone,
			Subject:        subject,
			Message:        body,
			SubmissionTime: format.Timestamp(now),
		})
		return s.emailOK("admin_notification", err)
	}}
}

// emailOK folds an email send error into the boolean dispatch outcome.
func (s *Service) emailOK(kind string, err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, email.ErrChannelDisabled) {
		s.log.Error("email_send_failed", "kind", kind, "error", err.Error())
	}
	return false
}

// finish runs the dispatch jobs concurrently, each under its own timeout,
// and aggregates the outcome: at least one success accepts the submission.
func (s *Service) finish(ctx context.Context, kind domain.Kind, id uuid.UUID, submitterEmail string, jobs []dispatchJob) error {
	timeout := s.cfg.GetDispatchTimeout()
	results := make([]bool, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			jobCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			results[i] = job.run(jobCtx)
			s.log.DispatchResult(job.channel, job.target, results[i])
			return nil
		})
	}
	_ = g.Wait()

	var succeeded int
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	if succeeded == 0 {
		return apperr.Unavailable("не удалось отправить уведомления")
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.SubmissionStored{
			BaseEvent:    platformevents.NewBaseEvent(),
			SubmissionID: id,
			Form:         string(kind),
			Email:        submitterEmail,
			Channels:     succeeded,
		})
	}
	return nil
}

// scheduleReminder enqueues a viewing reminder after an accepted booking.
// Failures are logged; the submission already succeeded.
func (s *Service) scheduleReminder(ctx context.Context, id uuid.UUID, v domain.Viewing, contactName string) {
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.ViewingScheduled{
			BaseEvent:    platformevents.NewBaseEvent(),
			SubmissionID: id,
			ViewingDate:  v.Date,
			TimeSlot:     string(v.TimeSlot),
			ContactName:  contactName,
		})
	}
	if s.reminders == nil {
		return
	}
	if err := s.reminders.ScheduleViewingReminder(ctx, id, v.Date, v.TimeSlot, contactName); err != nil {
		s.log.Error("schedule_viewing_reminder_failed", "error", err.Error())
	}
}
