package scheduler

import (
	"context"
	"fmt"

	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/platform/config"
	"trusthome_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// ChatSender is the chat channel the reminder worker notifies.
type ChatSender interface {
	SendMessage(ctx context.Context, chatID string, text string) bool
}

// Worker consumes viewing reminder tasks and re-notifies the group chat on
// the morning of each viewing.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	chat   ChatSender
	chatID string
	log    *logger.Logger
}

// NewWorker creates the reminder worker.
func NewWorker(cfg config.SchedulerConfig, tg config.TelegramConfig, chat ChatSender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		chat:   chat,
		chatID: tg.GetTelegramGroupChatID(),
		log:    log,
	}

	mux.HandleFunc(TaskViewingReminder, w.handleViewingReminder)

	return w, nil
}

func (w *Worker) handleViewingReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseViewingReminderPayload(task)
	if err != nil {
		return err
	}

	slot := domain.TimeSlot(payload.TimeSlot)
	message := fmt.Sprintf(
		"⏰ <b>Напоминание о просмотре сегодня</b>\n\n👤 Клиент: %s\n📅 Дата: %s\n🕐 Время: %s",
		payload.ContactName, payload.ViewingDate, slot.Label())

	if !w.chat.SendMessage(ctx, w.chatID, message) {
		return fmt.Errorf("send viewing reminder for submission %s", payload.SubmissionID)
	}
	return nil
}

// Run serves tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
