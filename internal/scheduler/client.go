package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// reminderHour is the local hour on the viewing day at which the reminder
// fires.
const reminderHour = 8

// Client enqueues viewing reminder tasks.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient creates an asynq client from the Redis configuration.
func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleViewingReminder enqueues a reminder for the morning of the viewing
// date. A date that is already past schedules the task immediately.
func (c *Client) ScheduleViewingReminder(ctx context.Context, submissionID uuid.UUID, viewingDate string, slot domain.TimeSlot, contactName string) error {
	if c == nil || c.client == nil {
		return nil
	}

	date, err := time.ParseInLocation(domain.DateLayout, viewingDate, time.Local)
	if err != nil {
		return fmt.Errorf("parse viewing date: %w", err)
	}
	runAt := date.Add(reminderHour * time.Hour)

	task, err := NewViewingReminderTask(ViewingReminderPayload{
		SubmissionID: submissionID.String(),
		ViewingDate:  viewingDate,
		TimeSlot:     string(slot),
		ContactName:  contactName,
	})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessAt(runAt), asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
