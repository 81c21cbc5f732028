package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskViewingReminder = "bookings.viewing_reminder"

// ViewingReminderPayload identifies a booking whose viewing day has arrived.
type ViewingReminderPayload struct {
	SubmissionID string `json:"submissionId"`
	ViewingDate  string `json:"viewingDate"`
	TimeSlot     string `json:"timeSlot"`
	ContactName  string `json:"contactName"`
}

func NewViewingReminderTask(payload ViewingReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskViewingReminder, data), nil
}

func ParseViewingReminderPayload(task *asynq.Task) (ViewingReminderPayload, error) {
	var payload ViewingReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ViewingReminderPayload{}, err
	}
	return payload, nil
}
