package email

import (
	"context"
	"errors"

	"trusthome_backend/platform/config"
)

// ErrChannelDisabled is returned by senders whose credentials are not
// configured. The submission service treats it as a failed dispatch, not as
// an application error.
var ErrChannelDisabled = errors.New("email channel disabled")

// AdminNotification carries the template parameters for the admin-facing
// notification email about one form submission.
type AdminNotification struct {
	ToEmail        string
	FromName       string
	FromEmail      string
	Phone          string
	Subject        string
	Message        string
	SubmissionTime string
}

// UserConfirmation carries the template parameters for the confirmation email
// sent back to the submitter (group viewing requests only).
type UserConfirmation struct {
	ToEmail        string
	UserName       string
	Properties     string
	SubmissionTime string
}

// Sender delivers notification emails. Implementations convert transport
// failures into errors; the caller decides how failures affect the overall
// submission outcome.
type Sender interface {
	SendAdminNotification(ctx context.Context, n AdminNotification) error
	SendUserConfirmation(ctx context.Context, c UserConfirmation) error
}

// disabledSender is installed when no email credentials are configured.
type disabledSender struct{}

func (disabledSender) SendAdminNotification(context.Context, AdminNotification) error {
	return ErrChannelDisabled
}

func (disabledSender) SendUserConfirmation(context.Context, UserConfirmation) error {
	return ErrChannelDisabled
}

// NewSender selects an email transport from configuration. When the selected
// provider is missing credentials, a disabled sender is returned: sends fail
// without network calls, and the channel simply contributes a failure to the
// dispatch aggregation.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.IsEmailEnabled() {
		return disabledSender{}
	}

	if cfg.GetEmailProvider() == "smtp" {
		return NewSMTPSender(cfg)
	}
	return NewEmailJSSender(cfg)
}
