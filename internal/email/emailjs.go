package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trusthome_backend/platform/config"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSender delivers emails through the EmailJS REST API, matching the
// template-based delivery the marketplace front end uses: one template for
// the admin audience and one for the end-user confirmation.
type EmailJSSender struct {
	endpoint        string
	serviceID       string
	adminTemplateID string
	userTemplateID  string
	publicKey       string
	client          *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSSender creates an EmailJS-backed sender.
func NewEmailJSSender(cfg config.EmailConfig) *EmailJSSender {
	return &EmailJSSender{
		endpoint:        emailJSEndpoint,
		serviceID:       cfg.GetEmailJSServiceID(),
		adminTemplateID: cfg.GetEmailJSAdminTemplateID(),
		userTemplateID:  cfg.GetEmailJSUserTemplateID(),
		publicKey:       cfg.GetEmailJSPublicKey(),
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

// SendAdminNotification delivers the admin-audience template.
func (s *EmailJSSender) SendAdminNotification(ctx context.Context, n AdminNotification) error {
	if s.adminTemplateID == "" {
		return ErrChannelDisabled
	}
	return s.send(ctx, s.adminTemplateID, map[string]string{
		"to_email":        n.ToEmail,
		"from_name":       n.FromName,
		"from_email":      n.FromEmail,
		"phone":           n.Phone,
		"subject":         n.Subject,
		"message":         n.Message,
		"submission_time": n.SubmissionTime,
	})
}

// SendUserConfirmation delivers the end-user confirmation template.
func (s *EmailJSSender) SendUserConfirmation(ctx context.Context, c UserConfirmation) error {
	if s.userTemplateID == "" {
		return ErrChannelDisabled
	}
	return s.send(ctx, s.userTemplateID, map[string]string{
		"to_email":        c.ToEmail,
		"user_name":       c.UserName,
		"apartments":      c.Properties,
		"submission_time": c.SubmissionTime,
	})
}

func (s *EmailJSSender) send(ctx context.Context, templateID string, params map[string]string) error {
	payload := emailJSRequest{
		ServiceID:      s.serviceID,
		TemplateID:     templateID,
		UserID:         s.publicKey,
		TemplateParams: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("emailjs send failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return nil
}
