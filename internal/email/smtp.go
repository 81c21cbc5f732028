package email

import (
	"context"
	"fmt"
	"net"
	"time"

	"trusthome_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface over a direct SMTP connection
// via go-mail, for deployments that do not want a third-party email relay.
// It renders the same notification content as the EmailJS templates.
type SMTPSender struct {
	host       string
	port       int
	username   string
	password   string
	fromName   string
	fromEmail  string
	adminEmail string
}

// NewSMTPSender creates an SMTP-backed sender from configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:       cfg.GetSMTPHost(),
		port:       cfg.GetSMTPPort(),
		username:   cfg.GetSMTPUsername(),
		password:   cfg.GetSMTPPassword(),
		fromName:   cfg.GetEmailFromName(),
		fromEmail:  cfg.GetEmailFromAddress(),
		adminEmail: cfg.GetAdminEmail(),
	}
}

// SendAdminNotification delivers the admin-audience email.
func (s *SMTPSender) SendAdminNotification(ctx context.Context, n AdminNotification) error {
	to := n.ToEmail
	if to == "" {
		to = s.adminEmail
	}
	if to == "" {
		return ErrChannelDisabled
	}

	content, err := renderAdminEmail(n)
	if err != nil {
		return err
	}
	return s.send(ctx, to, n.Subject, content)
}

// SendUserConfirmation delivers the end-user confirmation email.
func (s *SMTPSender) SendUserConfirmation(ctx context.Context, c UserConfirmation) error {
	if c.ToEmail == "" {
		return ErrChannelDisabled
	}

	content, err := renderUserEmail(c)
	if err != nil {
		return err
	}
	return s.send(ctx, c.ToEmail, subjectUserConfirmation, content)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
