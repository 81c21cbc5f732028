package email

import (
	"bytes"
	"html/template"
)

const subjectUserConfirmation = "Your viewing request at Trust Home"

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>{{.Subject}}</h2>
  <p><strong>Name:</strong> {{.FromName}}</p>
  <p><strong>Email:</strong> {{.FromEmail}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p style="white-space: pre-line;">{{.Message}}</p>
  <hr>
  <p style="color: #6b7280; font-size: 12px;">Submitted at {{.SubmissionTime}}</p>
</body>
</html>`))

var userTemplate = template.Must(template.New("user").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Thank you, {{.UserName}}!</h2>
  <p>We received your viewing request and will contact you shortly to confirm.</p>
  <p style="white-space: pre-line;">{{.Properties}}</p>
  <hr>
  <p style="color: #6b7280; font-size: 12px;">Submitted at {{.SubmissionTime}}</p>
</body>
</html>`))

func renderAdminEmail(n AdminNotification) (string, error) {
	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderUserEmail(c UserConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
