package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testEmailJSSender(endpoint string) *EmailJSSender {
	return &EmailJSSender{
		endpoint:        endpoint,
		serviceID:       "service_1",
		adminTemplateID: "template_admin",
		userTemplateID:  "template_user",
		publicKey:       "pk_test",
		client:          http.DefaultClient,
	}
}

func TestEmailJSAdminNotification(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := testEmailJSSender(srv.URL)
	err := s.SendAdminNotification(context.Background(), AdminNotification{
		ToEmail:        "admin@trusthome.ge",
		FromName:       "Anna",
		FromEmail:      "anna@example.com",
		Phone:          "+995555123456",
		Subject:        "Новая заявка",
		Message:        "Здравствуйте",
		SubmissionTime: "10.03.2025, 14:30:05",
	})
	if err != nil {
		t.Fatalf("SendAdminNotification: %v", err)
	}

	if got.ServiceID != "service_1" || got.TemplateID != "template_admin" || got.UserID != "pk_test" {
		t.Fatalf("unexpected request envelope: %+v", got)
	}
	if got.TemplateParams["from_name"] != "Anna" || got.TemplateParams["subject"] != "Новая заявка" {
		t.Fatalf("unexpected template params: %v", got.TemplateParams)
	}
}

func TestEmailJSUserConfirmationUsesUserTemplate(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := testEmailJSSender(srv.URL)
	err := s.SendUserConfirmation(context.Background(), UserConfirmation{
		ToEmail:        "anna@example.com",
		UserName:       "Anna",
		Properties:     "Sea View Apartment, Batumi ($1,200/месяц)",
		SubmissionTime: "10.03.2025, 14:30:05",
	})
	if err != nil {
		t.Fatalf("SendUserConfirmation: %v", err)
	}

	if got.TemplateID != "template_user" {
		t.Fatalf("template id = %q, want template_user", got.TemplateID)
	}
	if got.TemplateParams["apartments"] == "" {
		t.Fatalf("apartments param missing: %v", got.TemplateParams)
	}
}

func TestEmailJSNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The user_id parameter is invalid", http.StatusForbidden)
	}))
	defer srv.Close()

	s := testEmailJSSender(srv.URL)
	err := s.SendAdminNotification(context.Background(), AdminNotification{ToEmail: "a@b.c"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestEmailJSMissingTemplateIsDisabled(t *testing.T) {
	s := testEmailJSSender("http://unused.invalid")
	s.adminTemplateID = ""
	err := s.SendAdminNotification(context.Background(), AdminNotification{})
	if !errors.Is(err, ErrChannelDisabled) {
		t.Fatalf("error = %v, want ErrChannelDisabled", err)
	}
}

func TestDisabledSender(t *testing.T) {
	var s Sender = disabledSender{}
	if err := s.SendAdminNotification(context.Background(), AdminNotification{}); !errors.Is(err, ErrChannelDisabled) {
		t.Fatalf("error = %v, want ErrChannelDisabled", err)
	}
	if err := s.SendUserConfirmation(context.Background(), UserConfirmation{}); !errors.Is(err, ErrChannelDisabled) {
		t.Fatalf("error = %v, want ErrChannelDisabled", err)
	}
}
