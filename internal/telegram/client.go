package telegram

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
	"trusthome_backend/platform/logger"
)

const defaultBaseURL = "https://api.telegram.org"

// Client delivers formatted messages to Telegram chats via the Bot API.
// A nil Client (missing bot token) is valid and reports every send as failed,
// which the submission service treats as a disabled channel.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logger.Logger
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewClient creates a Telegram client, or nil when no bot token is configured.
func NewClient(cfg config.TelegramConfig, log *logger.Logger) *Client {
	if cfg.GetTelegramBotToken() == "" {
		return nil
	}

	return &Client{
		baseURL: defaultBaseURL,
		token:   cfg.GetTelegramBotToken(),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(baseURL, token string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// SendMessage delivers one HTML-formatted message to one chat. It reports
// success as a boolean and never returns transport errors to the caller;
// failures are logged. A nil client or empty chat id short-circuits to false
// without a network call.
func (c *Client) SendMessage(ctx context.Context, chatID string, text string) bool {
	if c == nil || chatID == "" {
		return false
	}

	payload := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("marshal telegram payload", "error", err)
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		c.log.Error("build telegram request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("telegram request failed", "chat_id", chatID, "error", err)
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		c.log.Warn("telegram API returned error",
			"chat_id", chatID,
			"status", resp.StatusCode,
			"body", strings.TrimSpace(string(data)),
		)
		return false
	}

	c.log.Info("telegram message sent", "chat_id", chatID)
	return true
}
