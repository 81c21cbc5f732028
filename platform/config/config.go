// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// TelegramConfig provides settings for the Telegram notification channel.
// A missing bot token or chat id disables the channel rather than failing.
type TelegramConfig interface {
	GetTelegramBotToken() string
	GetTelegramGroupChatID() string
	GetTelegramPersonalChatID() string
	IsTelegramEnabled() bool
}

// EmailConfig provides settings for the email notification channel.
type EmailConfig interface {
	GetEmailProvider() string
	GetEmailJSServiceID() string
	GetEmailJSAdminTemplateID() string
	GetEmailJSUserTemplateID() string
	GetEmailJSPublicKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetAdminEmail() string
	IsEmailEnabled() bool
}

// SchedulerConfig provides settings for the asynq reminder scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// DispatchConfig provides settings for notification dispatch behavior.
type DispatchConfig interface {
	GetDispatchTimeout() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                    string
	HTTPAddr               string
	DatabaseURL            string
	CORSAllowAll           bool
	CORSOrigins            []string
	CORSAllowCreds         bool
	TelegramBotToken       string
	TelegramGroupChatID    string
	TelegramPersonalChatID string
	EmailProvider          string
	EmailJSServiceID       string
	EmailJSAdminTemplateID string
	EmailJSUserTemplateID  string
	EmailJSPublicKey       string
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	EmailFromName          string
	EmailFromAddress       string
	AdminEmail             string
	RedisURL               string
	RedisTLSInsecure       bool
	AsynqQueueName         string
	AsynqConcurrency       int
	DispatchTimeout        time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// TelegramConfig implementation
func (c *Config) GetTelegramBotToken() string       { return c.TelegramBotToken }
func (c *Config) GetTelegramGroupChatID() string    { return c.TelegramGroupChatID }
func (c *Config) GetTelegramPersonalChatID() string { return c.TelegramPersonalChatID }
func (c *Config) IsTelegramEnabled() bool {
	return c.TelegramBotToken != "" && (c.TelegramGroupChatID != "" || c.TelegramPersonalChatID != "")
}

// EmailConfig implementation
func (c *Config) GetEmailProvider() string          { return c.EmailProvider }
func (c *Config) GetEmailJSServiceID() string       { return c.EmailJSServiceID }
func (c *Config) GetEmailJSAdminTemplateID() string { return c.EmailJSAdminTemplateID }
func (c *Config) GetEmailJSUserTemplateID() string  { return c.EmailJSUserTemplateID }
func (c *Config) GetEmailJSPublicKey() string       { return c.EmailJSPublicKey }
func (c *Config) GetSMTPHost() string               { return c.SMTPHost }
func (c *Config) GetSMTPPort() int                  { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string           { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string           { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string          { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string       { return c.EmailFromAddress }
func (c *Config) GetAdminEmail() string             { return c.AdminEmail }
func (c *Config) IsEmailEnabled() bool {
	switch c.EmailProvider {
	case "smtp":
		return c.SMTPHost != "" && c.EmailFromAddress != ""
	default:
		return c.EmailJSServiceID != "" && c.EmailJSPublicKey != ""
	}
}

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// DispatchConfig implementation
func (c *Config) GetDispatchTimeout() time.Duration { return c.DispatchTimeout }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		CORSAllowAll:           corsAllowAll,
		CORSOrigins:            corsOrigins,
		CORSAllowCreds:         strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		TelegramBotToken:       getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramGroupChatID:    getEnv("TELEGRAM_GROUP_CHAT_ID", ""),
		TelegramPersonalChatID: getEnv("TELEGRAM_PERSONAL_CHAT_ID", ""),
		EmailProvider:          strings.ToLower(getEnv("EMAIL_PROVIDER", "emailjs")),
		EmailJSServiceID:       getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSAdminTemplateID: getEnv("EMAILJS_ADMIN_TEMPLATE_ID", ""),
		EmailJSUserTemplateID:  getEnv("EMAILJS_USER_TEMPLATE_ID", ""),
		EmailJSPublicKey:       getEnv("EMAILJS_PUBLIC_KEY", ""),
		SMTPHost:               getEnv("SMTP_HOST", ""),
		SMTPPort:               mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:           getEnv("SMTP_USERNAME", ""),
		SMTPPassword:           getEnv("SMTP_PASSWORD", ""),
		EmailFromName:          getEnv("EMAIL_FROM_NAME", "Trust Home"),
		EmailFromAddress:       getEnv("EMAIL_FROM_ADDRESS", ""),
		AdminEmail:             getEnv("ADMIN_EMAIL", ""),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisTLSInsecure:       strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:         getEnv("ASYNQ_QUEUE", "notifications"),
		AsynqConcurrency:       mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		DispatchTimeout:        mustDuration(getEnv("DISPATCH_TIMEOUT", "10s")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.EmailProvider != "emailjs" && cfg.EmailProvider != "smtp" {
		return nil, fmt.Errorf("EMAIL_PROVIDER must be emailjs or smtp, got %q", cfg.EmailProvider)
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = 10 * time.Second
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
