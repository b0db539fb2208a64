package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"roadmap_backend/platform/validator"

	"github.com/joho/godotenv"
)

// Config holds the full environment-sourced configuration surface.
// The email sink is all-or-nothing: EmailEnabled is true only when every
// SMTP option plus both addresses are present. The CRM sink is enabled by
// the presence of CRMAPIKey alone.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll bool
	CORSOrigins  []string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	EntryModel    string
	PremiumModel  string

	// DefaultToPremium controls where unmatched tier labels route.
	DefaultToPremium bool

	CRMAPIKey       string
	CRMBaseURL      string
	CRMRoadmapField string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPSecure   bool
	NotifyEmail  string `validate:"omitempty,email"`
	FromEmail    string `validate:"omitempty,email"`
	EmailEnabled bool
}

// CRMEnabled reports whether the CRM delivery sink is configured.
func (c *Config) CRMEnabled() bool {
	return c.CRMAPIKey != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	port := getEnv("PORT", "5000")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", port)
	}

	smtpPort := 0
	if raw := getEnv("SMTP_PORT", ""); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT must be numeric, got %q", raw)
		}
		smtpPort = p
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         ":" + port,
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		EntryModel:       getEnv("ENTRY_MODEL", "gpt-4.1-mini"),
		PremiumModel:     getEnv("PREMIUM_MODEL", "gpt-4.1"),
		DefaultToPremium: !strings.EqualFold(getEnv("TIER_DEFAULT", "premium"), "entry"),
		CRMAPIKey:        getEnv("CRM_API_KEY", ""),
		CRMBaseURL:       getEnv("CRM_BASE_URL", "https://rest.gohighlevel.com/v1"),
		CRMRoadmapField:  getEnv("CRM_ROADMAP_FIELD", "roadmap"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         smtpPort,
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPass:         getEnv("SMTP_PASS", ""),
		SMTPSecure:       strings.EqualFold(getEnv("SMTP_SECURE", "false"), "true"),
		NotifyEmail:      getEnv("NOTIFY_EMAIL", ""),
		FromEmail:        getEnv("FROM_EMAIL", ""),
	}

	cfg.EmailEnabled = cfg.SMTPHost != "" && cfg.SMTPPort != 0 && cfg.SMTPUser != "" &&
		cfg.SMTPPass != "" && cfg.NotifyEmail != "" && cfg.FromEmail != ""

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.EntryModel == "" || cfg.PremiumModel == "" {
		return nil, fmt.Errorf("ENTRY_MODEL and PREMIUM_MODEL must not be empty")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
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
