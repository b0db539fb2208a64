package config

import "testing"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":5000" {
		t.Errorf("expected default addr :5000, got %q", cfg.HTTPAddr)
	}
	if cfg.EntryModel != "gpt-4.1-mini" || cfg.PremiumModel != "gpt-4.1" {
		t.Errorf("unexpected default models: %q / %q", cfg.EntryModel, cfg.PremiumModel)
	}
	if !cfg.DefaultToPremium {
		t.Error("unmatched tiers must default to premium")
	}
	if !cfg.CORSAllowAll {
		t.Error("cors must allow all origins by default")
	}
	if cfg.CRMEnabled() {
		t.Error("crm sink must be disabled without an api key")
	}
	if cfg.EmailEnabled {
		t.Error("email sink must be disabled without smtp settings")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without OPENAI_API_KEY")
	}
}

func TestLoadTierDefaultEntry(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TIER_DEFAULT", "entry")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultToPremium {
		t.Error("TIER_DEFAULT=entry must flip the routing default")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric port")
	}
}

func TestLoadEmailEnabledRequiresEverySetting(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("NOTIFY_EMAIL", "ops@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EmailEnabled {
		t.Error("email must stay disabled while FROM_EMAIL is missing")
	}

	t.Setenv("FROM_EMAIL", "noreply@example.com")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.EmailEnabled {
		t.Error("email must be enabled once every setting is present")
	}
}

func TestLoadRejectsInvalidNotifyEmail(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NOTIFY_EMAIL", "not-an-email")

	if _, err := Load(); err == nil {
		t.Fatal("expected a validation error for a malformed address")
	}
}

func TestLoadCRMEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CRM_API_KEY", "crm-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.CRMEnabled() {
		t.Error("crm sink must be enabled with an api key")
	}
	if cfg.CRMBaseURL != "https://rest.gohighlevel.com/v1" {
		t.Errorf("unexpected crm base url %q", cfg.CRMBaseURL)
	}
}
