package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_CURRENCY", "JPY")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("ALLOWED_EMAILS", "a@trip.test, b@trip.test,,")
	t.Setenv("FIREBASE_PROJECT_ID", "tripsplit-test")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.BaseCurrency != "JPY" {
		t.Errorf("BaseCurrency = %s, want JPY", cfg.BaseCurrency)
	}
	if !cfg.DemoMode {
		t.Error("DemoMode = false, want true")
	}
	if len(cfg.AllowedEmails) != 2 {
		t.Errorf("AllowedEmails = %v, want the two trimmed entries", cfg.AllowedEmails)
	}
	if cfg.FirebaseProjectID != "tripsplit-test" {
		t.Errorf("FirebaseProjectID = %s, want tripsplit-test", cfg.FirebaseProjectID)
	}
	if cfg.FirebaseCredentialsJSON == "" {
		t.Error("FirebaseCredentialsJSON not loaded from environment")
	}
}

func TestIsAllowed(t *testing.T) {
	cfg := &Config{AllowedEmails: []string{"a@trip.test", "B@Trip.Test"}}

	if !cfg.IsAllowed("a@trip.test") {
		t.Error("IsAllowed(a@trip.test) = false, want true")
	}
	if !cfg.IsAllowed("b@trip.test") {
		t.Error("IsAllowed is not case-insensitive")
	}
	if cfg.IsAllowed("c@trip.test") {
		t.Error("IsAllowed(c@trip.test) = true, want false")
	}

	empty := &Config{}
	if empty.IsAllowed("a@trip.test") {
		t.Error("empty allowlist must deny everyone")
	}
}
