package config

import (
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":4000" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.BaseURL != "http://localhost:4000" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.MailProvider != "smtp" {
		t.Fatalf("unexpected provider %q", cfg.MailProvider)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 465 {
		t.Fatalf("unexpected smtp relay %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.SettlementCurrency != "ADA" {
		t.Fatalf("unexpected settlement currency %q", cfg.SettlementCurrency)
	}
	if cfg.StatusPollInterval != 3*time.Second {
		t.Fatalf("unexpected poll interval %s", cfg.StatusPollInterval)
	}
	if cfg.PollWorkers != 4 {
		t.Fatalf("unexpected worker count %d", cfg.PollWorkers)
	}
	if cfg.DecisionRateLimit != 5.0 || cfg.DecisionRateBurst != 10 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.DecisionRateLimit, cfg.DecisionRateBurst)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":          ":9090",
		"BASE_URL":             "https://billing.example.com",
		"MAIL_PROVIDER":        "mock",
		"SETTLEMENT_CURRENCY":  "USD",
		"STATUS_POLL_INTERVAL": "500ms",
		"POLL_WORKERS":         "8",
		"DECISION_RATE_LIMIT":  "2.5",
		"WATCH_IDS":            "01/25-26,02/25-26",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("env run address not applied: %q", cfg.RunAddress)
	}
	if cfg.BaseURL != "https://billing.example.com" {
		t.Fatalf("env base url not applied: %q", cfg.BaseURL)
	}
	if cfg.MailProvider != "mock" {
		t.Fatalf("env provider not applied: %q", cfg.MailProvider)
	}
	if cfg.SettlementCurrency != "USD" {
		t.Fatalf("env settlement not applied: %q", cfg.SettlementCurrency)
	}
	if cfg.StatusPollInterval != 500*time.Millisecond {
		t.Fatalf("env poll interval not applied: %s", cfg.StatusPollInterval)
	}
	if cfg.PollWorkers != 8 {
		t.Fatalf("env workers not applied: %d", cfg.PollWorkers)
	}
	if cfg.DecisionRateLimit != 2.5 {
		t.Fatalf("env rate not applied: %v", cfg.DecisionRateLimit)
	}
	if cfg.WatchIDs != "01/25-26,02/25-26" {
		t.Fatalf("env watch ids not applied: %q", cfg.WatchIDs)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-b", "https://flags.example.com", "-poll-interval", "1s", "-settlement", "EUR"},
		envMap(map[string]string{
			"RUN_ADDRESS": ":9090",
			"BASE_URL":    "https://env.example.com",
		}),
	)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("flag must override env, got %q", cfg.RunAddress)
	}
	if cfg.BaseURL != "https://flags.example.com" {
		t.Fatalf("flag must override env, got %q", cfg.BaseURL)
	}
	if cfg.StatusPollInterval != time.Second {
		t.Fatalf("flag poll interval not applied: %s", cfg.StatusPollInterval)
	}
	if cfg.SettlementCurrency != "EUR" {
		t.Fatalf("flag settlement not applied: %q", cfg.SettlementCurrency)
	}
}

func TestMailgunProviderRequiresCredentials(t *testing.T) {
	if _, err := load(nil, envMap(map[string]string{"MAIL_PROVIDER": "mailgun"})); err == nil {
		t.Fatal("expected error without mailgun credentials")
	}

	cfg, err := load(nil, envMap(map[string]string{
		"MAIL_PROVIDER":   "mailgun",
		"MAILGUN_DOMAIN":  "mg.example.com",
		"MAILGUN_API_KEY": "key-123",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.MailProvider != "mailgun" {
		t.Fatalf("unexpected provider %q", cfg.MailProvider)
	}
}

func TestUnknownMailProviderRejected(t *testing.T) {
	if _, err := load([]string{"-mail-provider", "pigeon"}, noEnv); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNonPositiveValuesFallBack(t *testing.T) {
	cfg, err := load([]string{"-poll-workers", "-1"}, envMap(map[string]string{
		"DECISION_RATE_LIMIT": "-3",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.PollWorkers != 4 {
		t.Fatalf("expected default workers, got %d", cfg.PollWorkers)
	}
	if cfg.DecisionRateLimit != 5.0 {
		t.Fatalf("expected default rate, got %v", cfg.DecisionRateLimit)
	}
}

func TestInvalidFlagValueRejected(t *testing.T) {
	if _, err := load([]string{"-poll-interval", "soon"}, noEnv); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}
