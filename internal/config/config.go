package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	BaseURL            string
	MailProvider       string
	SMTPHost           string
	SMTPPort           int
	MailgunDomain      string
	MailgunAPIKey      string
	SenderName         string
	SettlementCurrency string
	StatusPollInterval time.Duration
	PollWorkers        int
	DecisionRateLimit  float64
	DecisionRateBurst  int
	ShutdownTimeout    time.Duration

	// WatchIDs is only read by the paylink-watch client: a comma-separated
	// list of document ids to poll for a decision.
	WatchIDs string
}

const (
	defaultRunAddress         = ":4000"
	defaultBaseURL            = "http://localhost:4000"
	defaultMailProvider       = "smtp"
	defaultSMTPHost           = "smtp.gmail.com"
	defaultSMTPPort           = 465
	defaultSenderName         = "Blue Dot"
	defaultSettlementCurrency = "ADA"
	defaultStatusPollInterval = 3 * time.Second
	defaultPollWorkers        = 4
	defaultDecisionRateLimit  = 5.0
	defaultDecisionRateBurst  = 10
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		BaseURL:            getString(lookup, "BASE_URL", defaultBaseURL),
		MailProvider:       getString(lookup, "MAIL_PROVIDER", defaultMailProvider),
		SMTPHost:           getString(lookup, "SMTP_HOST", defaultSMTPHost),
		SMTPPort:           getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		MailgunDomain:      getString(lookup, "MAILGUN_DOMAIN", ""),
		MailgunAPIKey:      getString(lookup, "MAILGUN_API_KEY", ""),
		SenderName:         getString(lookup, "SENDER_NAME", defaultSenderName),
		SettlementCurrency: getString(lookup, "SETTLEMENT_CURRENCY", defaultSettlementCurrency),
		StatusPollInterval: getDuration(lookup, "STATUS_POLL_INTERVAL", defaultStatusPollInterval),
		PollWorkers:        getInt(lookup, "POLL_WORKERS", defaultPollWorkers),
		DecisionRateLimit:  getFloat(lookup, "DECISION_RATE_LIMIT", defaultDecisionRateLimit),
		DecisionRateBurst:  getInt(lookup, "DECISION_RATE_BURST", defaultDecisionRateBurst),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		WatchIDs:           getString(lookup, "WATCH_IDS", ""),
	}

	fs := flag.NewFlagSet("paylink", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StatusPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Public base URL embedded in decision links")
	fs.StringVar(&cfg.MailProvider, "mail-provider", cfg.MailProvider, "Email transport: smtp, mailgun or mock")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP server host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP server port")
	fs.StringVar(&cfg.SettlementCurrency, "settlement", cfg.SettlementCurrency, "Settlement currency code")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between status polls")
	fs.IntVar(&cfg.PollWorkers, "poll-workers", cfg.PollWorkers, "Number of concurrent status checks")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.WatchIDs, "watch", cfg.WatchIDs, "Comma-separated document ids to watch (paylink-watch)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StatusPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StatusPollInterval <= 0 {
		cfg.StatusPollInterval = defaultStatusPollInterval
	}

	if cfg.PollWorkers <= 0 {
		cfg.PollWorkers = defaultPollWorkers
	}

	if cfg.DecisionRateLimit <= 0 {
		cfg.DecisionRateLimit = defaultDecisionRateLimit
	}

	if cfg.DecisionRateBurst <= 0 {
		cfg.DecisionRateBurst = defaultDecisionRateBurst
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL must be provided")
	}

	switch cfg.MailProvider {
	case "smtp", "mock":
	case "mailgun":
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
			return nil, fmt.Errorf("mailgun provider requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
