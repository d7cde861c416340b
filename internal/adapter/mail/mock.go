package mail

import (
	"context"
	"log/slog"
	"sync"
)

// MockTransport records messages instead of delivering them. Used when no
// real provider is configured and in tests.
type MockTransport struct {
	mu     sync.Mutex
	sent   []Message
	Err    error
	logger *slog.Logger
}

// NewMockTransport constructs a recording transport.
func NewMockTransport(logger *slog.Logger) *MockTransport {
	return &MockTransport{logger: logger}
}

// Send records the message, or fails with the configured error.
func (t *MockTransport) Send(ctx context.Context, creds Credentials, msg Message) error {
	if t.Err != nil {
		return t.Err
	}
	t.mu.Lock()
	t.sent = append(t.sent, msg)
	t.mu.Unlock()
	if t.logger != nil {
		t.logger.Info("email recorded by mock transport", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	}
	return nil
}

// Sent returns a copy of all recorded messages.
func (t *MockTransport) Sent() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.sent))
	copy(out, t.sent)
	return out
}
