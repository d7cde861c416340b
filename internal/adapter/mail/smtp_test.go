package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSMTPSendBuildsMultipartMessage(t *testing.T) {
	transport := NewSMTPTransport("smtp.example.com", 465, discardLogger())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotBody string
	transport.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotBody = string(msg)
		return nil
	}

	err := transport.Send(context.Background(), Credentials{Username: "sender@example.com", Password: "secret"}, Message{
		To:      "client@example.com",
		Subject: "QUOTE from Blue Dot (Action Required) - 01/25-26",
		Text:    "plain part",
		HTML:    "<p>html part</p>",
	})
	if err != nil {
		t.Fatalf("send returned error: %v", err)
	}

	if gotAddr != "smtp.example.com:465" {
		t.Fatalf("unexpected relay address %q", gotAddr)
	}
	if gotFrom != "sender@example.com" {
		t.Fatalf("unexpected from %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "client@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	for _, want := range []string{
		"From: sender@example.com\r\n",
		"To: client@example.com\r\n",
		"Subject: QUOTE from Blue Dot (Action Required) - 01/25-26\r\n",
		"multipart/alternative",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"plain part",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"<p>html part</p>",
		"--" + altBoundary + "--",
	} {
		if !strings.Contains(gotBody, want) {
			t.Fatalf("message body missing %q", want)
		}
	}
}

func TestSMTPSendRequiresCredentials(t *testing.T) {
	transport := NewSMTPTransport("smtp.example.com", 465, discardLogger())
	transport.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called without credentials")
		return nil
	}

	err := transport.Send(context.Background(), Credentials{}, Message{To: "client@example.com"})
	if !errors.Is(err, domainErrors.ErrTransportFailure) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestSMTPSendWrapsRelayError(t *testing.T) {
	transport := NewSMTPTransport("smtp.example.com", 465, discardLogger())
	transport.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("550 mailbox unavailable")
	}

	err := transport.Send(context.Background(), Credentials{Username: "sender@example.com", Password: "secret"}, Message{To: "client@example.com"})
	if !errors.Is(err, domainErrors.ErrTransportFailure) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "550 mailbox unavailable") {
		t.Fatalf("relay error not preserved: %v", err)
	}
}

func TestMockTransportRecords(t *testing.T) {
	transport := NewMockTransport(nil)
	msg := Message{To: "client@example.com", Subject: "s"}

	if err := transport.Send(context.Background(), Credentials{}, msg); err != nil {
		t.Fatalf("send returned error: %v", err)
	}
	sent := transport.Sent()
	if len(sent) != 1 || sent[0].To != "client@example.com" {
		t.Fatalf("unexpected recorded messages %v", sent)
	}

	transport.Err = errors.New("boom")
	if err := transport.Send(context.Background(), Credentials{}, msg); err == nil {
		t.Fatal("expected configured error")
	}
	if len(transport.Sent()) != 1 {
		t.Fatal("failed send must not be recorded")
	}
}
