package mail

import "context"

// Credentials are the sender credentials supplied with each send request.
type Credentials struct {
	Username string
	Password string
}

// Message is a fully composed outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Transport delivers a message or reports failure. Implementations do not
// retry; retrying is a caller concern.
type Transport interface {
	Send(ctx context.Context, creds Credentials, msg Message) error
}
