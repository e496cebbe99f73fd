// Package notifier delivers outbound email on behalf of the application.
// Failures surface immediately to the caller; there is no retry policy.
package notifier

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier abstracts email delivery so use cases stay transport-agnostic.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
