package notify

import "context"

// Message is a notification addressed to a single user.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Notifier delivers messages to users. Implementations must be safe for concurrent use.
type Notifier interface {
	Publish(ctx context.Context, msg Message) error
}
