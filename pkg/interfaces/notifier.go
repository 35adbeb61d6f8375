package interfaces

import "context"

// ContactNotification carries a submitted contact request to the outbound
// notifier (typically an email relay).
type ContactNotification struct {
	FullName    string
	Email       string
	Phone       string
	Profile     string
	ProjectType string
	Message     string
}

// ContactNotifier delivers contact notifications. Delivery is fire-and-forget
// from the caller's perspective; errors are logged, never surfaced to the
// submitting visitor.
type ContactNotifier interface {
	Notify(ctx context.Context, n ContactNotification) error
}
