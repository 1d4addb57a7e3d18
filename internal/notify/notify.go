// Package notify abstracts the platform notification surface the scheduler
// emits through.
package notify

import "context"

// Options control how a notification is presented.
type Options struct {
	// RequireInteraction keeps the notification on screen until the user
	// dismisses it.
	RequireInteraction bool
}

// Notifier is the emission interface. RequestPermission is called once at
// startup; implementations report whether the platform allows sending.
// Notify is only called while permission is granted.
type Notifier interface {
	RequestPermission(ctx context.Context) (bool, error)
	Notify(ctx context.Context, title, body string, opts Options) error
}
