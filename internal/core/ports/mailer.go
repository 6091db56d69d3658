package ports

import (
	"context"
	"time"
)

// ConfirmationMail carries the data rendered into the confirmation message.
type ConfirmationMail struct {
	Code         string
	AllowedUpTo  time.Time
	RegisteredAt time.Time
}

// Mailer sends account emails. Implementations own templates and transport.
type Mailer interface {
	SendConfirmation(ctx context.Context, to string, mail ConfirmationMail) error
	SendWelcome(ctx context.Context, to string) error
}

// WelcomeQueue accepts fire-and-forget welcome mail requests. Delivery is
// asynchronous; failures are logged by the implementation, never surfaced.
type WelcomeQueue interface {
	Enqueue(email string)
}

// ResendGuard throttles confirmation re-sends per email address.
type ResendGuard interface {
	RecentlySent(ctx context.Context, email string) (bool, error)
	MarkSent(ctx context.Context, email string) error
}
