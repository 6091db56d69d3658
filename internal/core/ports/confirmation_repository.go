package ports

import (
	"context"
	"time"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// ConfirmationRepository defines persistence for registration confirmations.
type ConfirmationRepository interface {
	Create(ctx context.Context, confirmation *domain.RegistrationConfirmation) (*domain.RegistrationConfirmation, error)
	FindByCode(ctx context.Context, code string) (*domain.RegistrationConfirmation, error)
	FindByUserID(ctx context.Context, userID string) (*domain.RegistrationConfirmation, error)
	Confirm(ctx context.Context, id string, at time.Time) error

	// DeleteExpired removes every confirmation whose deadline is strictly
	// before the given instant, confirmed or not, and reports how many rows
	// were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
