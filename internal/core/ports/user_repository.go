package ports

import (
	"context"
	"time"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	SetActivated(ctx context.Context, id string, at time.Time) error
}
