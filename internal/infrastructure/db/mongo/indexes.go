package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index the repositories rely on.
// Called once at startup before the server accepts traffic; the unique
// indexes on users.email and registration_confirmations.code are the
// storage-level backstop for racy application checks.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := []indexed{
		NewUserRepository(db),
		NewConfirmationRepository(db),
		NewBrandRepository(db),
		NewCarModelRepository(db),
		NewGenerationRepository(db),
		NewColorRepository(db),
		NewCommentRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
