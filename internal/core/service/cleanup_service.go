package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/metrics"
)

// CleanupService deletes registration confirmations whose deadline is
// strictly before now, whether or not they were confirmed. It is a pure
// batch delete: no row-by-row logic, storage errors propagate unchanged,
// and running it again with nothing newly expired deletes zero rows.
type CleanupService struct {
	confirmations ports.ConfirmationRepository
	logger        zerolog.Logger
	now           func() time.Time
}

func NewCleanupService(confirmations ports.ConfirmationRepository, logger zerolog.Logger) *CleanupService {
	return &CleanupService{confirmations: confirmations, logger: logger, now: time.Now}
}

// Run executes one cleanup pass and returns the number of deleted rows.
func (s *CleanupService) Run(ctx context.Context) (int64, error) {
	deleted, err := s.confirmations.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}

	metrics.CleanupDeletedTotal.Add(float64(deleted))
	s.logger.Info().Int64("deleted", deleted).Msg("expired registration confirmations removed")
	return deleted, nil
}
