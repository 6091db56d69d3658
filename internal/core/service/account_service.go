package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/metrics"
)

const defaultConfirmationTTL = 60 * time.Minute

// AccountService implements registration, activation and login on top of the
// user and confirmation repositories.
type AccountService struct {
	users         ports.UserRepository
	confirmations ports.ConfirmationRepository
	tokens        ports.TokenService
	mailer        ports.Mailer
	welcome       ports.WelcomeQueue
	guard         ports.ResendGuard

	bcryptCost      int
	confirmationTTL time.Duration
	logger          zerolog.Logger
	now             func() time.Time
}

func NewAccountService(
	users ports.UserRepository,
	confirmations ports.ConfirmationRepository,
	tokens ports.TokenService,
	mailer ports.Mailer,
	welcome ports.WelcomeQueue,
	guard ports.ResendGuard,
	bcryptCost int,
	confirmationTTL time.Duration,
	logger zerolog.Logger,
) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if confirmationTTL <= 0 {
		confirmationTTL = defaultConfirmationTTL
	}
	return &AccountService{
		users:           users,
		confirmations:   confirmations,
		tokens:          tokens,
		mailer:          mailer,
		welcome:         welcome,
		guard:           guard,
		bcryptCost:      bcryptCost,
		confirmationTTL: confirmationTTL,
		logger:          logger,
		now:             time.Now,
	}
}

// Register creates an inactive user plus its registration confirmation, then
// sends the confirmation email. The very first account in the system gets the
// ADMIN role; everyone after that is a USER.
//
// The email is sent only after both records are persisted. A mail failure is
// reported as EmailSendingFailureError but does not undo the persisted rows;
// there is no compensating transaction. The email-uniqueness check here races
// with concurrent registrations — the unique index on the users collection is
// the backstop, surfacing as DuplicateEntryError.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.NewError(domain.KindEntityAlreadyExists, "user with email %q already exists", email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	now := s.now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Activated:    false,
		RegisteredAt: now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	confirmation, err := s.confirmations.Create(ctx, &domain.RegistrationConfirmation{
		UserID:      user.ID,
		Code:        generateConfirmationCode(),
		AllowedUpTo: now.Add(s.confirmationTTL),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user registered")

	if err := s.sendConfirmation(ctx, user, confirmation); err != nil {
		return nil, err
	}

	return user, nil
}

// Activate consumes a confirmation code. The deadline instant itself is still
// accepted; one unit past it fails with OutdatedError. The expired record is
// left in place for the cleanup job.
func (s *AccountService) Activate(ctx context.Context, code string) (*domain.RegistrationConfirmation, error) {
	confirmation, err := s.confirmations.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if confirmation.Confirmed() {
		return nil, domain.NewError(domain.KindAlreadyConfirmed, "registration is already confirmed")
	}

	now := s.now().UTC()
	if confirmation.Expired(now) {
		return nil, domain.NewError(domain.KindOutdated, "registration confirmation deadline has passed")
	}

	if err := s.confirmations.Confirm(ctx, confirmation.ID, now); err != nil {
		return nil, err
	}
	if err := s.users.SetActivated(ctx, confirmation.UserID, now); err != nil {
		return nil, err
	}

	confirmation.ConfirmedAt = &now
	metrics.ActivationsTotal.Inc()
	s.logger.Info().Str("user_id", confirmation.UserID).Msg("account activated")

	if s.welcome != nil {
		if user, err := s.users.FindByID(ctx, confirmation.UserID); err == nil {
			s.welcome.Enqueue(user.Email)
		}
	}

	return confirmation, nil
}

// Login verifies credentials and issues a token. Inactive accounts are
// refused before the token is issued.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a password mismatch so the caller cannot
			// probe which field was wrong.
			return "", nil, domain.NewError(domain.KindAuthentication, "Authentication data are not valid")
		}
		return "", nil, err
	}
	if !user.Activated {
		return "", nil, domain.NewError(domain.KindInactiveAccount, "account is not activated")
	}

	token, err := s.tokens.IssueToken(user, password)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.Inc()
	return token, user, nil
}

// ResendConfirmation re-sends the pending confirmation email. Re-sends are
// throttled per address via the guard.
func (s *AccountService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Activated {
		return domain.NewError(domain.KindAlreadyConfirmed, "account is already activated")
	}

	confirmation, err := s.confirmations.FindByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if confirmation.Expired(s.now().UTC()) {
		return domain.NewError(domain.KindOutdated, "registration confirmation deadline has passed")
	}

	if s.guard != nil {
		recent, err := s.guard.RecentlySent(ctx, email)
		if err != nil {
			return err
		}
		if recent {
			return domain.NewError(domain.KindTooManyRequests, "confirmation email was sent recently, try again later")
		}
	}

	return s.sendConfirmation(ctx, user, confirmation)
}

func (s *AccountService) sendConfirmation(ctx context.Context, user *domain.User, confirmation *domain.RegistrationConfirmation) error {
	err := s.mailer.SendConfirmation(ctx, user.Email, ports.ConfirmationMail{
		Code:         confirmation.Code,
		AllowedUpTo:  confirmation.AllowedUpTo,
		RegisteredAt: user.RegisteredAt,
	})
	if err != nil {
		metrics.EmailsTotal.WithLabelValues("confirmation", "error").Inc()
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("confirmation email failed")
		return domain.WrapError(domain.KindEmailSendingFailure, err, "sending confirmation email failed")
	}

	metrics.EmailsTotal.WithLabelValues("confirmation", "ok").Inc()
	if s.guard != nil {
		if err := s.guard.MarkSent(ctx, user.Email); err != nil {
			s.logger.Warn().Err(err).Msg("resend guard mark failed")
		}
	}
	return nil
}

// generateConfirmationCode returns an opaque 64-character hex code.
func generateConfirmationCode() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
