package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[string]*domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.NewError(domain.KindDuplicateEntry, "duplicate entry %q", user.Email)
		}
	}
	r.nextID++
	created := *user
	created.ID = strconv.Itoa(r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) SetActivated(_ context.Context, id string, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Activated = true
	u.UpdatedAt = at
	return nil
}

type stubConfirmationRepo struct {
	byID   map[string]*domain.RegistrationConfirmation
	nextID int
}

func newStubConfirmationRepo() *stubConfirmationRepo {
	return &stubConfirmationRepo{byID: map[string]*domain.RegistrationConfirmation{}}
}

func (r *stubConfirmationRepo) Create(_ context.Context, c *domain.RegistrationConfirmation) (*domain.RegistrationConfirmation, error) {
	r.nextID++
	created := *c
	created.ID = strconv.Itoa(r.nextID)
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *stubConfirmationRepo) FindByCode(_ context.Context, code string) (*domain.RegistrationConfirmation, error) {
	for _, c := range r.byID {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubConfirmationRepo) FindByUserID(_ context.Context, userID string) (*domain.RegistrationConfirmation, error) {
	for _, c := range r.byID {
		if c.UserID == userID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubConfirmationRepo) Confirm(_ context.Context, id string, at time.Time) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Confirmed() {
		return domain.NewError(domain.KindAlreadyConfirmed, "registration is already confirmed")
	}
	c.ConfirmedAt = &at
	return nil
}

func (r *stubConfirmationRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	var deleted int64
	for id, c := range r.byID {
		if c.AllowedUpTo.Before(before) {
			delete(r.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

type stubMailer struct {
	confirmations []string
	welcomes      []string
	fail          bool
}

func (m *stubMailer) SendConfirmation(_ context.Context, to string, _ ports.ConfirmationMail) error {
	if m.fail {
		return fmt.Errorf("smtp: connection refused")
	}
	m.confirmations = append(m.confirmations, to)
	return nil
}

func (m *stubMailer) SendWelcome(_ context.Context, to string) error {
	m.welcomes = append(m.welcomes, to)
	return nil
}

type stubWelcomeQueue struct {
	enqueued []string
}

func (q *stubWelcomeQueue) Enqueue(email string) {
	q.enqueued = append(q.enqueued, email)
}

type stubResendGuard struct {
	sent map[string]bool
}

func (g *stubResendGuard) RecentlySent(_ context.Context, email string) (bool, error) {
	return g.sent[email], nil
}

func (g *stubResendGuard) MarkSent(_ context.Context, email string) error {
	if g.sent == nil {
		g.sent = map[string]bool{}
	}
	g.sent[email] = true
	return nil
}

type accountFixture struct {
	svc     *AccountService
	users   *stubUserRepo
	confs   *stubConfirmationRepo
	mailer  *stubMailer
	welcome *stubWelcomeQueue
	guard   *stubResendGuard
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	f := &accountFixture{
		users:   newStubUserRepo(),
		confs:   newStubConfirmationRepo(),
		mailer:  &stubMailer{},
		welcome: &stubWelcomeQueue{},
		guard:   &stubResendGuard{},
	}
	f.svc = NewAccountService(
		f.users,
		f.confs,
		NewTokenService(tokenTestSecret, time.Hour),
		f.mailer,
		f.welcome,
		f.guard,
		bcrypt.MinCost,
		time.Hour,
		zerolog.Nop(),
	)
	return f
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	first, err := f.svc.Register(ctx, "first@example.com", "password-one")
	if err != nil {
		t.Fatalf("Register first: %v", err)
	}
	if first.Role != domain.RoleAdmin {
		t.Errorf("first user role = %q, want %q", first.Role, domain.RoleAdmin)
	}
	if first.Activated {
		t.Error("new user must start inactive")
	}

	second, err := f.svc.Register(ctx, "second@example.com", "password-two")
	if err != nil {
		t.Fatalf("Register second: %v", err)
	}
	if second.Role != domain.RoleUser {
		t.Errorf("second user role = %q, want %q", second.Role, domain.RoleUser)
	}

	if len(f.mailer.confirmations) != 2 {
		t.Errorf("confirmation mails sent = %d, want 2", len(f.mailer.confirmations))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, "dup@example.com", "password-one"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := f.svc.Register(ctx, "dup@example.com", "password-two")
	if !errors.Is(err, domain.ErrEntityAlreadyExists) {
		t.Fatalf("expected EntityAlreadyExistsError, got %v", err)
	}
}

func TestRegisterMailFailureKeepsRecords(t *testing.T) {
	f := newAccountFixture(t)
	f.mailer.fail = true
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "kept@example.com", "password-one")
	if !errors.Is(err, domain.ErrEmailSendingFailure) {
		t.Fatalf("expected EmailSendingFailureError, got %v", err)
	}

	// User and confirmation survive the mail failure.
	user, err := f.users.FindByEmail(ctx, "kept@example.com")
	if err != nil {
		t.Fatalf("user was rolled back: %v", err)
	}
	if _, err := f.confs.FindByUserID(ctx, user.ID); err != nil {
		t.Fatalf("confirmation was rolled back: %v", err)
	}
}

func TestActivate(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user, err := f.svc.Register(ctx, "activate@example.com", "password-one")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	pending, err := f.confs.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}

	confirmed, err := f.svc.Activate(ctx, pending.Code)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if confirmed.ConfirmedAt == nil {
		t.Fatal("ConfirmedAt not set")
	}

	activated, err := f.users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !activated.Activated {
		t.Error("user not activated")
	}
	if len(f.welcome.enqueued) != 1 || f.welcome.enqueued[0] != "activate@example.com" {
		t.Errorf("welcome queue = %v", f.welcome.enqueued)
	}

	// Second attempt with the same code.
	_, err = f.svc.Activate(ctx, pending.Code)
	if !errors.Is(err, domain.ErrAlreadyConfirmed) {
		t.Fatalf("expected AlreadyConfirmedError, got %v", err)
	}
}

func TestActivateUnknownCode(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.svc.Activate(context.Background(), "no-such-code")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestActivateDeadline(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user, err := f.svc.Register(ctx, "deadline@example.com", "password-one")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	pending, err := f.confs.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}

	// Exactly at the deadline the code is still good.
	f.svc.now = func() time.Time { return pending.AllowedUpTo }
	if _, err := f.svc.Activate(ctx, pending.Code); err != nil {
		t.Fatalf("Activate at deadline: %v", err)
	}

	// A second registration, checked one nanosecond past its deadline.
	late, err := f.svc.Register(ctx, "late@example.com", "password-two")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	latePending, err := f.confs.FindByUserID(ctx, late.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	f.svc.now = func() time.Time { return latePending.AllowedUpTo.Add(time.Nanosecond) }

	_, err = f.svc.Activate(ctx, latePending.Code)
	if !errors.Is(err, domain.ErrOutdated) {
		t.Fatalf("expected OutdatedError, got %v", err)
	}

	// The expired record stays for the cleanup job.
	if _, err := f.confs.FindByCode(ctx, latePending.Code); err != nil {
		t.Fatalf("expired confirmation removed early: %v", err)
	}
}

func TestLogin(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	user, err := f.svc.Register(ctx, "login@example.com", "password-one")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Inactive account is refused even with the right password.
	_, _, err = f.svc.Login(ctx, "login@example.com", "password-one")
	if !errors.Is(err, domain.ErrInactiveAccount) {
		t.Fatalf("expected InactiveAccountError, got %v", err)
	}

	pending, err := f.confs.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if _, err := f.svc.Activate(ctx, pending.Code); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	token, logged, err := f.svc.Login(ctx, "login@example.com", "password-one")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if logged.ID != user.ID {
		t.Errorf("logged in user = %q, want %q", logged.ID, user.ID)
	}

	// Unknown email and wrong password produce the same message.
	_, _, unknownErr := f.svc.Login(ctx, "ghost@example.com", "password-one")
	_, _, wrongErr := f.svc.Login(ctx, "login@example.com", "wrong")
	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected authentication failures")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}

func TestResendConfirmation(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, "resend@example.com", "password-one"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(f.mailer.confirmations) != 1 {
		t.Fatalf("mails after register = %d", len(f.mailer.confirmations))
	}

	// Register marked the address, so an immediate resend is throttled.
	err := f.svc.ResendConfirmation(ctx, "resend@example.com")
	if !errors.Is(err, domain.ErrTooManyRequests) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}

	f.guard.sent = map[string]bool{}
	if err := f.svc.ResendConfirmation(ctx, "resend@example.com"); err != nil {
		t.Fatalf("ResendConfirmation: %v", err)
	}
	if len(f.mailer.confirmations) != 2 {
		t.Errorf("mails after resend = %d, want 2", len(f.mailer.confirmations))
	}
}
