package domain

import "fmt"

// ErrorKind is the closed taxonomy of business failures. The kind string is
// what API clients receive in the error envelope's extensions.code field.
type ErrorKind string

const (
	KindAuthentication      ErrorKind = "AuthenticationError"
	KindInvalidToken        ErrorKind = "InvalidTokenError"
	KindInactiveAccount     ErrorKind = "InactiveAccountError"
	KindEntityAlreadyExists ErrorKind = "EntityAlreadyExistsError"
	KindDuplicateEntry      ErrorKind = "DuplicateEntryError"
	KindNotFound            ErrorKind = "NotFoundError"
	KindAlreadyConfirmed    ErrorKind = "AlreadyConfirmedError"
	KindOutdated            ErrorKind = "OutdatedError"
	KindEmailSendingFailure ErrorKind = "EmailSendingFailureError"
	KindValidation          ErrorKind = "ArgumentValidationError"
	KindTooManyRequests     ErrorKind = "TooManyRequestsError"
)

// FieldViolation describes a single failed constraint on one input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a kind-tagged business error. Every failure the core surfaces to
// the API boundary is one of these; anything else is treated as an unexpected
// infrastructure error and passed through unchanged.
type Error struct {
	Kind       ErrorKind
	Message    string
	Violations []FieldViolation
	cause      error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches on kind only, so errors.Is(err, domain.ErrNotFound) works for
// any NotFoundError regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds a kind-tagged error with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError tags an underlying error with a kind while keeping it reachable
// via errors.Unwrap.
func WrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// NewValidationError aggregates field-level violations under a single error.
func NewValidationError(violations []FieldViolation) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    "Argument Validation Error",
		Violations: violations,
	}
}

// Kind-matching sentinels for errors.Is checks.
var (
	ErrAuthentication      = &Error{Kind: KindAuthentication}
	ErrInvalidToken        = &Error{Kind: KindInvalidToken}
	ErrInactiveAccount     = &Error{Kind: KindInactiveAccount}
	ErrEntityAlreadyExists = &Error{Kind: KindEntityAlreadyExists}
	ErrDuplicateEntry      = &Error{Kind: KindDuplicateEntry}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrAlreadyConfirmed    = &Error{Kind: KindAlreadyConfirmed}
	ErrOutdated            = &Error{Kind: KindOutdated}
	ErrEmailSendingFailure = &Error{Kind: KindEmailSendingFailure}
	ErrValidation          = &Error{Kind: KindValidation}
	ErrTooManyRequests     = &Error{Kind: KindTooManyRequests}
)
