package ports

import (
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// TokenClaims is the verified identity carried by a validated bearer token.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

// TokenService issues signed tokens on login and validates bearer headers on
// inbound requests.
type TokenService interface {
	// IssueToken checks the plaintext password against the user's stored
	// hash and, on success, returns a signed token carrying the user's
	// identity and role.
	IssueToken(user *domain.User, password string) (string, error)

	// ValidateToken checks an Authorization header value in order: bearer
	// shape, signature and expiry, known role, then membership in the
	// required roles (an empty set admits any authenticated role). Any
	// failure is an InvalidTokenError.
	ValidateToken(header string, required ...domain.Role) (TokenClaims, error)
}
