package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/metrics"
)

const defaultTokenTTL = time.Hour

// TokenService issues and validates HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IssueToken compares the plaintext password against the stored bcrypt hash
// and signs a token for the user on success. The error never states whether
// the email or the password was wrong.
func (s *TokenService) IssueToken(user *domain.User, password string) (string, error) {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.NewError(domain.KindAuthentication, "Authentication data are not valid")
	}

	now := s.now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: string(user.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks an Authorization header value. The checks run in a
// fixed order, each with its own failure: bearer shape, signature and expiry,
// known role, required-role membership. An empty required set admits any
// authenticated role.
func (s *TokenService) ValidateToken(header string, required ...domain.Role) (ports.TokenClaims, error) {
	var none ports.TokenClaims

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		metrics.TokenFailuresTotal.WithLabelValues("shape").Inc()
		return none, domain.NewError(domain.KindInvalidToken, "authorization header does not match the Bearer token schema")
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		metrics.TokenFailuresTotal.WithLabelValues("verification").Inc()
		return none, domain.WrapError(domain.KindInvalidToken, err, "token verification failed: %v", err)
	}
	if !token.Valid {
		metrics.TokenFailuresTotal.WithLabelValues("verification").Inc()
		return none, domain.NewError(domain.KindInvalidToken, "token verification failed")
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		metrics.TokenFailuresTotal.WithLabelValues("unknown_role").Inc()
		return none, domain.NewError(domain.KindInvalidToken, "token carries unknown role %q", claims.Role)
	}

	if len(required) > 0 && !roleAllowed(role, required) {
		metrics.TokenFailuresTotal.WithLabelValues("forbidden_role").Inc()
		return none, domain.NewError(domain.KindInvalidToken, "role %s is not permitted to perform this operation", role)
	}

	return ports.TokenClaims{UserID: claims.Subject, Role: role}, nil
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
