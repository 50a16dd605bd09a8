package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library

	"inventory_api/internal/domain"
	"inventory_api/internal/repository"
)

// Service is the authentication gate: it checks credentials, issues signed
// tokens and resolves tokens back to user records. The signing secret and
// token lifetime are fixed at construction; there is no package-level key
// state.
type Service struct {
	users  repository.UserRepositoryI
	secret []byte
	ttl    time.Duration
}

// NewService builds a gate signing with the given secret. Tokens expire ttl
// after issuance.
func NewService(users repository.UserRepositoryI, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), ttl: ttl}
}

// Authenticate returns the user iff one with the given username exists and
// its stored password equals the supplied one byte for byte. A credential
// mismatch is not an error: the caller gets (nil, nil) and must treat it as
// failed authentication.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password {
		return nil, nil
	}
	return u, nil
}

// IssueToken signs an HS256 token carrying the user id as the subject claim,
// with issued-at and expiry timestamps.
func (s *Service) IssueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveIdentity verifies the token's signature and expiry, then loads the
// user it was issued to. Any defect (bad signature, expired, malformed
// subject, unknown user) yields nil and the caller must reject the request as
// unauthorized.
func (s *Service) ResolveIdentity(ctx context.Context, tokenStr string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, nil
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, nil
	}
	return s.users.FindByID(ctx, uint(id))
}
