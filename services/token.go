package services

import (
	"errors"
	"fmt"
	"time"

	"noteful/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Identity is the user subset a session token carries. It never holds
// the password digest.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// Claims embeds the identity under a "user" key with subject set to the
// username, matching the wire format clients already depend on.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. Verification
// is pure computation; nothing is persisted. The clock is injectable
// for expiry tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Test hook.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for the user with a fresh expiry.
func (s *TokenService) Issue(user *model.User) (string, error) {
	return s.issue(Identity{
		ID:       user.UserID,
		Username: user.Username,
		Fullname: user.Fullname,
	})
}

// Refresh re-issues a token from an already-verified identity. The
// caller is responsible for having verified it; the request gate
// guarantees that on the refresh route.
func (s *TokenService) Refresh(identity Identity) (string, error) {
	return s.issue(identity)
}

func (s *TokenService) issue(identity Identity) (string, error) {
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks the token, returning the embedded identity.
// Expired tokens report ErrTokenExpired; every other failure collapses
// to ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.User.ID == "" {
		return Identity{}, ErrTokenInvalid
	}

	return claims.User, nil
}
