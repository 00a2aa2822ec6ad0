package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies admin bearer tokens. Tokens are not
// tracked server side: changing the admin credentials leaves issued tokens
// valid until they expire, while changing the secret invalidates all of them.
type TokenService struct {
	secret    []byte
	adminUser []byte
	adminPass []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenService(secret, adminUser, adminPass string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		adminUser: []byte(adminUser),
		adminPass: []byte(adminPass),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue checks the credential pair and returns a signed token with its expiry.
func (s *TokenService) Issue(username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), s.adminUser)
	passOK := subtle.ConstantTimeCompare([]byte(password), s.adminPass)
	if userOK&passOK != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrExpiredToken, err)
	}
	return claims, nil
}
