package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid scope token")
	ErrExpiredToken = errors.New("scope token expired")
)

const issuer = "rental-booking"

// Claims carry the storage scope in the subject. The token only proves the
// scope was minted here; it is not an identity.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) Scope() string {
	return c.Subject
}

type Service struct {
	secretKey []byte
	maxAge    time.Duration
	now       func() time.Time
}

func NewService(secretKey string, maxAge time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		maxAge:    maxAge,
		now:       time.Now,
	}
}

// NewScope mints a fresh storage scope and its signed token.
func (s *Service) NewScope() (scope, token string, err error) {
	scope = uuid.NewString()
	token, err = s.Sign(scope)
	if err != nil {
		return "", "", err
	}
	return scope, token, nil
}

func (s *Service) Sign(scope string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   scope,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
