package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// Claims are the JWT claims carried by a review session token.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService exchanges the shared review key for a session JWT and
// validates tokens on protected routes.
type AuthService interface {
	IssueToken(reviewKey string) (token string, expiresAt time.Time, err error)
	ValidateToken(token string) (*Claims, error)
}

type authService struct {
	cfg config.AuthConfig
}

// NewAuthService creates an AuthService.
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) IssueToken(reviewKey string) (string, time.Time, error) {
	if s.cfg.ReviewKey == "" ||
		subtle.ConstantTimeCompare([]byte(reviewKey), []byte(s.cfg.ReviewKey)) != 1 {
		return "", time.Time{}, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.TokenExpiry)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "reviewer",
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *authService) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
