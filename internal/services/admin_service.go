package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrBadPassword = errors.New("invalid admin password")
	ErrBadToken    = errors.New("invalid or expired token")
)

const tokenTTL = 24 * time.Hour

// AdminService gates the back-office. The password check is a plain
// constant comparison against the configured value; there are no admin
// accounts. A successful login is carried forward as a signed bearer token.
type AdminService struct {
	Password string
	Secret   []byte
}

func NewAdminService(password, secret string) *AdminService {
	return &AdminService{Password: password, Secret: []byte(secret)}
}

func (s *AdminService) Login(password string) (string, error) {
	if password == "" || password != s.Password {
		return "", ErrBadPassword
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify checks signature, expiry and subject.
func (s *AdminService) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return ErrBadToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != "admin" {
		return ErrBadToken
	}
	return nil
}
