package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tokoaing-store/internal/config"
)

var ErrWrongPassword = errors.New("wrong admin password")

type AdminAuthService interface {
	// Login checks the admin password against the configured bcrypt
	// hash and returns a short-lived signed token. The plaintext
	// password is never stored or compared client-side.
	Login(password string) (string, error)
	// VerifyToken validates a token previously issued by Login.
	VerifyToken(token string) error
}

type adminAuthServiceImpl struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAdminAuthService(cfg *config.Admin) AdminAuthService {
	return &adminAuthServiceImpl{
		passwordHash: []byte(cfg.PasswordHash),
		jwtSecret:    []byte(cfg.JWTSecret),
		tokenTTL:     cfg.TokenTTL,
	}
}

func (s *adminAuthServiceImpl) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrWrongPassword
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	return token.SignedString(s.jwtSecret)
}

func (s *adminAuthServiceImpl) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}
