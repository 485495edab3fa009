package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthService обменивает общий админ-пароль на подписанный токен.
// Это не полноценная граница безопасности — один общий секрет на всех
// админов, без пользователей и ролей; токен лишь переносит флаг
// «админ-режим» между запросами.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	adminPasswordHash []byte
	jwtSecret         []byte
}

// NewAuthService хеширует общий пароль на старте, чтобы не держать его
// в памяти открытым и сравнивать через bcrypt.
func NewAuthService(adminPassword, jwtSecret string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		adminPasswordHash: hash,
		jwtSecret:         []byte(jwtSecret),
	}, nil
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidAdminPassword
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}
