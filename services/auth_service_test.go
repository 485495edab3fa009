package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestAuthLogin(t *testing.T) {
	svc, err := NewAuthService("ks2025", "test-secret")
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.Login(ctx, "wrong"); !errors.Is(err, ErrInvalidAdminPassword) {
		t.Errorf("Login() with wrong password = %v, want ErrInvalidAdminPassword", err)
	}
	if _, err := svc.Login(ctx, ""); !errors.Is(err, ErrInvalidAdminPassword) {
		t.Errorf("Login() with empty password = %v, want ErrInvalidAdminPassword", err)
	}

	token, err := svc.Login(ctx, "ks2025")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned an empty token")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("token parse error: %v", err)
	}
	if !parsed.Valid {
		t.Error("issued token is not valid")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("token role = %q, want admin", role)
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token has no expiry claim")
	}
}

func TestAuthTokenRejectsWrongSecret(t *testing.T) {
	svc, err := NewAuthService("ks2025", "test-secret")
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}

	token, err := svc.Login(context.Background(), "ks2025")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	_, err = jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	if err == nil {
		t.Error("token must not verify under a different secret")
	}
}
