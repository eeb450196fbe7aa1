package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.GenerateAccessToken("rahim@example.com", []string{"member"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := tm.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "rahim@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "member" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if claims.Issuer != "thikana-api" {
		t.Fatalf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestTokenManager_ValidateToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		tm := NewTokenManager("test-secret")
		_, err := tm.ValidateToken("not-a-token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenManager("secret-a").GenerateAccessToken("rahim@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = NewTokenManager("secret-b").ValidateToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		secret := []byte("test-secret")
		claims := UserClaims{
			Email: "rahim@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = NewTokenManager("test-secret").ValidateToken(token)
		if !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("missing email claim", func(t *testing.T) {
		secret := []byte("test-secret")
		claims := UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = NewTokenManager("test-secret").ValidateToken(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{Email: "rahim@example.com"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = NewTokenManager("test-secret").ValidateToken(signed)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
