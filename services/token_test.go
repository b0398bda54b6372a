package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssueAndValidate(t *testing.T) {
	tokens := NewTokenService("test_secret_key", time.Hour)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := tokens.Issue("user-123")
		if err != nil {
			t.Fatal("issue failed:", err)
		}

		subject, err := tokens.Validate(token)
		if err != nil {
			t.Fatal("validate failed:", err)
		}
		if subject != "user-123" {
			t.Fatalf("expected subject user-123, got %s", subject)
		}
	})

	t.Run("GarbageTokenIsMalformed", func(t *testing.T) {
		_, err := tokens.Validate("not.a.token")
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected malformed error, got %v", err)
		}
	})

	t.Run("WrongSecretIsMalformed", func(t *testing.T) {
		other := NewTokenService("another_secret", time.Hour)
		token, err := other.Issue("user-123")
		if err != nil {
			t.Fatal("issue failed:", err)
		}

		_, err = tokens.Validate(token)
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected malformed error, got %v", err)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "user-123",
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test_secret_key"))
		if err != nil {
			t.Fatal("signing failed:", err)
		}

		_, err = tokens.Validate(expired)
		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected expired error, got %v", err)
		}
	})

	t.Run("MissingSubjectIsMalformed", func(t *testing.T) {
		claims := jwt.MapClaims{
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test_secret_key"))
		if err != nil {
			t.Fatal("signing failed:", err)
		}

		_, err = tokens.Validate(token)
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected malformed error, got %v", err)
		}
	})

	t.Run("ShorterCallerTTL", func(t *testing.T) {
		token, err := tokens.IssueWithTTL("user-123", time.Minute)
		if err != nil {
			t.Fatal("issue failed:", err)
		}

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte("test_secret_key"), nil
		})
		if err != nil {
			t.Fatal("parse failed:", err)
		}
		exp, err := parsed.Claims.GetExpirationTime()
		if err != nil {
			t.Fatal(err)
		}
		if time.Until(exp.Time) > 2*time.Minute {
			t.Fatalf("expected ~1m expiry, got %v", time.Until(exp.Time))
		}
	})

	t.Run("TTLCapsAtDefault", func(t *testing.T) {
		capped := NewTokenService("test_secret_key", 100*24*time.Hour)
		if capped.ttl != DefaultTokenTTL {
			t.Fatalf("expected ttl capped at %v, got %v", DefaultTokenTTL, capped.ttl)
		}
	})
}
