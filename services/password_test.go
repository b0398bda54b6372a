package services

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("ProducesSaltedDigest", func(t *testing.T) {
		digest, err := HashPassword("secret#123")
		if err != nil {
			t.Fatal("hashing failed:", err)
		}
		if !strings.Contains(digest, "$") {
			t.Fatal("digest missing salt separator")
		}
	})

	t.Run("SamePlaintextDifferentDigests", func(t *testing.T) {
		first, err := HashPassword("secret#123")
		if err != nil {
			t.Fatal("hashing failed:", err)
		}
		second, err := HashPassword("secret#123")
		if err != nil {
			t.Fatal("hashing failed:", err)
		}
		if first == second {
			t.Fatal("repeated hashing must produce different digests")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("secret#123")
	if err != nil {
		t.Fatal("hashing failed:", err)
	}

	t.Run("CorrectPassword", func(t *testing.T) {
		if !VerifyPassword(digest, "secret#123") {
			t.Fatal("correct password must verify")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if VerifyPassword(digest, "wrong#456") {
			t.Fatal("wrong password must not verify")
		}
	})

	t.Run("MalformedDigestVerifiesFalse", func(t *testing.T) {
		for _, bad := range []string{"", "nodollar", "a$b$c", "!!!$???"} {
			if VerifyPassword(bad, "secret#123") {
				t.Fatalf("malformed digest %q must verify false", bad)
			}
		}
	})
}
