package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("HashPassword() = %q, want bcrypt encoded hash", hash)
	}
	if strings.Contains(hash, "correct-horse-battery-staple") {
		t.Error("HashPassword() leaked the plaintext into the hash")
	}
}

func TestVerifyPasswordCorrect(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if !VerifyPassword(password, hash) {
		t.Error("VerifyPassword() returned false for correct password")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() returned true for wrong password")
	}
}

func TestHashPasswordProducesDifferentHashes(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	if VerifyPassword("password", "invalid-hash-format") {
		t.Error("VerifyPassword() returned true for invalid hash format")
	}
}

func TestVerifyDummyAlwaysFalse(t *testing.T) {
	for _, password := range []string{"", "password", "anything-else"} {
		if VerifyDummy(password) {
			t.Errorf("VerifyDummy(%q) returned true", password)
		}
	}
}
