package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing time against login latency.
const bcryptCost = 10

// dummyHash is a valid bcrypt hash that never corresponds to an issued
// password. Login code compares against it when the username does not
// resolve, so unknown-user and wrong-password attempts take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword hashes a password with bcrypt. The salt is generated and
// embedded in the returned encoded hash; the plaintext is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

// VerifyDummy burns a bcrypt comparison against a fixed hash. Always false.
func VerifyDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
