package services

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// The salt is a fixed application constant, so the hash is deterministic:
// equal passwords always produce equal hashes. A production deployment should
// move to a per-user salt while keeping the HashPassword/VerifyPassword shape.
const (
	passwordSalt       = "miso-users-auth"
	passwordIterations = 4096
	passwordKeyLength  = 32
)

func HashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), []byte(passwordSalt), passwordIterations, passwordKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

func VerifyPassword(candidate, storedHash string) bool {
	return HashPassword(candidate) == storedHash
}
