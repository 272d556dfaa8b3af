package web

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher makes one-way password digests and checks passwords against them
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher implements Hasher with bcrypt, salt is random per call
type BcryptHasher struct {
	Cost int // bcrypt.DefaultCost if zero
}

// Hash returns bcrypt digest of the password
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks the password against bcrypt digest
func (b BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
