package service

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// SecretHasher turns a password or PIN into a one-way digest and checks a
// candidate against it. Plaintext never leaves the call.
type SecretHasher interface {
	Digest(secret string) ([]byte, error)
	Matches(digest []byte, secret string) bool
}

// BcryptHasher salts every digest; Cost is the bcrypt work factor. Secrets
// are reduced to a fixed-size SHA-256 string first, so bcrypt's 72-byte
// input limit never truncates or rejects a long password.
type BcryptHasher struct {
	Cost int
}

var _ SecretHasher = BcryptHasher{}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Digest(secret string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(prehash(secret), h.Cost)
}

func (h BcryptHasher) Matches(digest []byte, secret string) bool {
	return bcrypt.CompareHashAndPassword(digest, prehash(secret)) == nil
}

// prehash is 44 bytes of base64, free of NUL bytes.
func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
