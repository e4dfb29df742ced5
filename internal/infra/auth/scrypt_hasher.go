// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"shelf/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	scryptSaltBytes = 16
	scryptKeyLen    = 64
	scryptN         = 1 << 14
	scryptR         = 8
	scryptP         = 1

	credentialSeparator = ":"
)

// scryptHasher stores passwords as "saltHex:derivedKeyHex".
// The hex salt string itself, not its decoded bytes, is the scrypt salt, so
// stored hashes stay verifiable across deployments.
type scryptHasher struct {
	n, r, p int
}

// NewScryptHasher is the constructor for scryptHasher.
func NewScryptHasher() service.PasswordHasher {
	return &scryptHasher{n: scryptN, r: scryptR, p: scryptP}
}

// Hash derives a 64-byte scrypt key under a fresh random salt.
func (h *scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, scryptSaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}
	saltHex := hex.EncodeToString(salt)

	key, err := h.derive(password, saltHex)
	if err != nil {
		return "", err
	}

	return saltHex + credentialSeparator + hex.EncodeToString(key), nil
}

// Check recomputes the key with the stored salt and compares in constant time.
func (h *scryptHasher) Check(password, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, credentialSeparator)
	if !ok || saltHex == "" || keyHex == "" || strings.Contains(keyHex, credentialSeparator) {
		return false
	}

	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	got, err := h.derive(password, saltHex)
	if err != nil {
		return false
	}

	// ConstantTimeCompare returns 0 for slices of different length.
	return subtle.ConstantTimeCompare(got, want) == 1
}

func (h *scryptHasher) derive(password, saltHex string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(saltHex), h.n, h.r, h.p, scryptKeyLen)
	if err != nil {
		return nil, errors.Wrap(err, "scrypt key derivation failed")
	}

	return key, nil
}
