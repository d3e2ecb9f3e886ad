// Package auth implements the PIN guard: one-way digests of account PINs and
// constant-time verification. The guard holds no mutable state; given a stored
// digest it is pure, and it never reveals why verification failed.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	ledgererrors "ledger-simulation/internal/errors"

	"golang.org/x/crypto/sha3"
)

// MinPinLength is the minimum accepted PIN length in characters
const MinPinLength = 4

// Digest is a one-way SHA3-256 digest of a PIN, base64-encoded.
// The plaintext PIN is discarded immediately after hashing.
type Digest string

// HashPin validates and hashes a PIN. The returned digest is the only form in
// which the PIN is ever stored or compared.
func HashPin(pin string) (Digest, error) {
	if strings.TrimSpace(pin) == "" || len(pin) < MinPinLength {
		return "", ledgererrors.NewDomainError(ledgererrors.AccountInvalidPin, "pin", len(pin))
	}
	return digest(pin), nil
}

// Verify recomputes the digest for the candidate PIN and compares it in
// constant time. Returns false for any mismatch, including an empty digest.
func (d Digest) Verify(pin string) bool {
	if d == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(d), []byte(digest(pin))) == 1
}

func digest(pin string) Digest {
	sum := sha3.Sum256([]byte(pin))
	return Digest(base64.StdEncoding.EncodeToString(sum[:]))
}
