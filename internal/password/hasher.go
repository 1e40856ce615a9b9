// Package password derives salted password digests for account storage.
package password

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

const (
	// SaltSize is the number of random bytes in a freshly generated salt.
	SaltSize = 16
	// KeySize is the digest length in bytes.
	KeySize = 32
)

// Hasher derives password digests with argon2id.
//
// Every derivation allocates memKiB of memory, so peak usage is about
// memKiB times maxConcurrent. Callers beyond that limit wait for a slot.
type Hasher struct {
	time   uint32
	memKiB uint32
	par    uint8
	sem    *semaphore.Weighted
}

// NewHasher creates a Hasher with the given argon2id cost parameters.
// maxConcurrent bounds simultaneous derivations; zero or less means no bound.
func NewHasher(time, memKiB uint32, par uint8, maxConcurrent int64) *Hasher {
	h := &Hasher{time: time, memKiB: memKiB, par: par}
	if maxConcurrent > 0 {
		h.sem = semaphore.NewWeighted(maxConcurrent)
	}
	return h
}

// Hash returns the digest of password under salt. It is deterministic for
// fixed parameters.
func (h *Hasher) Hash(password string, salt []byte) []byte {
	if h.sem != nil {
		// Acquire only fails on a done context.
		_ = h.sem.Acquire(context.Background(), 1)
		defer h.sem.Release(1)
	}
	return argon2.IDKey([]byte(password), salt, h.time, h.memKiB, h.par, KeySize)
}

// NewSalt returns SaltSize bytes from a cryptographically secure source.
func (h *Hasher) NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Verify reports whether password hashes to digest under salt.
func (h *Hasher) Verify(password string, salt, digest []byte) bool {
	return subtle.ConstantTimeCompare(h.Hash(password, salt), digest) == 1
}
