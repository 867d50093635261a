package auth

import (
	"fmt"

	"github.com/matthewhartstonge/argon2"
	"github.com/phrazzld/bookmark-api/internal/config"
)

// PasswordHasher turns plaintext passwords into self-describing digests and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns an encoded digest of password using a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded digest.
	// A malformed digest is treated as a mismatch.
	Verify(encoded, password string) bool
}

// Argon2Hasher implements PasswordHasher using argon2id in the PHC string format.
type Argon2Hasher struct {
	cfg argon2.Config
}

var _ PasswordHasher = (*Argon2Hasher)(nil)

// NewArgon2Hasher creates a hasher with the cost parameters from cfg.
// Zero values fall back to the library defaults.
func NewArgon2Hasher(cfg config.AuthConfig) *Argon2Hasher {
	c := argon2.DefaultConfig()
	c.Mode = argon2.ModeArgon2id
	if cfg.Argon2MemoryKiB > 0 {
		c.MemoryCost = cfg.Argon2MemoryKiB
	}
	if cfg.Argon2Iterations > 0 {
		c.TimeCost = cfg.Argon2Iterations
	}
	if cfg.Argon2Parallelism > 0 {
		c.Parallelism = cfg.Argon2Parallelism
	}
	return &Argon2Hasher{cfg: c}
}

// Hash implements PasswordHasher.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	encoded, err := h.cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordHashing, err)
	}
	return string(encoded), nil
}

// Verify implements PasswordHasher. Parameters are read from the digest itself,
// so digests produced under older cost settings keep verifying.
func (h *Argon2Hasher) Verify(encoded, password string) bool {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encoded))
	if err != nil {
		return false
	}
	return ok
}
