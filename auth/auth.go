// Package auth implements the administrator gate in front of the menu.
// The password is never held in plain text after startup: the configured
// value is hashed once and every attempt is compared with bcrypt.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrAccessDenied is returned for a wrong username or password. The two
// cases are deliberately not distinguished to the caller.
var ErrAccessDenied = errors.New("access denied")

// MaxAttempts is how many login tries the gate allows before the CLI
// gives up.
const MaxAttempts = 3

// Gate checks administrator credentials.
type Gate struct {
	username     string
	passwordHash []byte
}

// NewGate hashes the configured password and returns the gate.
func NewGate(username, password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{username: username, passwordHash: hash}, nil
}

// NewGateFromHash builds a gate around an already-hashed password, for
// deployments that keep the bcrypt hash in the environment.
func NewGateFromHash(username string, hash []byte) *Gate {
	return &Gate{username: username, passwordHash: hash}
}

// Authenticate verifies one username/password attempt.
func (g *Gate) Authenticate(username, password string) error {
	if username != g.username {
		return ErrAccessDenied
	}
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return ErrAccessDenied
	}
	return nil
}

// Username returns the administrator username, for prompts and logging.
func (g *Gate) Username() string {
	return g.username
}
