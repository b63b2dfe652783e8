package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_CorrectCredentials(t *testing.T) {
	gate, err := NewGate("admin", "s3cret")
	require.NoError(t, err)

	assert.NoError(t, gate.Authenticate("admin", "s3cret"))
}

func TestGate_WrongPassword(t *testing.T) {
	gate, err := NewGate("admin", "s3cret")
	require.NoError(t, err)

	err = gate.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGate_WrongUsername(t *testing.T) {
	gate, err := NewGate("admin", "s3cret")
	require.NoError(t, err)

	err = gate.Authenticate("intruder", "s3cret")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGate_Username(t *testing.T) {
	gate, err := NewGate("admin", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "admin", gate.Username())
}
