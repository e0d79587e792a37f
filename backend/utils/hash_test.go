package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	first := HashPassword("secret1")
	second := HashPassword("secret1")
	assert.Equal(t, first, second, "digest must be deterministic")
	assert.Len(t, first, 64)

	other := HashPassword("secret2")
	assert.NotEqual(t, first, other)
}

func TestGenerateSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken(42)
		assert.NoError(t, err)
		assert.Len(t, token, 64)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}

	// Same user, different randomness: token does not leak identity.
	a, _ := GenerateSessionToken(1)
	b, _ := GenerateSessionToken(1)
	assert.NotEqual(t, a, b)
}

func TestGeneratePaymentID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GeneratePaymentID()
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "PAY"))
		assert.False(t, seen[id], "payment ids must not repeat")
		seen[id] = true
	}
}
