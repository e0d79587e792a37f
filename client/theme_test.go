package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeGateFreeAccount(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	gate := NewThemeGate(mgr)

	assert.Equal(t, FreeTheme, gate.Current())
	assert.Equal(t, []string{FreeTheme}, gate.Available())
	assert.True(t, gate.IsUnlocked(FreeTheme))
	assert.False(t, gate.IsUnlocked("space"))

	// Locked request falls back silently, never errors.
	applied, err := gate.Apply("space")
	require.NoError(t, err)
	assert.Equal(t, FreeTheme, applied)
	assert.Equal(t, FreeTheme, gate.Current())

	applied, err = gate.Apply(FreeTheme)
	require.NoError(t, err)
	assert.Equal(t, FreeTheme, applied)
}

func TestThemeGateProAccount(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	require.NoError(t, mgr.UpgradeToPro("alice"))
	gate := NewThemeGate(mgr)

	assert.Len(t, gate.Available(), 1+len(ProThemes))
	for _, theme := range ProThemes {
		assert.True(t, gate.IsUnlocked(theme))
		applied, err := gate.Apply(theme)
		require.NoError(t, err)
		assert.Equal(t, theme, applied)
		assert.Equal(t, theme, gate.Current())
	}
}
