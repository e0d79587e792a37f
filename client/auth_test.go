package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewMemoryStore())
}

func TestRegisterValidation(t *testing.T) {
	mgr := newManager(t)

	assert.ErrorIs(t, mgr.Register("ab", "123456"), ErrValidation)
	assert.ErrorIs(t, mgr.Register(strings.Repeat("x", 21), "123456"), ErrValidation)
	assert.ErrorIs(t, mgr.Register("alice", "12345"), ErrValidation)

	// Boundary values are accepted.
	assert.NoError(t, mgr.Register("abc", "123456"))
	assert.NoError(t, mgr.Register(strings.Repeat("x", 20), "123456"))
}

func TestRegisterDuplicate(t *testing.T) {
	mgr := newManager(t)

	require.NoError(t, mgr.Register("alice", "secret1"))
	assert.ErrorIs(t, mgr.Register("alice", "another1"), ErrConflict)

	// First account untouched: original password still works.
	_, err := mgr.Login("alice", "secret1", false)
	assert.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))

	_, wrongPassword := mgr.Login("alice", "wrong12", false)
	_, missingUser := mgr.Login("bob", "secret1", false)

	assert.ErrorIs(t, wrongPassword, ErrAuth)
	assert.ErrorIs(t, missingUser, ErrAuth)
	// The two failure modes are indistinguishable.
	assert.Equal(t, wrongPassword.Error(), missingUser.Error())
}

func TestLoginSuccess(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))

	session, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.IsPro)
	assert.False(t, mgr.IsPro())
	assert.True(t, mgr.IsLoggedIn())
	assert.False(t, mgr.AutoLogin())

	current := mgr.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)
}

func TestLoginRememberMe(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))

	_, err := mgr.Login("alice", "secret1", true)
	require.NoError(t, err)
	assert.True(t, mgr.AutoLogin())

	// Logging in again without rememberMe clears the flag.
	_, err = mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	assert.False(t, mgr.AutoLogin())
}

func TestLogoutFlushesQuestionCount(t *testing.T) {
	mgr := newManager(t)
	gate := NewQuotaGate(mgr, 200, nil)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		gate.Increment()
	}
	require.NoError(t, mgr.Logout())
	assert.False(t, mgr.IsLoggedIn())

	// Counter survived the logout round trip.
	session, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	assert.False(t, session.IsPro)
	assert.Equal(t, 5, gate.Played())
}

func TestUpgradePersistsAndMirrors(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)

	require.NoError(t, mgr.UpgradeToPro("alice"))

	// Cached flag and session snapshot both flipped.
	assert.True(t, mgr.IsPro())
	assert.True(t, mgr.CurrentSession().IsPro)

	// Persisted, not just cached: visible to a fresh login.
	require.NoError(t, mgr.Logout())
	session, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)
	assert.True(t, session.IsPro)
	assert.True(t, mgr.IsPro())
}

func TestUpgradeUnknownUser(t *testing.T) {
	mgr := newManager(t)
	assert.ErrorIs(t, mgr.UpgradeToPro("nobody"), ErrNotFound)
}

func TestUpgradeCurrentRequiresSession(t *testing.T) {
	mgr := newManager(t)
	assert.ErrorIs(t, mgr.UpgradeCurrent(), ErrUnauthenticated)

	_, err := mgr.PlayAsGuest()
	require.NoError(t, err)
	assert.ErrorIs(t, mgr.UpgradeCurrent(), ErrUnauthenticated)
}

func TestRefresh(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)

	// Flip the flag behind the cache's back.
	users, err := mgr.AllUsers()
	require.NoError(t, err)
	account := users["alice"]
	account.IsPro = true
	users["alice"] = account
	require.NoError(t, mgr.saveUsers(users))

	assert.False(t, mgr.IsPro(), "cache is stale until refresh")
	require.NoError(t, mgr.Refresh())
	assert.True(t, mgr.IsPro())
}

func TestGuestSession(t *testing.T) {
	mgr := newManager(t)

	session, err := mgr.PlayAsGuest()
	require.NoError(t, err)
	assert.True(t, session.IsGuest)
	assert.False(t, session.IsPro)
	assert.False(t, mgr.AutoLogin())

	// Guests never enter the users DB.
	users, err := mgr.AllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	// Guest stats are dropped silently.
	assert.NoError(t, mgr.UpdateStats(Stats{TotalWords: 10}))
	users, _ = mgr.AllUsers()
	assert.Empty(t, users)
}

func TestUpdateAvatar(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)

	require.NoError(t, mgr.UpdateAvatar("🧙"))
	assert.Equal(t, "🧙", mgr.CurrentSession().Avatar)

	users, err := mgr.AllUsers()
	require.NoError(t, err)
	assert.Equal(t, "🧙", users["alice"].Avatar)
}

func TestUpdateStats(t *testing.T) {
	mgr := newManager(t)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err := mgr.Login("alice", "secret1", false)
	require.NoError(t, err)

	stats := Stats{TotalWords: 50, CorrectAnswers: 40, WrongAnswers: 10, Accuracy: 80, Streak: 7}
	require.NoError(t, mgr.UpdateStats(stats))

	users, err := mgr.AllUsers()
	require.NoError(t, err)
	assert.Equal(t, stats, users["alice"].Stats)
}

func TestFileStorePersists(t *testing.T) {
	path := t.TempDir() + "/store.json"

	store, err := NewFileStore(path)
	require.NoError(t, err)
	mgr := NewManager(store)
	require.NoError(t, mgr.Register("alice", "secret1"))
	_, err = mgr.Login("alice", "secret1", true)
	require.NoError(t, err)

	// Reopen the file: session and account survive.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	mgr2 := NewManager(reopened)
	assert.True(t, mgr2.IsLoggedIn())
	assert.True(t, mgr2.AutoLogin())
	users, err := mgr2.AllUsers()
	require.NoError(t, err)
	assert.Contains(t, users, "alice")
}
