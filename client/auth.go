package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vocabgame/backend/utils"
)

const DefaultAvatar = "👨‍🚀"
const guestAvatar = "👤"

// Stats mirrors the server's stats block.
type Stats struct {
	TotalWords     int        `json:"totalWords"`
	CorrectAnswers int        `json:"correctAnswers"`
	WrongAnswers   int        `json:"wrongAnswers"`
	Accuracy       float64    `json:"accuracy"`
	Streak         int        `json:"streak"`
	LastPlayedDate *time.Time `json:"lastPlayedDate,omitempty"`
}

// Account is a local user record, keyed by username in the users DB.
type Account struct {
	PasswordHash  string     `json:"password"`
	CreatedAt     time.Time  `json:"createdAt"`
	IsPro         bool       `json:"isPro"`
	UpgradedAt    *time.Time `json:"upgradedAt,omitempty"`
	QuestionCount int        `json:"questionCount"`
	Avatar        string     `json:"avatar"`
	Stats         Stats      `json:"stats"`
}

// Session is the current-login snapshot. The local variant holds at
// most one; IsPro here is a cached copy of the account flag.
type Session struct {
	Username string    `json:"username"`
	IsPro    bool      `json:"isPro"`
	LoginAt  time.Time `json:"loginAt"`
	Avatar   string    `json:"avatar"`
	IsGuest  bool      `json:"isGuest,omitempty"`
}

// Manager is the local-variant auth service: registration, login,
// session snapshot, entitlement flag and account mutations, all
// against the injected Store.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Register creates a free-tier account. Length constraints are checked
// before uniqueness; nothing is written on failure.
func (m *Manager) Register(username, password string) error {
	if len(username) < 3 || len(username) > 20 {
		return fmt.Errorf("%w: username must be 3-20 characters", ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	users, err := m.AllUsers()
	if err != nil {
		return err
	}
	if _, exists := users[username]; exists {
		return ErrConflict
	}

	users[username] = Account{
		PasswordHash: utils.HashPassword(password),
		CreatedAt:    time.Now(),
		IsPro:        false,
		Avatar:       DefaultAvatar,
	}
	return m.saveUsers(users)
}

// Login verifies credentials and installs the session snapshot plus
// the fast-path copies of the quota counter and pro flag. Unknown
// usernames and wrong passwords fail identically.
func (m *Manager) Login(username, password string, rememberMe bool) (*Session, error) {
	users, err := m.AllUsers()
	if err != nil {
		return nil, err
	}

	account, ok := users[username]
	if !ok {
		return nil, ErrAuth
	}
	if account.PasswordHash != utils.HashPassword(password) {
		return nil, ErrAuth
	}

	avatar := account.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	session := &Session{
		Username: username,
		IsPro:    account.IsPro,
		LoginAt:  time.Now(),
		Avatar:   avatar,
	}

	if err := m.setSession(session); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyQuestionCount, strconv.Itoa(account.QuestionCount)); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyIsPro, strconv.FormatBool(account.IsPro)); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyAvatar, avatar); err != nil {
		return nil, err
	}

	if rememberMe {
		if err := m.store.Set(keyAutoLogin, "true"); err != nil {
			return nil, err
		}
	} else if err := m.store.Delete(keyAutoLogin); err != nil {
		return nil, err
	}

	return session, nil
}

// PlayAsGuest starts a free-tier session that never touches the users
// DB and is never auto-logged-in.
func (m *Manager) PlayAsGuest() (*Session, error) {
	session := &Session{
		Username: "Guest",
		IsPro:    false,
		LoginAt:  time.Now(),
		Avatar:   guestAvatar,
		IsGuest:  true,
	}

	if err := m.setSession(session); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyQuestionCount, "0"); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyIsPro, "false"); err != nil {
		return nil, err
	}
	if err := m.store.Set(keyAvatar, guestAvatar); err != nil {
		return nil, err
	}
	if err := m.store.Delete(keyAutoLogin); err != nil {
		return nil, err
	}

	return session, nil
}

// Logout flushes the quota counter back into the account record, then
// clears every session-scoped key.
func (m *Manager) Logout() error {
	current := m.CurrentSession()
	if current != nil && !current.IsGuest {
		users, err := m.AllUsers()
		if err != nil {
			return err
		}
		if account, ok := users[current.Username]; ok {
			account.QuestionCount = m.storedQuestionCount()
			users[current.Username] = account
			if err := m.saveUsers(users); err != nil {
				return err
			}
		}
	}

	for _, key := range []string{
		keySession, keyQuestionCount, keyIsPro,
		keyAutoLogin, keyTheme, keyAvatar,
	} {
		if err := m.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// CurrentSession returns the held session snapshot, or nil when logged
// out. Pure read.
func (m *Manager) CurrentSession() *Session {
	raw, ok := m.store.Get(keySession)
	if !ok {
		return nil
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil
	}
	return &session
}

func (m *Manager) IsLoggedIn() bool {
	return m.CurrentSession() != nil
}

// IsPro reads the cached entitlement flag, not the users DB. The
// cache can go stale until Refresh or the next login.
func (m *Manager) IsPro() bool {
	v, _ := m.store.Get(keyIsPro)
	return v == "true"
}

// AutoLogin reports whether the last login asked to be remembered.
func (m *Manager) AutoLogin() bool {
	v, _ := m.store.Get(keyAutoLogin)
	return v == "true"
}

// Refresh re-reads the current account from the users DB and rewrites
// the cached pro flag and session snapshot from source of truth.
func (m *Manager) Refresh() error {
	current := m.CurrentSession()
	if current == nil {
		return ErrUnauthenticated
	}
	if current.IsGuest {
		return nil
	}

	users, err := m.AllUsers()
	if err != nil {
		return err
	}
	account, ok := users[current.Username]
	if !ok {
		return ErrNotFound
	}

	current.IsPro = account.IsPro
	if account.Avatar != "" {
		current.Avatar = account.Avatar
	}
	if err := m.setSession(current); err != nil {
		return err
	}
	return m.store.Set(keyIsPro, strconv.FormatBool(account.IsPro))
}

// UpgradeToPro flips the account's pro flag. If the account owns the
// active session, the cached copies are updated in the same call so
// the stored flag and the visible flag never diverge.
func (m *Manager) UpgradeToPro(username string) error {
	users, err := m.AllUsers()
	if err != nil {
		return err
	}
	account, ok := users[username]
	if !ok {
		return ErrNotFound
	}

	now := time.Now()
	account.IsPro = true
	account.UpgradedAt = &now
	users[username] = account
	if err := m.saveUsers(users); err != nil {
		return err
	}

	if current := m.CurrentSession(); current != nil && current.Username == username {
		current.IsPro = true
		if err := m.setSession(current); err != nil {
			return err
		}
		if err := m.store.Set(keyIsPro, "true"); err != nil {
			return err
		}
	}
	return nil
}

// UpgradeCurrent is the self-upgrade form of UpgradeToPro.
func (m *Manager) UpgradeCurrent() error {
	current := m.CurrentSession()
	if current == nil || current.IsGuest {
		return ErrUnauthenticated
	}
	return m.UpgradeToPro(current.Username)
}

// UpdateAvatar changes the session avatar and, for real accounts,
// persists it on the record.
func (m *Manager) UpdateAvatar(emoji string) error {
	current := m.CurrentSession()
	if current == nil {
		return ErrUnauthenticated
	}

	if err := m.store.Set(keyAvatar, emoji); err != nil {
		return err
	}
	current.Avatar = emoji
	if err := m.setSession(current); err != nil {
		return err
	}

	if current.IsGuest {
		return nil
	}
	users, err := m.AllUsers()
	if err != nil {
		return err
	}
	if account, ok := users[current.Username]; ok {
		account.Avatar = emoji
		users[current.Username] = account
		return m.saveUsers(users)
	}
	return nil
}

// UpdateStats replaces the current account's stats block. Guest
// sessions keep nothing.
func (m *Manager) UpdateStats(stats Stats) error {
	current := m.CurrentSession()
	if current == nil || current.IsGuest {
		return nil
	}

	users, err := m.AllUsers()
	if err != nil {
		return err
	}
	if account, ok := users[current.Username]; ok {
		account.Stats = stats
		users[current.Username] = account
		return m.saveUsers(users)
	}
	return nil
}

// AllUsers decodes the users DB. An absent key is an empty DB.
func (m *Manager) AllUsers() (map[string]Account, error) {
	raw, ok := m.store.Get(keyUsersDB)
	if !ok {
		return map[string]Account{}, nil
	}
	users := map[string]Account{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("corrupt users db: %w", err)
	}
	return users, nil
}

func (m *Manager) saveUsers(users map[string]Account) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return m.store.Set(keyUsersDB, string(data))
}

func (m *Manager) setSession(session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return m.store.Set(keySession, string(data))
}

func (m *Manager) storedQuestionCount() int {
	raw, ok := m.store.Get(keyQuestionCount)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
