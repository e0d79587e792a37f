package client

import (
	"log"
	"strconv"

	"vocabgame/backend/config"
)

// QuotaGate enforces the free-tier question cap. Pro sessions bypass
// the gate entirely; the counter only grows except through AdminReset.
type QuotaGate struct {
	mgr    *Manager
	limit  int
	logger *log.Logger
}

// NewQuotaGate builds the gate. A non-positive limit falls back to
// config.DefaultFreeQuestionLimit, keeping the cap defined in exactly
// one place.
func NewQuotaGate(mgr *Manager, limit int, logger *log.Logger) *QuotaGate {
	if limit <= 0 {
		limit = config.DefaultFreeQuestionLimit
	}
	if logger == nil {
		logger = log.Default()
	}
	return &QuotaGate{mgr: mgr, limit: limit, logger: logger}
}

// Increment consumes one question. Pro accounts always pass without
// touching the counter; otherwise the new count is persisted (cache
// and account record) and the return value says whether the count is
// still within the limit.
func (q *QuotaGate) Increment() bool {
	if q.mgr.IsPro() {
		return true
	}

	count := q.Played() + 1
	if err := q.mgr.store.Set(keyQuestionCount, strconv.Itoa(count)); err != nil {
		q.logger.Printf("could not persist question count: %v", err)
	}
	q.syncAccount(count)

	return count <= q.limit
}

// CanContinue reports whether another question may be played.
func (q *QuotaGate) CanContinue() bool {
	if q.mgr.IsPro() {
		return true
	}
	return q.Played() < q.limit
}

// Remaining returns the questions left. unlimited is true for pro
// sessions, in which case the count is meaningless.
func (q *QuotaGate) Remaining() (n int, unlimited bool) {
	if q.mgr.IsPro() {
		return 0, true
	}
	n = q.limit - q.Played()
	if n < 0 {
		n = 0
	}
	return n, false
}

// Played returns the consumed-question count.
func (q *QuotaGate) Played() int {
	return q.mgr.storedQuestionCount()
}

// AdminReset zeroes the counter for the current account. There is no
// authorization check; the call is only logged.
func (q *QuotaGate) AdminReset() {
	q.logger.Printf("ADMIN: resetting question count")
	if err := q.mgr.store.Set(keyQuestionCount, "0"); err != nil {
		q.logger.Printf("could not persist question count: %v", err)
	}
	q.syncAccount(0)
}

func (q *QuotaGate) syncAccount(count int) {
	current := q.mgr.CurrentSession()
	if current == nil || current.IsGuest {
		return
	}
	users, err := q.mgr.AllUsers()
	if err != nil {
		q.logger.Printf("could not sync question count: %v", err)
		return
	}
	if account, ok := users[current.Username]; ok {
		account.QuestionCount = count
		users[current.Username] = account
		if err := q.mgr.saveUsers(users); err != nil {
			q.logger.Printf("could not sync question count: %v", err)
		}
	}
}
