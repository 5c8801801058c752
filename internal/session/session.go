// Package session tracks active seller sessions. A session is the
// explicit per-seller context: the authenticated identity plus that
// session's own ledger cache. Sessions are created at login, looked up by
// the token's session id on every request, and dropped at logout. They
// are never shared between sellers and do not survive a restart.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/repository"
)

// Session is one seller's working context.
type Session struct {
	ID        string
	Seller    model.SellerID
	Cache     *ledger.Cache
	CreatedAt time.Time
}

// Manager owns the in-process session registry. Sessions live as long as
// the access token that names them: ttl matches the token TTL, so a
// session whose token can no longer pass auth is reclaimed along with
// its cached snapshot. ttl <= 0 disables expiry.
type Manager struct {
	store repository.LedgerStore
	ttl   time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(store repository.LedgerStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, sessions: make(map[string]*Session)}
}

// Create registers a new session for the seller with a fresh cache.
func (m *Manager) Create(seller model.SellerID) (*Session, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	s := &Session{
		ID:        hex.EncodeToString(buf),
		Seller:    seller,
		Cache:     ledger.NewCache(m.store),
		CreatedAt: time.Now().UTC(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the session for id, if it is still active. An expired
// session is dropped on lookup rather than handed back.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.expired(s, time.Now()) {
		m.Drop(id)
		return nil, false
	}
	return s, true
}

// Drop discards the session. The cache goes with it; a later login starts
// from a fresh refresh against the store.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep removes every expired session and reports how many went.
// Sessions that are never looked up again would otherwise pin their
// snapshots for the process lifetime.
func (m *Manager) Sweep() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.CreatedAt) > m.ttl
}
