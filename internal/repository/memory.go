package repository

import (
	"context"
	"sync"
)

// MemoryStore is an in-process LedgerStore for tests and single-node dev
// runs (RAFFLE_STORE=memory). It mirrors the remote contract: append-only,
// no duplicate rejection, rows returned in append order.
type MemoryStore struct {
	mu   sync.RWMutex
	rows []RawRow

	// FailAppends makes AppendSale return this error, for exercising the
	// persistence-failure path in tests.
	FailAppends error
	// Appends counts AppendSale calls that reached the store.
	Appends int
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) AppendSale(_ context.Context, row RawRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appends++
	if m.FailAppends != nil {
		return m.FailAppends
	}
	m.rows = append(m.rows, row)
	return nil
}

func (m *MemoryStore) ReadAll(_ context.Context) ([]RawRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RawRow, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = nil
	return nil
}

// Seed replaces the stored rows wholesale. Test helper.
func (m *MemoryStore) Seed(rows ...RawRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append([]RawRow(nil), rows...)
}
