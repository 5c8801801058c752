// Package ledger holds the per-session cached view of the remote sales
// ledger. The cache is disposable: it is only ever a copy of some past
// state of the store and is rebuilt wholesale by Refresh.
package ledger

import "github.com/rifadigital/raffle/internal/model"

// Snapshot is an immutable point-in-time view of the ledger. Records keep
// store append order; sold lookup is precomputed. Snapshots are safe to
// share between goroutines because nothing mutates them after build.
type Snapshot struct {
	records []model.SaleRecord
	sold    map[model.TicketNumber]int // number -> record count
}

// NewSnapshot builds a snapshot from already-normalized records.
func NewSnapshot(records []model.SaleRecord) *Snapshot {
	s := &Snapshot{
		records: records,
		sold:    make(map[model.TicketNumber]int, len(records)),
	}
	for _, r := range records {
		s.sold[r.Number]++
	}
	return s
}

// Records returns the sale records in store order. Callers must not mutate
// the returned slice.
func (s *Snapshot) Records() []model.SaleRecord { return s.records }

// IsSold reports whether at least one record exists for n.
func (s *Snapshot) IsSold(n model.TicketNumber) bool { return s.sold[n] > 0 }

// CountFor returns how many records exist for n (more than one means a
// concurrent-sale duplicate).
func (s *Snapshot) CountFor(n model.TicketNumber) int { return s.sold[n] }
