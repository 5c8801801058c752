package ledger

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/repository"
)

// Cache is one session's working copy of the ledger. Refresh re-reads the
// whole store and swaps the snapshot in one step, so readers see either
// the old view or the fully new one, never a partial mix. It may lag rows
// appended by other sessions until the next Refresh; it never contains a
// row the store does not have.
type Cache struct {
	store repository.LedgerStore

	mu        sync.RWMutex
	snap      *Snapshot
	refreshed bool
}

func NewCache(store repository.LedgerStore) *Cache {
	return &Cache{store: store, snap: NewSnapshot(nil)}
}

// Refresh rebuilds the snapshot from the store. Malformed rows are dropped
// from the view (and counted in the log), never repaired in place.
func (c *Cache) Refresh(ctx context.Context) error {
	rows, err := c.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	records, dropped := Normalize(rows)
	if dropped > 0 {
		log.Printf("ledger: dropped %d malformed row(s) on refresh", dropped)
	}
	snap := NewSnapshot(records)

	c.mu.Lock()
	c.snap = snap
	c.refreshed = true
	c.mu.Unlock()
	return nil
}

// EnsureFresh refreshes a cache that has never been refreshed and is a
// no-op otherwise. Safety-relevant reads call this so a session that
// skipped the free-numbers offer still decides against a real snapshot,
// while an already-synced session keeps its (possibly stale) view - the
// acknowledged race window between concurrent sellers.
func (c *Cache) EnsureFresh(ctx context.Context) error {
	c.mu.RLock()
	done := c.refreshed
	c.mu.RUnlock()
	if done {
		return nil
	}
	return c.Refresh(ctx)
}

// Snapshot returns the current view. Empty until the first Refresh.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Normalize converts raw stored rows into strict records: fields trimmed,
// seller uppercased, number zero-padded to three digits. Rows whose number
// fails the pattern or falls outside the number space are dropped, as are
// rows carrying a state other than Vendido (legacy placeholder rows).
func Normalize(rows []repository.RawRow) (records []model.SaleRecord, dropped int) {
	for _, row := range rows {
		estado := strings.TrimSpace(row.Estado)
		if estado != "" && !strings.EqualFold(estado, repository.EstadoVendido) {
			dropped++
			continue
		}
		num, err := model.ParseNumber(zeroPad(strings.TrimSpace(row.Numero)))
		if err != nil {
			dropped++
			continue
		}
		records = append(records, model.SaleRecord{
			Number:     num,
			Seller:     model.NormalizeSeller(row.Vendedor),
			BuyerName:  strings.TrimSpace(row.Comprador),
			BuyerDNI:   strings.TrimSpace(row.DNI),
			BuyerPhone: strings.TrimSpace(row.Telefono),
		})
	}
	return records, dropped
}

// zeroPad left-pads an all-digit string shorter than three characters.
// Anything else is returned unchanged and left to the pattern check.
func zeroPad(s string) string {
	if len(s) == 0 || len(s) >= 3 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return strings.Repeat("0", 3-len(s)) + s
}
