package service

import (
	"context"
	"log"
	"strings"

	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/queue"
	"github.com/rifadigital/raffle/internal/report"
	"github.com/rifadigital/raffle/internal/repository"
)

// PublishFunc sends a committed-sale event to the broker. A nil func
// disables publishing (tests, broker-less dev runs).
type PublishFunc func(ctx context.Context, event queue.SaleCommittedEvent) error

// Reservation orchestrates sale attempts against the shared ledger store.
// One instance serves all sessions; the per-session state (the cache) is
// passed in by the caller. There is no locking around the store: appends
// are independent, the store never overwrites, and same-number races are
// reconciled after the fact by the duplicate report.
type Reservation struct {
	store   repository.LedgerStore
	publish PublishFunc
}

func NewReservation(store repository.LedgerStore, publish PublishFunc) *Reservation {
	return &Reservation{store: store, publish: publish}
}

// SaleInput is one sale attempt as entered by the seller.
type SaleInput struct {
	Number     string
	BuyerName  string
	BuyerDNI   string
	BuyerPhone string
}

// FreeNumbers refreshes the session cache and returns the currently free
// numbers in ascending order. The refresh keeps the safety contract: the
// offer is computed from a view no older than this call.
func (r *Reservation) FreeNumbers(ctx context.Context, cache *ledger.Cache) ([]model.TicketNumber, error) {
	if err := cache.Refresh(ctx); err != nil {
		return nil, &PersistenceError{Op: "refresh", Err: err}
	}
	return report.FreeNumbers(cache.Snapshot()), nil
}

// Sell validates the input, appends the sale to the store and refreshes
// the session cache so the number is observed as sold before the next
// offer. No local state is touched until the append succeeds; a failed
// append leaves the number free and is simply retryable by the caller.
// The returned event is the one handed to the publisher, so callers can
// relay its WhatsApp link without rebuilding it.
func (r *Reservation) Sell(ctx context.Context, cache *ledger.Cache, seller model.SellerID, in SaleInput) (model.SaleRecord, queue.SaleCommittedEvent, error) {
	// Validating. All of this happens before any network call.
	buyer := strings.TrimSpace(in.BuyerName)
	dni := strings.TrimSpace(in.BuyerDNI)
	rawPhone := strings.TrimSpace(in.BuyerPhone)
	if buyer == "" || dni == "" || rawPhone == "" {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, ErrIncompleteInput
	}
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, err
	}
	num, err := model.ParseNumber(strings.TrimSpace(in.Number))
	if err != nil {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, ErrInvalidNumber
	}

	if err := cache.EnsureFresh(ctx); err != nil {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, &PersistenceError{Op: "refresh", Err: err}
	}
	snap := cache.Snapshot()
	if len(report.FreeNumbers(snap)) == 0 {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, ErrNoNumbersAvailable
	}
	if snap.IsSold(num) {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, ErrNumberTaken
	}

	rec := model.SaleRecord{
		Number:     num,
		Seller:     seller,
		BuyerName:  buyer,
		BuyerDNI:   dni,
		BuyerPhone: phone,
	}

	// Committing.
	row := repository.RawRow{
		Numero:    string(rec.Number),
		Estado:    repository.EstadoVendido,
		Vendedor:  string(rec.Seller),
		Comprador: rec.BuyerName,
		DNI:       rec.BuyerDNI,
		Telefono:  rec.BuyerPhone,
	}
	if err := r.store.AppendSale(ctx, row); err != nil {
		return model.SaleRecord{}, queue.SaleCommittedEvent{}, &PersistenceError{Op: "append", Err: err}
	}

	// Committed. The sale is durable; a failed refresh only delays when
	// this session observes it, so log and move on.
	if err := cache.Refresh(ctx); err != nil {
		log.Printf("reservation: post-commit refresh failed: %v", err)
	}

	event := queue.NewSaleCommitted(rec)
	if r.publish != nil {
		if err := r.publish(ctx, event); err != nil {
			log.Printf("reservation: sale.committed publish failed: %v", err)
		}
	}
	return rec, event, nil
}

// Reset clears the store back to header-only and refreshes the cache.
// Irreversible; the boundary asks for explicit confirmation before
// calling this.
func (r *Reservation) Reset(ctx context.Context, cache *ledger.Cache) error {
	if err := r.store.Clear(ctx); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	if err := cache.Refresh(ctx); err != nil {
		return &PersistenceError{Op: "refresh", Err: err}
	}
	return nil
}
