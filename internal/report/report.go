// Package report derives per-seller and aggregate views from a ledger
// snapshot. Every function here is a pure function of its snapshot: no
// I/O, no refresh. Callers refresh first if they need current figures.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
)

var unitPrice = decimal.NewFromInt(model.UnitPrice)

// SellerSummary is one seller's sales as of a snapshot.
type SellerSummary struct {
	Seller  model.SellerID     `json:"seller"`
	Display string             `json:"display_name"`
	Count   int                `json:"count"`
	Revenue decimal.Decimal    `json:"revenue"`
	Rows    []model.SaleRecord `json:"rows"`
}

// GlobalSummary aggregates the whole ledger, grouped by seller.
type GlobalSummary struct {
	PerSeller    []SellerSummary `json:"per_seller"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// FreeNumbers returns the number space minus sold numbers, ascending.
func FreeNumbers(snap *ledger.Snapshot) []model.TicketNumber {
	free := make([]model.TicketNumber, 0, model.TotalNumbers)
	for _, n := range model.AllNumbers() {
		if !snap.IsSold(n) {
			free = append(free, n)
		}
	}
	return free
}

// ForSeller summarizes one seller's rows. Revenue is count x unit price.
func ForSeller(snap *ledger.Snapshot, seller model.SellerID) SellerSummary {
	s := SellerSummary{Seller: seller, Display: seller.DisplayName(), Rows: []model.SaleRecord{}}
	for _, r := range snap.Records() {
		if r.Seller == seller {
			s.Rows = append(s.Rows, r)
		}
	}
	s.Count = len(s.Rows)
	s.Revenue = unitPrice.Mul(decimal.NewFromInt(int64(s.Count)))
	return s
}

// Global groups every record by seller, sellers sorted alphabetically.
func Global(snap *ledger.Snapshot) GlobalSummary {
	bySeller := make(map[model.SellerID][]model.SaleRecord)
	for _, r := range snap.Records() {
		bySeller[r.Seller] = append(bySeller[r.Seller], r)
	}
	sellers := make([]model.SellerID, 0, len(bySeller))
	for s := range bySeller {
		sellers = append(sellers, s)
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i] < sellers[j] })

	g := GlobalSummary{PerSeller: []SellerSummary{}, TotalRevenue: decimal.Zero}
	for _, s := range sellers {
		rows := bySeller[s]
		sum := SellerSummary{
			Seller:  s,
			Display: s.DisplayName(),
			Count:   len(rows),
			Revenue: unitPrice.Mul(decimal.NewFromInt(int64(len(rows)))),
			Rows:    rows,
		}
		g.PerSeller = append(g.PerSeller, sum)
		g.TotalSold += sum.Count
		g.TotalRevenue = g.TotalRevenue.Add(sum.Revenue)
	}
	return g
}

// DuplicateNumbers returns the numbers with more than one sale record,
// ascending. A non-empty result is the reconciliation signal for the race
// described in the service: two sessions selling the same number.
func DuplicateNumbers(snap *ledger.Snapshot) []model.TicketNumber {
	var dups []model.TicketNumber
	seen := make(map[model.TicketNumber]bool)
	for _, r := range snap.Records() {
		if snap.CountFor(r.Number) > 1 && !seen[r.Number] {
			seen[r.Number] = true
			dups = append(dups, r.Number)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}
