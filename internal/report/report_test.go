package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/report"
)

func sale(num, seller string) model.SaleRecord {
	return model.SaleRecord{
		Number:     model.TicketNumber(num),
		Seller:     model.SellerID(seller),
		BuyerName:  "Buyer " + num,
		BuyerDNI:   "0000" + num,
		BuyerPhone: "51987654321",
	}
}

func TestFreeNumbers_PartitionsNumberSpace(t *testing.T) {
	// GIVEN: a snapshot with three sold numbers
	snap := ledger.NewSnapshot([]model.SaleRecord{
		sale("001", "JEYNY"), sale("250", "JAIME"), sale("500", "ADMIN"),
	})

	// WHEN: deriving the free set
	free := report.FreeNumbers(snap)

	// THEN: Free and Sold are disjoint and together cover the whole space
	require.Len(t, free, model.TotalNumbers-3)
	seen := make(map[model.TicketNumber]bool, len(free))
	for _, n := range free {
		assert.False(t, snap.IsSold(n), "free number %s must not be sold", n)
		seen[n] = true
	}
	for _, n := range model.AllNumbers() {
		assert.True(t, seen[n] || snap.IsSold(n), "number %s must be free or sold", n)
	}
	// ascending order
	for i := 1; i < len(free); i++ {
		assert.Less(t, free[i-1], free[i])
	}
}

func TestFreeNumbers_EmptyLedgerIsWholeSpace(t *testing.T) {
	free := report.FreeNumbers(ledger.NewSnapshot(nil))
	assert.Len(t, free, model.TotalNumbers)
}

func TestForSeller_RevenueIsCountTimesUnitPrice(t *testing.T) {
	snap := ledger.NewSnapshot([]model.SaleRecord{
		sale("001", "JEYNY"), sale("002", "JEYNY"), sale("003", "JAIME"),
	})

	s := report.ForSeller(snap, "JEYNY")
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(2*model.UnitPrice)), "revenue %s", s.Revenue)
	assert.Len(t, s.Rows, 2)

	empty := report.ForSeller(snap, "VIAINEY")
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Revenue.Equal(decimal.Zero))
	assert.NotNil(t, empty.Rows)
}

func TestGlobal_GroupsBySellerWithTotals(t *testing.T) {
	snap := ledger.NewSnapshot([]model.SaleRecord{
		sale("001", "JEYNY"), sale("002", "JAIME"),
		sale("003", "JEYNY"), sale("004", "INA"),
	})

	g := report.Global(snap)
	require.Len(t, g.PerSeller, 3)
	assert.Equal(t, model.SellerID("INA"), g.PerSeller[0].Seller)
	assert.Equal(t, model.SellerID("JAIME"), g.PerSeller[1].Seller)
	assert.Equal(t, model.SellerID("JEYNY"), g.PerSeller[2].Seller)
	assert.Equal(t, 2, g.PerSeller[2].Count)
	assert.Equal(t, 4, g.TotalSold)
	assert.True(t, g.TotalRevenue.Equal(decimal.NewFromInt(4*model.UnitPrice)))
}

func TestDuplicateNumbers(t *testing.T) {
	snap := ledger.NewSnapshot([]model.SaleRecord{
		sale("010", "JEYNY"), sale("010", "JAIME"),
		sale("020", "INA"),
		sale("005", "AARON"), sale("005", "INA"), sale("005", "JEYNY"),
	})

	dups := report.DuplicateNumbers(snap)
	assert.Equal(t, []model.TicketNumber{"005", "010"}, dups)

	assert.Empty(t, report.DuplicateNumbers(ledger.NewSnapshot(nil)))
}
