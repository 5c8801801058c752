package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/repository"
)

func soldRow(num, seller, buyer string) repository.RawRow {
	return repository.RawRow{
		Numero:    num,
		Estado:    repository.EstadoVendido,
		Vendedor:  seller,
		Comprador: buyer,
		DNI:       "12345678",
		Telefono:  "51987654321",
	}
}

func TestNormalize_TrimsUppercasesAndPads(t *testing.T) {
	rows := []repository.RawRow{
		{Numero: " 7 ", Estado: " Vendido ", Vendedor: " jeyny ", Comprador: "  Ana Q.  ", DNI: " 12345678 ", Telefono: " 51987654321 "},
	}
	records, dropped := ledger.Normalize(rows)
	require.Len(t, records, 1)
	assert.Zero(t, dropped)
	assert.Equal(t, model.TicketNumber("007"), records[0].Number)
	assert.Equal(t, model.SellerID("JEYNY"), records[0].Seller)
	assert.Equal(t, "Ana Q.", records[0].BuyerName)
	assert.Equal(t, "12345678", records[0].BuyerDNI)
	assert.Equal(t, "51987654321", records[0].BuyerPhone)
}

func TestNormalize_DropsMalformedRows(t *testing.T) {
	rows := []repository.RawRow{
		soldRow("001", "INA", "ok"),
		soldRow("999", "INA", "outside space"),
		soldRow("x1y", "INA", "bad pattern"),
		{Numero: "002", Estado: "Libre"}, // legacy placeholder row
		soldRow("003", "INA", "also ok"),
	}
	records, dropped := ledger.Normalize(rows)
	require.Len(t, records, 2)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, model.TicketNumber("001"), records[0].Number)
	assert.Equal(t, model.TicketNumber("003"), records[1].Number)
}

func TestRefresh_ReplacesSnapshotAtomically(t *testing.T) {
	// GIVEN: a cache over a store with one sold row
	store := repository.NewMemoryStore()
	store.Seed(soldRow("010", "JAIME", "first"))
	cache := ledger.NewCache(store)
	ctx := context.Background()

	require.NoError(t, cache.Refresh(ctx))
	old := cache.Snapshot()
	assert.True(t, old.IsSold("010"))
	assert.False(t, old.IsSold("011"))

	// WHEN: another session appends and this cache refreshes
	store.Seed(soldRow("010", "JAIME", "first"), soldRow("011", "INA", "second"))
	require.NoError(t, cache.Refresh(ctx))

	// THEN: the new snapshot sees both rows, the old one is untouched
	assert.True(t, cache.Snapshot().IsSold("011"))
	assert.False(t, old.IsSold("011"))
}

func TestEnsureFresh_OnlyRefreshesOnce(t *testing.T) {
	store := repository.NewMemoryStore()
	store.Seed(soldRow("001", "INA", "x"))
	cache := ledger.NewCache(store)
	ctx := context.Background()

	require.NoError(t, cache.EnsureFresh(ctx))
	assert.True(t, cache.Snapshot().IsSold("001"))

	// A later append is deliberately not observed without an explicit
	// Refresh: EnsureFresh keeps the session's existing view.
	store.Seed(soldRow("001", "INA", "x"), soldRow("002", "INA", "y"))
	require.NoError(t, cache.EnsureFresh(ctx))
	assert.False(t, cache.Snapshot().IsSold("002"))

	require.NoError(t, cache.Refresh(ctx))
	assert.True(t, cache.Snapshot().IsSold("002"))
}

func TestSnapshot_CountsDuplicates(t *testing.T) {
	snap := ledger.NewSnapshot([]model.SaleRecord{
		{Number: "005", Seller: "INA"},
		{Number: "005", Seller: "JAIME"},
		{Number: "006", Seller: "INA"},
	})
	assert.Equal(t, 2, snap.CountFor("005"))
	assert.Equal(t, 1, snap.CountFor("006"))
	assert.Equal(t, 0, snap.CountFor("007"))
}
