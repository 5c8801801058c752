package export_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/export"
	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/repository"
)

func TestCSV_RoundTripReproducesRecords(t *testing.T) {
	// GIVEN: a snapshot with a few sales
	records := []model.SaleRecord{
		{Number: "001", Seller: "JEYNY", BuyerName: "Ana Quispe", BuyerDNI: "45678912", BuyerPhone: "51987654321"},
		{Number: "250", Seller: "JAIME", BuyerName: "Luis Paz", BuyerDNI: "11223344", BuyerPhone: "51912345678"},
		{Number: "499", Seller: "ADMIN", BuyerName: "Rosa Díaz", BuyerDNI: "55667788", BuyerPhone: "51955512345"},
	}
	snap := ledger.NewSnapshot(records)

	// WHEN: exporting and re-ingesting through the store decode path
	data, err := export.CSV(snap)
	require.NoError(t, err)
	rows, mismatch, skipped, err := repository.DecodeCSV(bytes.NewReader(data))
	require.NoError(t, err)
	assert.False(t, mismatch)
	require.Zero(t, skipped)

	// shuffle row order: equivalence must not depend on it
	rows[0], rows[2] = rows[2], rows[0]
	got, dropped := ledger.Normalize(rows)
	require.Zero(t, dropped)

	// THEN: same set of records, irrespective of order
	sortRecords(got)
	want := append([]model.SaleRecord(nil), records...)
	sortRecords(want)
	assert.Equal(t, want, got)
}

func TestCSV_EmptySnapshotIsHeaderOnly(t *testing.T) {
	data, err := export.CSV(ledger.NewSnapshot(nil))
	require.NoError(t, err)
	assert.Equal(t, "Numero,Estado,Vendedor,Comprador,DNI,Telefono\n", string(data))
}

func sortRecords(rs []model.SaleRecord) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Number < rs[j].Number })
}
