// Package export serializes a ledger snapshot to the tabular wire format
// for the administrative download.
package export

import (
	"github.com/rifadigital/raffle/internal/ledger"
	"github.com/rifadigital/raffle/internal/repository"
)

// CSV renders the snapshot with the fixed ledger header. Feeding the
// output back through the store decode path yields an equivalent set of
// records, so an export doubles as a ledger backup.
func CSV(snap *ledger.Snapshot) ([]byte, error) {
	records := snap.Records()
	rows := make([]repository.RawRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, repository.RawRow{
			Numero:    string(r.Number),
			Estado:    repository.EstadoVendido,
			Vendedor:  string(r.Seller),
			Comprador: r.BuyerName,
			DNI:       r.BuyerDNI,
			Telefono:  r.BuyerPhone,
		})
	}
	return repository.EncodeCSV(rows)
}
