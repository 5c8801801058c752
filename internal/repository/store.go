// Package repository contains the LedgerStore adapters. The ledger is an
// append-only row store held remotely; this package is the only code that
// talks to it. Rows cross this boundary as plain strings (RawRow) and are
// parsed into strict model types by the ledger cache.
package repository

import (
	"context"
	"errors"
)

// Header is the fixed column order of the ledger, shared by every store
// implementation and by the CSV export.
var Header = []string{"Numero", "Estado", "Vendedor", "Comprador", "DNI", "Telefono"}

// EstadoVendido is the literal stored in the Estado column for a sold row.
// There is no row for a free number; Free is derived by exclusion.
const EstadoVendido = "Vendido"

// RawRow is one ledger row exactly as stored, unvalidated. Field order
// mirrors Header.
type RawRow struct {
	Numero    string
	Estado    string
	Vendedor  string
	Comprador string
	DNI       string
	Telefono  string
}

// LedgerStore is the contract every backing store satisfies. There is
// deliberately no check-then-append primitive: appends from concurrent
// sessions are independent and duplicate numbers are possible (reconciled
// after the fact by the duplicate report).
type LedgerStore interface {
	// AppendSale stores one row. The append either lands as a full row or
	// not at all; a returned error means nothing was written.
	AppendSale(ctx context.Context, row RawRow) error
	// ReadAll returns every stored row in append order.
	ReadAll(ctx context.Context) ([]RawRow, error)
	// Clear removes all rows and re-establishes the header schema.
	Clear(ctx context.Context) error
}

// ErrSchemaMismatch reports that the remote header does not match Header.
// It is a warning condition: the adapter logs it and keeps reading rather
// than auto-correcting, to avoid destructive overwrites of existing data.
var ErrSchemaMismatch = errors.New("ledger header does not match expected schema")
