package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// MySQLStore keeps the ledger in an append-only `ventas` table. The table
// intentionally has no unique index on `numero`: two sessions racing on the
// same number both land their rows, and the duplicate report reconciles
// afterwards. The auto-increment id preserves append order.
type MySQLStore struct{ DB *sql.DB }

func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{DB: db} }

func (s *MySQLStore) AppendSale(ctx context.Context, row RawRow) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO ventas (numero, estado, vendedor, comprador, dni, telefono) VALUES (?,?,?,?,?,?)",
		row.Numero, row.Estado, row.Vendedor, row.Comprador, row.DNI, row.Telefono)
	if err != nil {
		return fmt.Errorf("append sale: %w", err)
	}
	return nil
}

func (s *MySQLStore) ReadAll(ctx context.Context) ([]RawRow, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT numero, estado, vendedor, comprador, dni, telefono FROM ventas ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	defer rows.Close()

	var out []RawRow
	for rows.Next() {
		var r RawRow
		if err := rows.Scan(&r.Numero, &r.Estado, &r.Vendedor, &r.Comprador, &r.DNI, &r.Telefono); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return out, nil
}

// Clear wipes the ledger. The schema itself is the header here, so after
// the delete the store is back to header-only state.
func (s *MySQLStore) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM ventas"); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	return nil
}
