package repository

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// DecodeCSV parses a full ledger document. The first line is expected to be
// the header; when it differs from Header the rows are still decoded
// positionally and mismatch=true is returned so the caller can warn.
// Other writers share the document, so a record with the wrong field
// count is dropped and counted instead of failing the whole read.
func DecodeCSV(r io.Reader) (rows []RawRow, mismatch bool, dropped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err == io.EOF {
		return nil, true, 0, nil // empty document: header missing entirely
	}
	if err != nil {
		return nil, false, 0, fmt.Errorf("read header: %w", err)
	}
	for i, col := range Header {
		if i >= len(head) || head[i] != col {
			mismatch = true
			break
		}
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, mismatch, dropped, fmt.Errorf("read row: %w", err)
		}
		if len(rec) != len(Header) {
			dropped++
			continue
		}
		rows = append(rows, RawRow{
			Numero:    rec[0],
			Estado:    rec[1],
			Vendedor:  rec[2],
			Comprador: rec[3],
			DNI:       rec[4],
			Telefono:  rec[5],
		})
	}
	return rows, mismatch, dropped, nil
}

// EncodeCSV renders header plus rows in the fixed column order.
func EncodeCSV(rows []RawRow) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{r.Numero, r.Estado, r.Vendedor, r.Comprador, r.DNI, r.Telefono}
		if err := cw.Write(rec); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
