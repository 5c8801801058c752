package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// SheetStore talks to the remote sheet service over HTTP. The service
// exposes the ledger as one CSV document: GET returns the whole document,
// POST appends the body as one row, DELETE clears back to header-only.
// A header mismatch on read is logged once per read and never repaired;
// auto-correcting would risk overwriting rows written by someone else.
type SheetStore struct {
	URL    string
	Client *http.Client
}

func NewSheetStore(url string) *SheetStore {
	return &SheetStore{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SheetStore) AppendSale(ctx context.Context, row RawRow) error {
	body, err := EncodeCSV([]RawRow{row})
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	// EncodeCSV prepends the header line; the append endpoint takes the
	// bare row.
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/csv")
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("append sale: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("append sale: sheet returned %s", resp.Status)
	}
	return nil
}

func (s *SheetStore) ReadAll(ctx context.Context) ([]RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("read ledger: sheet returned %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	rows, mismatch, dropped, err := DecodeCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if mismatch {
		log.Printf("sheetstore: %v (continuing with positional columns)", ErrSchemaMismatch)
	}
	if dropped > 0 {
		log.Printf("sheetstore: dropped %d record(s) with the wrong field count", dropped)
	}
	return rows, nil
}

func (s *SheetStore) Clear(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.URL, nil)
	if err != nil {
		return err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("clear ledger: sheet returned %s", resp.Status)
	}
	return nil
}
