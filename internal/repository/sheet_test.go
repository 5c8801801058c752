package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/repository"
)

// fakeSheet mimics the remote sheet service: one CSV document, GET/POST/DELETE.
type fakeSheet struct {
	mu  sync.Mutex
	doc []byte
}

func newFakeSheet() *fakeSheet {
	header, _ := repository.EncodeCSV(nil)
	return &fakeSheet{doc: header}
}

func (f *fakeSheet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(f.doc)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		f.doc = append(f.doc, body...)
		w.WriteHeader(http.StatusCreated)
	case http.MethodDelete:
		header, _ := repository.EncodeCSV(nil)
		f.doc = header
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestSheetStore_AppendReadClear(t *testing.T) {
	sheet := newFakeSheet()
	srv := httptest.NewServer(sheet)
	defer srv.Close()
	store := repository.NewSheetStore(srv.URL)
	ctx := context.Background()

	row := repository.RawRow{
		Numero: "007", Estado: repository.EstadoVendido, Vendedor: "JEYNY",
		Comprador: "Ana, Q.", DNI: "12345678", Telefono: "51987654321",
	}
	require.NoError(t, store.AppendSale(ctx, row))
	require.NoError(t, store.AppendSale(ctx, row)) // no duplicate rejection

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, row, rows[0])

	require.NoError(t, store.Clear(ctx))
	rows, err = store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSheetStore_ReadSurvivesForeignHeader(t *testing.T) {
	sheet := newFakeSheet()
	sheet.doc = []byte("A,B,C,D,E,F\n001,Vendido,INA,Ana,123,51987654321\n")
	srv := httptest.NewServer(sheet)
	defer srv.Close()
	store := repository.NewSheetStore(srv.URL)

	rows, err := store.ReadAll(context.Background())
	require.NoError(t, err, "header mismatch is a warning, not a failure")
	require.Len(t, rows, 1)
	assert.Equal(t, "001", rows[0].Numero)
}

func TestSheetStore_ServerErrorIsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	store := repository.NewSheetStore(srv.URL)

	_, err := store.ReadAll(context.Background())
	assert.Error(t, err)
	err = store.AppendSale(context.Background(), repository.RawRow{Numero: "001"})
	assert.Error(t, err)
}
