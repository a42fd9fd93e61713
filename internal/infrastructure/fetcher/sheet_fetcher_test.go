package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.UnixMilli(1700000000123) }

func TestSheetFetcherAddsCacheBuster(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte("Name,Price\nDell,1\n"))
	}))
	defer srv.Close()

	f := NewSheetFetcher(Options{Now: fixedNow})
	data, err := f.Fetch(context.Background(), srv.URL+"/pub?gid=0&single=true&output=csv")
	require.NoError(t, err)
	require.Equal(t, "Name,Price\nDell,1\n", string(data))

	require.Equal(t, "1700000000123", gotQuery["t"][0])
	require.Equal(t, "csv", gotQuery["output"][0])
	require.Equal(t, "0", gotQuery["gid"][0])
}

func TestSheetFetcherNonSuccessStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewSheetFetcher(Options{}).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.Equal(t, 1, calls)
}

func TestSheetFetcherBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	_, err := NewSheetFetcher(Options{MaxBytes: 16}).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrBodyTooLarge)

	data, err := NewSheetFetcher(Options{MaxBytes: 64}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, data, 64)
}

func TestSheetFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewSheetFetcher(Options{Timeout: 20 * time.Millisecond}).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
