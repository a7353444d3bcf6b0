package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseGeocode(t *testing.T) {
	coord := Coordinate{Lat: 30.0444, Lng: 31.2357}

	t.Run("returns the first formatted address", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"latlng":   q.Get("latlng"),
				"key":      q.Get("key"),
				"language": q.Get("language"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"results": [
					{"formatted_address": "Tahrir Square, Cairo, Egypt"},
					{"formatted_address": "Downtown Cairo, Egypt"}
				]
			}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("test-key", srv.URL)
		addr, err := c.ReverseGeocode(context.Background(), coord, "ar")
		require.NoError(t, err)
		assert.Equal(t, "Tahrir Square, Cairo, Egypt", addr)
		assert.Equal(t, "30.0444,31.2357", gotQuery["latlng"])
		assert.Equal(t, "test-key", gotQuery["key"])
		assert.Equal(t, "ar", gotQuery["language"])
	})

	t.Run("omits the language param when unset", func(t *testing.T) {
		var hasLanguage bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hasLanguage = r.URL.Query().Has("language")
			w.Write([]byte(`{"status": "OK", "results": [{"formatted_address": "x"}]}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.ReverseGeocode(context.Background(), coord, "")
		require.NoError(t, err)
		assert.False(t, hasLanguage)
	})

	t.Run("zero results yield ErrNoAddress", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.ReverseGeocode(context.Background(), coord, "en")
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("OK status with empty results still fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "OK", "results": []}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.ReverseGeocode(context.Background(), coord, "en")
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("malformed body is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.ReverseGeocode(context.Background(), coord, "en")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoAddress)
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "OK", "results": [{"formatted_address": "x"}]}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.ReverseGeocode(ctx, coord, "en")
		assert.Error(t, err)
	})
}

func TestPositionError(t *testing.T) {
	for code, want := range map[int]string{
		CodePermissionDenied:    "permission denied",
		CodePositionUnavailable: "position unavailable",
		CodeTimeout:             "timed out",
	} {
		assert.Contains(t, (&PositionError{Code: code}).Error(), want)
	}
}
