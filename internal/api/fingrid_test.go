package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejusbharadwaj/gridview/internal/api"
	"github.com/tejusbharadwaj/gridview/internal/apperrors"
	"github.com/tejusbharadwaj/gridview/internal/config"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig(baseURL string) config.APIConfig {
	return config.APIConfig{
		BaseURL:        baseURL,
		Key:            "test-key",
		TimeoutSeconds: 5,
		RateLimit:      100,
		RateLimitBurst: 100,
		CacheSize:      16,
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	cfg := testConfig("http://example.com")
	cfg.Key = ""

	_, err := api.NewClient(cfg, testLogger())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAuthentication, apperrors.KindOf(err))
}

func TestFetchValidatesInputBeforeNetworkCall(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	client, err := api.NewClient(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	tests := []struct {
		name       string
		variableID string
		start      string
		end        string
	}{
		{name: "empty variable ID", variableID: "", start: "2024-01-01T00:00:00Z", end: "2024-01-02T00:00:00Z"},
		{name: "empty start time", variableID: "124", start: "", end: "2024-01-02T00:00:00Z"},
		{name: "empty end time", variableID: "124", start: "2024-01-01T00:00:00Z", end: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Fetch(context.Background(), tt.variableID, tt.start, tt.end)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}

	assert.Equal(t, int64(0), atomic.LoadInt64(&calls), "validation failures must not reach the network")
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/124/events/json", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("start_time"))
		assert.Equal(t, "2024-01-02T00:00:00Z", r.URL.Query().Get("end_time"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"start_time": "2024-01-01T00:00:00Z", "value": 1200.5},
			{"start_time": "2024-01-01T01:00:00Z", "value": 1187.25}
		]`))
	}))
	defer srv.Close()

	client, err := api.NewClient(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	records, err := client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1200.5, records[0]["value"])
	assert.Equal(t, "2024-01-01T01:00:00Z", records[1]["start_time"])
}

func TestFetchStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantKind   apperrors.Kind
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantKind: apperrors.KindAuthentication},
		{name: "unknown variable", statusCode: http.StatusNotFound, wantKind: apperrors.KindValidation},
		{name: "server error", statusCode: http.StatusInternalServerError, wantKind: apperrors.KindNetwork},
		{name: "too many requests", statusCode: http.StatusTooManyRequests, wantKind: apperrors.KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client, err := api.NewClient(testConfig(srv.URL), testLogger())
			require.NoError(t, err)

			_, err = client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
		})
	}
}

func TestFetchConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client, err := api.NewClient(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNetwork, apperrors.KindOf(err))
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	client, err := api.NewClient(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDataProcessing, apperrors.KindOf(err))
}

func TestFetchCachesRepeatedQueries(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		_, _ = w.Write([]byte(`[{"start_time": "2024-01-01T00:00:00Z", "value": 1.0}]`))
	}))
	defer srv.Close()

	client, err := api.NewClient(testConfig(srv.URL), testLogger())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		records, err := client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z")
		require.NoError(t, err)
		require.Len(t, records, 1)
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls), "repeated queries should be served from cache")

	// A different range misses the cache.
	_, err = client.Fetch(context.Background(), "124", "2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestCommonVariables(t *testing.T) {
	vars := api.CommonVariables()
	require.NotEmpty(t, vars)
	assert.Equal(t, "124", vars[0].ID)
	assert.Equal(t, "Production (Hydro)", vars[0].Description)
}
