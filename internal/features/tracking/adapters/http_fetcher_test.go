package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dhl-tracker/internal/core/logger"
	"dhl-tracker/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	logger.Init("development", "error")
	fixture := readPageFixture(t)

	var gotQuery, gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("piececode")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(fixture))
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(2*time.Second, proxy.Settings{})
	body, err := fetcher.Fetch(context.Background(), ts.URL+"/int-verfolgen/?piececode=523361125086")

	require.NoError(t, err)
	assert.Equal(t, fixture, body)
	assert.Equal(t, "523361125086", gotQuery)
	assert.Contains(t, gotUserAgent, "Mozilla/5.0")
}

func TestHTTPFetcher_Fetch_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(2*time.Second, proxy.Settings{})
	body, err := fetcher.Fetch(context.Background(), ts.URL)

	assert.Empty(t, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestHTTPFetcher_Fetch_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPFetcher(2*time.Second, proxy.Settings{})
	_, err := fetcher.Fetch(ctx, ts.URL)

	assert.ErrorIs(t, err, context.Canceled)
}

// TestDHLAdapter_EndToEnd wires the real HTTP fetcher to a fake DHL page.
func TestDHLAdapter_EndToEnd(t *testing.T) {
	fixture := readPageFixture(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixture))
	}))
	defer ts.Close()

	adapter := NewDHLAdapter(ts.URL+"/int-verfolgen/", "en", "de", NewHTTPFetcher(2*time.Second, proxy.Settings{}))
	status, err := adapter.GetTrackingStatus(context.Background(), "523361125086")

	require.NoError(t, err)
	require.Len(t, status.Items, 1)
	assert.Len(t, status.Items[0].Details.History.Events, 5)
}
