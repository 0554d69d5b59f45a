package httpclient

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"dhl-tracker/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewClient_WithProxy verifies that requests are sent to the configured proxy.
func TestNewClient_WithProxy(t *testing.T) {
	var gotHost string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		w.WriteHeader(http.StatusTeapot)
	}))
	defer proxy.Close()

	proxyURL, err := url.Parse(proxy.URL)
	require.NoError(t, err)

	client := NewClient(1*time.Second, WithProxy(proxyURL))
	resp, err := client.Get("http://tracking.example.test/path")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "tracking.example.test", gotHost)
}
