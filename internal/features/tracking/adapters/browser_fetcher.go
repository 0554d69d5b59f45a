package adapter

import (
	"context"
	"fmt"
	"time"

	"dhl-tracker/internal/core/logger"
	"dhl-tracker/internal/core/proxy"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// BrowserFetcher renders tracking pages in headless Chromium. It is slower than
// HTTPFetcher but gets through bot checks that reject plain HTTP clients.
type BrowserFetcher struct {
	timeout time.Duration
	proxy   proxy.Settings
	logger  *zap.Logger
}

// NewBrowserFetcher creates a BrowserFetcher with the given page timeout and proxy settings.
func NewBrowserFetcher(timeout time.Duration, proxySettings proxy.Settings) *BrowserFetcher {
	return &BrowserFetcher{
		timeout: timeout,
		proxy:   proxySettings,
		logger:  logger.Get(),
	}
}

// Fetch loads url in a fresh browser and returns the page HTML once the load event fires.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	proxyAddr, err := f.startProxy(ctx)
	if err != nil {
		return "", err
	}

	f.logger.Debug("Launching browser...",
		zap.Bool("proxy_enabled", f.proxy.HasProxy()),
		zap.String("proxy_addr", proxyAddr),
	)

	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)
	if proxyAddr != "" {
		l = l.Proxy(proxyAddr)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("timeout waiting for page load: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page html: %w", err)
	}

	return html, nil
}

// startProxy returns the proxy address for Chromium. Authenticated proxies go through a
// local forwarder that lives until ctx is done.
func (f *BrowserFetcher) startProxy(ctx context.Context) (string, error) {
	if !f.proxy.HasProxy() {
		return "", nil
	}
	if !f.proxy.HasCredentials() {
		return f.proxy.HostPort(), nil
	}

	forwarder, err := proxy.NewForwardingProxy(f.proxy.URL().String())
	if err != nil {
		return "", fmt.Errorf("failed to create proxy forwarder: %w", err)
	}
	addr, err := forwarder.Start(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start proxy forwarder: %w", err)
	}
	f.logger.Debug("Local proxy forwarder started", zap.String("local_addr", addr))

	return addr, nil
}
