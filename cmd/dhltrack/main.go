package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"dhl-tracker/internal/core/config"
	"dhl-tracker/internal/core/logger"
	trackingadapter "dhl-tracker/internal/features/tracking/adapters"
	"dhl-tracker/internal/features/tracking/ports"
	trackingservice "dhl-tracker/internal/features/tracking/service"

	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath is the directory searched for a .env file.
	ConfigPath string

	// Stdin is read by "parse -".
	Stdin io.Reader

	// Providers replaces the configured DHL provider when set. Used by tests.
	Providers []ports.TrackingProvider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: ".",
		Stdin:      os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dhltrack"),
		kong.Description("Read DHL parcel tracking status from the public tracking page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dhltrack --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	providers := m.Providers
	if cmd == "fetch" && providers == nil {
		providers, err = m.configuredProviders(cli.Fetch.Browser)
		if err != nil {
			return err
		}
		defer logger.Sync()
	}
	deps.Service = trackingservice.NewTrackingService(providers)

	return kongCtx.Run(deps)
}

// configuredProviders loads the application config and builds the DHL provider from it.
func (m *Main) configuredProviders(browser bool) ([]ports.TrackingProvider, error) {
	cfg, err := config.Load(m.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	var fetcher ports.PageFetcher
	if browser || cfg.DHL.Fetcher == "browser" {
		fetcher = trackingadapter.NewBrowserFetcher(cfg.DHL.Timeout(), cfg.Proxy.Settings())
	} else {
		fetcher = trackingadapter.NewHTTPFetcher(cfg.DHL.Timeout(), cfg.Proxy.Settings())
	}

	return []ports.TrackingProvider{
		trackingadapter.NewDHLAdapter(cfg.DHL.TrackingURL, cfg.DHL.Language, cfg.DHL.Domain, fetcher),
	}, nil
}
