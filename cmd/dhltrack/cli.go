package main

import (
	"context"
	"encoding/json"
	"io"

	trackingservice "dhl-tracker/internal/features/tracking/service"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Service *trackingservice.TrackingService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch the tracking page for a code and print its status"`
	Parse ParseCmd `cmd:"" help:"Parse a saved tracking page and print its status"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Code    string `arg:"" help:"Tracking code"`
	Courier string `short:"c" default:"dhl" help:"Courier name"`
	Browser bool   `short:"b" help:"Render the page in headless Chromium instead of a plain GET"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" optional:"" default:"-" help:"HTML file to parse, or - for stdin"`
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
