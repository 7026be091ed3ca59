package main

import "github.com/fwojciec/webml/cmd/internal/flags"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string `arg:"" help:"URL of the page to convert"`
	Compact bool   `help:"Print compact JSON instead of indented output"`
	Verbose bool   `short:"v" env:"WEBML_VERBOSE" help:"Log each pipeline step to stderr"`

	Generator flags.Generator `embed:""`
}
