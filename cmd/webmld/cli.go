package main

import "github.com/fwojciec/webml/cmd/internal/flags"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Addr    string  `default:":8080" env:"WEBML_ADDR" help:"Listen address"`
	Rate    float64 `default:"1" env:"WEBML_RATE" help:"Requests per second per host (0 disables limiting)"`
	Verbose bool    `short:"v" env:"WEBML_VERBOSE" help:"Log pipeline steps at debug level"`

	Generator flags.Generator `embed:""`
}
