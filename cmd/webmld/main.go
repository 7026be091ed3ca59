package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webml"
	webmlhttp "github.com/fwojciec/webml/http"
	webmlslog "github.com/fwojciec/webml/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", webml.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Listener overrides the listening socket. Used by tests.
	Listener net.Listener

	// Fetcher overrides the HTTP fetcher. Used by tests.
	Fetcher webml.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run starts the server and blocks until ctx is canceled.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webmld"),
		kong.Description("Serve WebML documents over HTTP"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	gen, err := cli.Generator.Build(m.Fetcher, logger, webmlhttp.WithRateLimit(cli.Rate))
	if err != nil {
		return err
	}

	handler := webmlhttp.NewHandler(
		webmlslog.NewLoggingGenerator(gen, logger),
		webmlhttp.WithLogger(logger),
	)
	srv := webmlhttp.NewServer(cli.Addr, handler, logger)

	if m.Listener != nil {
		return srv.Serve(ctx, m.Listener)
	}
	return srv.Run(ctx)
}
