package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	"github.com/HeteroCat/wx-touch/fs"
	wxhttp "github.com/HeteroCat/wx-touch/http"
	wxotel "github.com/HeteroCat/wx-touch/otel"
	wxprom "github.com/HeteroCat/wx-touch/prometheus"
	wxslog "github.com/HeteroCat/wx-touch/slog"
	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultConfigPath is read, when present, before flags and environment.
const DefaultConfigPath = "~/.config/wxtouch/config.yaml"

// Main represents the program.
type Main struct {
	// ConfigPaths are YAML files read in order; missing files are skipped.
	ConfigPaths []string

	// Service replaces the HTTP client, for end-to-end testing.
	Service wxtouch.Service

	// TracerProvider receives spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider

	// Registry collects request metrics. Set by Run when nil.
	Registry *prometheus.Registry

	// Registered on Registry by the first Run and shared by later runs.
	metrics *wxprom.Metrics
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{DefaultConfigPath},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wxtouch"),
		kong.Description("Search public accounts and fetch their articles as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(),
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wxtouch --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}
	if m.metrics == nil {
		m.metrics = wxprom.NewMetrics(m.Registry)
	}

	svc := m.Service
	if svc == nil {
		opts := []wxhttp.Option{wxhttp.WithLogger(logger)}
		if cli.Timeout > 0 {
			opts = append(opts, wxhttp.WithTimeout(cli.Timeout))
		}
		svc = wxhttp.NewClient(wxhttp.Config{
			BaseURL:   cli.BaseURL,
			APIKey:    cli.APIKey,
			APISecret: cli.APISecret,
		}, opts...)
	}
	svc = wxotel.NewTracingService(svc, m.TracerProvider)
	svc = wxprom.NewInstrumentedServiceWithMetrics(svc, m.metrics)
	svc = wxslog.NewLoggingService(svc, logger)

	deps.Service = svc
	deps.Logger = logger
	deps.JSON = cli.JSON

	if kongCtx.Selected() != nil && kongCtx.Selected().Name == "extract" && cli.Extract.OutputDir != "" {
		deps.Writer = fs.NewWriter(cli.Extract.OutputDir)
	}

	runErr := kongCtx.Run(deps)

	if cli.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cli.MetricsFile, m.Registry); err != nil {
			logger.Error("failed to write metrics", "path", cli.MetricsFile, "err", err)
			if runErr == nil {
				runErr = fmt.Errorf("failed to write metrics to %q: %w", cli.MetricsFile, err)
			}
		}
	}

	return runErr
}

// Vars returns the values interpolated into flag help and defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"default_origin": wxhttp.DefaultOrigin,
		"default_count":  strconv.Itoa(wxtouch.DefaultCount),
		"min_count":      strconv.Itoa(wxtouch.MinCount),
		"max_count":      strconv.Itoa(wxtouch.MaxCount),
	}
}

// GlobalFlags are shared by every command.
type GlobalFlags struct {
	Config      kong.ConfigFlag `help:"YAML config file"`
	BaseURL     string          `name:"base-url" env:"WXTOUCH_BASE_URL" help:"Service base URL (default: ${default_origin})"`
	APIKey      string          `name:"api-key" env:"WXTOUCH_API_KEY" help:"API key"`
	APISecret   string          `name:"api-secret" env:"WXTOUCH_API_SECRET" help:"API secret"`
	Timeout     time.Duration   `short:"t" default:"0s" help:"Request timeout (0 for none)"`
	Verbose     bool            `short:"v" help:"Log every request"`
	JSON        bool            `help:"Print JSON instead of text"`
	MetricsFile string          `name:"metrics-file" help:"Write Prometheus metrics to this file on exit"`
}
