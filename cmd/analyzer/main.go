package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/surveyflow/config"
	"github.com/spacesedan/surveyflow/internal/analysis"
	"github.com/spacesedan/surveyflow/internal/clients"
	"github.com/spacesedan/surveyflow/internal/loader"
	"github.com/spacesedan/surveyflow/internal/logging"
	"github.com/spacesedan/surveyflow/internal/models"
	"github.com/spacesedan/surveyflow/internal/sentiment"
)

func main() {
	config.LoadEnv(config.AppEnv())

	settings, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logging.InitLogger(settings.LogLevel)

	cfg, err := parseFlags(flag.NewFlagSet("analyzer", flag.ExitOnError), os.Args[1:])
	if err != nil {
		slog.Error("[Main] Invalid flags", slog.String("error", err.Error()))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scorer, closeScorer := buildScorer(ctx, settings)
	defer closeScorer()

	if err := run(ctx, cfg, analysis.NewAnalyzer(scorer, settings.ScorerWorkers), os.Stdin, os.Stdout); err != nil {
		slog.Error("[Main] Analysis failed", slog.String("error", err.Error()))
		stop()
		closeScorer()
		os.Exit(1)
	}
}

// buildScorer wires the polarity backend from settings. The remote backend
// falls back to VADER when its health probe fails; the Valkey cache is
// skipped when unreachable.
func buildScorer(ctx context.Context, s config.Settings) (sentiment.PolarityScorer, func()) {
	var scorer sentiment.PolarityScorer = sentiment.NewVADER()

	if s.PolarityBackend == config.BackendRemote {
		hf := clients.NewHuggingFaceClient(s.HTTPTimeout, s.SentimentEndpoint, s.HealthEndpoint)
		if hf.AnalyzerHealthCheck(ctx) {
			scorer = sentiment.NewRemote(hf)
		} else {
			slog.Warn("[Main] Remote analyzer unavailable, falling back to VADER")
		}
	}

	if !s.CacheEnabled() {
		return scorer, func() {}
	}

	vc, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
		Address:  s.ValkeyAddress,
		Password: s.ValkeyPassword,
		TLS:      s.ValkeyTLS,
		TTL:      s.CacheTTL,
	})
	if err != nil {
		slog.Warn("[Main] Polarity cache disabled", slog.String("error", err.Error()))
		return scorer, func() {}
	}
	return sentiment.NewCached(scorer, vc, s.ScorerWorkers), vc.Close
}

func run(ctx context.Context, cfg Config, analyzer *analysis.Analyzer, stdin io.Reader, stdout io.Writer) error {
	tbl, err := loadTable(cfg, stdin)
	if err != nil {
		return err
	}

	column := cfg.Column
	if column == "" {
		cols := tbl.Columns()
		if len(cols) == 0 {
			return analysis.ErrColumnNotFound
		}
		column = cols[0]
	}

	res, err := analyzer.Analyze(ctx, tbl, column)
	if err != nil {
		return err
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	_, err = fmt.Fprintln(stdout, res.Summary().Text)
	return err
}

func loadTable(cfg Config, stdin io.Reader) (*models.Table, error) {
	switch cfg.Source {
	case SourceCSV:
		return loader.LoadCSVFile(cfg.File)
	case SourceManual:
		input := cfg.Input
		if input == "-" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			input = string(b)
		}
		return loader.FromLines(input)
	default:
		slog.Info("[Main] Pre-imported sample data loaded")
		return loader.Sample(), nil
	}
}
