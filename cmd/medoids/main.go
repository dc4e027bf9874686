// Package main provides the command line entry point for medoids.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/medoids/internal/batch"
	"github.com/thebtf/medoids/internal/config"
	"github.com/thebtf/medoids/internal/ingest"
	"github.com/thebtf/medoids/internal/normalize"
	"github.com/thebtf/medoids/internal/report"
	"github.com/thebtf/medoids/internal/watcher"
	"github.com/thebtf/medoids/pkg/kmedoids"
)

// Version is set at build time via ldflags.
var Version = "dev"

// options are command line values. Only flags present on the command line
// override the config file.
type options struct {
	set        map[string]bool
	configPath string
	input      string
	ks         string
	format     string
	seed       int64
	maxIter    int
	threshold  float64
	noCleaned  bool
	watch      bool
	debug      bool
	version    bool
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("medoids", flag.ContinueOnError)
	opts := &options{set: make(map[string]bool)}

	fs.StringVar(&opts.configPath, "config", "medoids.yaml", "Path to config YAML")
	fs.StringVar(&opts.input, "input", "", "Input file, one document per line")
	fs.StringVar(&opts.ks, "k", "", "Comma separated cluster counts, e.g. 10,20,50")
	fs.StringVar(&opts.format, "format", "", "Report format: text, table or json")
	fs.Int64Var(&opts.seed, "seed", config.DefaultSeed, "Random seed shared by every K")
	fs.IntVar(&opts.maxIter, "max-iter", kmedoids.DefaultMaxIter, "Maximum iterations per K")
	fs.Float64Var(&opts.threshold, "threshold", kmedoids.DefaultThreshold, "Convergence threshold")
	fs.BoolVar(&opts.noCleaned, "no-cleaned", false, "Do not write the normalized <input>_cleaned.txt file")
	fs.BoolVar(&opts.watch, "watch", false, "Rerun the batch whenever the input file changes")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	if opts.input == "" && fs.NArg() > 0 {
		opts.input = fs.Arg(0)
	}
	return opts, fs, nil
}

// apply overlays flags that were set on top of the loaded config.
func (o *options) apply(cfg *config.Config) error {
	if o.input != "" {
		cfg.Input = o.input
	}
	if o.ks != "" {
		ks, err := config.ParseKs(o.ks)
		if err != nil {
			return err
		}
		cfg.Ks = ks
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["max-iter"] {
		cfg.MaxIter = o.maxIter
	}
	if o.set["threshold"] {
		cfg.Threshold = o.threshold
	}
	if o.noCleaned {
		cfg.WriteCleaned = false
	}
	if o.debug {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	return nil
}

// bootLevel is the log level in effect while the config is loaded.
func bootLevel(o *options) zerolog.Level {
	if o.debug {
		return zerolog.DebugLevel
	}
	if v := os.Getenv(config.EnvLogLevel); v != "" {
		if level, err := zerolog.ParseLevel(v); err == nil && level != zerolog.NoLevel {
			return level
		}
	}
	return zerolog.InfoLevel
}

func main() {
	opts, _, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if opts.version {
		fmt.Println(Version)
		return
	}

	// Reports go to stdout, so log to stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	zerolog.SetGlobalLevel(bootLevel(opts))

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := opts.apply(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid flags")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.Input == "" {
		log.Fatal().Msg("--input is required")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down")
		cancel()
	}()

	log.Info().Str("input", cfg.Input).Str("version", Version).Msg("Starting medoids")

	if err := runOnce(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Batch failed")
		if !opts.watch {
			os.Exit(1)
		}
	}

	if opts.watch {
		watchInput(ctx, cfg, os.Stdout)
	}
}

// runOnce ingests, normalizes, clusters every K and writes the report.
func runOnce(ctx context.Context, cfg *config.Config, out io.Writer) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	src, err := ingest.ReadFile(cfg.Input)
	if err != nil {
		return err
	}

	docs := normalize.Lines(src.Lines)
	if cfg.WriteCleaned {
		cleaned := ingest.CleanedPath(cfg.Input)
		if err := ingest.WriteLines(cleaned, docs); err != nil {
			return fmt.Errorf("write cleaned file: %w", err)
		}
		log.Info().Str("path", cleaned).Int("documents", len(docs)).Msg("Wrote cleaned documents")
	}

	runner := batch.NewRunner(kmedoids.NewCorpus(docs), cfg.RunConfig(0))
	outcomes := runner.Run(ctx, cfg.Ks)

	return report.Write(out, format, batch.Rows(outcomes))
}

// watchInput reruns the batch on every change to the input until ctx is done.
func watchInput(ctx context.Context, cfg *config.Config, out io.Writer) {
	// Serializes reruns triggered by overlapping change bursts
	var mu sync.Mutex

	w, err := watcher.New(cfg.Input, func() {
		mu.Lock()
		defer mu.Unlock()
		if err := runOnce(ctx, cfg, out); err != nil {
			log.Error().Err(err).Msg("Batch failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create input watcher")
	}
	if err := w.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start input watcher")
	}
	log.Info().Str("path", cfg.Input).Msg("Watching input for changes")

	<-ctx.Done()
	if err := w.Stop(); err != nil {
		log.Warn().Err(err).Msg("Failed to stop input watcher")
	}
}
