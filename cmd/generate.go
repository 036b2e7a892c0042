package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"kantan-bindgen/pkg/config"
	"kantan-bindgen/pkg/document"
	"kantan-bindgen/pkg/fetch"
	"kantan-bindgen/pkg/generator"
	"kantan-bindgen/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [sources...]",
	Short: "Generate Kantan bindings from extern declaration sources",
	Long: `Generate Kantan bindings from one or more sources. A source is a local
path or an http(s) URL. Without arguments the sources listed in the
configuration file are used, falling back to the llvm-sys files the Kantan
compiler binds against.

Sources are downloaded concurrently but translated strictly in order. A
malformed declaration aborts the run; declarations with unmappable types are
skipped and listed at the end of the output.

Examples:
  # Generate from the default llvm-sys sources
  kantan-bindgen generate -o llvm.kan

  # Generate from local files and regenerate when they change
  kantan-bindgen generate --watch -o llvm.kan src/core.rs src/target.rs`,
	RunE: runGenerate,
}

var (
	generateOutput      string
	generateConfig      string
	generateWatch       bool
	generateConcurrency int
	generateTimeout     time.Duration
)

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Configuration file (default ./"+config.FileName+" if present)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when local sources change")
	generateCmd.Flags().IntVar(&generateConcurrency, "concurrency", 0, "Parallel downloads (overrides config)")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 0, "Per-request fetch timeout (overrides config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(generateConfig)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.Sources = args
	}
	if generateOutput != "" {
		cfg.Output = generateOutput
	}
	if generateConcurrency > 0 {
		cfg.Fetch.Concurrency = generateConcurrency
	}
	if generateTimeout > 0 {
		cfg.Fetch.Timeout = generateTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := applyLogConfig(cmd, cfg); err != nil {
		return err
	}

	fetcher, err := fetch.NewFetcher(&fetch.Config{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
	}, cfg.Fetch.Concurrency)
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generateOnce(ctx, cfg, fetcher); err != nil {
		if !generateWatch {
			return err
		}
		logger.Error("generation failed", "error", err)
	}

	if generateWatch {
		return watchSources(ctx, cfg, fetcher)
	}
	return nil
}

// loadConfig loads an explicit config file, or ./.bindgen.yaml when it
// exists, or the built-in defaults
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.Load(config.FileName)
	}
	return config.Default(), nil
}

// applyLogConfig re-initializes logging from the config file unless the
// corresponding flags were given explicitly
func applyLogConfig(cmd *cobra.Command, cfg *config.Config) error {
	level, format := logLevel, logFormat
	if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
		level = cfg.Log.Level
	}
	if !cmd.Flags().Changed("log-format") && cfg.Log.Format != "" {
		format = cfg.Log.Format
	}
	return logger.Init(logger.Config{Level: level, Format: format, Output: os.Stderr})
}

// generateOnce fetches every source and runs one translation pass
func generateOnce(ctx context.Context, cfg *config.Config, fetcher *fetch.Fetcher) error {
	start := time.Now()

	contents, err := fetcher.FetchAll(ctx, cfg.Sources)
	if err != nil {
		return err
	}

	docs := make([]*document.Document, 0, len(contents))
	for i, content := range contents {
		docs = append(docs, document.NewFromContent(cfg.Sources[i], content))
	}

	// Buffer file output so a failed run leaves the previous file intact
	var out io.Writer = os.Stdout
	var buf bytes.Buffer
	if cfg.Output != "" {
		out = &buf
	}

	translator := document.NewTranslator(generator.NewDefault(), out)
	summary, err := translator.Run(docs)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output %s: %w", cfg.Output, err)
		}
		fmt.Fprintf(os.Stderr, "✅ Generated %s: %d externs, %d wrappers from %d functions (%d skipped) in %s\n",
			cfg.Output, summary.Externs, summary.Wrappers, summary.Declarations,
			len(summary.Skipped), time.Since(start).Round(time.Millisecond))
	}

	return nil
}

// watchSources regenerates whenever a local source file is written
func watchSources(ctx context.Context, cfg *config.Config, fetcher *fetch.Fetcher) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched so editors that replace files are handled
	watched := make(map[string]string)
	dirs := make(map[string]bool)
	for _, source := range cfg.Sources {
		if fetch.IsRemote(source) {
			logger.Warn("remote source is not watched", "source", source)
			continue
		}
		abs, err := filepath.Abs(source)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", source, err)
		}
		watched[abs] = source

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	if len(watched) == 0 {
		return fmt.Errorf("no local sources to watch")
	}

	fmt.Fprintf(os.Stderr, "👀 Watching %d source file(s), press Ctrl+C to stop\n", len(watched))
	log := logger.Get().With("watched", len(watched))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			source, ok := watched[abs]
			if !ok {
				continue
			}

			log.Info("source changed", "source", source, "op", event.Op.String())
			fetcher.Invalidate(source)
			if err := generateOnce(ctx, cfg, fetcher); err != nil {
				log.Error("generation failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}
