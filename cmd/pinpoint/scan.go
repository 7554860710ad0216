package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/pinpoint"
	"github.com/jward/pinpoint/internal/config"
)

var (
	flagForce     bool
	flagLanguages []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Index every definition in a repository",
	Long:  "Parses all supported source files under the given directory, matches their function and class definitions, and writes them to the SQLite index.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&flagForce, "force", false, "delete the index and rescan from scratch")
	scanCmd.Flags().StringSliceVar(&flagLanguages, "languages", nil, "language filter (e.g. go,python)")
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()

	targetDir, err := resolveTargetDir(args)
	if err != nil {
		return err
	}
	repoRoot := findRepoRoot(targetDir)

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = filepath.Join(repoRoot, ".pinpoint.yml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath := resolveDBPath(repoRoot, cfg.DBPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}

	if flagForce {
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing index for --force: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Cleared index: %s\n", dbPath)
	}

	opts := []pinpoint.ScanOption{
		pinpoint.WithIncludes(cfg.Include...),
		pinpoint.WithExcludes(cfg.Exclude...),
		pinpoint.WithWorkers(cfg.Workers),
		pinpoint.WithLogger(newLogger(cfg.Log)),
	}
	languages := flagLanguages
	if len(languages) == 0 {
		languages = cfg.Languages
	}
	if len(languages) > 0 {
		opts = append(opts, pinpoint.WithLanguages(languages...))
	}

	scanner, err := pinpoint.NewScanner(dbPath, opts...)
	if err != nil {
		return fmt.Errorf("creating scanner: %w", err)
	}
	defer scanner.Close()

	stats, err := scanner.ScanDirectory(context.Background(), targetDir)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Scanned %d file(s), skipped %d unchanged, %d definition(s) in %s\n",
		stats.Files, stats.Skipped, stats.Definitions, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "Index: %s\n", dbPath)
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
