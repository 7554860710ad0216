package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jward/pinpoint"
	"github.com/jward/pinpoint/internal/config"
)

var (
	flagListLang string
	flagListKind string
	flagListName string
	flagCounts   bool
)

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List indexed definitions",
	Long:  "Reads the SQLite index produced by scan and prints the definitions it holds, optionally filtered by language, kind, or name.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListLang, "lang", "", "filter by language")
	listCmd.Flags().StringVar(&flagListKind, "kind", "", "filter by kind: function|class")
	listCmd.Flags().StringVar(&flagListName, "name", "", "filter by exact name")
	listCmd.Flags().BoolVar(&flagCounts, "counts", false, "print per-language definition counts instead")
}

func runList(cmd *cobra.Command, args []string) error {
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
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no index at %s: run scan first", dbPath)
	}

	scanner, err := pinpoint.NewScanner(dbPath)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}
	defer scanner.Close()

	if flagCounts {
		counts, err := scanner.CountByLanguage()
		if err != nil {
			return fmt.Errorf("counting: %w", err)
		}
		return outputCounts(os.Stdout, flagFormat, counts)
	}

	if flagListKind != "" && flagListKind != "function" && flagListKind != "class" {
		return fmt.Errorf("invalid kind %q: must be function or class", flagListKind)
	}

	defs, err := scanner.List(pinpoint.Filter{
		Language: flagListLang,
		Kind:     flagListKind,
		Name:     flagListName,
	})
	if err != nil {
		return fmt.Errorf("listing: %w", err)
	}

	return outputDefinitions(os.Stdout, flagFormat, defs)
}
