package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jward/pinpoint"
)

var (
	flagKind     string
	flagName     string
	flagClass    string
	flagTopLevel bool
	flagOrdinal  int
	flagMode     string
	flagLang     string
)

var locateCmd = &cobra.Command{
	Use:   "locate FILE",
	Short: "Resolve a definition reference to an edit region",
	Long: `Parses FILE, resolves the symbolic reference given by --kind/--name
(optionally narrowed by --class, --top-level, or --ordinal), and prints the
edit region for the chosen insertion mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&flagKind, "kind", "function", "definition kind: function|class")
	locateCmd.Flags().StringVar(&flagName, "name", "", "definition name (exact, case-sensitive)")
	locateCmd.Flags().StringVar(&flagClass, "class", "", "enclosing class name")
	locateCmd.Flags().BoolVar(&flagTopLevel, "top-level", false, "only match top-level definitions")
	locateCmd.Flags().IntVar(&flagOrdinal, "ordinal", 0, "pick the Nth match in source order (1-based)")
	locateCmd.Flags().StringVar(&flagMode, "mode", "whole", "edit region mode: whole|body|before|after|top|bottom")
	locateCmd.Flags().StringVar(&flagLang, "lang", "", "language override (default: detect from extension)")
	locateCmd.MarkFlagRequired("name")
}

func runLocate(cmd *cobra.Command, args []string) error {
	path := args[0]

	lang := flagLang
	if lang == "" {
		detected, ok := pinpoint.LanguageForFile(path)
		if !ok {
			return fmt.Errorf("cannot detect language for %s; pass --lang", path)
		}
		lang = detected
	}

	mode, err := pinpoint.ParseMode(flagMode)
	if err != nil {
		return err
	}

	kind := pinpoint.Kind(flagKind)
	if kind != pinpoint.KindFunction && kind != pinpoint.KindClass {
		return fmt.Errorf("invalid kind %q: must be function or class", flagKind)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	query := pinpoint.Query{
		Kind:           kind,
		Name:           flagName,
		EnclosingClass: flagClass,
		TopLevelOnly:   flagTopLevel,
		Ordinal:        flagOrdinal,
	}

	region, err := pinpoint.LocateAndComputeRegion(context.Background(), source, lang, query, mode)
	if err != nil {
		return err
	}

	return outputRegion(os.Stdout, flagFormat, path, region)
}
