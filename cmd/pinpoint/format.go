package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/jward/pinpoint"
)

// regionResult is the JSON envelope for locate output.
type regionResult struct {
	File   string          `json:"file"`
	Region pinpoint.Region `json:"region"`
}

// outputRegion writes a resolved edit region in the requested format.
func outputRegion(w io.Writer, format, path string, region pinpoint.Region) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(regionResult{File: path, Region: region})
	}
	formatRegionText(w, path, region)
	return nil
}

// formatRegionText prints the region as "file:startLine.startCol-endLine.endCol"
// with the indent level, lines and columns 1-based for editor consumption.
func formatRegionText(w io.Writer, path string, region pinpoint.Region) {
	s := region.Span
	fmt.Fprintf(w, "%s:%d.%d-%d.%d indent=%d\n",
		path, s.StartLine+1, s.StartCol+1, s.EndLine+1, s.EndCol+1, region.Indent)
}

// outputDefinitions writes indexed definitions in the requested format.
func outputDefinitions(w io.Writer, format string, defs []pinpoint.Definition) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}
	formatDefinitionsText(w, defs)
	return nil
}

// outputCounts writes per-language definition counts.
func outputCounts(w io.Writer, format string, counts map[string]int) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}
	languages := make([]string, 0, len(counts))
	for lang := range counts {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tDEFINITIONS")
	for _, lang := range languages {
		fmt.Fprintf(tw, "%s\t%d\n", lang, counts[lang])
	}
	return tw.Flush()
}

// formatDefinitionsText prints definitions as aligned columns.
func formatDefinitionsText(w io.Writer, defs []pinpoint.Definition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tCLASS\tFILE\tLINE\tLANGUAGE")
	for _, d := range defs {
		class := d.EnclosingClass
		if class == "" {
			class = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			d.Kind, d.Name, class, d.Path, d.StartLine+1, d.Language)
	}
	tw.Flush()
}
