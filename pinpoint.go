package pinpoint

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/pinpoint/internal/locate"
	"github.com/jward/pinpoint/internal/match"
	"github.com/jward/pinpoint/internal/profile"
	"github.com/jward/pinpoint/internal/region"
)

// ParseError reports a failure from the tree-sitter parsing step.
type ParseError struct {
	Language string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s source: %v", e.Language, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses source text for a language and returns the syntax tree.
// The caller owns the tree and must Close it.
func Parse(ctx context.Context, source []byte, language string) (*sitter.Tree, error) {
	grammar, ok := profile.Grammar(language)
	if !ok {
		return nil, &UnsupportedLanguageError{Language: language}
	}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, &ParseError{Language: language, Err: err}
	}
	return tree, nil
}

// MatchFile parses source and returns every definition candidate in source
// order. Candidates reference each other by index (enclosing class), so the
// slice must be kept whole for qualified lookups.
func MatchFile(ctx context.Context, source []byte, language string) ([]Candidate, error) {
	prof, err := profile.Get(language)
	if err != nil {
		return nil, err
	}
	tree, err := Parse(ctx, source, language)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return match.Candidates(tree.RootNode(), source, prof), nil
}

// Locate parses source and resolves the query to exactly one definition
// candidate, or fails with a NotFound/Ambiguous/InvalidOrdinal error.
func Locate(ctx context.Context, source []byte, language string, q Query) (*Candidate, error) {
	candidates, err := MatchFile(ctx, source, language)
	if err != nil {
		return nil, err
	}
	return locate.Find(candidates, q)
}

// LocateAndComputeRegion is the composed entry point for the edit pipeline:
// profile lookup, parse, match, locate, and edit-region computation in one
// call. Candidates are recomputed fresh on every call since prior edits
// invalidate spans; re-parsing after a mutation is the caller's job.
func LocateAndComputeRegion(ctx context.Context, source []byte, language string, q Query, mode Mode) (Region, error) {
	prof, err := profile.Get(language)
	if err != nil {
		return Region{}, err
	}
	tree, err := Parse(ctx, source, language)
	if err != nil {
		return Region{}, err
	}
	defer tree.Close()

	candidates := match.Candidates(tree.RootNode(), source, prof)
	c, err := locate.Find(candidates, q)
	if err != nil {
		return Region{}, err
	}

	lines := strings.Split(string(source), "\n")
	return region.Compute(c, mode, lines, prof.IndentSensitive)
}

// AnalyzeIndentation infers the indentation style of source lines. Exposed
// for edit pipelines that shift or normalize inserted content.
func AnalyzeIndentation(lines []string) IndentationInfo {
	return region.Analyze(lines)
}
