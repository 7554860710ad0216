// Package locate resolves a symbolic query against a candidate list to
// exactly one definition, or fails with a diagnosable error.
package locate

import (
	"fmt"

	"github.com/jward/pinpoint/internal/match"
	"github.com/jward/pinpoint/internal/profile"
)

// Query is a symbolic reference to a definition. Name matching is exact and
// case-sensitive; no pattern matching.
type Query struct {
	Kind profile.Kind `json:"kind"`
	Name string       `json:"name"`
	// EnclosingClass restricts matches to methods of the named class.
	// Empty means no restriction on nesting.
	EnclosingClass string `json:"enclosing_class,omitempty"`
	// TopLevelOnly restricts matches to definitions with no enclosing
	// class. Mutually exclusive with EnclosingClass.
	TopLevelOnly bool `json:"top_level_only,omitempty"`
	// Ordinal picks the Nth match in source order (1-based) when several
	// definitions share the same name. Zero means unset.
	Ordinal int `json:"ordinal,omitempty"`
}

func (q Query) String() string {
	s := fmt.Sprintf("%s %q", q.Kind, q.Name)
	if q.EnclosingClass != "" {
		s += fmt.Sprintf(" in class %q", q.EnclosingClass)
	} else if q.TopLevelOnly {
		s += " at top level"
	}
	if q.Ordinal > 0 {
		s += fmt.Sprintf(" (ordinal %d)", q.Ordinal)
	}
	return s
}

// NotFoundError reports a query that matched no candidate.
type NotFoundError struct {
	Query Query
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no definition found for %s", e.Query)
}

// AmbiguousError reports a query that matched several candidates without an
// ordinal to pick one.
type AmbiguousError struct {
	Query Query
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d definitions match %s; add an ordinal (1-%d) to disambiguate",
		e.Count, e.Query, e.Count)
}

// InvalidOrdinalError reports a nonsensical ordinal selector.
type InvalidOrdinalError struct {
	Ordinal int
}

func (e *InvalidOrdinalError) Error() string {
	return fmt.Sprintf("invalid ordinal %d: ordinals are 1-based", e.Ordinal)
}

// Find resolves q against candidates. Pure and deterministic: identical
// inputs always produce the identical answer. The returned pointer indexes
// into the given slice.
func Find(candidates []match.Candidate, q Query) (*match.Candidate, error) {
	if q.Ordinal < 0 {
		return nil, &InvalidOrdinalError{Ordinal: q.Ordinal}
	}

	var hits []int
	for i := range candidates {
		c := &candidates[i]
		if c.Kind != q.Kind || c.Name != q.Name {
			continue
		}
		if q.EnclosingClass != "" {
			if c.Enclosing < 0 || candidates[c.Enclosing].Name != q.EnclosingClass {
				continue
			}
		} else if q.TopLevelOnly && c.Enclosing >= 0 {
			continue
		}
		hits = append(hits, i)
	}

	switch {
	case len(hits) == 0:
		return nil, &NotFoundError{Query: q}
	case q.Ordinal > 0:
		// Candidates are in source order, so the ordinal indexes hits
		// directly. An out-of-range ordinal is a not-found, not an
		// ambiguity.
		if q.Ordinal > len(hits) {
			return nil, &NotFoundError{Query: q}
		}
		return &candidates[hits[q.Ordinal-1]], nil
	case len(hits) == 1:
		return &candidates[hits[0]], nil
	default:
		return nil, &AmbiguousError{Query: q, Count: len(hits)}
	}
}
