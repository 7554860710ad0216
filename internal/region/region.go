// Package region computes concrete edit regions (spans plus indentation)
// from resolved definition candidates.
package region

import (
	"fmt"

	"github.com/jward/pinpoint/internal/match"
)

// Mode selects which part of a definition an edit region covers, or where
// around it a zero-width insertion point lands.
type Mode int

const (
	WholeDefinition Mode = iota
	BodyOnly
	Before
	After
	TopOfBody
	BottomOfBody
)

var modeNames = map[Mode]string{
	WholeDefinition: "whole",
	BodyOnly:        "body",
	Before:          "before",
	After:           "after",
	TopOfBody:       "top",
	BottomOfBody:    "bottom",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name ("whole", "body", "before", "after",
// "top", "bottom") to a Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown insertion mode %q", name)
}

// Region is a concrete edit target: the span to replace (zero-width for
// insertion points) and the indentation column count the caller applies to
// every inserted line. Indent is the base for relative indentation: a line
// annotated "@0:" renders at exactly this indent.
type Region struct {
	Span   match.Span `json:"span"`
	Indent int        `json:"indent"`
}

// Compute derives the edit region for a resolved candidate. lines is the
// file's text split on newlines; it supplies indentation context.
// indentSensitive marks languages whose blocks are delimited by indentation
// rather than brackets, which changes where bottom-of-body insertion lands.
func Compute(c *match.Candidate, mode Mode, lines []string, indentSensitive bool) (Region, error) {
	defIndent := lineIndentAt(lines, c.Definition.StartLine)
	info := Analyze(lines)
	bodyIndent := defIndent + info.CharCount

	// When the body starts on its own line its real indent wins.
	if c.Body.StartLine > c.Definition.StartLine {
		bodyIndent = lineIndentAt(lines, c.Body.StartLine)
	}

	switch mode {
	case WholeDefinition:
		return Region{Span: c.Definition, Indent: defIndent}, nil

	case BodyOnly:
		return Region{Span: c.Body, Indent: bodyIndent}, nil

	case Before:
		return Region{Span: pointAt(c.Definition.StartLine), Indent: defIndent}, nil

	case After:
		return Region{Span: pointAt(c.Definition.EndLine + 1), Indent: defIndent}, nil

	case TopOfBody:
		if c.Body.StartLine > c.Definition.StartLine {
			// Body opens on its own line: insert right before its
			// first statement.
			return Region{Span: pointAt(c.Body.StartLine), Indent: bodyIndent}, nil
		}
		// Body opens on the definition line (brace languages,
		// single-line defs): insert on the next line, one step deeper.
		return Region{Span: pointAt(c.Body.StartLine + 1), Indent: bodyIndent}, nil

	case BottomOfBody:
		if indentSensitive || c.BodyUndelimited {
			// The body's last line is its last statement, not a closing
			// delimiter; insert after it.
			return Region{Span: pointAt(c.Body.EndLine + 1), Indent: bodyIndent}, nil
		}
		// Insert before the closing delimiter's line.
		return Region{Span: pointAt(c.Body.EndLine), Indent: bodyIndent}, nil

	default:
		return Region{}, fmt.Errorf("unknown insertion mode %v", mode)
	}
}

// pointAt builds a zero-width insertion point at the start of a line.
func pointAt(line int) match.Span {
	return match.Span{StartLine: line, StartCol: 0, EndLine: line, EndCol: 0}
}

func lineIndentAt(lines []string, idx int) int {
	if idx < 0 || idx >= len(lines) {
		return 0
	}
	return LineIndent(lines[idx])
}
