package region

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// LineIndent counts the leading whitespace characters of a line.
func LineIndent(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// Indentation extracts the leading whitespace of a line.
func Indentation(line string) string {
	return line[:LineIndent(line)]
}

// IndentationInfo describes the indentation style of a piece of text: the
// dominant indent character, how many of them make one level, and the
// minimum level present.
type IndentationInfo struct {
	// CharCount is the number of characters per indentation level.
	CharCount int
	// Char is the indentation character, ' ' or '\t'.
	Char byte
	// MinLevel is the lowest indentation level found.
	MinLevel int
	// Consistent is false when some line's indent is not a multiple of
	// CharCount.
	Consistent bool
	// Note describes the analysis result, for diagnostics.
	Note string
}

// Analyze inspects the indentation of lines and infers the style. With no
// indented lines it assumes four spaces. For space indentation the unit is
// the largest common divisor of the most frequent even indent widths.
func Analyze(lines []string) IndentationInfo {
	var indents []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if ind := Indentation(line); ind != "" {
			indents = append(indents, ind)
		}
	}
	if len(indents) == 0 {
		return IndentationInfo{CharCount: 4, Char: ' ', Consistent: true, Note: "no indentation found, assuming 4 spaces"}
	}

	spaces, tabs := 0, 0
	for _, ind := range indents {
		if ind[0] == '\t' {
			tabs++
		} else {
			spaces++
		}
	}
	char := byte(' ')
	if tabs > spaces {
		char = '\t'
	}

	charCount := 1
	if char == ' ' {
		charCount = spaceUnit(indents)
	}

	minChars := len(indents[0])
	for _, ind := range indents {
		if len(ind) < minChars {
			minChars = len(ind)
		}
	}

	consistent := true
	for _, ind := range indents {
		if len(ind)%charCount != 0 {
			consistent = false
			break
		}
	}

	kind := "space"
	if char == '\t' {
		kind = "tab"
	}
	note := fmt.Sprintf("found %d-%s indentation", charCount, kind)
	if !consistent {
		note += " (inconsistent)"
	}

	return IndentationInfo{
		CharCount:  charCount,
		Char:       char,
		MinLevel:   minChars / charCount,
		Consistent: consistent,
		Note:       note,
	}
}

// spaceUnit guesses the per-level space count: take the most frequent even
// widths and reduce them by GCD.
func spaceUnit(indents []string) int {
	freq := map[int]int{}
	for _, ind := range indents {
		if n := len(ind); n > 0 && n%2 == 0 {
			freq[n]++
		}
	}
	if len(freq) == 0 {
		return 2
	}
	type wc struct{ width, count int }
	var widths []wc
	for w, c := range freq {
		widths = append(widths, wc{w, c})
	}
	sort.Slice(widths, func(i, j int) bool {
		if widths[i].count != widths[j].count {
			return widths[i].count > widths[j].count
		}
		return widths[i].width > widths[j].width
	})
	if len(widths) > 5 {
		widths = widths[:5]
	}
	sort.Slice(widths, func(i, j int) bool { return widths[i].width > widths[j].width })

	unit := widths[0].width
	for _, w := range widths[1:] {
		g := gcd(unit, w.width)
		if g <= 1 {
			break
		}
		unit = g
	}
	return unit
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Level converts a leading-whitespace character count to a level.
func (info IndentationInfo) Level(charCount int) int {
	return charCount / info.CharCount
}

// LevelChars renders an indentation level as characters.
func (info IndentationInfo) LevelChars(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(string(info.Char), level*info.CharCount)
}

// Shift re-indents lines so their minimum level lands on the level implied
// by targetIndent, preserving relative structure. Blank lines pass through.
func (info IndentationInfo) Shift(lines []string, targetIndent int) []string {
	diff := info.Level(targetIndent) - info.MinLevel
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		level := info.Level(LineIndent(line)) + diff
		if level < 0 {
			level = 0
		}
		out[i] = info.LevelChars(level) + strings.TrimLeft(line, " \t")
	}
	return out
}

// ApplyRelativeIndents normalizes content annotated with @N: line prefixes,
// where N is the indentation level relative to contextIndent ("@0:" means
// the context level unchanged). Unannotated lines get the context level.
func (info IndentationInfo) ApplyRelativeIndents(lines []string, contextIndent int) ([]string, error) {
	contextLevel := info.Level(contextIndent)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			out = append(out, "")
			continue
		}
		level := contextLevel
		if rest, ok := strings.CutPrefix(trimmed, "@"); ok {
			if marker, body, found := strings.Cut(rest, ":"); found {
				rel, err := strconv.Atoi(marker)
				if err != nil {
					return nil, fmt.Errorf("invalid relative indent prefix in %q: %w", line, err)
				}
				level = contextLevel + rel
				if level < 0 {
					return nil, fmt.Errorf("indentation for line %q cannot be negative (%d)", strings.TrimSpace(body), level)
				}
				trimmed = strings.TrimLeft(body, " \t")
			}
		}
		out = append(out, info.LevelChars(level)+trimmed)
	}
	return out, nil
}
