// Package match implements the shared pattern-matching engine that
// interprets a language profile against a parsed syntax tree and produces
// definition candidates.
package match

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/pinpoint/internal/profile"
)

// Span delimits a region of source text. Lines and columns are 0-based;
// the end position points one past the last character, matching tree-sitter
// points. Start never exceeds End.
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
}

func nodeSpan(n *sitter.Node) Span {
	return Span{
		StartLine: int(n.StartPoint().Row),
		StartCol:  int(n.StartPoint().Column),
		EndLine:   int(n.EndPoint().Row),
		EndCol:    int(n.EndPoint().Column),
	}
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	startOK := s.StartLine < other.StartLine ||
		(s.StartLine == other.StartLine && s.StartCol <= other.StartCol)
	endOK := s.EndLine > other.EndLine ||
		(s.EndLine == other.EndLine && s.EndCol >= other.EndCol)
	return startOK && endOK
}

// Zero reports whether the span is a zero-width insertion point.
func (s Span) Zero() bool {
	return s.StartLine == s.EndLine && s.StartCol == s.EndCol
}

// Candidate is one matched definition. Optional captures are explicitly
// absent (nil), never empty-span placeholders.
type Candidate struct {
	Kind profile.Kind `json:"kind"`
	// Name is the captured identifier text, empty for anonymous forms.
	Name string `json:"name"`
	// Definition covers the whole construct including any wrapper,
	// leading decorators, and leading doc comments that belong to it.
	Definition Span `json:"definition"`
	// Body is the definition's body span. Always contained in Definition.
	Body Span `json:"body"`
	// BodyUndelimited marks a body span that stops before the
	// construct's closing delimiter (Ruby's body_statement ends before
	// the end keyword). Bottom-of-body insertion then goes after the
	// last body line instead of before the delimiter's line.
	BodyUndelimited bool `json:"body_undelimited,omitempty"`
	// NameSpan is the identifier span, nil for anonymous forms.
	NameSpan *Span `json:"name_span,omitempty"`
	// Docstring covers the documentation attached to the definition:
	// either a body-embedded docstring or a leading doc-comment block.
	Docstring *Span `json:"docstring,omitempty"`
	// Decorators are the decorator/attribute/annotation spans in source
	// order.
	Decorators []Span `json:"decorators,omitempty"`
	// Enclosing indexes the enclosing class candidate in the same
	// candidate list, or -1 for top-level definitions. A weak reference:
	// candidates do not own each other.
	Enclosing int `json:"enclosing"`
}

// Candidates runs the profile's rules over the tree rooted at root and
// returns every matched definition in source order (top-to-bottom,
// depth-first). That order is the tie-break basis for ordinal selection.
func Candidates(root *sitter.Node, source []byte, prof *profile.Profile) []Candidate {
	m := &matcher{source: source, prof: prof}
	m.walk(root, -1)
	return m.out
}

type matcher struct {
	source []byte
	prof   *profile.Profile
	out    []Candidate
}

func (m *matcher) walk(node *sitter.Node, enclosing int) {
	classIdx := enclosing
	for r := range m.prof.Rules {
		rule := &m.prof.Rules[r]
		// First alternative whose structural shape matches wins; a node
		// may still produce one candidate per kind.
		for s := range rule.Shapes {
			cand, ok := m.tryShape(node, &rule.Shapes[s], rule.Kind, enclosing)
			if !ok {
				continue
			}
			m.out = append(m.out, cand)
			if rule.Kind == profile.KindClass {
				classIdx = len(m.out) - 1
			}
			break
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		m.walk(node.NamedChild(i), classIdx)
	}
}

func (m *matcher) tryShape(node *sitter.Node, shape *profile.Shape, kind profile.Kind, enclosing int) (Candidate, bool) {
	if node.Type() != shape.NodeType {
		return Candidate{}, false
	}

	var wrapper *sitter.Node
	if shape.Wrapper != "" {
		p := node.Parent()
		if p == nil || p.Type() != shape.Wrapper {
			return Candidate{}, false
		}
		wrapper = p
	}

	if shape.Keyword != "" && !hasToken(node, shape.Keyword) {
		return Candidate{}, false
	}

	// Declarator forms: the callable lives behind a value field and the
	// body is resolved from it.
	inner := node
	if shape.ValueField != "" {
		v := node.ChildByFieldName(shape.ValueField)
		if v == nil || !typeIn(v.Type(), shape.ValueTypes) {
			return Candidate{}, false
		}
		inner = v
	}

	cand := Candidate{Kind: kind, Enclosing: enclosing}

	if shape.NameField != "" || len(shape.NameTypes) > 0 {
		nameNode := captureName(node, shape)
		if nameNode == nil {
			return Candidate{}, false
		}
		cand.Name = string(m.source[nameNode.StartByte():nameNode.EndByte()])
		sp := nodeSpan(nameNode)
		cand.NameSpan = &sp
	}

	body := captureBody(inner, shape)
	if body == nil && !shape.BodyOptional {
		return Candidate{}, false
	}

	outer := node
	if wrapper != nil {
		outer = wrapper
	}
	cand.Definition = nodeSpan(outer)

	if body != nil {
		cand.Body = nodeSpan(body)
		cand.BodyUndelimited = shape.BodyUndelimited
	} else {
		// Syntactically empty body: collapse to the definition's end.
		end := cand.Definition
		cand.Body = Span{StartLine: end.EndLine, StartCol: end.EndCol, EndLine: end.EndLine, EndCol: end.EndCol}
	}

	switch shape.DecoratorStyle {
	case profile.DecoratorWrapper:
		for i := 0; i < int(wrapper.NamedChildCount()); i++ {
			child := wrapper.NamedChild(i)
			if typeIn(child.Type(), shape.DecoratorTypes) {
				cand.Decorators = append(cand.Decorators, nodeSpan(child))
			}
		}
	case profile.DecoratorContained:
		if container := namedChildOfType(node, shape.DecoratorContainer); container != nil {
			for i := 0; i < int(container.NamedChildCount()); i++ {
				child := container.NamedChild(i)
				if typeIn(child.Type(), shape.DecoratorTypes) {
					cand.Decorators = append(cand.Decorators, nodeSpan(child))
				}
			}
		}
	}

	m.captureLeading(outer, shape, &cand)

	if cand.Docstring == nil && shape.Docstring != nil && body != nil {
		if doc := captureDocstring(body, shape.Docstring); doc != nil {
			sp := nodeSpan(doc)
			cand.Docstring = &sp
		}
	}

	return cand, true
}

// captureLeading collects contiguous preceding siblings that belong to the
// definition: leading attributes (DecoratorLeading) and doc comments. Both
// extend the whole-definition span upward.
func (m *matcher) captureLeading(outer *sitter.Node, shape *profile.Shape, cand *Candidate) {
	leadingDecorators := shape.DecoratorStyle == profile.DecoratorLeading
	if !leadingDecorators && len(shape.LeadingComments) == 0 {
		return
	}

	var decorators, comments []*sitter.Node
	prevLine := int(outer.StartPoint().Row)
	for sib := outer.PrevNamedSibling(); sib != nil; sib = sib.PrevNamedSibling() {
		// Only glue siblings with no blank line in between.
		if int(sib.EndPoint().Row) < prevLine-1 {
			break
		}
		switch {
		case leadingDecorators && typeIn(sib.Type(), shape.DecoratorTypes):
			decorators = append(decorators, sib)
		case typeIn(sib.Type(), shape.LeadingComments):
			comments = append(comments, sib)
		default:
			m.commitLeading(decorators, comments, cand)
			return
		}
		prevLine = int(sib.StartPoint().Row)
	}
	m.commitLeading(decorators, comments, cand)
}

func (m *matcher) commitLeading(decorators, comments []*sitter.Node, cand *Candidate) {
	// Collected bottom-up; restore source order.
	for i := len(decorators) - 1; i >= 0; i-- {
		cand.Decorators = append(cand.Decorators, nodeSpan(decorators[i]))
	}
	if len(comments) > 0 {
		first := nodeSpan(comments[len(comments)-1])
		last := nodeSpan(comments[0])
		cand.Docstring = &Span{
			StartLine: first.StartLine, StartCol: first.StartCol,
			EndLine: last.EndLine, EndCol: last.EndCol,
		}
	}
	// The definition span includes whatever leading material belongs to it.
	start := cand.Definition
	for _, d := range cand.Decorators {
		if d.StartLine < start.StartLine || (d.StartLine == start.StartLine && d.StartCol < start.StartCol) {
			start.StartLine, start.StartCol = d.StartLine, d.StartCol
		}
	}
	if cand.Docstring != nil {
		d := *cand.Docstring
		if d.StartLine < start.StartLine || (d.StartLine == start.StartLine && d.StartCol < start.StartCol) {
			start.StartLine, start.StartCol = d.StartLine, d.StartCol
		}
	}
	cand.Definition = start
}

func hasToken(node *sitter.Node, token string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == token {
			return true
		}
	}
	return false
}

func typeIn(t string, types []string) bool {
	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}
	return false
}

func namedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// captureName resolves the identifier node for a shape. With a name field,
// the field's node wins directly; when it is not one of NameTypes the scan
// descends into it, for grammars that nest the identifier (C declarators).
// A declared-but-absent name field fails the capture outright: anonymous
// aggregates must not borrow an identifier from their own body.
func captureName(node *sitter.Node, shape *profile.Shape) *sitter.Node {
	if shape.NameField != "" {
		n := node.ChildByFieldName(shape.NameField)
		if n == nil {
			return nil
		}
		if len(shape.NameTypes) == 0 || typeIn(n.Type(), shape.NameTypes) {
			return n
		}
		return firstDescendantOfTypes(n, shape.NameTypes)
	}
	return firstDescendantOfTypes(node, shape.NameTypes)
}

func firstDescendantOfTypes(node *sitter.Node, types []string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if typeIn(child.Type(), types) {
			return child
		}
		if d := firstDescendantOfTypes(child, types); d != nil {
			return d
		}
	}
	return nil
}

func captureBody(node *sitter.Node, shape *profile.Shape) *sitter.Node {
	if shape.BodyField != "" {
		if b := node.ChildByFieldName(shape.BodyField); b != nil {
			if len(shape.BodyTypes) == 0 || typeIn(b.Type(), shape.BodyTypes) {
				return b
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); typeIn(child.Type(), shape.BodyTypes) {
			return child
		}
	}
	return nil
}

func captureDocstring(body *sitter.Node, rule *profile.DocstringRule) *sitter.Node {
	first := body.NamedChild(0)
	if first == nil || first.Type() != rule.WrapperType {
		return nil
	}
	str := first.NamedChild(0)
	if str == nil || !typeIn(str.Type(), rule.StringTypes) {
		return nil
	}
	return first
}
