// Package profile holds the per-language grammar profiles: declarative
// descriptions of which syntax-tree node shapes constitute a function or a
// class, and where their name, body, docstring, and decorator captures live.
//
// A profile is pure data. The matching engine in internal/match interprets
// profiles against parsed trees; adding a language means adding one file to
// this package and registering its profile in an init function, without
// touching the engine.
package profile

import (
	"fmt"
	"sort"
)

// Kind is the logical definition kind a rule matches.
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
)

// DecoratorStyle says where a shape's decorator/attribute captures live
// relative to the matched node.
type DecoratorStyle int

const (
	// DecoratorNone means the shape carries no decorators.
	DecoratorNone DecoratorStyle = iota
	// DecoratorWrapper collects decorator children of the wrapper node
	// (Python's decorated_definition).
	DecoratorWrapper
	// DecoratorLeading collects contiguous preceding siblings of the
	// matched node (Rust attribute_item, PHP attribute_list).
	DecoratorLeading
	// DecoratorContained collects annotation nodes inside a container
	// child of the matched node (Java's modifiers).
	DecoratorContained
)

// DocstringRule describes how a language embeds a documentation string as
// the first statement of a definition body (the Python convention).
type DocstringRule struct {
	// WrapperType is the statement node wrapping the string inside the
	// body, e.g. "expression_statement".
	WrapperType string
	// StringTypes are the node types accepted as the docstring itself.
	StringTypes []string
}

// Shape is one structural pattern describing a legal surface form of a
// function or class definition. Shapes within a rule are tried in declared
// order and the first structural match wins, so shapes that capture a strict
// superset of fields (decorated, async) must precede their bare counterparts.
type Shape struct {
	// NodeType is the syntax node kind this shape matches.
	NodeType string

	// Wrapper, when non-empty, requires the node's parent to have this
	// type. The wrapper extends the whole-definition span upward (so a
	// decorated definition includes its decorators) and is where
	// DecoratorWrapper captures are collected.
	Wrapper string

	// Keyword, when non-empty, requires an anonymous child token with
	// this content ("async", "const"). Used to give qualified variants
	// their own alternative ahead of the bare shape.
	Keyword string

	// NameField is the tree-sitter field holding the identifier. When the
	// field's node is not directly one of NameTypes (C declarators nest),
	// the engine descends to the first matching descendant. An empty
	// NameField with empty NameTypes marks an anonymous form (lambda).
	NameField string
	NameTypes []string

	// BodyField is the tree-sitter field holding the body. BodyTypes is
	// the fallback child-type scan for grammars without a body field
	// (Ruby's body_statement). BodyOptional permits definitions whose
	// body can be syntactically empty (def f; end); the matcher then
	// records a collapsed body span at the definition's end.
	// BodyUndelimited marks body nodes that exclude the construct's
	// closing delimiter (Ruby's body_statement stops before the end
	// keyword), which shifts bottom-of-body insertion past the last
	// body line.
	BodyField       string
	BodyTypes       []string
	BodyOptional    bool
	BodyUndelimited bool

	// ValueField/ValueTypes support declarator-style definitions
	// (const f = () => {}): the field names the child holding the
	// callable, which must have one of ValueTypes. Name is captured from
	// the matched node, body from the callable.
	ValueField string
	ValueTypes []string

	// Decorator capture configuration. DecoratorContainer names the child
	// holding annotations for DecoratorContained.
	DecoratorStyle     DecoratorStyle
	DecoratorTypes     []string
	DecoratorContainer string

	// Docstring configures body-embedded docstring capture.
	Docstring *DocstringRule

	// LeadingComments lists comment node types glued immediately above
	// the definition that are captured as its documentation (Go, Rust,
	// Java doc comments).
	LeadingComments []string
}

// DefinitionRule is the ordered shape list for one definition kind.
type DefinitionRule struct {
	Kind   Kind
	Shapes []Shape
}

// Profile is the complete grammar profile for one language. Immutable after
// registration; safe for concurrent reads.
type Profile struct {
	// Language is the canonical language name ("python", "go").
	Language string

	// IndentSensitive marks languages whose block structure is carried by
	// indentation, so inserted content must reproduce the surrounding
	// indent exactly.
	IndentSensitive bool

	Rules []DefinitionRule
}

// Rule returns the profile's rule for the given kind, or nil.
func (p *Profile) Rule(kind Kind) *DefinitionRule {
	for i := range p.Rules {
		if p.Rules[i].Kind == kind {
			return &p.Rules[i]
		}
	}
	return nil
}

// UnsupportedLanguageError reports a language with no registered profile.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: %v)", e.Language, Supported())
}

// profiles maps language names to their grammar profiles.
// Populated by init() functions in the per-language files.
var profiles = map[string]*Profile{}

func register(p *Profile) {
	profiles[p.Language] = p
}

// Get returns the profile for a canonical language name. Requesting an
// unknown language is an explicit UnsupportedLanguageError, never a silent
// empty profile.
func Get(language string) (*Profile, error) {
	p, ok := profiles[language]
	if !ok {
		return nil, &UnsupportedLanguageError{Language: language}
	}
	return p, nil
}

// Supported returns the registered language names in sorted order.
func Supported() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
