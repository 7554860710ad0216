package match

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/pinpoint/internal/profile"
)

func candidatesFor(t *testing.T, lang, source string) []Candidate {
	t.Helper()
	prof, err := profile.Get(lang)
	require.NoError(t, err)
	grammar, ok := profile.Grammar(lang)
	require.True(t, ok)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	require.NoError(t, err)
	t.Cleanup(func() { tree.Close() })

	return Candidates(tree.RootNode(), []byte(source), prof)
}

func named(candidates []Candidate, kind profile.Kind, name string) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if c.Kind == kind && c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{StartLine: 1, StartCol: 0, EndLine: 10, EndCol: 1}
	assert.True(t, outer.Contains(Span{StartLine: 2, StartCol: 4, EndLine: 9, EndCol: 0}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Span{StartLine: 0, StartCol: 0, EndLine: 5, EndCol: 0}))
	assert.False(t, outer.Contains(Span{StartLine: 5, StartCol: 0, EndLine: 10, EndCol: 2}))
}

func TestPython_BareFunction(t *testing.T) {
	src := `def greet(name):
    """Say hello."""
    return "hi " + name
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, profile.KindFunction, c.Kind)
	assert.Equal(t, "greet", c.Name)
	assert.Equal(t, -1, c.Enclosing)
	assert.Equal(t, 0, c.Definition.StartLine)
	assert.Equal(t, 2, c.Definition.EndLine)

	require.NotNil(t, c.NameSpan)
	assert.Equal(t, 0, c.NameSpan.StartLine)
	assert.Equal(t, 4, c.NameSpan.StartCol)

	require.NotNil(t, c.Docstring)
	assert.Equal(t, 1, c.Docstring.StartLine)
	assert.Empty(t, c.Decorators)
	assert.True(t, c.Definition.Contains(c.Body))
}

func TestPython_DecoratedFunction(t *testing.T) {
	src := `@cached
@retry(times=3)
def fetch(url):
    return get(url)
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 1, "a decorated definition must yield one candidate, not two")

	c := candidates[0]
	assert.Equal(t, "fetch", c.Name)
	require.Len(t, c.Decorators, 2)
	// Decorators in source order, and the definition span covers them.
	assert.Equal(t, 0, c.Decorators[0].StartLine)
	assert.Equal(t, 1, c.Decorators[1].StartLine)
	assert.Equal(t, 0, c.Definition.StartLine)
	assert.Equal(t, 3, c.Definition.EndLine)
	for _, d := range c.Decorators {
		assert.True(t, c.Definition.Contains(d))
	}
}

func TestPython_AsyncFunction(t *testing.T) {
	src := `async def poll(queue):
    await queue.get()
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 1)
	assert.Equal(t, "poll", candidates[0].Name)
	assert.Equal(t, 0, candidates[0].Definition.StartLine)
}

func TestPython_ClassWithMethods(t *testing.T) {
	src := `class Widget:
    """A drawable widget."""

    def render(self):
        return "<div>"

    def hide(self):
        self.visible = False

def render():
    return None
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 4)

	class := candidates[0]
	assert.Equal(t, profile.KindClass, class.Kind)
	assert.Equal(t, "Widget", class.Name)
	assert.Equal(t, -1, class.Enclosing)
	require.NotNil(t, class.Docstring)

	// Methods reference the class by index; the trailing top-level
	// function does not.
	assert.Equal(t, "render", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	assert.Equal(t, "hide", candidates[2].Name)
	assert.Equal(t, 0, candidates[2].Enclosing)
	assert.Equal(t, "render", candidates[3].Name)
	assert.Equal(t, -1, candidates[3].Enclosing)

	for _, method := range candidates[1:3] {
		assert.True(t, class.Definition.Contains(method.Definition))
	}
}

func TestPython_LambdaIsAnonymous(t *testing.T) {
	src := "double = lambda x: x * 2\n"

	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Name)
	assert.Nil(t, candidates[0].NameSpan)
	assert.Nil(t, candidates[0].Docstring)
}

func TestPython_NoDocstring(t *testing.T) {
	src := `def f():
    x = 1
    return x
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].Docstring, "absent docstring must be nil, not an empty span")
}

func TestGo_FunctionWithDocComment(t *testing.T) {
	src := `package demo

// Render draws the widget.
// It never fails.
func Render() string {
	return "<div>"
}
`
	candidates := candidatesFor(t, "go", src)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "Render", c.Name)
	require.NotNil(t, c.Docstring)
	assert.Equal(t, 2, c.Docstring.StartLine)
	assert.Equal(t, 3, c.Docstring.EndLine)
	// The doc comment belongs to the definition span.
	assert.Equal(t, 2, c.Definition.StartLine)
}

func TestGo_BlankLineDetachesComment(t *testing.T) {
	src := `package demo

// Unrelated remark.

func Render() string {
	return ""
}
`
	candidates := candidatesFor(t, "go", src)
	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].Docstring)
	assert.Equal(t, 4, candidates[0].Definition.StartLine)
}

func TestGo_MethodAndStruct(t *testing.T) {
	src := `package demo

type Widget struct {
	visible bool
}

func (w *Widget) Render() string {
	return ""
}
`
	candidates := candidatesFor(t, "go", src)
	require.Len(t, candidates, 2)

	class := candidates[0]
	assert.Equal(t, profile.KindClass, class.Kind)
	assert.Equal(t, "Widget", class.Name)
	// The wrapper extends the span to cover the type keyword.
	assert.Equal(t, 2, class.Definition.StartLine)
	assert.Equal(t, 0, class.Definition.StartCol)

	method := candidates[1]
	assert.Equal(t, profile.KindFunction, method.Kind)
	assert.Equal(t, "Render", method.Name)
	// Go methods are declared outside the type, so no enclosing ref.
	assert.Equal(t, -1, method.Enclosing)
}

func TestGo_FuncLiteralIsAnonymous(t *testing.T) {
	src := `package demo

var handler = func() int {
	return 1
}
`
	candidates := candidatesFor(t, "go", src)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Name)
	assert.Nil(t, candidates[0].NameSpan)
}

func TestJavaScript_ArrowDeclarator(t *testing.T) {
	src := `const fetchAll = async (urls) => {
  return Promise.all(urls.map(get));
};
`
	candidates := candidatesFor(t, "javascript", src)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, profile.KindFunction, c.Kind)
	assert.Equal(t, "fetchAll", c.Name)
	// The const keyword belongs to the definition.
	assert.Equal(t, 0, c.Definition.StartCol)
	assert.True(t, c.Definition.Contains(c.Body))
}

func TestJavaScript_ClassMethods(t *testing.T) {
	src := `class Widget {
  render() {
    return "<div>";
  }

  async load() {
    await fetch("/widget");
  }
}
`
	candidates := candidatesFor(t, "javascript", src)
	require.Len(t, candidates, 3)

	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Widget", candidates[0].Name)
	assert.Equal(t, "render", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	assert.Equal(t, "load", candidates[2].Name)
	assert.Equal(t, 0, candidates[2].Enclosing)
}

func TestJavaScript_FunctionDeclaration(t *testing.T) {
	src := `function draw(ctx) {
  ctx.fill();
}
`
	candidates := candidatesFor(t, "javascript", src)
	require.Len(t, candidates, 1)
	assert.Equal(t, "draw", candidates[0].Name)
}

func TestTypeScript_InterfaceAsClass(t *testing.T) {
	src := `interface Drawable {
  render(): string;
}

class Widget implements Drawable {
  render(): string {
    return "<div>";
  }
}
`
	candidates := candidatesFor(t, "typescript", src)

	drawables := named(candidates, profile.KindClass, "Drawable")
	require.Len(t, drawables, 1)

	widgets := named(candidates, profile.KindClass, "Widget")
	require.Len(t, widgets, 1)

	renders := named(candidates, profile.KindFunction, "render")
	require.Len(t, renders, 1, "interface method signatures have no body and must not match")
	assert.Equal(t, "Widget", candidates[renders[0].Enclosing].Name)
}

func TestRust_AttributedFunction(t *testing.T) {
	src := `#[inline]
#[cfg(test)]
fn fast_path() -> u32 {
    42
}
`
	candidates := candidatesFor(t, "rust", src)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "fast_path", c.Name)
	require.Len(t, c.Decorators, 2)
	assert.Equal(t, 0, c.Decorators[0].StartLine)
	assert.Equal(t, 1, c.Decorators[1].StartLine)
	assert.Equal(t, 0, c.Definition.StartLine)
}

func TestRust_ImplMethodsGetEnclosingType(t *testing.T) {
	src := `struct Widget {
    visible: bool,
}

impl Widget {
    fn render(&self) -> String {
        String::new()
    }
}
`
	candidates := candidatesFor(t, "rust", src)

	structs := named(candidates, profile.KindClass, "Widget")
	require.Len(t, structs, 2, "struct item and impl block both carry the type name")

	renders := named(candidates, profile.KindFunction, "render")
	require.Len(t, renders, 1)
	assert.Equal(t, "Widget", candidates[renders[0].Enclosing].Name)
}

func TestJava_AnnotatedMethod(t *testing.T) {
	src := `class Widget {
    @Override
    @Deprecated
    public String render() {
        return "<div>";
    }
}
`
	candidates := candidatesFor(t, "java", src)
	require.Len(t, candidates, 2)

	method := candidates[1]
	assert.Equal(t, "render", method.Name)
	assert.Len(t, method.Decorators, 2)
	assert.Equal(t, 0, method.Enclosing)
}

func TestC_PointerReturningFunction(t *testing.T) {
	src := `struct buf {
    int len;
};

char *render(struct buf *b) {
    return 0;
}
`
	candidates := candidatesFor(t, "c", src)
	require.Len(t, candidates, 2)

	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "buf", candidates[0].Name)

	fn := candidates[1]
	assert.Equal(t, profile.KindFunction, fn.Kind)
	// The identifier sits behind a pointer declarator.
	assert.Equal(t, "render", fn.Name)
}

func TestCpp_QualifiedMethodDefinition(t *testing.T) {
	src := `class Widget {
    int size;
};

int Widget::area() {
    return size * size;
}
`
	candidates := candidatesFor(t, "cpp", src)

	classes := named(candidates, profile.KindClass, "Widget")
	require.Len(t, classes, 1)

	fns := named(candidates, profile.KindFunction, "Widget::area")
	require.Len(t, fns, 1)
}

func TestRuby_EmptyMethodBody(t *testing.T) {
	src := `def noop
end
`
	candidates := candidatesFor(t, "ruby", src)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "noop", c.Name)
	// The collapsed body is a zero-width point at the definition's end.
	assert.True(t, c.Body.Zero())
	assert.Equal(t, c.Definition.EndLine, c.Body.EndLine)
}

func TestRuby_ClassAndSingletonMethod(t *testing.T) {
	src := `class Widget
  def render
    "<div>"
  end

  def self.build
    new
  end
end
`
	candidates := candidatesFor(t, "ruby", src)
	require.Len(t, candidates, 3)

	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Widget", candidates[0].Name)
	assert.Equal(t, "render", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	assert.Equal(t, "build", candidates[2].Name)
	assert.Equal(t, 0, candidates[2].Enclosing)
}

func TestPHP_ClassAndMethod(t *testing.T) {
	src := `<?php
class Widget {
    public function render(): string {
        return "<div>";
    }
}

function helper() {
    return 1;
}
`
	candidates := candidatesFor(t, "php", src)
	require.Len(t, candidates, 3)

	assert.Equal(t, "Widget", candidates[0].Name)
	assert.Equal(t, "render", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	assert.Equal(t, "helper", candidates[2].Name)
	assert.Equal(t, -1, candidates[2].Enclosing)
}

func TestC_AnonymousStructYieldsNoCandidate(t *testing.T) {
	src := `typedef int MyType;

struct {
    MyType x;
} s;
`
	candidates := candidatesFor(t, "c", src)
	// The anonymous struct has no name field and must not borrow an
	// identifier from its own body.
	assert.Empty(t, candidates)
}

func TestC_UnionAndEnum(t *testing.T) {
	src := `union value {
    int i;
    float f;
};

enum color {
    RED,
    GREEN
};
`
	candidates := candidatesFor(t, "c", src)
	require.Len(t, candidates, 2)
	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "value", candidates[0].Name)
	assert.Equal(t, profile.KindClass, candidates[1].Kind)
	assert.Equal(t, "color", candidates[1].Name)
}

func TestJavaScript_GeneratorAsyncAndVarForms(t *testing.T) {
	src := `function* gen() {
  yield 1;
}

async function load() {
  return fetch("/x");
}

var legacy = function () {
  return 1;
};
`
	candidates := candidatesFor(t, "javascript", src)
	require.Len(t, candidates, 3)
	assert.Equal(t, "gen", candidates[0].Name)
	assert.Equal(t, "load", candidates[1].Name)
	assert.Equal(t, "legacy", candidates[2].Name)
	// The var keyword belongs to the definition.
	assert.Equal(t, 0, candidates[2].Definition.StartCol)
	assert.True(t, candidates[2].Definition.Contains(candidates[2].Body))
}

func TestTypeScript_AbstractClass(t *testing.T) {
	src := `abstract class Shape {
  abstract area(): number;

  describe(): string {
    return "shape";
  }
}
`
	candidates := candidatesFor(t, "typescript", src)
	require.Len(t, candidates, 2)
	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Shape", candidates[0].Name)
	// The abstract signature has no body and is not a candidate.
	assert.Equal(t, "describe", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
}

func TestPHP_InterfaceAndTrait(t *testing.T) {
	src := `<?php
interface Renderer {
    public function render(): string;
}

trait Loggable {
    public function log() {
        return 1;
    }
}
`
	candidates := candidatesFor(t, "php", src)
	require.Len(t, candidates, 3)
	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Renderer", candidates[0].Name)
	assert.Equal(t, profile.KindClass, candidates[1].Kind)
	assert.Equal(t, "Loggable", candidates[1].Name)
	// The interface's bodyless signature is skipped; the trait method
	// references the trait.
	assert.Equal(t, "log", candidates[2].Name)
	assert.Equal(t, 1, candidates[2].Enclosing)
}

func TestRust_EnumAndTrait(t *testing.T) {
	src := `enum Shape {
    Circle,
    Square,
}

trait Draw {
    fn draw(&self);

    fn outline(&self) {
        todo!()
    }
}
`
	candidates := candidatesFor(t, "rust", src)
	require.Len(t, candidates, 3)
	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Shape", candidates[0].Name)
	assert.Equal(t, "Draw", candidates[1].Name)
	// The bodyless signature is skipped; the default method references
	// the trait.
	assert.Equal(t, "outline", candidates[2].Name)
	assert.Equal(t, 1, candidates[2].Enclosing)
}

func TestRuby_Module(t *testing.T) {
	src := `module Helpers
  def assist
    1
  end
end
`
	candidates := candidatesFor(t, "ruby", src)
	require.Len(t, candidates, 2)
	assert.Equal(t, profile.KindClass, candidates[0].Kind)
	assert.Equal(t, "Helpers", candidates[0].Name)
	assert.Equal(t, "assist", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	// Ruby bodies end before the end keyword.
	assert.True(t, candidates[0].BodyUndelimited)
	assert.True(t, candidates[1].BodyUndelimited)
}

func TestJava_ConstructorInterfaceAndEnum(t *testing.T) {
	src := `class Widget {
    Widget() {
        this.size = 1;
    }
}

interface Renderer {
    String render();
}

enum Color {
    RED,
    GREEN
}
`
	candidates := candidatesFor(t, "java", src)
	require.Len(t, candidates, 4)

	assert.Equal(t, "Widget", candidates[0].Name)
	ctor := candidates[1]
	assert.Equal(t, profile.KindFunction, ctor.Kind)
	assert.Equal(t, "Widget", ctor.Name)
	assert.Equal(t, 0, ctor.Enclosing)
	// The interface's bodyless signature is not a candidate.
	assert.Equal(t, "Renderer", candidates[2].Name)
	assert.Equal(t, profile.KindClass, candidates[2].Kind)
	assert.Equal(t, "Color", candidates[3].Name)
	assert.Equal(t, profile.KindClass, candidates[3].Kind)
}

func TestCandidates_SourceOrder(t *testing.T) {
	src := `def a():
    pass

def b():
    pass

def c():
    pass
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 3)
	for i := 1; i < len(candidates); i++ {
		assert.Less(t, candidates[i-1].Definition.StartLine, candidates[i].Definition.StartLine)
	}
}

func TestCandidates_NestedClassReferencesInner(t *testing.T) {
	src := `class Outer:
    class Inner:
        def f(self):
            pass

    def g(self):
        pass
`
	candidates := candidatesFor(t, "python", src)
	require.Len(t, candidates, 4)

	assert.Equal(t, "Outer", candidates[0].Name)
	assert.Equal(t, -1, candidates[0].Enclosing)
	assert.Equal(t, "Inner", candidates[1].Name)
	assert.Equal(t, 0, candidates[1].Enclosing)
	// f's nearest enclosing class is Inner, g's is Outer.
	assert.Equal(t, "f", candidates[2].Name)
	assert.Equal(t, 1, candidates[2].Enclosing)
	assert.Equal(t, "g", candidates[3].Name)
	assert.Equal(t, 0, candidates[3].Enclosing)
}
