// Package pinpoint locates function and class definitions across languages
// and turns them into concrete edit regions. Built on tree-sitter, it
// resolves a symbolic reference ("function named X", "method Z inside class
// Y") against a source file to a span with body boundaries, optional
// docstring and decorator spans, and the indentation to apply when text is
// inserted or moved. It is the structural half of a code-editing pipeline.
//
// # Pipeline
//
// Four stages run per file, leaves first:
//
//  1. Profile: a per-language declarative table of node shapes describing
//     what counts as a function or class and where its name, body,
//     docstring, and decorators live (internal/profile). One shared engine
//     interprets every profile; adding a language is a data-only change.
//
//  2. Match: a single depth-first walk produces every definition candidate
//     in source order, with methods carrying a weak back-reference to their
//     enclosing class (internal/match).
//
//  3. Locate: a pure, deterministic filter resolves a [Query] to exactly
//     one candidate or fails with a structured NotFound/Ambiguous error
//     (internal/locate).
//
//  4. Region: the resolved candidate becomes an edit region for one of the
//     six insertion modes, with indentation derived from the surrounding
//     text (internal/region).
//
// # Usage
//
// The composed entry point chains all four stages:
//
//	region, err := pinpoint.LocateAndComputeRegion(src, "python", pinpoint.Query{
//		Kind:           pinpoint.KindFunction,
//		Name:           "_candidate",
//		EnclosingClass: "A",
//	}, pinpoint.TopOfBody)
//
// [MatchFile] and [Locate] expose the intermediate stages for callers that
// need the full candidate list or the candidate itself.
//
// # Scan index
//
// [Scanner] walks a repository, matches every supported file, and persists
// the found definitions to SQLite for reporting queries ([Scanner.List]).
// Files are skipped when their content hash is unchanged. The index never
// backs locate operations: edits invalidate spans, so candidates are always
// recomputed from fresh source text.
//
// Supported languages: Go, TypeScript, JavaScript, Python, Rust, C, C++,
// Java, PHP, and Ruby.
package pinpoint
