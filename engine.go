package pinpoint

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/blake3"

	"github.com/jward/pinpoint/internal/match"
	"github.com/jward/pinpoint/internal/profile"
	"github.com/jward/pinpoint/internal/store"
)

// Scanner walks a repository, matches every supported source file, and
// persists the found definitions to a SQLite index for reporting queries.
// The index never backs locate operations; those always re-match fresh text.
type Scanner struct {
	store     *store.Store
	log       *slog.Logger
	languages map[string]bool // nil means all languages
	include   []string
	exclude   []string
	workers   int
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithLanguages restricts which languages the Scanner will process.
func WithLanguages(languages ...string) ScanOption {
	return func(s *Scanner) {
		s.languages = make(map[string]bool, len(languages))
		for _, lang := range languages {
			s.languages[lang] = true
		}
	}
}

// WithIncludes sets doublestar glob patterns a repo-relative path must
// match to be scanned. Empty means everything.
func WithIncludes(patterns ...string) ScanOption {
	return func(s *Scanner) { s.include = patterns }
}

// WithExcludes sets doublestar glob patterns that exclude repo-relative
// paths from scanning.
func WithExcludes(patterns ...string) ScanOption {
	return func(s *Scanner) { s.exclude = patterns }
}

// WithWorkers bounds the parallel scan worker count. Zero means GOMAXPROCS.
func WithWorkers(n int) ScanOption {
	return func(s *Scanner) { s.workers = n }
}

// WithLogger sets the structured logger used for per-file warnings.
func WithLogger(log *slog.Logger) ScanOption {
	return func(s *Scanner) { s.log = log }
}

// NewScanner creates a Scanner backed by a SQLite index at dbPath.
func NewScanner(dbPath string, opts ...ScanOption) (*Scanner, error) {
	st, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("pinpoint: create store: %w", err)
	}
	if err := st.Migrate(); err != nil {
		st.Close()
		return nil, fmt.Errorf("pinpoint: migrate: %w", err)
	}
	s := &Scanner{store: st, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the Scanner's database resources.
func (s *Scanner) Close() error {
	return s.store.Close()
}

// Store returns the underlying Store for direct access.
func (s *Scanner) Store() *store.Store {
	return s.store
}

// List queries the scan index.
func (s *Scanner) List(f Filter) ([]Definition, error) {
	return s.store.List(f)
}

// CountByLanguage reports indexed definition counts per language.
func (s *Scanner) CountByLanguage() (map[string]int, error) {
	return s.store.CountByLanguage()
}

// ScanStats summarizes one scan run.
type ScanStats struct {
	Files       int // files scanned this run
	Skipped     int // files skipped because their hash was unchanged
	Definitions int // definitions written this run
}

// ScanDirectory walks root and indexes every supported file. Discovery uses
// git ls-files when root is inside a git repository, falling back to a
// filesystem walk honoring .gitignore. Files are processed in parallel;
// individual file failures are logged and skipped.
func (s *Scanner) ScanDirectory(ctx context.Context, root string) (ScanStats, error) {
	paths, err := s.gitListFiles(root)
	if err != nil {
		paths, err = s.walkListFiles(root)
		if err != nil {
			return ScanStats{}, err
		}
	}
	return s.ScanFiles(ctx, root, paths)
}

// ScanFiles indexes the given paths (absolute or relative to root).
// Glob filters apply to the root-relative form.
func (s *Scanner) ScanFiles(ctx context.Context, root string, paths []string) (ScanStats, error) {
	var (
		mu    sync.Mutex
		stats ScanStats
	)

	g, ctx := errgroup.WithContext(ctx)
	workers := s.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for _, path := range paths {
		rel := relPath(root, path)
		if !s.selected(rel) {
			continue
		}
		lang, ok := profile.LanguageForFile(path)
		if !ok {
			continue
		}
		if s.languages != nil && !s.languages[lang] {
			continue
		}

		path, rel, lang := path, rel, lang
		g.Go(func() error {
			scanned, count, err := s.scanFile(ctx, path, rel, lang)
			if err != nil {
				s.log.Warn("scan failed", "path", rel, "error", err)
				return nil
			}
			mu.Lock()
			if scanned {
				stats.Files++
				stats.Definitions += count
			} else {
				stats.Skipped++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// scanFile reads, hashes, parses, and matches one file, replacing its index
// rows. Returns scanned=false when the content hash is unchanged.
func (s *Scanner) scanFile(ctx context.Context, path, rel, lang string) (scanned bool, count int, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, 0, fmt.Errorf("read file: %w", err)
	}
	hash := fmt.Sprintf("%x", blake3.Sum256(content))

	existing, err := s.store.FileByPath(rel)
	if err != nil {
		return false, 0, fmt.Errorf("lookup file: %w", err)
	}
	if existing != nil && existing.Hash == hash {
		return false, 0, nil
	}

	candidates, err := MatchFile(ctx, content, lang)
	if err != nil {
		return false, 0, err
	}

	defs := make([]store.Definition, 0, len(candidates))
	for _, c := range candidates {
		defs = append(defs, toDefinition(c, candidates))
	}

	err = s.store.ReplaceFile(&store.File{
		Path:        rel,
		Language:    lang,
		Hash:        hash,
		LastScanned: time.Now(),
	}, defs)
	if err != nil {
		return false, 0, fmt.Errorf("write index: %w", err)
	}
	return true, len(defs), nil
}

func toDefinition(c match.Candidate, all []match.Candidate) store.Definition {
	var enclosing string
	if c.Enclosing >= 0 {
		enclosing = all[c.Enclosing].Name
	}
	return store.Definition{
		Kind:           string(c.Kind),
		Name:           c.Name,
		EnclosingClass: enclosing,
		StartLine:      c.Definition.StartLine,
		StartCol:       c.Definition.StartCol,
		EndLine:        c.Definition.EndLine,
		EndCol:         c.Definition.EndCol,
		BodyStartLine:  c.Body.StartLine,
		BodyStartCol:   c.Body.StartCol,
		BodyEndLine:    c.Body.EndLine,
		BodyEndCol:     c.Body.EndCol,
		HasDocstring:   c.Docstring != nil,
		DecoratorCount: len(c.Decorators),
	}
}

// selected applies include/exclude globs to a repo-relative path.
func (s *Scanner) selected(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	if len(s.include) == 0 {
		return true
	}
	for _, pattern := range s.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// skipDirs are directories excluded from the filesystem-walk fallback.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// gitListFiles uses git ls-files to discover tracked and untracked (but not
// ignored) files under root, filtered to supported languages.
func (s *Scanner) gitListFiles(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		absPath := filepath.Join(root, line)
		if _, ok := profile.LanguageForFile(absPath); ok {
			paths = append(paths, absPath)
		}
	}
	return paths, nil
}

// walkListFiles discovers files by walking the filesystem, used when git is
// unavailable. Skips hidden directories, the usual dependency directories,
// and anything matched by the root .gitignore.
func (s *Scanner) walkListFiles(root string) ([]string, error) {
	gi := loadGitignore(root)
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := relPath(root, path)
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			if gi != nil && path != root && gi.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if _, ok := profile.LanguageForFile(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return paths, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
