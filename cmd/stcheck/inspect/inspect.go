// Package inspect implements the stcheck source audit.
//
// The audit is purely syntactic: files are parsed with go/parser and walked
// with go/ast, no type checking. That keeps the scan fast and dependency
// free, at the cost of missing accesses through shadowed package names —
// acceptable for a review aid whose findings are read by a human.
package inspect

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/modfile"
)

// stcImportPath is the import path of the gated-cell package whose Enter
// call sites the audit counts.
const stcImportPath = "github.com/kolkov/singlethread/stc"

// Kind classifies a finding.
type Kind int

const (
	// KindGoStatement marks a `go` statement.
	KindGoStatement Kind = iota

	// KindAsyncCallback marks a registration that makes the runtime call
	// back asynchronously (os/signal.Notify, time.AfterFunc).
	KindAsyncCallback

	// KindMultipleEnter marks stc.Enter call sites when the module has
	// more than one: at most one token should ever be live.
	KindMultipleEnter
)

// String returns the finding-kind label used in reports.
func (k Kind) String() string {
	switch k {
	case KindGoStatement:
		return "go-statement"
	case KindAsyncCallback:
		return "async-callback"
	case KindMultipleEnter:
		return "multiple-enter"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Finding is a single audit result with its source position.
type Finding struct {
	Pos     token.Position // file:line:column of the flagged node
	Kind    Kind           // classification
	Message string         // human-readable description
}

// String formats the finding as "file:line:col: [kind] message".
func (f Finding) String() string {
	return fmt.Sprintf("%s: [%s] %s", f.Pos, f.Kind, f.Message)
}

// Stats collects scan metrics, reported with the -v flag.
type Stats struct {
	FilesScanned   int // parsed .go files (tests excluded)
	FilesIgnored   int // files skipped by config ignore patterns
	GoStatements   int // `go` statements found
	AsyncCallbacks int // async callback registrations found
	EnterSites     int // stc.Enter call sites found
}

// Report is the result of a scan: findings sorted by position, plus stats.
type Report struct {
	Findings []Finding
	Stats    Stats
}

// FindModule locates the module containing dir.
//
// It walks up from dir to the nearest go.mod and returns the module root
// directory and the module path declared in it.
func FindModule(dir string) (root, modulePath string, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		name := filepath.Join(abs, "go.mod")
		data, readErr := os.ReadFile(name)
		if readErr == nil {
			f, parseErr := modfile.Parse(name, data, nil)
			if parseErr != nil {
				return "", "", fmt.Errorf("parse %s: %w", name, parseErr)
			}
			if f.Module == nil {
				return "", "", fmt.Errorf("%s: missing module directive", name)
			}
			return abs, f.Module.Mod.Path, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", "", fmt.Errorf("no go.mod found in or above %s", dir)
		}
		abs = parent
	}
}

// Scanner walks a module tree and collects findings.
type Scanner struct {
	root   string
	module string
	cfg    *Config
	fset   *token.FileSet

	findings   []Finding
	enterSites []token.Position
	stats      Stats
}

// New returns a scanner for the module rooted at root.
func New(root, modulePath string, cfg *Config) *Scanner {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Scanner{
		root:   root,
		module: modulePath,
		cfg:    cfg,
		fset:   token.NewFileSet(),
	}
}

// Run scans every non-test .go file under the module root and returns the
// report. Vendored trees, testdata, and hidden or underscore-prefixed
// directories are skipped, matching the Go toolchain's notion of what
// belongs to the module.
func (s *Scanner) Run() (*Report, error) {
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p == s.root {
				return nil
			}
			if name == "vendor" || name == "testdata" ||
				strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, p)
		if relErr != nil {
			return relErr
		}
		if s.cfg.Ignored(filepath.ToSlash(rel)) {
			s.stats.FilesIgnored++
			return nil
		}
		return s.scanFile(p)
	})
	if err != nil {
		return nil, err
	}

	// A lone Enter is the expected shape; two or more are each flagged.
	if len(s.enterSites) > 1 {
		for _, pos := range s.enterSites {
			s.findings = append(s.findings, Finding{
				Pos:  pos,
				Kind: KindMultipleEnter,
				Message: fmt.Sprintf("stc.Enter called here; %d call sites in module, expected at most one",
					len(s.enterSites)),
			})
		}
	}

	sort.Slice(s.findings, func(i, j int) bool {
		a, b := s.findings[i].Pos, s.findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return &Report{Findings: s.findings, Stats: s.stats}, nil
}

// scanFile parses and inspects a single source file.
func (s *Scanner) scanFile(path string) error {
	f, err := parser.ParseFile(s.fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	s.stats.FilesScanned++
	s.inspectFile(f)
	return nil
}

// inspectFile walks one file's AST and records findings.
func (s *Scanner) inspectFile(f *ast.File) {
	imports := importNames(f)

	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.GoStmt:
			s.add(n.Pos(), KindGoStatement, "go statement starts a goroutine")
			s.stats.GoStatements++

		case *ast.CallExpr:
			sel, ok := n.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			pkg, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			fn := sel.Sel.Name
			switch imports[pkg.Name] {
			case "os/signal":
				if fn == "Notify" || fn == "NotifyContext" {
					s.add(n.Pos(), KindAsyncCallback, "os/signal."+fn+" registers an async callback")
					s.stats.AsyncCallbacks++
				}
			case "time":
				if fn == "AfterFunc" {
					s.add(n.Pos(), KindAsyncCallback, "time.AfterFunc runs its callback on a new goroutine")
					s.stats.AsyncCallbacks++
				}
			case stcImportPath:
				if fn == "Enter" {
					s.enterSites = append(s.enterSites, s.fset.Position(n.Pos()))
					s.stats.EnterSites++
				}
			}
		}
		return true
	})
}

func (s *Scanner) add(pos token.Pos, kind Kind, msg string) {
	s.findings = append(s.findings, Finding{
		Pos:     s.fset.Position(pos),
		Kind:    kind,
		Message: msg,
	})
}

// importNames maps each file-local package name to its import path.
// Dot and blank imports are skipped; selector-based detection cannot
// attribute their calls anyway.
func importNames(f *ast.File) map[string]string {
	m := make(map[string]string, len(f.Imports))
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := path.Base(p)
		if imp.Name != nil {
			if imp.Name.Name == "." || imp.Name.Name == "_" {
				continue
			}
			name = imp.Name.Name
		}
		m[name] = p
	}
	return m
}
