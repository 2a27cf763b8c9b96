// Package extract finds translatable string literals in source trees.
//
// Extraction is line based: every double-quoted literal in a file is
// classified by looking at its own line and the few lines before it,
// without parsing the source language. Two rule sets exist, one for
// application source (a literal is a key unless its context says
// otherwise) and one for component-library source (a literal is a key
// only when its context says so).
//
// The package also collects class and id selectors from stylesheets so
// that CSS names which look like English words can be kept out of the
// key set.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/minios-linux/keyaudit/keyset"
)

// skipDirNames contains directory base names that never hold scanned source.
var skipDirNames = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"target":       true,
}

// SkipRules lists path suffixes excluded from a source walk. A suffix
// matches whole path components, so "src/bin" skips ".../web/src/bin" but
// not ".../web/mysrc/bin".
type SkipRules struct {
	Dirs  []string
	Files []string
}

// DefaultSkipRules returns the executables directory and the two files
// that hold bulk non-UI string data.
func DefaultSkipRules() SkipRules {
	return SkipRules{
		Dirs:  []string{"src/bin"},
		Files: []string{"src/triage/policy/data.rs", "src/detection/mitre.rs"},
	}
}

func (r SkipRules) skipDir(path string) bool {
	for _, s := range r.Dirs {
		if hasPathSuffix(path, s) {
			return true
		}
	}
	return false
}

func (r SkipRules) skipFile(path string) bool {
	for _, s := range r.Files {
		if hasPathSuffix(path, s) {
			return true
		}
	}
	return false
}

// hasPathSuffix reports whether the trailing components of path equal
// the components of suffix.
func hasPathSuffix(path, suffix string) bool {
	suffix = strings.Trim(filepath.ToSlash(suffix), "/")
	if suffix == "" {
		return false
	}
	p := filepath.ToSlash(filepath.Clean(path))
	if p == suffix {
		return true
	}
	return strings.HasSuffix(p, "/"+suffix)
}

// FindSources recursively finds files with the given extension under root.
// Extensions may be given with or without the leading dot. Any walk error
// is returned; a partial file list would under-report keys.
func FindSources(root, ext string, skip SkipRules) ([]string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skipDirNames[d.Name()] || skip.skipDir(path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ext || skip.skipFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Buffer is the text of one source file.
type Buffer struct {
	Name string
	Text string
}

// ReadBuffer reads a file into a Buffer.
func ReadBuffer(path string) (Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Buffer{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Buffer{Name: path, Text: string(data)}, nil
}

// Keys returns the literals of b that the classifier includes under mode.
// With unescape set, included literals are added in decoded form.
func (c *Classifier) Keys(mode Mode, b Buffer, unescape bool) keyset.Set {
	keys := keyset.New()
	for _, lit := range Literals(b.Text) {
		if c.Classify(mode, b.Text, lit) != Include {
			continue
		}
		if unescape {
			keys.Add(Unescape(lit.Text))
		} else {
			keys.Add(lit.Text)
		}
	}
	return keys
}

// Scanner classifies many files concurrently.
type Scanner struct {
	Classifier *Classifier
	// Jobs bounds the number of files processed at once (default NumCPU).
	Jobs int
	// Unescape stores included literals in decoded form.
	Unescape bool
}

// ScanFiles reads and classifies every file and returns the union of the
// included literals. The first read error cancels the scan.
func (s *Scanner) ScanFiles(ctx context.Context, mode Mode, paths []string) (keyset.Set, error) {
	perFile := make([]keyset.Set, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := ReadBuffer(path)
			if err != nil {
				return err
			}
			perFile[i] = s.Classifier.Keys(mode, b, s.Unescape)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keyset.Union(perFile...), nil
}

func (s *Scanner) jobs() int {
	if s.Jobs > 0 {
		return s.Jobs
	}
	return runtime.NumCPU()
}
