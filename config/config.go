// Package config loads the .keyaudit.yaml configuration file.
//
// The file describes where the application and component-library sources
// come from (a local checkout or a git remote), which locale files to
// audit, and how to tune the classifier. Every field is optional; a
// project following the default layout needs no file at all:
//
//	<app>/src/**/*.rs       application source
//	<app>/static/**/*.css   stylesheets
//	<app>/langs/*.json      locale files
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/keyaudit/extract"
	"github.com/minios-linux/keyaudit/keyset"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .keyaudit.yaml structure.
type File struct {
	// App is the application whose UI strings are audited.
	App Source `yaml:"app"`
	// Library is the UI component library the application renders through.
	// Nil means no library is scanned.
	Library *Source `yaml:"library,omitempty"`
	// SSHKey is a private key used for ssh:// and scp-style remotes.
	SSHKey string `yaml:"ssh_key,omitempty"`

	// Extension selects source files (default ".rs").
	Extension string `yaml:"extension,omitempty"`
	// StylesheetExtension selects stylesheet files (default ".css").
	StylesheetExtension string `yaml:"stylesheet_extension,omitempty"`
	// SkipDirs are directory path suffixes never walked (default "src/bin").
	SkipDirs []string `yaml:"skip_dirs,omitempty"`
	// SkipFiles are file path suffixes never scanned.
	SkipFiles []string `yaml:"skip_files,omitempty"`

	Overrides Overrides       `yaml:"overrides,omitempty"`
	Markers   extract.Markers `yaml:"markers,omitempty"`

	// UnescapeLiterals decodes backslash escapes in source literals before
	// they are compared with locale keys.
	UnescapeLiterals bool `yaml:"unescape_literals,omitempty"`
}

// Source locates one source tree.
type Source struct {
	// Path is a local checkout, relative to the config file directory.
	Path string `yaml:"path,omitempty"`
	// URL is a git remote cloned when Path is empty.
	URL string `yaml:"url,omitempty"`
	// Ref is a branch, tag or commit checked out after cloning.
	Ref string `yaml:"ref,omitempty"`
	// SourceDir is the scanned directory relative to the tree root.
	SourceDir string `yaml:"source_dir,omitempty"`

	// --- application only ---

	// StylesheetDir holds the stylesheets whose selectors are excluded.
	// NoStylesheets turns stylesheet scanning off.
	StylesheetDir string `yaml:"stylesheet_dir,omitempty"`
	// Locales are locale files relative to the tree root. Empty means
	// every *.json file in "langs".
	Locales []string `yaml:"locales,omitempty"`
}

// HasStylesheets reports whether stylesheets are scanned.
func (s *Source) HasStylesheets() bool {
	return s.StylesheetDir != NoStylesheets
}

// Remote reports whether the source must be cloned.
func (s *Source) Remote() bool {
	return s.Path == "" && s.URL != ""
}

// Overrides configures the fixed key lists.
type Overrides struct {
	// ReplaceDefaults drops the built-in lists instead of extending them.
	ReplaceDefaults bool `yaml:"replace_defaults,omitempty"`

	keyset.Overrides `yaml:",inline"`
}

// Effective returns the override lists to use.
func (o Overrides) Effective() keyset.Overrides {
	if o.ReplaceDefaults {
		return o.Overrides
	}
	return keyset.DefaultOverrides().Extend(o.Overrides)
}

// SkipRules returns the walker skip rules.
func (f *File) SkipRules() extract.SkipRules {
	return extract.SkipRules{Dirs: f.SkipDirs, Files: f.SkipFiles}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// FileName is the default config file name.
const FileName = ".keyaudit.yaml"

// DefaultLocaleDir is searched for locale files when none are configured.
const DefaultLocaleDir = "langs"

// NoStylesheets is the stylesheet_dir value that disables CSS exclusion.
const NoStylesheets = "none"

// Load reads the configuration. With path empty it looks for FileName in
// rootDir and returns an empty File when there is none; an explicit path
// must exist. Unknown keys are rejected. Defaults are not applied; call
// Finalize once command-line overrides are in place.
func Load(rootDir, path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(rootDir, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &f, nil
}

// Finalize applies defaults, validates the configuration and resolves
// local paths against rootDir. All problems are reported together.
func (f *File) Finalize(rootDir string) error {
	if f.App.Path == "" && f.App.URL == "" {
		f.App.Path = "."
	}
	if f.App.SourceDir == "" {
		f.App.SourceDir = "src"
	}
	if f.App.StylesheetDir == "" {
		f.App.StylesheetDir = "static"
	}
	if f.Library != nil && f.Library.SourceDir == "" {
		f.Library.SourceDir = "."
	}

	if f.Extension == "" {
		f.Extension = ".rs"
	}
	if f.StylesheetExtension == "" {
		f.StylesheetExtension = ".css"
	}
	defaults := extract.DefaultSkipRules()
	if f.SkipDirs == nil {
		f.SkipDirs = defaults.Dirs
	}
	if f.SkipFiles == nil {
		f.SkipFiles = defaults.Files
	}

	if err := f.validate(); err != nil {
		return err
	}

	f.App.Path = resolvePath(rootDir, f.App.Path)
	if f.Library != nil {
		f.Library.Path = resolvePath(rootDir, f.Library.Path)
	}
	f.SSHKey = resolvePath(rootDir, expandHome(f.SSHKey))
	return nil
}

func (f *File) validate() error {
	var err error
	err = multierr.Append(err, validateSource("app", &f.App))
	if f.Library != nil {
		err = multierr.Append(err, validateSource("library", f.Library))
		if len(f.Library.Locales) > 0 {
			err = multierr.Append(err, errors.New("library: locales are only read from the app"))
		}
		if f.Library.StylesheetDir != "" {
			err = multierr.Append(err, errors.New("library: stylesheet_dir is only read from the app"))
		}
	}
	for i, loc := range f.App.Locales {
		if strings.TrimSpace(loc) == "" {
			err = multierr.Append(err, fmt.Errorf("app: locale #%d is empty", i+1))
		}
	}
	if f.SSHKey != "" && !f.anyRemote() {
		err = multierr.Append(err, errors.New("ssh_key is set but no source has a url"))
	}
	return err
}

func validateSource(name string, s *Source) error {
	var err error
	switch {
	case s.Path != "" && s.URL != "":
		err = multierr.Append(err, fmt.Errorf("%s: path and url are mutually exclusive", name))
	case s.Path == "" && s.URL == "":
		err = multierr.Append(err, fmt.Errorf("%s: requires \"path\" or \"url\"", name))
	}
	if s.Ref != "" && s.URL == "" {
		err = multierr.Append(err, fmt.Errorf("%s: ref requires url", name))
	}
	if filepath.IsAbs(s.SourceDir) {
		err = multierr.Append(err, fmt.Errorf("%s: source_dir must be relative", name))
	}
	return err
}

func (f *File) anyRemote() bool {
	return f.App.Remote() || (f.Library != nil && f.Library.Remote())
}

func resolvePath(rootDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ---------------------------------------------------------------------------
// Locale discovery
// ---------------------------------------------------------------------------

// LocalePaths returns the absolute locale file paths for an app checked
// out at appRoot. Configured locales win; otherwise every *.json file in
// DefaultLocaleDir is used, sorted by name.
func (f *File) LocalePaths(appRoot string) ([]string, error) {
	if len(f.App.Locales) > 0 {
		paths := make([]string, len(f.App.Locales))
		for i, loc := range f.App.Locales {
			paths[i] = resolvePath(appRoot, loc)
		}
		return paths, nil
	}

	dir := filepath.Join(appRoot, DefaultLocaleDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("detecting locale files: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}
