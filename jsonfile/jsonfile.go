// Package jsonfile reads flat JSON locale files.
//
// The expected file format is a single JSON object keyed by translation
// key:
//
//	{
//	    "Add": "추가",
//	    "Save": "저장"
//	}
//
// Only the top-level keys matter; values may be any JSON value and are
// not inspected. Keys are returned in decoded form, exactly as
// encoding/json produces them.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minios-linux/keyaudit/keyset"
)

// ErrNotObject is returned when the top-level JSON value is not an object.
var ErrNotObject = errors.New("JSON object expected")

// File is a parsed locale file.
type File struct {
	// Path is the file the keys were read from ("" for Parse).
	Path string
	// keys preserves the original key order from the file.
	keys []string
}

// ParseFile reads and parses a locale file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse parses locale JSON data.
func Parse(data []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	f := &File{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("parsing JSON: expected string key, got %T", kt)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing JSON: value for key %q: %w", key, err)
		}
		f.keys = append(f.keys, key)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parsing JSON: trailing data after object")
	}

	return f, nil
}

// Keys returns the keys in their original order. A key repeated in the
// file is listed once, at its first position.
func (f *File) Keys() []string {
	seen := make(map[string]bool, len(f.keys))
	out := make([]string, 0, len(f.keys))
	for _, k := range f.keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Set returns the keys as a set.
func (f *File) Set() keyset.Set {
	return keyset.New(f.keys...)
}

// Name returns the locale name derived from the file name,
// e.g. "en-US" for "langs/en-US.json".
func (f *File) Name() string {
	return LocaleName(f.Path)
}

// LocaleName strips the directory and ".json" extension from path.
func LocaleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
