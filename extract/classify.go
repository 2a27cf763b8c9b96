package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verdict is the outcome of classifying one literal.
type Verdict int

const (
	// Exclude means the literal is not a translation key.
	Exclude Verdict = iota
	// Include means the literal is a translation key.
	Include
)

func (v Verdict) String() string {
	if v == Include {
		return "include"
	}
	return "exclude"
}

// Mode selects the classification rules for a source tree.
type Mode int

const (
	// ModeUI classifies application source: every literal is a key unless
	// its context says otherwise.
	ModeUI Mode = iota
	// ModeLibrary classifies component-library source: a literal is a key
	// only when its context says so.
	ModeLibrary
)

func (m Mode) String() string {
	if m == ModeLibrary {
		return "library"
	}
	return "ui"
}

// Markers are the source tokens the classifier looks for. They mirror how
// the UI framework's text and key macros are spelled, so a project using
// different spellings can override them.
type Markers struct {
	// ReportPrefix starts report identifiers, which are never keys.
	ReportPrefix string `yaml:"report_prefix,omitempty"`
	// YearFormat marks date/time format strings.
	YearFormat string `yaml:"year_format,omitempty"`

	// Same-line exclusions.
	UnwrapCall    string `yaml:"unwrap_call,omitempty"`
	FeatureAttr   string `yaml:"feature_attr,omitempty"`
	RenameAttr    string `yaml:"rename_attr,omitempty"`
	SerializeAttr string `yaml:"serialize_attr,omitempty"`

	// TextCall is the UI text-rendering macro call.
	TextCall string `yaml:"text_call,omitempty"`

	// Preceding-line exclusions.
	GraphQLAttr string `yaml:"graphql_attr,omitempty"`
	TypeAttr    string `yaml:"type_attr,omitempty"`
	ErrorMacro  string `yaml:"error_macro,omitempty"`
	WriteMacro  string `yaml:"write_macro,omitempty"`
	FormatMacro string `yaml:"format_macro,omitempty"`

	// Library evidence.
	KeyRef      string `yaml:"key_ref,omitempty"`
	TextMacro   string `yaml:"text_macro,omitempty"`
	PropsAccess string `yaml:"props_access,omitempty"`
}

// DefaultMarkers returns the tokens used by Yew-based front ends built on
// the frontary component library.
func DefaultMarkers() Markers {
	return Markers{
		ReportPrefix:  "report-",
		YearFormat:    "%Y",
		UnwrapCall:    "expect(",
		FeatureAttr:   "feature =",
		RenameAttr:    "#[serde(rename =",
		SerializeAttr: "#[strum(serialize =",
		TextCall:      "text!(",
		GraphQLAttr:   "#[graphql(",
		TypeAttr:      "type=",
		ErrorMacro:    "anyhow!(",
		WriteMacro:    "write!(",
		FormatMacro:   "format!(",
		KeyRef:        "ViewString::Key",
		TextMacro:     "text!",
		PropsAccess:   "ctx.props()",
	}
}

// Merge returns m with every empty field filled from base.
func (m Markers) Merge(base Markers) Markers {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&m.ReportPrefix, base.ReportPrefix)
	fill(&m.YearFormat, base.YearFormat)
	fill(&m.UnwrapCall, base.UnwrapCall)
	fill(&m.FeatureAttr, base.FeatureAttr)
	fill(&m.RenameAttr, base.RenameAttr)
	fill(&m.SerializeAttr, base.SerializeAttr)
	fill(&m.TextCall, base.TextCall)
	fill(&m.GraphQLAttr, base.GraphQLAttr)
	fill(&m.TypeAttr, base.TypeAttr)
	fill(&m.ErrorMacro, base.ErrorMacro)
	fill(&m.WriteMacro, base.WriteMacro)
	fill(&m.FormatMacro, base.FormatMacro)
	fill(&m.KeyRef, base.KeyRef)
	fill(&m.TextMacro, base.TextMacro)
	fill(&m.PropsAccess, base.PropsAccess)
	return m
}

// Classifier decides whether literals are translation keys.
// The zero value is not usable; build one with NewClassifier.
type Classifier struct {
	markers Markers
}

// NewClassifier returns a classifier using m. Empty fields of m fall back
// to DefaultMarkers.
func NewClassifier(m Markers) *Classifier {
	return &Classifier{markers: m.Merge(DefaultMarkers())}
}

// Markers returns the tokens in effect.
func (c *Classifier) Markers() Markers {
	return c.markers
}

// Classify applies the rules of the given mode.
func (c *Classifier) Classify(mode Mode, text string, lit Literal) Verdict {
	if mode == ModeLibrary {
		return c.ClassifyLibrary(text, lit)
	}
	return c.ClassifyUI(text, lit)
}

// ClassifyUI classifies a literal found in application source.
func (c *Classifier) ClassifyUI(text string, lit Literal) Verdict {
	if c.isNoise(lit.Text) {
		return Exclude
	}
	return c.classifyUIWindow(WindowAt(text, lit))
}

// isNoise covers the rules that need only the literal itself.
func (c *Classifier) isNoise(s string) bool {
	m := c.markers
	switch {
	case !hasLetter(s):
		return true
	case isPathLike(s):
		return true
	case strings.Contains(s, m.YearFormat):
		return true
	case hasHangul(s):
		return true
	case strings.HasPrefix(s, m.ReportPrefix):
		return true
	case len(s) == 1:
		return true
	}
	return false
}

func (c *Classifier) classifyUIWindow(w Window) Verdict {
	m := c.markers

	if containsAny(w.Current, m.UnwrapCall, m.FeatureAttr, m.RenameAttr, m.SerializeAttr) {
		return Exclude
	}

	// An explicit text call right before the literal always wins.
	if strings.Contains(w.Line(0), m.TextCall) {
		return Include
	}

	for i, line := range w.Preceding {
		switch {
		case strings.Contains(line, m.GraphQLAttr):
			return Exclude
		case i == 0 && strings.Contains(line, m.TypeAttr):
			return Exclude
		case i <= 1 && strings.Contains(line, m.ErrorMacro):
			return Exclude
		case i <= 2 && strings.Contains(line, m.WriteMacro):
			return Exclude
		case strings.Contains(line, m.FormatMacro) && formatCallSite(w, i):
			return Exclude
		}
	}
	return Include
}

// formatCallSite reports whether a format macro on preceding line i belongs
// to the literal: it is the nearest line, or only blank lines separate it
// from the literal's side.
func formatCallSite(w Window, i int) bool {
	switch i {
	case 0:
		return true
	case 1:
		return w.Line(0) == ""
	case 2:
		return w.Line(1) == ""
	}
	return false
}

// ClassifyLibrary classifies a literal found in component-library source.
func (c *Classifier) ClassifyLibrary(text string, lit Literal) Verdict {
	return c.classifyLibraryWindow(WindowAt(text, lit))
}

func (c *Classifier) classifyLibraryWindow(w Window) Verdict {
	m := c.markers
	nearest, _ := w.FirstNonBlank()
	inProps := strings.Contains(nearest, m.PropsAccess)

	for i, line := range w.Preceding {
		if i == 0 && strings.Contains(line, m.KeyRef) {
			return Include
		}
		if strings.Contains(line, m.TextMacro) && (i == 0 || inProps) {
			return Include
		}
	}
	return Exclude
}

// hasLetter reports whether s holds a character with the Unicode
// Alphabetic property.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic) {
			return true
		}
	}
	return false
}

// isPathLike matches "/x..." and "#x..." but not "# comment".
func isPathLike(s string) bool {
	if s == "" || (s[0] != '/' && s[0] != '#') {
		return false
	}
	r, size := utf8.DecodeRuneInString(s[1:])
	return size > 0 && r != ' '
}

func hasHangul(s string) bool {
	for _, r := range s {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return true
		}
	}
	return false
}

func containsAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if t != "" && strings.Contains(s, t) {
			return true
		}
	}
	return false
}
