package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classifyIn classifies the literal with content want found in src.
func classifyIn(t *testing.T, c *Classifier, mode Mode, src, want string) Verdict {
	t.Helper()
	for _, lit := range Literals(src) {
		if lit.Text == want {
			return c.Classify(mode, src, lit)
		}
	}
	require.Failf(t, "literal not found", "%q in %q", want, src)
	return Exclude
}

func TestClassifyUI(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{})

	tests := []struct {
		name string
		src  string
		lit  string
		want Verdict
	}{
		{name: "plain assignment", src: `let label = "Save";`, lit: "Save", want: Include},
		{name: "digits only", src: `let n = "42";`, lit: "42", want: Exclude},
		{name: "punctuation only", src: `let sep = " - ";`, lit: " - ", want: Exclude},
		{name: "route", src: `let url = "/api/v1";`, lit: "/api/v1", want: Exclude},
		{name: "anchor", src: `let id = "#main";`, lit: "#main", want: Exclude},
		{name: "hash then space", src: `let h = "# Notes";`, lit: "# Notes", want: Include},
		{name: "date format", src: `let f = "%Y-%m-%d";`, lit: "%Y-%m-%d", want: Exclude},
		{name: "letter numbers", src: `let n = "ⅫⅫ";`, lit: "ⅫⅫ", want: Include},
		{name: "other alphabetic marks", src: "let m = \"\u0903\u0903\";", lit: "\u0903\u0903", want: Include},
		{name: "arabic-indic digits", src: `let d = "١٢٣";`, lit: "١٢٣", want: Exclude},
		{name: "hangul", src: `let k = "저장";`, lit: "저장", want: Exclude},
		{name: "report id", src: `let r = "report-daily";`, lit: "report-daily", want: Exclude},
		{name: "single letter", src: `let a = "a";`, lit: "a", want: Exclude},
		{name: "unwrap message", src: `let v = s.parse().expect("Failed to parse");`, lit: "Failed to parse", want: Exclude},
		{name: "cfg feature", src: `#[cfg(feature = "serde")]`, lit: "serde", want: Exclude},
		{name: "serde rename", src: `#[serde(rename = "typeName")]`, lit: "typeName", want: Exclude},
		{name: "strum serialize", src: `#[strum(serialize = "Critical")]`, lit: "Critical", want: Exclude},
		{name: "format same line", src: `let s = format!("{} items", n);`, lit: "{} items", want: Exclude},
		{name: "format after blank start", src: "let s = format!(\n    \"Total {}\",\n    n\n);", lit: "Total {}", want: Exclude},
		{name: "format across blank line", src: "let s = format!(\n\n    \"Total {}\",\n);", lit: "Total {}", want: Exclude},
		{
			name: "format three lines up",
			src:  "let s = format!(\"{}\", x);\nlet a = 1;\nlet b = 2;\nlet t = \"Keep\";",
			lit:  "Keep",
			want: Include,
		},
		{name: "anyhow next line", src: "return Err(anyhow!(\n    \"Invalid input\"\n));", lit: "Invalid input", want: Exclude},
		{name: "write two lines up", src: "write!(\n    f,\n    \"Value\"\n)", lit: "Value", want: Exclude},
		{name: "graphql attribute", src: "#[graphql(\n    name = \"renamed\"\n)]", lit: "renamed", want: Exclude},
		{name: "input type", src: `<input type="checkbox" />`, lit: "checkbox", want: Exclude},
		{name: "text macro", src: `{ text!(txt, lang, "Close") }`, lit: "Close", want: Include},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIn(t, c, ModeUI, tt.src, tt.lit))
		})
	}
}

func TestClassifyUITextOverridesPrecedingExclusions(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{})

	src := `{ text!(txt, lang, format!("Sum {}", n)) }`
	assert.Equal(t, Include, classifyIn(t, c, ModeUI, src, "Sum {}"))

	src = "#[graphql(skip)]\n{ text!(txt, lang, \"Title\") }"
	assert.Equal(t, Include, classifyIn(t, c, ModeUI, src, "Title"))

	// Same-line exclusions are checked before the override.
	src = `text!(txt, lang, "Name").expect("Boom")`
	assert.Equal(t, Exclude, classifyIn(t, c, ModeUI, src, "Name"))
}

func TestClassifyUIExclusionsAlwaysWin(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{})
	contexts := []string{
		`let x = %s;`,
		`{ text!(txt, lang, %s) }`,
		"html! {\n    <span>{ %s }</span>\n}",
	}
	literals := []string{`"123"`, `"-- : --"`, `"삭제"`, `"Delete 항목"`}

	for _, ctx := range contexts {
		for _, lit := range literals {
			src := strings.Replace(ctx, "%s", lit, 1)
			assert.Equal(t, Exclude, classifyIn(t, c, ModeUI, src, strings.Trim(lit, `"`)), src)
		}
	}
}

func TestClassifyLibrary(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{})

	tests := []struct {
		name string
		src  string
		lit  string
		want Verdict
	}{
		{name: "typed key", src: `ViewString::Key("Cancel".to_string())`, lit: "Cancel", want: Include},
		{name: "text macro same line", src: `{ text!(txt, lang, "Close") }`, lit: "Close", want: Include},
		{
			name: "text macro with props",
			src:  "{ text!(\n    txt,\n    ctx.props().language,\n    \"Confirm\"\n) }",
			lit:  "Confirm",
			want: Include,
		},
		{name: "text macro without props", src: "text!(\n    txt,\n    \"Nope\"\n)", lit: "Nope", want: Exclude},
		{name: "plain literal", src: `let label = "Save";`, lit: "Save", want: Exclude},
		{name: "css class", src: `<div class="menu-item">`, lit: "menu-item", want: Exclude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIn(t, c, ModeLibrary, tt.src, tt.lit))
		})
	}
}

func TestModesAreIndependent(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{})
	src := `let label = "Save";`

	assert.Equal(t, Include, classifyIn(t, c, ModeUI, src, "Save"))
	assert.Equal(t, Exclude, classifyIn(t, c, ModeLibrary, src, "Save"))
}

func TestCustomMarkers(t *testing.T) {
	t.Parallel()

	c := NewClassifier(Markers{TextCall: "tr!(", FormatMacro: "fmt!("})

	m := c.Markers()
	assert.Equal(t, "tr!(", m.TextCall)
	assert.Equal(t, "anyhow!(", m.ErrorMacro, "unset markers keep defaults")

	assert.Equal(t, Exclude, classifyIn(t, c, ModeUI, `let s = fmt!("{} rows", n);`, "{} rows"))
	assert.Equal(t, Include, classifyIn(t, c, ModeUI, `let s = format!("{} rows", n);`, "{} rows"))
	assert.Equal(t, Include, classifyIn(t, c, ModeUI, `tr!(fmt!("Hi {}", n))`, "Hi {}"))
}

func TestVerdictAndModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "include", Include.String())
	assert.Equal(t, "exclude", Exclude.String())
	assert.Equal(t, "ui", ModeUI.String())
	assert.Equal(t, "library", ModeLibrary.String())
}
