package report

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minios-linux/keyaudit/keyset"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func src(name string, keys ...string) Source {
	return Source{Name: name, Keys: keyset.New(keys...)}
}

func TestReconcileLocales(t *testing.T) {
	a := src("A", "Add")
	b := src("B", "Add", "Save")

	p := Reconcile(a, b)
	assert.Equal(t, "A", p.A)
	assert.Equal(t, "B", p.B)
	assert.Empty(t, p.MissingInB)
	assert.Equal(t, []string{"Save"}, p.MissingInA)
	assert.False(t, p.Clean())
}

func TestReconcileIsSymmetric(t *testing.T) {
	a := src("code", "Add", "Delete", "Edit")
	b := src("ko-KR", "Edit", "Save", "Add")

	ab := Reconcile(a, b)
	ba := Reconcile(b, a)
	assert.Equal(t, ab.Swap(), ba)
	assert.Equal(t, []string{"Delete"}, ab.MissingInB)
	assert.Equal(t, []string{"Save"}, ab.MissingInA)
}

func TestReconcileWithItself(t *testing.T) {
	a := src("A", "Add", "Save", "Cancel")

	p := Reconcile(a, a)
	assert.Empty(t, p.MissingInA)
	assert.Empty(t, p.MissingInB)
	assert.True(t, p.Clean())

	u := Reconcile(a, Source{Name: "A∪A", Keys: keyset.Union(a.Keys, a.Keys)})
	assert.True(t, u.Clean())
}

func TestReconcileResultsAreSorted(t *testing.T) {
	p := Reconcile(src("A", "zeta", "Alpha", "beta"), src("B"))
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, p.MissingInB)
}

func TestBuildOrder(t *testing.T) {
	code := src("code", "Add", "Save")
	locales := []Source{
		src("en-US", "Add", "Save"),
		src("ko-KR", "Add"),
		src("ja-JP", "Add", "Save", "Old"),
	}

	r := Build([]Source{code}, locales)
	require.Len(t, r.Pairs, 6)

	var names [][2]string
	for _, p := range r.Pairs {
		names = append(names, [2]string{p.A, p.B})
	}
	assert.Equal(t, [][2]string{
		{"code", "en-US"},
		{"code", "ko-KR"},
		{"code", "ja-JP"},
		{"en-US", "ko-KR"},
		{"en-US", "ja-JP"},
		{"ko-KR", "ja-JP"},
	}, names)

	// code/ko-KR: 1, code/ja-JP: 1, en-US/ko-KR: 1, en-US/ja-JP: 1, ko-KR/ja-JP: 2
	assert.Equal(t, 6, r.Missing())
}

func TestBuildSourcesBeforeLocalePairs(t *testing.T) {
	ui := src("ui", "Save")
	code := src("code", "Save", "Close")
	locales := []Source{src("A", "Save", "Close"), src("B", "Save", "Close")}

	r := Build([]Source{ui, code}, locales)
	require.Len(t, r.Pairs, 5)

	assert.Equal(t, "ui", r.Pairs[0].A)
	assert.Equal(t, []string{"Close"}, r.Pairs[0].MissingInA)
	assert.Equal(t, []string{"Close"}, r.Pairs[1].MissingInA)
	assert.True(t, r.Pairs[2].Clean(), "code/A")
	assert.True(t, r.Pairs[3].Clean(), "code/B")
	assert.Equal(t, [2]string{"A", "B"}, [2]string{r.Pairs[4].A, r.Pairs[4].B})
}

func TestBuildWithoutLocales(t *testing.T) {
	r := Build([]Source{src("code", "Add")}, nil)
	assert.Empty(t, r.Pairs)
	assert.Equal(t, 0, r.Missing())
}

func TestWriteText(t *testing.T) {
	r := Build([]Source{src("code", "Add", "Save")}, []Source{src("ko-KR", "Add", "Old")})

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	want := "=== code <-> ko-KR ===\n" +
		"Keys in code missing in ko-KR (1):\n" +
		"  - Save\n" +
		"Keys in ko-KR missing in code (1):\n" +
		"  - Old\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextCleanPairs(t *testing.T) {
	r := &Report{Pairs: []Pair{
		Reconcile(src("A", "Add"), src("B", "Add")),
		Reconcile(src("A", "Add"), src("C", "Add")),
	}}

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))

	want := "=== A <-> B ===\n" +
		"No keys missing in B compared to A.\n" +
		"No keys missing in A compared to B.\n" +
		"\n" +
		"=== A <-> C ===\n" +
		"No keys missing in C compared to A.\n" +
		"No keys missing in A compared to C.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	r := Build([]Source{src("code", "Add", "<b>Bold</b>")}, []Source{src("en-US", "Add")})

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"<b>Bold</b>"`, "HTML is not escaped")
	assert.Contains(t, buf.String(), `"missing_in_a": []`)

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Pairs, 1)
	assert.Equal(t, []string{"<b>Bold</b>"}, decoded.Pairs[0].MissingInB)
	assert.NotNil(t, decoded.Pairs[0].MissingInA)
}
