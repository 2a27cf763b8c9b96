package keyset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleUI(t *testing.T) {
	t.Parallel()

	a := &Assembler{Overrides: Overrides{
		Exclude:   []string{"application/json"},
		UIInclude: []string{"Cancel"},
	}}

	got := a.AssembleUI(
		New("modal", "sidebar"),
		New("Add", "modal"),
		New("Save", "application/json"),
		nil,
	)
	assert.Equal(t, []string{"Add", "Cancel", "Save"}, got.Sorted())
}

func TestAssembleUIForcedKeysSurviveCSS(t *testing.T) {
	t.Parallel()

	a := &Assembler{Overrides: Overrides{UIInclude: []string{"Save"}}}
	got := a.AssembleUI(New("Save"), New("Save"))
	assert.True(t, got.Has("Save"), "forced keys are added after CSS exclusion")
}

func TestAssembleUIDoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	found := New("Add", "modal")
	a := &Assembler{}
	_ = a.AssembleUI(New("modal"), found)
	assert.Equal(t, []string{"Add", "modal"}, found.Sorted())
}

func TestAssembleLibrary(t *testing.T) {
	t.Parallel()

	a := &Assembler{Overrides: Overrides{
		Exclude:        []string{"Close"},
		LibraryInclude: []string{"Select all"},
	}}

	got := a.AssembleLibrary(New("Close"), New("Confirm"))
	assert.Equal(t, []string{"Close", "Confirm", "Select all"}, got.Sorted(),
		"the exclusion list applies to application keys only")
}

func TestOverridesExtend(t *testing.T) {
	t.Parallel()

	base := Overrides{Exclude: []string{"a"}, UIInclude: []string{"b"}}
	got := base.Extend(Overrides{Exclude: []string{"c"}, LibraryInclude: []string{"d"}})

	assert.Equal(t, []string{"a", "c"}, got.Exclude)
	assert.Equal(t, []string{"b"}, got.UIInclude)
	assert.Equal(t, []string{"d"}, got.LibraryInclude)
	assert.Equal(t, []string{"a"}, base.Exclude, "receiver is not modified")
}

func TestDefaultOverrides(t *testing.T) {
	t.Parallel()

	d := DefaultOverrides()
	require.NotEmpty(t, d.Exclude)
	require.NotEmpty(t, d.UIInclude)
	require.NotEmpty(t, d.LibraryInclude)
	assert.Contains(t, d.Exclude, "Content-Type")

	d.Exclude[0] = "changed"
	assert.NotEqual(t, "changed", DefaultOverrides().Exclude[0], "defaults are copied")
}
