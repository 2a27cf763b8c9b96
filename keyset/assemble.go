package keyset

// Overrides are fixed key lists applied after classification.
type Overrides struct {
	// Exclude lists literals that pass the heuristics but are not UI
	// text (MIME types, protocol names, cache-key templates).
	Exclude []string `yaml:"exclude,omitempty"`
	// UIInclude lists application keys the heuristics cannot see, such
	// as values injected only at the presentation layer.
	UIInclude []string `yaml:"ui_include,omitempty"`
	// LibraryInclude lists component-library keys the heuristics cannot see.
	LibraryInclude []string `yaml:"library_include,omitempty"`
}

// Extend returns o with the lists of more appended.
func (o Overrides) Extend(more Overrides) Overrides {
	return Overrides{
		Exclude:        append(append([]string(nil), o.Exclude...), more.Exclude...),
		UIInclude:      append(append([]string(nil), o.UIInclude...), more.UIInclude...),
		LibraryInclude: append(append([]string(nil), o.LibraryInclude...), more.LibraryInclude...),
	}
}

// Assembler turns classifier output into the final key sets.
type Assembler struct {
	Overrides Overrides
}

// AssembleUI builds the application key set: the union of found, minus
// CSS class and id names, minus the exclusion list, plus the forced UI
// keys. CSS names are removed even when a text call included them.
func (a *Assembler) AssembleUI(css Set, found ...Set) Set {
	keys := Union(found...)
	keys.RemoveSet(css)
	keys.Remove(a.Overrides.Exclude...)
	keys.Add(a.Overrides.UIInclude...)
	return keys
}

// AssembleLibrary builds the component-library key set: the union of
// found plus the forced library keys.
func (a *Assembler) AssembleLibrary(found ...Set) Set {
	keys := Union(found...)
	keys.Add(a.Overrides.LibraryInclude...)
	return keys
}
