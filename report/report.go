// Package report reconciles key sets and renders the differences.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/minios-linux/keyaudit/keyset"
)

// Source is a named key set taking part in reconciliation.
type Source struct {
	Name string
	Keys keyset.Set
}

// Pair is the reconciliation of two sources.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
	// MissingInB holds A − B, sorted.
	MissingInB []string `json:"missing_in_b"`
	// MissingInA holds B − A, sorted.
	MissingInA []string `json:"missing_in_a"`
}

// Clean reports whether neither side is missing keys.
func (p Pair) Clean() bool {
	return len(p.MissingInA) == 0 && len(p.MissingInB) == 0
}

// Swap returns the same pair seen from the other side.
func (p Pair) Swap() Pair {
	return Pair{A: p.B, B: p.A, MissingInB: p.MissingInA, MissingInA: p.MissingInB}
}

// Reconcile computes both differences between a and b. Both inputs are
// sorted, so the differences come out sorted.
func Reconcile(a, b Source) Pair {
	onlyA, onlyB := lo.Difference(a.Keys.Sorted(), b.Keys.Sorted())
	return Pair{
		A:          a.Name,
		B:          b.Name,
		MissingInB: onlyA,
		MissingInA: onlyB,
	}
}

// Report is the full result of one run.
type Report struct {
	Pairs []Pair `json:"pairs"`
}

// Build reconciles every source against every locale, then every locale
// against every later locale. All pairs are computed regardless of
// earlier mismatches.
func Build(sources, locales []Source) *Report {
	r := &Report{}
	for _, src := range sources {
		for _, loc := range locales {
			r.Pairs = append(r.Pairs, Reconcile(src, loc))
		}
	}
	for i := range locales {
		for j := i + 1; j < len(locales); j++ {
			r.Pairs = append(r.Pairs, Reconcile(locales[i], locales[j]))
		}
	}
	return r
}

// Missing returns the total number of missing keys across all pairs.
func (r *Report) Missing() int {
	n := 0
	for _, p := range r.Pairs {
		n += len(p.MissingInA) + len(p.MissingInB)
	}
	return n
}

// WriteText renders the report as plain text, one block per pair.
func (r *Report) WriteText(w io.Writer) error {
	for i, p := range r.Pairs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writePair(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writePair(w io.Writer, p Pair) error {
	if _, err := fmt.Fprintf(w, "=== %s <-> %s ===\n", p.A, p.B); err != nil {
		return err
	}
	if err := writeMissing(w, p.A, p.B, p.MissingInB); err != nil {
		return err
	}
	return writeMissing(w, p.B, p.A, p.MissingInA)
}

// writeMissing lists the keys present in from but absent in to.
func writeMissing(w io.Writer, from, to string, keys []string) error {
	if len(keys) == 0 {
		_, err := fmt.Fprintf(w, "No keys missing in %s compared to %s.\n", to, from)
		return err
	}
	if _, err := fmt.Fprintf(w, "Keys in %s missing in %s (%d):\n", from, to, len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "  - %s\n", k); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON renders the report as indented JSON. Empty differences are
// written as [] rather than null.
func (r *Report) WriteJSON(w io.Writer) error {
	out := Report{Pairs: make([]Pair, len(r.Pairs))}
	for i, p := range r.Pairs {
		out.Pairs[i] = Pair{
			A:          p.A,
			B:          p.B,
			MissingInB: nonNil(p.MissingInB),
			MissingInA: nonNil(p.MissingInA),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
