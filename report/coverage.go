package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/minios-linux/keyaudit/langmeta"
)

// Coverage summarizes how well one locale covers the code key set.
type Coverage struct {
	Locale string
	// Keys is the number of keys in the locale file.
	Keys int
	// Missing counts code keys absent from the locale.
	Missing int
	// Unused counts locale keys the code does not reference.
	Unused int
	// Percent is the share of code keys present in the locale.
	Percent int
}

// Coverages computes one Coverage per locale from the code pairs of r.
// Pairs whose A side is not code are ignored.
func Coverages(code Source, locales []Source, r *Report) []Coverage {
	var out []Coverage
	for _, loc := range locales {
		for _, p := range r.Pairs {
			if p.A != code.Name || p.B != loc.Name {
				continue
			}
			c := Coverage{
				Locale:  loc.Name,
				Keys:    loc.Keys.Len(),
				Missing: len(p.MissingInB),
				Unused:  len(p.MissingInA),
				Percent: 100,
			}
			if total := code.Keys.Len(); total > 0 {
				c.Percent = (total - c.Missing) * 100 / total
			}
			out = append(out, c)
			break
		}
	}
	return out
}

// WriteCoverage prints a coverage table.
func WriteCoverage(w io.Writer, codeKeys int, rows []Coverage) {
	header := color.New(color.FgBlue)
	header.Fprintln(w, "Locale Coverage")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "\n%-10s %-8s %-8s %-8s %s\n", "Locale", "Keys", "Missing", "Unused", "Coverage")
	fmt.Fprintln(w, strings.Repeat("─", 60))

	for _, c := range rows {
		name := ""
		if m := langmeta.Resolve(c.Locale); m.Name != c.Locale {
			name = " " + m.Name
			if m.Native != m.Name {
				name += " (" + m.Native + ")"
			}
		}
		fmt.Fprintf(w, "%-10s %-8d %-8d %-8d %s%s\n", c.Locale, c.Keys, c.Missing, c.Unused, ProgressBar(c.Percent, 20), name)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Code keys: %d\n", codeKeys)
}

// ProgressBar renders percent as a bar of the given width followed by the
// number. The bar is red below 50%, yellow below 100% and green at 100%.
func ProgressBar(percent, width int) string {
	percent = max(0, min(100, percent))
	filled := percent * width / 100

	c := color.New(color.FgGreen)
	switch {
	case percent < 50:
		c = color.New(color.FgRed)
	case percent < 100:
		c = color.New(color.FgYellow)
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return c.Sprint(bar) + fmt.Sprintf(" %3d%%", percent)
}
