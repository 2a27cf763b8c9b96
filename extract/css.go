package extract

import (
	"regexp"
	"strings"

	"github.com/minios-linux/keyaudit/keyset"
)

var (
	// cssClassPattern captures the name after ".", optionally preceded by
	// an element name as in "div.name".
	cssClassPattern = regexp.MustCompile(`(?:[a-zA-Z]+\.)?\.([a-zA-Z][a-zA-Z0-9_-]*)`)
	// cssIDPattern captures the name after "#", optionally preceded by
	// an element name as in "div#name".
	cssIDPattern = regexp.MustCompile(`(?:[a-zA-Z]+#)?#([a-zA-Z][a-zA-Z0-9_-]*)`)
)

// CSSIdentifiers returns the class and id names referenced in stylesheet
// text. Each line is matched on its own; duplicates are kept.
func CSSIdentifiers(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		for _, m := range cssClassPattern.FindAllStringSubmatch(line, -1) {
			names = append(names, m[1])
		}
		for _, m := range cssIDPattern.FindAllStringSubmatch(line, -1) {
			names = append(names, m[1])
		}
	}
	return names
}

// StylesheetSet reads every stylesheet and returns the union of their
// class and id names.
func StylesheetSet(paths []string) (keyset.Set, error) {
	names := keyset.New()
	for _, path := range paths {
		b, err := ReadBuffer(path)
		if err != nil {
			return nil, err
		}
		names.Add(CSSIdentifiers(b.Text)...)
	}
	return names, nil
}
