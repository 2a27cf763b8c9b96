package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// literalPattern matches a double-quoted literal. A backslash escapes the
// following character, so \" does not end the literal.
var literalPattern = regexp.MustCompile(`"([^"\\]*(\\.[^"\\]*)*)"`)

// windowSize is the number of lines before a literal that the classifier
// looks at.
const windowSize = 4

// Literal is a double-quoted string literal found in a source buffer.
type Literal struct {
	// Text is the literal content without the outer quotes. Escape
	// sequences are kept verbatim.
	Text string
	// Start is the byte offset of the first content character.
	Start int
	// End is the byte offset of the closing quote.
	End int
}

// Quote returns the byte offset of the literal's opening quote.
func (l Literal) Quote() int {
	return l.Start - 1
}

// Literals returns every terminated double-quoted literal in text,
// in document order.
func Literals(text string) []Literal {
	matches := literalPattern.FindAllStringSubmatchIndex(text, -1)
	lits := make([]Literal, 0, len(matches))
	for _, m := range matches {
		lits = append(lits, Literal{
			Text:  text[m[2]:m[3]],
			Start: m[2],
			End:   m[3],
		})
	}
	return lits
}

// Window is the textual neighbourhood of a literal.
type Window struct {
	// Current is the full line the literal's opening quote sits on, trimmed.
	Current string
	// Preceding holds up to four trimmed lines taken from the text before
	// the opening quote, nearest first. Preceding[0] is the part of the
	// literal's own line left of the quote, unless the quote starts the
	// line, in which case it is the previous line.
	Preceding []string
}

// Line returns the i-th preceding line, or "" when the window is shorter.
func (w Window) Line(i int) string {
	if i < 0 || i >= len(w.Preceding) {
		return ""
	}
	return w.Preceding[i]
}

// HasLine reports whether the window holds an i-th preceding line.
func (w Window) HasLine(i int) bool {
	return i >= 0 && i < len(w.Preceding)
}

// FirstNonBlank returns the nearest non-empty preceding line.
func (w Window) FirstNonBlank() (string, bool) {
	for _, line := range w.Preceding {
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// WindowAt builds the context window for a literal found in text.
func WindowAt(text string, lit Literal) Window {
	quote := lit.Quote()
	if quote < 0 {
		quote = 0
	}

	lineStart := strings.LastIndexByte(text[:quote], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[quote:], '\n'); i >= 0 {
		lineEnd = quote + i
	}

	before := splitLines(text[:quote])
	n := min(windowSize, len(before))
	preceding := make([]string, 0, n)
	for i := len(before) - 1; i >= len(before)-n; i-- {
		preceding = append(preceding, strings.TrimSpace(before[i]))
	}

	return Window{
		Current:   strings.TrimSpace(text[lineStart:lineEnd]),
		Preceding: preceding,
	}
}

// splitLines splits s on '\n', dropping a trailing "\r" from each line and
// the empty remainder after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Unescape decodes backslash escapes in a literal's text. Text that is not
// a valid escaped string is returned unchanged.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	decoded, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return decoded
}
