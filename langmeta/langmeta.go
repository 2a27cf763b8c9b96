// Package langmeta maps locale codes to display names for reports.
package langmeta

import "strings"

// Meta describes how a locale is shown to the user.
type Meta struct {
	// Name is the English name of the language.
	Name string
	// Native is the name of the language in itself.
	Native string
}

// Registry holds the known locales. Region variants fall back to their
// base language in Resolve.
var Registry = map[string]Meta{
	"ar":    {Name: "Arabic", Native: "العربية"},
	"de":    {Name: "German", Native: "Deutsch"},
	"en":    {Name: "English", Native: "English"},
	"en-GB": {Name: "English (UK)", Native: "English (UK)"},
	"en-US": {Name: "English (US)", Native: "English (US)"},
	"es":    {Name: "Spanish", Native: "Español"},
	"fr":    {Name: "French", Native: "Français"},
	"hi":    {Name: "Hindi", Native: "हिन्दी"},
	"id":    {Name: "Indonesian", Native: "Bahasa Indonesia"},
	"it":    {Name: "Italian", Native: "Italiano"},
	"ja":    {Name: "Japanese", Native: "日本語"},
	"ja-JP": {Name: "Japanese", Native: "日本語"},
	"ko":    {Name: "Korean", Native: "한국어"},
	"ko-KR": {Name: "Korean", Native: "한국어"},
	"nl":    {Name: "Dutch", Native: "Nederlands"},
	"pl":    {Name: "Polish", Native: "Polski"},
	"pt":    {Name: "Portuguese", Native: "Português"},
	"pt-BR": {Name: "Portuguese (Brazil)", Native: "Português (Brasil)"},
	"ru":    {Name: "Russian", Native: "Русский"},
	"th":    {Name: "Thai", Native: "ไทย"},
	"tr":    {Name: "Turkish", Native: "Türkçe"},
	"uk":    {Name: "Ukrainian", Native: "Українська"},
	"vi":    {Name: "Vietnamese", Native: "Tiếng Việt"},
	"zh":    {Name: "Chinese", Native: "中文"},
	"zh-CN": {Name: "Chinese (Simplified)", Native: "简体中文"},
	"zh-TW": {Name: "Chinese (Traditional)", Native: "繁體中文"},
}

// canonicalize turns "pt_br" or " PT-br " into "pt-BR".
func canonicalize(code string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns the metadata for code, trying the code as given, its
// canonical form, then its base language. Unknown codes resolve to a
// Meta whose names are the code itself.
func Resolve(code string) Meta {
	if m, ok := Registry[code]; ok {
		return m
	}
	normalized := canonicalize(code)
	if m, ok := Registry[normalized]; ok {
		return m
	}
	if base, _, found := strings.Cut(normalized, "-"); found {
		if m, ok := Registry[base]; ok {
			return m
		}
	}
	return Meta{Name: code, Native: code}
}

// Label returns "code (Name)" for known locales and the bare code otherwise.
func Label(code string) string {
	m := Resolve(code)
	if m.Name == code {
		return code
	}
	return code + " (" + m.Name + ")"
}
