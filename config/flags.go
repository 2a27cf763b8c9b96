package config

import (
	"github.com/spf13/pflag"
)

// Flags are command-line overrides of the configuration file.
type Flags struct {
	App        string
	AppURL     string
	AppRef     string
	Library    string
	LibraryURL string
	LibraryRef string
	SSHKey     string
	Locales    []string
	Extension  string
	Unescape   bool
	// NoStylesheets disables CSS exclusion.
	NoStylesheets bool
}

// Register adds the override flags to fs.
func (fl *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&fl.App, "app", "", "Local application checkout")
	fs.StringVar(&fl.AppURL, "app-url", "", "Git remote of the application")
	fs.StringVar(&fl.AppRef, "app-ref", "", "Branch, tag or commit of the application remote")
	fs.StringVar(&fl.Library, "library", "", "Local component library checkout")
	fs.StringVar(&fl.LibraryURL, "library-url", "", "Git remote of the component library")
	fs.StringVar(&fl.LibraryRef, "library-ref", "", "Branch, tag or commit of the library remote")
	fs.StringVar(&fl.SSHKey, "ssh-key", "", "Private key for SSH remotes")
	fs.StringArrayVar(&fl.Locales, "locale", nil, "Locale file relative to the app root (repeatable)")
	fs.StringVar(&fl.Extension, "ext", "", "Source file extension (default .rs)")
	fs.BoolVar(&fl.Unescape, "unescape", false, "Decode escape sequences in source literals before comparing")
	fs.BoolVar(&fl.NoStylesheets, "no-stylesheets", false, "Do not exclude CSS class and id names")
}

// Apply copies every flag that was set onto f. A local path replaces a
// configured remote and the other way round.
func (fl *Flags) Apply(f *File) {
	applySource(&f.App, fl.App, fl.AppURL, fl.AppRef)

	// A lone --library-ref still creates the library so that validation
	// reports the missing url.
	if fl.Library != "" || fl.LibraryURL != "" || fl.LibraryRef != "" {
		if f.Library == nil {
			f.Library = &Source{}
		}
	}
	if f.Library != nil {
		applySource(f.Library, fl.Library, fl.LibraryURL, fl.LibraryRef)
	}

	if fl.SSHKey != "" {
		f.SSHKey = fl.SSHKey
	}
	if len(fl.Locales) > 0 {
		f.App.Locales = append([]string(nil), fl.Locales...)
	}
	if fl.Extension != "" {
		f.Extension = fl.Extension
	}
	if fl.Unescape {
		f.UnescapeLiterals = true
	}
	if fl.NoStylesheets {
		f.App.StylesheetDir = NoStylesheets
	}
}

func applySource(s *Source, path, url, ref string) {
	switch {
	case path != "":
		s.Path, s.URL, s.Ref = path, "", ""
	case url != "":
		s.Path, s.URL = "", url
	}
	if ref != "" {
		s.Ref = ref
	}
}
