// Command keyaudit audits the i18n key coverage of a web front end against
// its JSON locale files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minios-linux/keyaudit/config"
	"github.com/minios-linux/keyaudit/extract"
	"github.com/minios-linux/keyaudit/i18n"
	"github.com/minios-linux/keyaudit/jsonfile"
	"github.com/minios-linux/keyaudit/keyset"
	"github.com/minios-linux/keyaudit/langmeta"
	"github.com/minios-linux/keyaudit/repo"
	"github.com/minios-linux/keyaudit/report"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Names of the source key sets in reports.
const (
	uiName   = "ui"
	codeName = "code"
)

// Exit codes.
const (
	exitError   = 1
	exitMissing = 2
)

// errMissingKeys is returned by check when --fail-on-missing is set and
// some pair reported missing keys.
var errMissingKeys = errors.New("missing keys found")

var quiet bool

func logInfo(format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(color.Error, color.BlueString("[INFO]")+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(color.Error, color.GreenString("[OK]")+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(color.Error, color.YellowString("[WARN]")+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(color.Error, color.RedString("[ERROR]")+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir    string
	configPath string
	uiLang     string
	noColor    bool
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	check := newCheckCmd()

	root := &cobra.Command{
		Use:   "keyaudit",
		Short: "Audit i18n key coverage of a web front end",
		Long: `keyaudit audits i18n key coverage.

It scans application and component-library source for user-facing string
literals, derives the translation keys the code uses, and compares them
with the keys of every JSON locale file. Keys missing on either side are
reported; nothing is modified.

Commands:
  check     Compare code keys with locale files (default)
  keys      Print the key set derived from source
  version   Show version information

Configuration is read from .keyaudit.yaml in --root when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
			i18n.Init(uiLang)
		},
		RunE: check.RunE,
	}

	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <root>/"+config.FileName+")")
	root.PersistentFlags().StringVar(&uiLang, "lang", "", "Language of keyaudit's own messages")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print the report, warnings and errors")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// The root command runs check, so it accepts check's flags too.
	root.Flags().AddFlagSet(check.Flags())

	root.AddCommand(
		check,
		newKeysCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	err := execute(newRootCmd())
	switch {
	case err == nil:
	case errors.Is(err, errMissingKeys):
		logWarning("%s", i18n.T("Missing keys found"))
		os.Exit(exitMissing)
	default:
		logError("%v", err)
		os.Exit(exitError)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("keyaudit version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// check
// ---------------------------------------------------------------------------

type checkArgs struct {
	overrides     config.Flags
	format        string
	failOnMissing bool
	jobs          int
	coverage      bool
	codePairs     bool
}

func newCheckCmd() *cobra.Command {
	var a checkArgs

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare code keys with locale files",
		Long: `Compare the keys used by application source with every locale file,
and the locale files with each other. With --code-pairs the union of
application and library keys is compared with every locale file too.

Examples:
  # Audit the checkout in the current directory
  keyaudit check

  # Audit a remote application against a local library checkout
  keyaudit check --app-url git@github.com:org/web.git --ssh-key ~/.ssh/id_ed25519 \
      --library ../frontary

  # Fail CI when keys are missing
  keyaudit check --fail-on-missing --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), a)
		},
	}

	a.overrides.Register(cmd.Flags())
	cmd.Flags().StringVar(&a.format, "format", "text", "Report format: text or json")
	cmd.Flags().BoolVar(&a.failOnMissing, "fail-on-missing", false, "Exit with status 2 when keys are missing")
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", 0, "Files scanned in parallel (default: number of CPUs)")
	cmd.Flags().BoolVar(&a.coverage, "coverage", true, "Print a locale coverage table to stderr")
	cmd.Flags().BoolVar(&a.codePairs, "code-pairs", false, "Also compare application and library keys together with every locale")

	return cmd
}

func runCheck(ctx context.Context, a checkArgs) error {
	if a.format != "text" && a.format != "json" {
		return fmt.Errorf("unknown format %q (valid: text, json)", a.format)
	}

	cfg, err := loadConfig(&a.overrides)
	if err != nil {
		return err
	}

	res, err := collect(ctx, cfg, a.jobs, true)
	if err != nil {
		return err
	}

	ui, r := res.report(a.codePairs)

	switch a.format {
	case "json":
		err = r.WriteJSON(os.Stdout)
	default:
		err = r.WriteText(os.Stdout)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if a.coverage && a.format == "text" && !quiet {
		fmt.Fprintln(os.Stderr)
		report.WriteCoverage(os.Stderr, ui.Keys.Len(), report.Coverages(ui, res.locales, r))
	}

	if missing := r.Missing(); missing > 0 {
		logInfo("%s", i18n.N("%s key missing", "%s keys missing", missing, humanize.Comma(int64(missing))))
		if a.failOnMissing {
			return errMissingKeys
		}
	} else {
		logSuccess("%s", i18n.T("All locale files are in sync with the code"))
	}
	return nil
}

// ---------------------------------------------------------------------------
// keys
// ---------------------------------------------------------------------------

func newKeysCmd() *cobra.Command {
	var (
		overrides config.Flags
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "keys [ui|library|all]",
		Short: "Print the key set derived from source",
		Long: `Print the assembled key set, one key per line, sorted.

"ui" prints the application keys, "library" the component-library keys,
and "all" (the default) their union. Useful for tuning markers and
override lists in .keyaudit.yaml.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"ui", "library", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := "all"
			if len(args) == 1 {
				which = args[0]
			}
			return runKeys(cmd.Context(), &overrides, jobs, which)
		},
	}

	overrides.Register(cmd.Flags())
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Files scanned in parallel (default: number of CPUs)")

	return cmd
}

func runKeys(ctx context.Context, fl *config.Flags, jobs int, which string) error {
	cfg, err := loadConfig(fl)
	if err != nil {
		return err
	}

	res, err := collect(ctx, cfg, jobs, false)
	if err != nil {
		return err
	}

	var keys keyset.Set
	switch which {
	case "ui":
		keys = res.ui
	case "library":
		if res.library == nil {
			return fmt.Errorf("no library configured")
		}
		keys = res.library
	case "all":
		keys = res.codeKeys()
	default:
		return fmt.Errorf("unknown key set %q (valid: ui, library, all)", which)
	}

	for _, k := range keys.Sorted() {
		fmt.Println(k)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Shared pipeline
// ---------------------------------------------------------------------------

func loadConfig(fl *config.Flags) (*config.File, error) {
	cfg, err := config.Load(rootDir, configPath)
	if err != nil {
		return nil, err
	}
	fl.Apply(cfg)
	if err := cfg.Finalize(rootDir); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// collected holds everything read from disk for one run.
type collected struct {
	ui      keyset.Set
	library keyset.Set
	locales []report.Source
}

// codeKeys returns the keys used anywhere in source.
func (c *collected) codeKeys() keyset.Set {
	return keyset.Union(c.ui, c.library)
}

// report reconciles the application keys with every locale and the
// locales with each other. With codePairs the union of application and
// library keys is reconciled with every locale as well.
func (c *collected) report(codePairs bool) (report.Source, *report.Report) {
	ui := report.Source{Name: uiName, Keys: c.ui}
	sources := []report.Source{ui}
	if codePairs {
		sources = append(sources, report.Source{Name: codeName, Keys: c.codeKeys()})
	}
	return ui, report.Build(sources, c.locales)
}

// collect acquires the source trees, classifies their literals and, when
// withLocales is set, loads the locale files. Cloned trees are removed
// before it returns.
func collect(ctx context.Context, cfg *config.File, jobs int, withLocales bool) (*collected, error) {
	repos, err := repo.NewManager(cfg.SSHKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			logWarning("%s", i18n.T("Removing temporary clones: %v", cerr))
		}
	}()

	scanner := &extract.Scanner{
		Classifier: extract.NewClassifier(cfg.Markers),
		Jobs:       jobs,
		Unescape:   cfg.UnescapeLiterals,
	}
	asm := &keyset.Assembler{Overrides: cfg.Overrides.Effective()}
	skip := cfg.SkipRules()
	res := &collected{}

	appRoot, err := acquire(ctx, repos, "app", &cfg.App)
	if err != nil {
		return nil, err
	}

	uiFiles, err := extract.FindSources(filepath.Join(appRoot, cfg.App.SourceDir), cfg.Extension, skip)
	if err != nil {
		return nil, err
	}
	var cssFiles []string
	if cfg.App.HasStylesheets() {
		cssFiles, err = extract.FindSources(filepath.Join(appRoot, cfg.App.StylesheetDir), cfg.StylesheetExtension, skip)
		if err != nil {
			return nil, err
		}
	} else {
		logWarning("%s", i18n.T("Stylesheets disabled; CSS names are not excluded"))
	}
	logInfo("%s", i18n.T("Scanning %s source files and %s stylesheets", humanize.Comma(int64(len(uiFiles))), humanize.Comma(int64(len(cssFiles)))))

	found, err := scanner.ScanFiles(ctx, extract.ModeUI, uiFiles)
	if err != nil {
		return nil, err
	}
	css, err := extract.StylesheetSet(cssFiles)
	if err != nil {
		return nil, err
	}
	res.ui = asm.AssembleUI(css, found)
	logInfo("%s", i18n.T("Application keys: %s", humanize.Comma(int64(res.ui.Len()))))

	if cfg.Library != nil {
		libRoot, err := acquire(ctx, repos, "library", cfg.Library)
		if err != nil {
			return nil, err
		}
		libFiles, err := extract.FindSources(filepath.Join(libRoot, cfg.Library.SourceDir), cfg.Extension, skip)
		if err != nil {
			return nil, err
		}
		libFound, err := scanner.ScanFiles(ctx, extract.ModeLibrary, libFiles)
		if err != nil {
			return nil, err
		}
		res.library = asm.AssembleLibrary(libFound)
		logInfo("%s", i18n.T("Library keys: %s (%s files)", humanize.Comma(int64(res.library.Len())), humanize.Comma(int64(len(libFiles)))))
	}

	if !withLocales {
		return res, nil
	}

	paths, err := cfg.LocalePaths(appRoot)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		f, err := jsonfile.ParseFile(path)
		if err != nil {
			return nil, err
		}
		res.locales = append(res.locales, report.Source{Name: f.Name(), Keys: f.Set()})
		logInfo("%s", i18n.T("Locale %s: %s keys", langmeta.Label(f.Name()), humanize.Comma(int64(len(f.Keys())))))
	}

	return res, nil
}

// acquire resolves a configured source to a local directory.
func acquire(ctx context.Context, repos *repo.Manager, name string, src *config.Source) (string, error) {
	if src.Remote() {
		logInfo("%s", i18n.T("Cloning %s...", src.URL))
	}
	dir, err := repos.Resolve(ctx, repo.Spec{Name: name, Path: src.Path, URL: src.URL, Ref: src.Ref})
	if err != nil {
		return "", err
	}
	if src.Remote() {
		logSuccess("%s", i18n.T("Cloned %s", src.URL))
	}
	return dir, nil
}

// execute runs the root command with an interrupt-aware context.
func execute(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cmd.ExecuteContext(ctx)
}
