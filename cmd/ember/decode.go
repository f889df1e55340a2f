package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/observ"
	"ember/internal/source"
	"ember/internal/trace"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] <file|directory>...",
	Short: "Decode every string literal in the given files",
	Long: `Decode every string literal in the given files or in all *.str files of the given directories.
Literals may be separated by whitespace and ';' line comments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	decodeCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	decodeCmd.Flags().Bool("nfc", false, "normalize decoded values to Unicode NFC")
	decodeCmd.Flags().Bool("cache", false, "reuse results from the on-disk cache")
	decodeCmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before decoding")
	decodeCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	decodeCmd.Flags().String("path-mode", "auto", "how paths are printed (auto|absolute|relative|basename)")
	decodeCmd.Flags().String("ext", driver.DefaultExt, "file extension collected from directories")
}

// decodeSettings is the merged view of flags and ember.toml for one run.
type decodeSettings struct {
	format         string
	jobs           int
	nfc            bool
	cache          bool
	clearCache     bool
	maxDiagnostics int
	ext            string
	pathMode       string
	ui             string
}

// flagSource reports whether the user set a flag explicitly.
type flagSource interface {
	Changed(name string) bool
}

// mergeManifest overlays [decode] values on top of flag values. A flag the
// user set explicitly always wins.
func mergeManifest(s decodeSettings, flags flagSource, m *projectManifest) decodeSettings {
	if m == nil {
		return s
	}
	cfg := m.Config.Decode
	if !flags.Changed("format") && m.defined("decode", "format") {
		s.format = cfg.Format
	}
	if !flags.Changed("jobs") && m.defined("decode", "jobs") {
		s.jobs = cfg.Jobs
	}
	if !flags.Changed("nfc") && m.defined("decode", "nfc") {
		s.nfc = cfg.NFC
	}
	if !flags.Changed("cache") && m.defined("decode", "cache") {
		s.cache = cfg.Cache
	}
	if !flags.Changed("max-diagnostics") && m.defined("decode", "max_diagnostics") {
		s.maxDiagnostics = cfg.MaxDiagnostics
	}
	if !flags.Changed("ext") && m.defined("decode", "ext") {
		s.ext = cfg.Ext
	}
	if !flags.Changed("path-mode") && m.defined("decode", "path_mode") {
		s.pathMode = cfg.PathMode
	}
	return s
}

// commandFlags reports Changed for both local and inherited flags.
type commandFlags struct{ cmd *cobra.Command }

func (c commandFlags) Changed(name string) bool {
	if f := c.cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := c.cmd.Root().PersistentFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

func readDecodeSettings(cmd *cobra.Command) (decodeSettings, error) {
	var s decodeSettings
	var err error
	if s.format, err = cmd.Flags().GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.nfc, err = cmd.Flags().GetBool("nfc"); err != nil {
		return s, fmt.Errorf("failed to get nfc flag: %w", err)
	}
	if s.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return s, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if s.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
		return s, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if s.ui, err = cmd.Flags().GetString("ui"); err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.pathMode, err = cmd.Flags().GetString("path-mode"); err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if s.ext, err = cmd.Flags().GetString("ext"); err != nil {
		return s, fmt.Errorf("failed to get ext flag: %w", err)
	}
	if s.maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return s, nil
}

// runDecode executes "decode": literals go to stdout, diagnostics to stderr
// (or both into one JSON document with --format json). It fails when any
// diagnostic is an error.
func runDecode(cmd *cobra.Command, args []string) (err error) {
	manifest, err := manifestForCommand(cmd)
	if err != nil {
		return err
	}
	sess, err := setupTracing(cmd, manifest.traceSettings())
	if err != nil {
		return err
	}
	defer func() { sess.finish(err) }()
	defer sess.dumpTraceOnPanic()

	profiler, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling(cmd, profiler)

	settings, err := readDecodeSettings(cmd)
	if err != nil {
		return err
	}
	settings = mergeManifest(settings, commandFlags{cmd: cmd}, manifest)

	switch settings.format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", settings.format)
	}
	pathMode, err := source.ParsePathMode(settings.pathMode)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	files, err := driver.ExpandInputs(args, settings.ext)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", settings.ext, strings.Join(args, ", "))
	}
	withUI, err := progressWanted(settings.ui, len(files), isTerminal(os.Stderr))
	if err != nil {
		return err
	}

	opts := driver.Options{
		MaxDiagnostics: settings.maxDiagnostics,
		Jobs:           settings.jobs,
		NFC:            settings.nfc,
		Ext:            settings.ext,
	}
	if settings.cache || settings.clearCache {
		c, cerr := driver.OpenDiskCache("ember")
		if cerr != nil {
			return fmt.Errorf("failed to open cache: %w", cerr)
		}
		if settings.clearCache {
			if cerr := c.DropAll(); cerr != nil {
				return fmt.Errorf("failed to clear cache: %w", cerr)
			}
		}
		if settings.cache {
			opts.Cache = c
		}
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, "decode")
	defer span.End("")

	var (
		fs      *source.FileSet
		results []*driver.Result
	)
	if withUI {
		fs, results, err = runDecodeWithUI(ctx, "decoding", files, opts)
	} else {
		fs, results, err = driver.DecodeFiles(ctx, files, opts)
	}
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	bag := driver.MergeBags(results)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	switch settings.format {
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              settings.maxDiagnostics,
			IncludeNotes:     true,
		}
		if err := diagfmt.FormatLiteralsJSON(stdout, results, bag, fs, jsonOpts); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	default:
		outColor, cerr := useColor(cmd, os.Stdout)
		if cerr != nil {
			return cerr
		}
		errColor, cerr := useColor(cmd, os.Stderr)
		if cerr != nil {
			return cerr
		}
		if err := diagfmt.FormatLiteralsPretty(stdout, results, fs, diagfmt.PrettyOpts{Color: outColor, PathMode: pathMode}); err != nil {
			return fmt.Errorf("failed to write literals: %w", err)
		}
		prettyOpts := diagfmt.PrettyOpts{Color: errColor, PathMode: pathMode, ShowNotes: true}
		if err := diagfmt.Pretty(stderr, bag, fs, prettyOpts); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
		if !quiet {
			printDecodeSummary(stderr, results, bag.Len())
		}
	}

	if showTimings {
		printTimings(stderr, timer)
	}
	if bag.HasErrors() {
		return errDecodeFailed
	}
	return nil
}

var errDecodeFailed = errors.New("decoding finished with errors")

func printDecodeSummary(w io.Writer, results []*driver.Result, diagnostics int) {
	literals, cached := 0, 0
	for _, res := range results {
		if res == nil {
			continue
		}
		literals += len(res.Literals)
		if res.Cached {
			cached++
		}
	}
	msg := fmt.Sprintf("%d literal(s) in %d file(s)", literals, len(results))
	if cached > 0 {
		msg += fmt.Sprintf(", %d from cache", cached)
	}
	if diagnostics > 0 {
		msg += fmt.Sprintf(", %d diagnostic(s)", diagnostics)
	}
	fmt.Fprintln(w, msg)
}
