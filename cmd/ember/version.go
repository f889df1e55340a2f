package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/driver"
	"ember/internal/version"
)

const versionTagline = "every quote closes eventually"

// buildReport is what "ember version" prints. Commit and date stay empty
// unless asked for, so JSON omits them.
type buildReport struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	Tagline     string `json:"tagline"`
	CacheSchema uint16 `json:"cache_schema"`
	GitCommit   string `json:"git_commit,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ember build fingerprints",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	full, _ := flags.GetBool("full")
	hash, _ := flags.GetBool("hash")
	date, _ := flags.GetBool("date")

	rep := newBuildReport(hash || full, date || full)
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty":
		colored, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		printBuildReport(cmd.OutOrStdout(), rep, colored)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func newBuildReport(withCommit, withDate bool) buildReport {
	rep := buildReport{
		Tool:        "ember",
		Version:     orDefault(version.Version, "dev"),
		Tagline:     versionTagline,
		CacheSchema: driver.CacheSchema,
	}
	if withCommit {
		rep.GitCommit = orDefault(version.GitCommit, "unknown")
	}
	if withDate {
		rep.BuildDate = orDefault(version.BuildDate, "unknown")
	}
	return rep
}

func printBuildReport(out io.Writer, rep buildReport, colored bool) {
	v := rep.Version
	if colored && v == version.Version {
		v = version.Colored()
	}
	fmt.Fprintf(out, "ember %s: %s\n", v, rep.Tagline)
	fmt.Fprintf(out, "cache schema: %d\n", rep.CacheSchema)
	if rep.GitCommit != "" {
		fmt.Fprintf(out, "commit: %s\n", rep.GitCommit)
	}
	if rep.BuildDate != "" {
		fmt.Fprintf(out, "built:  %s\n", rep.BuildDate)
	}
	if rep.GitCommit == "" && rep.BuildDate == "" {
		fmt.Fprintln(out, "set --hash, --date, or --full for more build trivia")
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
