package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "ember",
	Short:        "Streaming string-literal decoder",
	Long:         `ember decodes Scheme-style string literals from files or a live stream and reports malformed ones`,
	SilenceUsage: true,
}

// main регистрирует команды и глобальные флаги; при ошибке код выхода 1.
func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(decodeCmd, replCmd, versionCmd)
	registerGlobalFlags(rootCmd.PersistentFlags())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerGlobalFlags(f *pflag.FlagSet) {
	// вывод
	f.String("color", "auto", "colorize output (auto|on|off)")
	f.Bool("quiet", false, "suppress non-essential output")
	f.Bool("timings", false, "show per-stage timings after decode")
	f.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	f.String("config", "", "path to ember.toml (default: search upwards from the working directory)")

	// трассировка
	f.String("trace", "", "trace output file (\"-\" for stderr)")
	f.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	f.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	f.String("trace-format", "auto", "trace output format (auto|text|ndjson)")
	f.Int("trace-ring-size", 4096, "ring buffer capacity for --trace-mode ring|both")

	// профилирование
	f.String("cpu-profile", "", "write a CPU profile to file")
	f.String("mem-profile", "", "write a heap profile to file on exit")
	f.String("runtime-trace", "", "write a Go runtime trace to file")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// switchMode is the auto|on|off value shared by --color and --ui.
type switchMode uint8

const (
	switchAuto switchMode = iota
	switchOn
	switchOff
)

func parseSwitch(flag, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	}
	return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// resolve turns the switch into a decision; auto takes the given default.
func (m switchMode) resolve(auto bool) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	}
	return auto
}

// useColor resolves --color against the destination stream.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	mode, err := parseSwitch("color", value)
	if err != nil {
		return false, err
	}
	return mode.resolve(isTerminal(f)), nil
}
