package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/prof"
)

// setupProfiling starts the profilers named by --cpu-profile, --mem-profile
// and --runtime-trace. Without any of them it returns a nil session.
func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	var opts prof.Options
	for flag, dst := range map[string]*string{
		"cpu-profile":   &opts.CPU,
		"mem-profile":   &opts.Mem,
		"runtime-trace": &opts.Trace,
	} {
		v, err := cmd.Root().PersistentFlags().GetString(flag)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", flag, err)
		}
		*dst = v
	}
	if !opts.Enabled() {
		return nil, nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	return s, nil
}

// stopProfiling пишет ошибку в stderr: команда уже отработала.
func stopProfiling(cmd *cobra.Command, s *prof.Session) {
	if err := s.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
	}
}
