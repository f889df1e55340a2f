package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/strlit"
	"ember/internal/trace"
)

const stdinName = "<stdin>"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Decode string literals from stdin as they arrive",
	Long: `Read string literals from standard input and print each decoded value
as soon as its closing quote arrives. A malformed literal is reported and the
rest of its line is skipped.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Bool("nfc", false, "normalize decoded values to Unicode NFC")
	replCmd.Flags().Int("chunk-size", 0, "bytes per read from stdin (0=default)")
}

func runRepl(cmd *cobra.Command, args []string) (err error) {
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

	nfc, err := cmd.Flags().GetBool("nfc")
	if err != nil {
		return fmt.Errorf("failed to get nfc flag: %w", err)
	}
	if !cmd.Flags().Changed("nfc") && manifest.defined("decode", "nfc") {
		nfc = manifest.Config.Decode.NFC
	}
	chunkSize, err := cmd.Flags().GetInt("chunk-size")
	if err != nil {
		return fmt.Errorf("failed to get chunk-size flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) && !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "ember repl: type string literals, Ctrl-D to exit")
	}
	return replLoop(cmd.Context(), source.NewFileSet(), in, cmd.OutOrStdout(), cmd.ErrOrStderr(), driver.StreamOptions{ChunkSize: chunkSize, NFC: nfc})
}

// replLoop decodes literals from in until EOF. Values go to out as
// `=> "<quoted>"`, diagnostics to errOut in the short one-line form.
// Input is registered in fs as one streamed file; only its line index is kept.
func replLoop(ctx context.Context, fs *source.FileSet, in io.Reader, out, errOut io.Writer, opts driver.StreamOptions) error {
	opts.File = fs.AddStream(stdinName)
	opts.Reporter = diag.ShortReporter{W: errOut, Files: fs}
	stream := driver.NewStream(io.TeeReader(in, fs.StreamWriter(opts.File)), opts)

	for {
		litCtx, span := trace.Start(ctx, trace.ScopeLiteral, "literal")
		lit, err := stream.Next(litCtx)
		if errors.Is(err, io.EOF) {
			span.End("eof")
			return nil
		}
		var se *strlit.Error
		if errors.As(err, &se) {
			span.End(se.Kind.String())
			continue
		}
		if err != nil {
			span.End("error")
			return fmt.Errorf("read literal: %w", err)
		}
		span.End("")
		if _, err := fmt.Fprintf(out, "=> %s\n", strconv.Quote(lit.Value)); err != nil {
			return err
		}
	}
}
