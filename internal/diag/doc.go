// Package diag defines the diagnostic model shared by the decoder driver,
// the formatters and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: numeric identifier with a stable ID such as STR1103 (codes.go).
//   - Message: short human text.
//   - Primary: the source.Span of the offending bytes.
//   - Notes: optional secondary spans, e.g. the opening quote of an
//     unterminated literal.
//
// # Emitting diagnostics
//
// Producers hand finished diagnostics to a Reporter. ReportError starts a
// ReportBuilder that collects notes until Emit. BagReporter aggregates into
// a Bag, which supports a limit, sorting and deduplication.
// ShortReporter prints each diagnostic as it arrives, for the REPL.
//
// Package diag does no rendering beyond FormatShort; pretty and JSON output
// live in internal/diagfmt.
package diag
