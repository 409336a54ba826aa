// Package cli implements the meretable command-line interface.
//
// The render command reads a table definition (YAML, TOML, or JSON) from a
// file or stdin and writes the table to stdout in any format supported by
// package meretable. Flags can also be set from a .meretable.toml config file
// or MERETABLE_* environment variables; flags given on the command line win.
//
// # Logging
//
// All commands log to stderr with charmbracelet/log and support --verbose
// (-v) for debug-level output. The logger is passed through context.Context.
package cli
