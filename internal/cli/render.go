package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/meretable"
	"github.com/spf13/cobra"
)

const stdinPath = "-"

func newRenderCmd() *cobra.Command {
	var (
		format string
		input  string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table definition",
		Long: `Render reads a table definition from file, or from stdin when file is
omitted or "-", and writes the table to stdout.

A definition lists the columns, optionally nested, and the rows:

  columns:
    - name: Name
    - name: Score
      subcolumns:
        - name: Math
        - name: Art
  rows:
    - [alice, "90", "75"]`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}

			f, err := meretable.ParseFormat(format)
			if err != nil {
				return err
			}
			kind, err := resolveKind(input, path)
			if err != nil {
				return err
			}

			r, closeInput, err := openInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			def, err := meretable.DecodeDefinition(r, kind)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			t, err := def.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("built table", "input", path, "kind", kind, "leaves", t.NumLeaves(), "rows", t.NumRows(), "depth", t.Depth())

			return meretable.Write(cmd.OutOrStdout(), f, t)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(meretable.Text), "output format (see \"meretable formats\")")
	cmd.Flags().StringVarP(&input, "input", "i", "", "definition kind: yaml, toml, or json (default from file extension, else yaml)")

	return cmd
}

// resolveKind prefers an explicit kind, then the file extension, then YAML.
func resolveKind(input, path string) (meretable.DefinitionKind, error) {
	if input != "" {
		return meretable.ParseDefinitionKind(input)
	}
	if path != stdinPath {
		if kind, ok := meretable.KindFromPath(path); ok {
			return kind, nil
		}
	}
	return meretable.DefinitionYAML, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == stdinPath {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, f := range meretable.Formats() {
				if _, err := fmt.Fprintln(out, f); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(out, "go-template=<template>")
			return err
		},
	}
}
