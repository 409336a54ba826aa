package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the meretable CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		cfgFile string
	)

	root := &cobra.Command{
		Use:          "meretable",
		Short:        "Render tables with nested column headers",
		Long:         `meretable renders table definitions as bordered ASCII grids with nested column headers, or as CSV, Markdown, HTML, JSON, and YAML.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			v, err := loadConfig(cfgFile, logger)
			if err != nil {
				return err
			}
			return bindFlags(cmd, v, logger)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("meretable %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meretable.toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newFormatsCmd())

	return root
}
