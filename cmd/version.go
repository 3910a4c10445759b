package cmd

import (
	"firesale/internal/version"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command. It needs no credentials; the
// root hook lifts the environment-dependent required flags for it.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show version information for the firesale CLI.

Displays the version number, git commit, and build timestamp injected at
build time. With --short only the bare version number is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.Get().Write(cmd.OutOrStdout(), short)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "show only the version number")

	return cmd
}
