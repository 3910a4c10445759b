package cmd

import (
	"firesale/internal/client"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command. Both the collection and document
// names are required at the grammar level, so a missing document name is a
// usage error rather than a crash downstream.
func newDeleteCmd(env client.Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <document>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntryPoint(cmd, env, client.ResolveDelete(args))
		},
	}
}
