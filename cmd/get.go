package cmd

import (
	"firesale/internal/client"

	"github.com/spf13/cobra"
)

// flagLimit bounds collection listing on the get command.
const flagLimit = "limit"

// newGetCmd creates the get command. With a document name it fetches that
// single document; without one it views the whole collection.
func newGetCmd(env client.Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <collection> [document]",
		Short: "Fetch a document or view a collection",
		Long: `Fetch a single document, or view every document in a collection.

With both arguments the named document is fetched. With only a collection
name the documents of that collection are listed, bounded by --limit.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flags().Lookup(flagLimit); f != nil && appViper != nil {
				if err := appViper.BindPFlag(keyListLimit, f); err != nil {
					return err
				}
			}
			return runEntryPoint(cmd, env, client.ResolveGet(args))
		},
	}

	cmd.Flags().IntP(flagLimit, "l", client.DefaultListLimit, "maximum documents to list (0 = unlimited)")

	return cmd
}
