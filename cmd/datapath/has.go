package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/datapath"
)

// HasCmd is the cobra command that corresponds to the has subcommand
var HasCmd = &cobra.Command{
	Use:   "has <path>",
	Short: "`has` reports whether a path exists",
	Long:  "`has` prints true or false and exits non-zero when the path does not exist. Segments are literal keys.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := load(cmd)
		if err != nil {
			return err
		}

		found := datapath.Has(doc, pathArg(args[0]), separator)
		fmt.Fprintln(cmd.OutOrStdout(), found)
		if !found {
			return errNotFound
		}
		return nil
	},
}
