package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/datapath"
)

// ForgetCmd is the cobra command that corresponds to the forget subcommand
var ForgetCmd = &cobra.Command{
	Use:   "forget <path>",
	Short: "`forget` removes the value at a path and prints the document",
	Long:  "`forget` removes the value at a path and prints the document. A wildcard removes the rest of the path from every element.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, codec, err := load(cmd)
		if err != nil {
			return err
		}

		datapath.Forget(&doc, pathArg(args[0]), separator)
		log.WithField("path", args[0]).Debug("forget finished")

		return write(cmd, codec, doc)
	},
}
