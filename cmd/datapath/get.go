package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/datapath"
)

var (
	defaultValue string
	output       string
)

func init() {
	GetCmd.Flags().StringVar(&defaultValue, "default", "", "value printed when the path does not resolve")
	GetCmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
}

// GetCmd is the cobra command that corresponds to the get subcommand
var GetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "`get` prints the value at a path",
	Long:  "`get` prints the value at a path. Wildcards (*) and the {first} and {last} placeholders are supported.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, _, err := load(cmd)
		if err != nil {
			return err
		}

		var def any
		if cmd.Flags().Changed("default") {
			def = parseValue(defaultValue)
		}
		v := datapath.Get(doc, pathArg(args[0]), separator, def)
		log.WithField("path", args[0]).Debug("get finished")

		codec, err := codecFor(output, "")
		if err != nil {
			return err
		}
		return write(cmd, codec, v)
	},
}
