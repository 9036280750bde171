package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/datapath"
	"github.com/zoobzio/datapath/yaml"
)

var (
	noOverwrite bool
	rawString   bool
)

func init() {
	SetCmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "keep existing values")
	SetCmd.Flags().BoolVar(&rawString, "string", false, "store the value as a string without parsing it")
}

// SetCmd is the cobra command that corresponds to the set subcommand
var SetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "`set` writes a value at a path and prints the document",
	Long:  "`set` writes a value at a path and prints the document. Values are parsed as YAML, so numbers, booleans, null, [lists] and {maps} keep their type.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, codec, err := load(cmd)
		if err != nil {
			return err
		}

		var value any = args[1]
		if !rawString {
			value = parseValue(args[1])
		}
		datapath.Set(&doc, pathArg(args[0]), value, !noOverwrite, separator)
		log.WithFields(log.Fields{
			"path":      args[0],
			"overwrite": !noOverwrite,
		}).Debug("set finished")

		return write(cmd, codec, doc)
	},
}

// parseValue reads a command line value as YAML. Input that does not parse
// is kept as a string.
func parseValue(s string) any {
	v, err := datapath.Load(yaml.New(), []byte(s))
	if err != nil {
		log.WithError(err).Debug("value kept as string")
		return s
	}
	if v == nil && s != "null" && s != "~" {
		return s
	}
	return v
}
