package main

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/datapath"
	"github.com/zoobzio/datapath/bson"
	"github.com/zoobzio/datapath/json"
	"github.com/zoobzio/datapath/msgpack"
	"github.com/zoobzio/datapath/yaml"
)

// errNotFound makes has exit non-zero without logging.
var errNotFound = errors.New("path not found")

var (
	separator string
	format    string
	file      string
	verbose   bool
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&separator, "separator", "s", datapath.Dot, "path separator")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "document format: json, yaml, msgpack or bson (default from the file extension, else json)")
	RootCmd.PersistentFlags().StringVar(&file, "file", "", "document file (default stdin)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	RootCmd.AddCommand(GetCmd)
	RootCmd.AddCommand(HasCmd)
	RootCmd.AddCommand(SetCmd)
	RootCmd.AddCommand(ForgetCmd)
}

// RootCmd is the main command for the 'datapath' binary.
var RootCmd = &cobra.Command{
	Use:           "datapath",
	Short:         "`datapath` reads and edits nested documents by path",
	Long:          "`datapath` reads and edits JSON, YAML, MessagePack and BSON documents through separator-delimited paths.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var codecs = map[string]func() datapath.Codec{
	"json":    json.New,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
}

var extensions = map[string]string{
	".json":    "json",
	".yaml":    "yaml",
	".yml":     "yaml",
	".msgpack": "msgpack",
	".mp":      "msgpack",
	".bson":    "bson",
}

// codecFor picks the codec named by name, falling back to the file
// extension and then to JSON.
func codecFor(name, path string) (datapath.Codec, error) {
	if name == "" {
		name = extensions[strings.ToLower(filepath.Ext(path))]
	}
	if name == "" {
		name = "json"
	}
	newCodec, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return newCodec(), nil
}

// load reads and decodes the input document.
func load(cmd *cobra.Command) (any, datapath.Codec, error) {
	codec, err := codecFor(format, file)
	if err != nil {
		return nil, nil, err
	}

	var data []byte
	if file == "" || file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := datapath.Load(codec, data)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"format": codec.ContentType(),
		"size":   len(data),
	}).Debug("document loaded")
	return doc, codec, nil
}

// write encodes v and writes it to the command output. JSON is indented.
func write(cmd *cobra.Command, codec datapath.Codec, v any) error {
	data, err := datapath.Dump(codec, v)
	if err != nil {
		return err
	}
	if codec.ContentType() == "application/json" {
		var buf bytes.Buffer
		if err := stdjson.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		data = buf.Bytes()
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// pathArg turns the path argument into a path. An empty argument addresses
// the whole document.
func pathArg(arg string) any {
	if arg == "" {
		return nil
	}
	return arg
}
