package commands

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/empowerchain/eventwire/wire"
)

// readInput reads a file, or stdin for "" and "-"
func readInput(cmd *cobra.Command, fpath string) ([]byte, error) {
	if fpath == "" || fpath == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return data, nil
}

// readPayload reads an encoded message given as hex, or as "@path" for a
// file holding the raw bytes.
func readPayload(arg string) ([]byte, error) {
	if fpath, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(fpath)
		if err != nil {
			return nil, errors.Wrap(err, "read payload")
		}
		return data, nil
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decode hex payload")
	}
	return data, nil
}

// parsePartial reads a YAML or JSON document into a partial message value
func parsePartial(data []byte) (map[string]interface{}, error) {
	partial := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return nil, errors.Wrap(err, "parse message")
	}
	return partial, nil
}

// valueYAML orders the fields of a decoded value the way they are declared
func valueYAML(value wire.Value, fieldNames []string) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(fieldNames))
	for _, name := range fieldNames {
		v := value[name]
		if b, ok := v.([]byte); ok {
			v = hex.EncodeToString(b)
		}
		out = append(out, yaml.MapItem{Key: name, Value: v})
	}
	return out
}
