package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/empowerchain/eventwire/config/logger"
)

var encodeOutput string

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "hex", "Output format (hex or raw)")
}

var encodeCmd = &cobra.Command{
	Use:   "encode <type> [file]",
	Short: "Encode a YAML or JSON message to its wire form",
	Long: `Encode a YAML or JSON message to its wire form.

The input is read from the file, or from stdin when no file is given. Fields
may use their proto or JSON names; omitted fields take their default value.
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if encodeOutput != "hex" && encodeOutput != "raw" {
			return fmt.Errorf("--output: must be one of: hex, raw")
		}
		msg, err := ew.Describe(args[0])
		if err != nil {
			return err
		}

		var fpath string
		if len(args) > 1 {
			fpath = args[1]
		}
		data, err := readInput(cmd, fpath)
		if err != nil {
			return err
		}
		partial, err := parsePartial(data)
		if err != nil {
			return err
		}
		full, err := ew.Merge(partial, msg.Name)
		if err != nil {
			return errors.Wrap(err, "merge")
		}
		out, err := ew.Marshal(full, msg.Name)
		if err != nil {
			return errors.Wrap(err, "encode")
		}
		logrus.WithFields(logrus.Fields{
			logger.MessageTypeField: msg.ShortName(),
			"size":                  len(out),
		}).Debug("Encoded message")

		if encodeOutput == "raw" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return err
	},
}
