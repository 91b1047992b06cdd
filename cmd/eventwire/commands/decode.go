package commands

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/empowerchain/eventwire/config/logger"
	"github.com/empowerchain/eventwire/schema"
)

var decodeJobs int

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().IntVarP(&decodeJobs, "jobs", "j", 4, "Number of payloads to decode in parallel")
}

var decodeCmd = &cobra.Command{
	Use:   "decode <type> <hex|@file>...",
	Short: "Decode wire payloads to YAML",
	Long: `Decode wire payloads to YAML.

Each payload is given as hex, or as @path for a file holding the raw bytes.
Payloads are decoded in parallel and printed in argument order as separate
YAML documents.
`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := ew.Describe(args[0])
		if err != nil {
			return err
		}
		fieldNames := lo.Map(msg.SortedFields(), func(f *schema.Field, _ int) string { return f.Name })
		payloads := args[1:]

		var (
			decoded atomic.Int64
			size    atomic.Uint64
		)
		results := make([]yaml.MapSlice, len(payloads))
		g, ctx := errgroup.WithContext(cmd.Context())
		if decodeJobs > 0 {
			g.SetLimit(decodeJobs)
		}
		for i, arg := range payloads {
			i, arg := i, arg
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				data, err := readPayload(arg)
				if err != nil {
					return errors.Wrapf(err, "payload %d", i+1)
				}
				value, err := ew.Parse(data, msg.Name)
				if err != nil {
					return errors.Wrapf(err, "payload %d", i+1)
				}
				results[i] = valueYAML(value, fieldNames)
				decoded.Inc()
				size.Add(uint64(len(data)))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			logger.MessageTypeField: msg.ShortName(),
			"decoded":               decoded.Load(),
			"size":                  datasize.ByteSize(size.Load()).HumanReadable(),
		}).Info("Decoded payloads")

		w := cmd.OutOrStdout()
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w, "---")
			}
			out, err := yaml.Marshal(r)
			if err != nil {
				return err
			}
			if _, err := w.Write(out); err != nil {
				return err
			}
		}
		return nil
	},
}
