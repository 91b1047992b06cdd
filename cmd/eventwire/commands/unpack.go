package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/empowerchain/eventwire/schema"
	"github.com/empowerchain/eventwire/stream"
)

var (
	unpackCompress    bool
	unpackSkipUnknown bool
)

func init() {
	rootCmd.AddCommand(unpackCmd)
	unpackCmd.Flags().BoolVarP(&unpackCompress, "compress", "z", false, "The stream is gzipped (also set by stream.compress)")
	unpackCmd.Flags().BoolVar(&unpackSkipUnknown, "skip-unknown", false, "Skip frames of unknown message types instead of failing")
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <file>",
	Short: "Print the events of an event stream file as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open stream file")
		}
		defer f.Close()

		opts := conf.StreamOptions()
		opts.Compress = opts.Compress || unpackCompress
		r, err := stream.NewReader(f, opts)
		if err != nil {
			return errors.Wrap(err, "open stream")
		}
		defer r.Close()

		out := cmd.OutOrStdout()
		printed, skipped := 0, 0
		for {
			env, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return errors.Wrapf(err, "frame %d", r.Stats().Frames+1)
			}

			msg, err := ew.Describe(env.TypeURL)
			if err != nil {
				if unpackSkipUnknown {
					logrus.WithField("type_url", env.TypeURL).Warn("Skipping unknown message type")
					skipped++
					continue
				}
				return errors.Wrapf(stream.ErrUnknownType, "frame %d: %s", r.Stats().Frames, env.TypeURL)
			}
			value, err := ew.Parse(env.Value, msg.Name)
			if err != nil {
				return errors.Wrapf(err, "frame %d", r.Stats().Frames)
			}

			fieldNames := lo.Map(msg.SortedFields(), func(f *schema.Field, _ int) string { return f.Name })
			doc := yaml.MapSlice{
				{Key: "type", Value: strings.TrimPrefix(env.TypeURL, "/")},
				{Key: "value", Value: valueYAML(value, fieldNames)},
			}
			b, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}
			if printed > 0 {
				fmt.Fprintln(out, "---")
			}
			if _, err := out.Write(b); err != nil {
				return err
			}
			printed++
		}

		stats := r.Stats()
		logrus.WithFields(logrus.Fields{
			"file":    args[0],
			"frames":  stats.Frames,
			"skipped": skipped,
			"size":    stats.Bytes.HumanReadable(),
		}).Info("Unpacked events")
		return nil
	},
}
