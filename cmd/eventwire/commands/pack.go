package commands

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/empowerchain/eventwire/events"
	"github.com/empowerchain/eventwire/stream"
)

var packCompress bool

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().BoolVarP(&packCompress, "compress", "z", false, "Gzip the stream (also set by stream.compress)")
}

type packItem struct {
	typeName string
	fpath    string
}

func parsePackItem(arg string) (packItem, error) {
	typeName, fpath, ok := strings.Cut(arg, "=")
	if !ok || typeName == "" || fpath == "" {
		return packItem{}, errors.Errorf("expected <type>=<file>, got %q", arg)
	}
	return packItem{typeName: typeName, fpath: fpath}, nil
}

var packCmd = &cobra.Command{
	Use:   "pack <out> <type>=<file>...",
	Short: "Write YAML or JSON messages to an event stream file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		items := make([]packItem, 0, len(args)-1)
		for _, arg := range args[1:] {
			item, err := parsePackItem(arg)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return errors.Wrap(err, "create stream file")
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()

		opts := conf.StreamOptions()
		opts.Compress = opts.Compress || packCompress
		w, err := stream.NewWriter(f, opts)
		if err != nil {
			return err
		}
		for _, item := range items {
			msg, err := ew.Describe(item.typeName)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, item.fpath)
			if err != nil {
				return err
			}
			partial, err := parsePartial(data)
			if err != nil {
				return errors.Wrap(err, item.fpath)
			}
			full, err := ew.Merge(partial, msg.Name)
			if err != nil {
				return errors.Wrap(err, item.fpath)
			}
			value, err := ew.Marshal(full, msg.Name)
			if err != nil {
				return errors.Wrap(err, item.fpath)
			}
			env := &stream.Envelope{TypeURL: events.TypeURL(msg.Name), Value: value}
			if err := w.WriteEnvelope(env); err != nil {
				return errors.Wrap(err, item.fpath)
			}
		}
		if err := w.Close(); err != nil {
			return err
		}

		stats := w.Stats()
		logrus.WithFields(logrus.Fields{
			"file":       args[0],
			"frames":     stats.Frames,
			"size":       stats.Bytes.HumanReadable(),
			"compressed": opts.Compress,
		}).Info("Packed events")
		return nil
	},
}
