package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/empowerchain/eventwire"
	"github.com/empowerchain/eventwire/config"
	"github.com/empowerchain/eventwire/config/logger"
	"github.com/empowerchain/eventwire/wire"
)

var (
	configFile string
	protoDirs  []string
	protoFiles []string
	debug      bool
	logConfig  bool
	conf       config.Config
	ew         *eventwire.EventWire
)

var rootHelp = `This tool encodes, decodes and streams plasticcredit events
using their protobuf wire format.

Extra message types can be loaded from .proto files with --proto.
`

var rootCmd = &cobra.Command{
	Use:   "eventwire",
	Short: "Encode and decode plasticcredit events",
	Long:  rootHelp,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf = config.Default()
		conf.Version = version
		if configFile != "" {
			if err := conf.LoadYAMLFile(configFile, true); err != nil {
				return errors.Wrapf(err, "load config file %q", configFile)
			}
		}
		conf.Schema.ProtoDirs = append(conf.Schema.ProtoDirs, protoDirs...)
		conf.Schema.Files = append(conf.Schema.Files, protoFiles...)
		// A config must always be valid, even if flags override some items
		if err := conf.Check(); err != nil {
			return errors.Wrap(err, "config error")
		}

		conf.Log = conf.Log.Merge(logger.FlagConfig)
		if debug {
			conf.Log.Level = "debug"
		}
		logger.Configure(conf.Log)
		logrus.WithField("version", version).Debug("Running")
		if logConfig {
			logrus.Infof("Effective configuration:\n%s\n", conf.String())
		}

		wire.SetConfig(conf.WireConfig())
		ew = eventwire.New(conf.Schema.ProtoDirs)
		ew.SetConfig(conf.WireConfig())
		for _, f := range conf.Schema.Files {
			if err := ew.LoadSchemaFromFile(f); err != nil {
				return errors.Wrapf(err, "load schema %s", f)
			}
			logrus.WithField("file", f).Debug("Loaded schema")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	SilenceUsage: true,
	Version:      version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file")
	rootCmd.PersistentFlags().StringSliceVarP(&protoDirs, "proto-dir", "I", nil, "Directory to resolve .proto files and imports against (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&protoFiles, "proto", nil, "Extra .proto file to load (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&logConfig, "log-config", false, "Log the evaluated configuration on startup")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	logger.RegisterFlagsWith(rootCmd.PersistentFlags().StringVar)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Error")
		os.Exit(1)
	}
}
