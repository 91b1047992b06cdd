// Package config implements the YAML config file parser
package config

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/empowerchain/eventwire/config/logger"
	"github.com/empowerchain/eventwire/stream"
	"github.com/empowerchain/eventwire/wire"
)

// DefaultMaxMessageSize is the default largest stream frame
const DefaultMaxMessageSize = "4MB"

// Config is the config root object
type Config struct {
	Schema Schema        `yaml:"schema"`
	Wire   Wire          `yaml:"wire"`
	Stream Stream        `yaml:"stream"`
	Log    logger.Config `yaml:"log"`

	// Set to current version by main
	Version string `yaml:"-"`
}

// Schema lists extra .proto files to load next to the built in events
type Schema struct {
	ProtoDirs []string `yaml:"proto_dirs"` // Roots to resolve files and imports against
	Files     []string `yaml:"files"`
}

// Wire configures decoding
type Wire struct {
	StrictWireType     bool `yaml:"strict_wire_type"`
	TraceUnknownFields bool `yaml:"trace_unknown_fields"`
	SkipUTF8Validation bool `yaml:"skip_utf8_validation"`
}

// Stream configures event stream files
type Stream struct {
	Compress         bool   `yaml:"compress"`
	CompressionLevel int    `yaml:"compression_level"` // 0 picks the fastest level
	MaxMessageSize   string `yaml:"max_message_size"`  // Like "4MB"
}

// Check validates a Config instance
func (c Config) Check() error {
	if err := c.Log.Check(); err != nil {
		return err
	}
	for i, f := range c.Schema.Files {
		if f == "" {
			return fmt.Errorf("schema.files[%d]: empty path", i)
		}
	}
	if c.Stream.CompressionLevel < 0 || c.Stream.CompressionLevel > 9 {
		return fmt.Errorf("stream.compression_level: must be between 0 and 9")
	}
	if _, err := c.Stream.maxMessageSize(); err != nil {
		return fmt.Errorf("stream.max_message_size: %v", err)
	}
	return nil
}

// WireConfig returns the decoding options for the wire package
func (c Config) WireConfig() wire.Config {
	return wire.Config{
		StrictWireType:     c.Wire.StrictWireType,
		TraceUnknownFields: c.Wire.TraceUnknownFields,
		SkipUTF8Validation: c.Wire.SkipUTF8Validation,
	}
}

// StreamOptions returns the stream reader and writer options.
// The config must have passed Check.
func (c Config) StreamOptions() stream.Options {
	size, _ := c.Stream.maxMessageSize()
	return stream.Options{
		Compress:     c.Stream.Compress,
		Level:        c.Stream.CompressionLevel,
		MaxFrameSize: size,
	}
}

func (s Stream) maxMessageSize() (datasize.ByteSize, error) {
	if s.MaxMessageSize == "" {
		return stream.DefaultMaxFrameSize, nil
	}
	size, err := datasize.ParseString(s.MaxMessageSize)
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, fmt.Errorf("must be larger than zero")
	}
	return size, nil
}

// String returns the config as a YAML string
func (c Config) String() string {
	y, err := yaml.Marshal(c)
	if err != nil {
		logrus.Panicf("YAML marshal of config failed: %v", err) // Should never happen
	}
	return string(y)
}

// LoadYAML loads config from YAML. Any set value overwrites any existing value,
// but omitted keys are untouched.
func (c *Config) LoadYAML(yamlContents []byte, expandEnv bool) error {
	if expandEnv {
		yamlContents = []byte(os.ExpandEnv(string(yamlContents)))
	}
	return yaml.UnmarshalStrict(yamlContents, c)
}

// LoadYAMLFile loads config from a YAML file. Any set value overwrites any existing value,
// but omitted keys are untouched.
func (c *Config) LoadYAMLFile(fpath string, expandEnv bool) error {
	contents, err := os.ReadFile(fpath)
	if err != nil {
		return errors.Wrap(err, "open yaml file")
	}
	return c.LoadYAML(contents, expandEnv)
}

// Default returns a Config with default settings
func Default() Config {
	return Config{
		Stream: Stream{
			MaxMessageSize: DefaultMaxMessageSize,
		},
		Log: logger.DefaultConfig,
	}
}
