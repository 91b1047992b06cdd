package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empowerchain/eventwire/config/logger"
	"github.com/empowerchain/eventwire/wire"
)

const testConfig = `
schema:
  proto_dirs: [ "${EVENTWIRE_TEST_PROTO_DIR}" ]
  files:
    - burn.proto
wire:
  strict_wire_type: true
stream:
  compress: true
  compression_level: 6
  max_message_size: 512KB
log:
  level: debug
`

func TestConfig_LoadYAML(t *testing.T) {
	t.Setenv("EVENTWIRE_TEST_PROTO_DIR", "/srv/proto")

	c := Default()
	require.NoError(t, c.LoadYAML([]byte(testConfig), true))
	require.NoError(t, c.Check())

	assert.Equal(t, []string{"/srv/proto"}, c.Schema.ProtoDirs)
	assert.Equal(t, []string{"burn.proto"}, c.Schema.Files)
	assert.Equal(t, wire.Config{StrictWireType: true}, c.WireConfig())

	opts := c.StreamOptions()
	assert.True(t, opts.Compress)
	assert.Equal(t, 6, opts.Level)
	assert.Equal(t, 512*datasize.KB, opts.MaxFrameSize)

	// omitted keys keep their defaults
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, logger.DefaultConfig.Format, c.Log.Format)
}

func TestConfig_LoadYAML_NoExpand(t *testing.T) {
	c := Default()
	require.NoError(t, c.LoadYAML([]byte(testConfig), false))
	assert.Equal(t, []string{"${EVENTWIRE_TEST_PROTO_DIR}"}, c.Schema.ProtoDirs)
}

func TestConfig_LoadYAML_UnknownKey(t *testing.T) {
	c := Default()
	assert.Error(t, c.LoadYAML([]byte("wire:\n  strict: true\n"), false))
}

func TestConfig_LoadYAMLFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "eventwire.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("stream:\n  compress: true\n"), 0o644))

	c := Default()
	require.NoError(t, c.LoadYAMLFile(fpath, true))
	assert.True(t, c.Stream.Compress)

	err := c.LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open yaml file")
}

func TestConfig_Check(t *testing.T) {
	c := Default()
	require.NoError(t, c.Check())
	assert.Equal(t, 4*datasize.MB, c.StreamOptions().MaxFrameSize)

	tests := []struct {
		name   string
		modify func(c *Config)
		err    string
	}{
		{"log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"empty file", func(c *Config) { c.Schema.Files = []string{"a.proto", ""} }, "schema.files[1]"},
		{"compression level", func(c *Config) { c.Stream.CompressionLevel = 10 }, "stream.compression_level"},
		{"bad size", func(c *Config) { c.Stream.MaxMessageSize = "lots" }, "stream.max_message_size"},
		{"zero size", func(c *Config) { c.Stream.MaxMessageSize = "0B" }, "stream.max_message_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			err := c.Check()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestConfig_String(t *testing.T) {
	c := Default()
	c.Version = "v1.2.3"
	s := c.String()
	assert.Contains(t, s, "max_message_size: 4MB")
	assert.NotContains(t, s, "v1.2.3")

	// the dump is a valid config file
	back := Default()
	require.NoError(t, back.LoadYAML([]byte(s), false))
	require.NoError(t, back.Check())
	assert.Equal(t, c.Stream, back.Stream)
	assert.Equal(t, c.Log, back.Log)
}
