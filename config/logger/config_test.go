package logger

import (
	"flag"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Check(t *testing.T) {
	assert.NoError(t, DefaultConfig.Check())

	tests := []struct {
		name string
		c    Config
		err  string
	}{
		{"level", Config{Level: "loud", Format: "human"}, "log.level"},
		{"format", Config{Level: "info", Format: "xml"}, "log.format"},
		{"timestamp", Config{Level: "info", Format: "json", Timestamp: "iso"}, "log.timestamp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Check()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}

	// timestamp may be left out
	assert.NoError(t, Config{Level: "debug", Format: "logfmt"}.Check())
}

func TestConfig_Merge(t *testing.T) {
	c := DefaultConfig.Merge(Config{Level: "debug"})
	assert.Equal(t, Config{Level: "debug", Format: "human", Timestamp: "short"}, c)
	assert.Equal(t, DefaultConfig, DefaultConfig.Merge(Config{}))
}

func TestConfig_Formatter(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, Config{Format: "json"}.Formatter())
	assert.IsType(t, &logrus.TextFormatter{}, Config{Format: "logfmt"}.Formatter())
	assert.IsType(t, &MessageTypeFormatter{}, Config{Format: "human"}.Formatter())

	f := Config{Format: "json", Timestamp: "disable"}.Formatter().(*logrus.JSONFormatter)
	assert.True(t, f.DisableTimestamp)
}

func TestRegisterFlagsWith(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlagsWith(fs.StringVar)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--log-format", "json"}))
	assert.Equal(t, Config{Level: "debug", Format: "json"}, FlagConfig)
	FlagConfig = Config{}
}

func TestMessageTypeFormatter(t *testing.T) {
	f := &MessageTypeFormatter{Parent: &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}}

	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		MessageTypeField: "EventIssuedCredits",
		"size":           14,
	})
	entry.Message = "decoded"
	fields := entry.Data
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[EventIssuedCredits")
	assert.Contains(t, string(out), "] decoded")
	// the type only shows up in the prefix
	assert.NotContains(t, string(out), "message=")
	assert.Contains(t, string(out), "size=14")
	assert.Contains(t, fields, MessageTypeField)

	plain := logrus.NewEntry(logrus.New())
	plain.Message = "no prefix"
	out, err = f.Format(plain)
	require.NoError(t, err)
	assert.Contains(t, string(out), `msg="no prefix"`)
}
