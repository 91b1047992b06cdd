package wire

import (
	"os"
)

// Config controls optional decoding behaviors.
// The zero value is the default: UTF-8 validated, mismatched wire types
// skipped like unknown fields, no tracing.
type Config struct {
	// StrictWireType: when true, a declared field that arrives with a wire
	// type different from its kind fails the decode with ErrWireTypeMismatch.
	// When false (default) such a field is skipped as if it were unknown.
	StrictWireType bool

	// TraceUnknownFields: when true, every skipped unknown field is logged at
	// debug level.
	TraceUnknownFields bool

	// SkipUTF8Validation: when true, string payloads are not checked for
	// valid UTF-8. Only meant for inputs that were validated upstream.
	SkipUTF8Validation bool
}

var config = Config{}

// SetConfig sets the package wire configuration. Decoders created before the
// call keep the configuration they were created with.
func SetConfig(c Config) { config = c }

// GetConfig returns the package wire configuration.
func GetConfig() Config { return config }

func init() {
	// Optional env toggles for test harnesses; default remains unchanged if unset.
	if v := os.Getenv("EVENTWIRE_STRICT_WIRE"); v == "1" || v == "true" {
		config.StrictWireType = true
	}
	if v := os.Getenv("EVENTWIRE_TRACE_UNKNOWN"); v == "1" || v == "true" {
		config.TraceUnknownFields = true
	}
	if v := os.Getenv("EVENTWIRE_SKIP_UTF8"); v == "1" || v == "true" {
		config.SkipUTF8Validation = true
	}
}
