package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerceToUint64 accepts the integer shapes that JSON, YAML and Go callers
// produce for a uint64 field (exponent/float forms only if integral).
func coerceToUint64(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case uint32:
		return uint64(t), nil
	case uint:
		return uint64(t), nil
	case int:
		if t < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", t)
		}
		return uint64(t), nil
	case int32:
		if t < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("negative value %d for unsigned field", t)
		}
		return uint64(t), nil
	case json.Number:
		return parseUint64String(t.String())
	case float64:
		return floatToUint64(t)
	case string:
		return parseUint64String(t)
	default:
		return 0, fmt.Errorf("expected unsigned-integer-like, got %T", v)
	}
}

func parseUint64String(s string) (uint64, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return floatToUint64(f)
	}
	return strconv.ParseUint(s, 10, 64)
}

// floatToUint64 only accepts integral values that survive the conversion;
// float64 loses precision above 2^53, so larger values must arrive as
// strings or integers.
func floatToUint64(f float64) (uint64, error) {
	if f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integer numeric for unsigned field")
	}
	if f > 1<<53 {
		return 0, fmt.Errorf("numeric %g exceeds float precision, pass it as a string", f)
	}
	return uint64(f), nil
}

// coerceToString accepts a string value
func coerceToString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// coerceToBytes accepts []byte or a string holding the raw bytes
func coerceToBytes(v interface{}) ([]byte, error) {
	switch t := v.(type) {
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	default:
		return nil, fmt.Errorf("expected bytes, got %T", v)
	}
}

// coerceToStringSlice accepts []string or a []interface{} of strings.
// The result is always a fresh slice.
func coerceToStringSlice(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []interface{}:
		out := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, wrapEncodingFieldError(fmt.Errorf("expected string, got %T", e), strconv.Itoa(i))
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("repeated field value must be a slice, got %T", v)
	}
}
