package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decoding errors. All of them are terminal for the decode call that
// returned them.
var (
	// ErrMalformedVarint is returned when a varint overflows 64 bits or
	// carries more than ten 7-bit groups.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrUnexpectedEOF is returned when the buffer ends in the middle of a
	// tag or varint payload.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")
	// ErrTruncatedMessage is returned when a length prefix points past the
	// current read limit.
	ErrTruncatedMessage = errors.New("truncated message")
	ErrInvalidUTF8      = errors.New("string field contains invalid UTF-8")
	ErrInvalidWireType  = errors.New("invalid wire type")
	ErrInvalidFieldNum  = errors.New("invalid field number")
	// ErrWireTypeMismatch is only returned when Config.StrictWireType is set.
	ErrWireTypeMismatch = errors.New("wire type does not match field kind")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath  []string // e.g., ["metadata_uris", "2"]
	Err        error    // underlying error
	IsDecoding bool     // true when raised while decoding
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	op := "encoding"
	if e.IsDecoding {
		op = "decoding"
	}
	return fmt.Sprintf("%s error at proto path %s: %v", op, strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// newFieldError creates a FieldError without a path yet
func newFieldError(format string, args ...interface{}) error {
	return &FieldError{Err: fmt.Errorf(format, args...)}
}

// wrapEncodingFieldError prefixes the error path with a field name
func wrapEncodingFieldError(err error, fieldName string) error {
	return wrapWithField(err, fieldName, false)
}

// wrapDecodingFieldError prefixes the error path with a field name and marks
// the error as a decoding error
func wrapDecodingFieldError(err error, fieldName string) error {
	return wrapWithField(err, fieldName, true)
}

func wrapWithField(err error, fieldName string, decoding bool) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath:  append([]string{fieldName}, fe.FieldPath...),
			Err:        fe.Err,
			IsDecoding: decoding || fe.IsDecoding,
		}
	}

	return &FieldError{
		FieldPath:  []string{fieldName},
		Err:        err,
		IsDecoding: decoding,
	}
}

// WrapFieldError prefixes the error path with a field name. Typed bindings
// outside this package report field failures through it.
func WrapFieldError(err error, fieldName string, decoding bool) error {
	return wrapWithField(err, fieldName, decoding)
}
