package wire

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError(t *testing.T) {
	tests := []struct {
		name          string
		buildError    func() error
		expectedPath  string
		expectedMsg   string
		containsWords []string
	}{
		{
			name: "single field error",
			buildError: func() error {
				baseErr := newFieldError("expected unsigned-integer-like, got bool")
				return wrapEncodingFieldError(baseErr, "issuer_id")
			},
			expectedPath: "issuer_id",
			expectedMsg:  "expected unsigned-integer-like, got bool",
		},
		{
			name: "repeated element error",
			buildError: func() error {
				baseErr := newFieldError("expected string, got int")
				err := wrapEncodingFieldError(baseErr, "2")
				return wrapEncodingFieldError(err, "metadata_uris")
			},
			expectedPath: "metadata_uris.2",
			expectedMsg:  "expected string, got int",
			containsWords: []string{
				"encoding error",
				"metadata_uris.2",
			},
		},
		{
			name: "error without FieldError base",
			buildError: func() error {
				return wrapEncodingFieldError(errors.New("boom"), "name")
			},
			expectedPath: "name",
			expectedMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buildError()

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.expectedPath, strings.Join(fieldErr.FieldPath, "."))

			errMsg := err.Error()
			assert.Contains(t, errMsg, tt.expectedPath)
			assert.Contains(t, errMsg, tt.expectedMsg)
			for _, word := range tt.containsWords {
				assert.Contains(t, errMsg, word)
			}
			// The path must appear once, not once per wrap level
			assert.Equal(t, 1, strings.Count(errMsg, tt.expectedPath))
		})
	}
}

func TestFieldError_Decoding(t *testing.T) {
	err := wrapDecodingFieldError(ErrInvalidUTF8, "denom")

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.True(t, fieldErr.IsDecoding)
	assert.Equal(t, "decoding error at proto path denom: string field contains invalid UTF-8", err.Error())

	// The sentinel stays reachable through the wrapper
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.ErrorIs(t, err, &FieldError{})
}

func TestFieldError_Nil(t *testing.T) {
	assert.NoError(t, wrapEncodingFieldError(nil, "name"))
	assert.NoError(t, wrapDecodingFieldError(nil, "name"))
}

func TestFieldError_NoPath(t *testing.T) {
	err := newFieldError("unsupported field type: %s", "double")
	assert.Equal(t, "unsupported field type: double", err.Error())
}

func TestTruncatedVarintMatchesBothSentinels(t *testing.T) {
	_, _, err := DecodeVarint([]byte{0x80})
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.ErrorIs(t, err, ErrMalformedVarint)
	assert.NotErrorIs(t, err, ErrTruncatedMessage)
}
