package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMultiFieldToken(t *testing.T) {
	// Test with simple fields
	fields := []string{"field1", "field2", "field3"}
	token := EncodeMultiFieldToken(fields...)

	decodedFields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decodedFields, "Fields should match after decode")

	// Test with empty fields
	emptyToken := EncodeMultiFieldToken()
	decodedEmpty, err := DecodeMultiFieldToken(emptyToken)
	assert.NoError(t, err, "Decoding should not return an error")
	// When splitting an empty string with strings.Split, we get a slice with one empty string
	assert.Equal(t, []string{""}, decodedEmpty, "Should decode to slice with one empty string")

	// Test with special characters
	specialFields := []string{"field|with|pipes", "field with spaces", "field\nwith\nnewlines"}
	specialToken := EncodeMultiFieldToken(specialFields...)

	decodedSpecial, err := DecodeMultiFieldToken(specialToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Len(t, decodedSpecial, 5, "Should split on all pipe characters")

	// Test fields with timestamps
	timestampStr := time.Now().UTC().Format(time.RFC3339Nano)
	timeToken := EncodeMultiFieldToken("account123", timestampStr)

	decodedTime, err := DecodeMultiFieldToken(timeToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, 2, len(decodedTime), "Should have decoded 2 fields")
	assert.Equal(t, "account123", decodedTime[0], "First field should match")
	assert.Equal(t, timestampStr, decodedTime[1], "Timestamp field should match")
}

func TestDecodeMultiFieldTokenError(t *testing.T) {
	_, err := DecodeMultiFieldToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")
}
