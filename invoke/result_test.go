package invoke

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_BodyBytes(t *testing.T) {
	result := Result{StatusCode: 200, Body: "hey dude!"}

	b, err := result.BodyBytes()

	assert.NoError(t, err)
	assert.Equal(t, []byte("hey dude!"), b)
}

func TestResult_BodyBytes_encoded(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47}

	result := Result{
		StatusCode:      200,
		Body:            base64.StdEncoding.EncodeToString(payload),
		IsBase64Encoded: true,
	}

	b, err := result.BodyBytes()

	assert.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestResult_BodyBytes_absent(t *testing.T) {
	// An absent body skips the decode step entirely, even when the encoding
	// flag is set.
	result := Result{StatusCode: 204, IsBase64Encoded: true}

	b, err := result.BodyBytes()

	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestResult_BodyBytes_error(t *testing.T) {
	result := Result{StatusCode: 200, Body: "not!valid!base64!", IsBase64Encoded: true}

	_, err := result.BodyBytes()

	assert.Error(t, err)
}
