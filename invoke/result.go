package invoke

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// Result is a handler's structured output, translated back into an HTTP
// response. Headers are applied verbatim; Body is base64 when
// IsBase64Encoded is true and UTF-8 text otherwise.
type Result struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// BodyBytes returns the exact byte sequence the handler intended the client
// to receive. An absent body yields nil with no decode step; a body flagged
// base64 is decoded, anything else is taken as UTF-8 text.
func (result Result) BodyBytes() ([]byte, error) {
	if result.Body == "" {
		return nil, nil
	}

	if result.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(result.Body)
		if err != nil {
			return nil, errors.Wrap(err, "unable to decode result body")
		}

		return b, nil
	}

	return []byte(result.Body), nil
}
