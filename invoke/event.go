package invoke

import (
	"context"
	"encoding/base64"

	"github.com/pkg/errors"
)

// Event is the normalized representation of an inbound HTTP request handed to
// a handler. The JSON field names match the managed platform's wire shape so
// a marshalled Event is indistinguishable from a platform-delivered one.
//
// Method and HTTPMethod always carry the same uppercase verb; the platform
// historically exposed both names and handlers in the wild read either.
type Event struct {
	Path                  string                 `json:"path"`
	Method                string                 `json:"method"`
	HTTPMethod            string                 `json:"httpMethod"`
	Headers               map[string]string      `json:"headers"`
	MultiValueHeaders     map[string][]string    `json:"multiValueHeaders,omitempty"`
	QueryStringParameters map[string]string      `json:"queryStringParameters"`
	PathParameters        map[string]string      `json:"pathParameters"`
	Body                  string                 `json:"body"`
	IsBase64Encoded       bool                   `json:"isBase64Encoded"`
	RequestContext        map[string]interface{} `json:"requestContext"`
}

// DecodedBody returns the raw body bytes, base64-decoding them when the event
// is flagged as binary.
func (event Event) DecodedBody() ([]byte, error) {
	if event.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decode body for %s %s", event.Method, event.Path)
		}

		return b, nil
	}

	return []byte(event.Body), nil
}

// Handler is the capability invoked once per completed request. The supplied
// context carries the caller's invocation context (see FromContext) in
// addition to the request-scoped cancellation from the HTTP server.
type Handler func(ctx context.Context, event Event) (Result, error)

type contextKey struct{}

// NewContext returns a context carrying the caller-supplied invocation
// context value. The value is shared, unmodified, across every invocation for
// the lifetime of the emulator instance.
func NewContext(parent context.Context, ictx interface{}) context.Context {
	return context.WithValue(parent, contextKey{}, ictx)
}

// FromContext extracts the invocation context previously stored with
// NewContext. ok is false if none was set.
func FromContext(ctx context.Context) (interface{}, bool) {
	ictx := ctx.Value(contextKey{})
	return ictx, ictx != nil
}
