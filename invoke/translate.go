package invoke

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// BinaryTypeSet builds the content-type lookup set used to decide whether a
// request body is treated as binary. A configured override fully replaces any
// defaults; the two are never merged.
func BinaryTypeSet(types []string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))

	for _, t := range types {
		set[t] = struct{}{}
	}

	return set
}

// NewEvent translates a completed HTTP request into a normalized Event.
//
// The query string is flattened the way the managed platform documents it:
// repeated keys collapse into a single comma-joined value in arrival order.
// Binary-ness is decided by exact equality of the Content-Type header value
// against binaryTypes; a "image/png; charset=binary" value does not match a
// configured "image/png". Binary bodies are base64 encoded, everything else
// is taken as UTF-8 text.
//
// The requestContext template is deep-copied per request and stamped with a
// fresh requestId, so handler-side mutation never leaks into another
// invocation.
//
// Translation is total: it never fails, and absent headers or query strings
// become empty maps.
func NewEvent(r *http.Request, pathParams map[string]string, body []byte, binaryTypes map[string]struct{}, template map[string]interface{}) Event {
	method := strings.ToUpper(r.Method)

	event := Event{
		Path:                  r.URL.Path,
		Method:                method,
		HTTPMethod:            method,
		Headers:               flattenHeaders(r.Header),
		MultiValueHeaders:     copyHeaders(r.Header),
		QueryStringParameters: flattenQuery(r.URL.Query()),
		PathParameters:        pathParams,
		RequestContext:        copyRequestContext(template),
	}

	if event.PathParameters == nil {
		event.PathParameters = map[string]string{}
	}

	if _, binary := binaryTypes[r.Header.Get("Content-Type")]; binary {
		event.Body = base64.StdEncoding.EncodeToString(body)
		event.IsBase64Encoded = true
	} else {
		event.Body = string(body)
	}

	return event
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))

	for name, values := range header {
		flat[name] = strings.Join(values, ",")
	}

	return flat
}

func copyHeaders(header http.Header) map[string][]string {
	multi := make(map[string][]string, len(header))

	for name, values := range header {
		multi[name] = append([]string(nil), values...)
	}

	return multi
}

func flattenQuery(query map[string][]string) map[string]string {
	flat := make(map[string]string, len(query))

	for name, values := range query {
		flat[name] = strings.Join(values, ",")
	}

	return flat
}

// copyRequestContext produces a structural clone of the template via a JSON
// round trip and stamps it with a per-request id. The clone shares no
// references with the template; a template that cannot round-trip through
// JSON yields a fresh empty context rather than a failure.
func copyRequestContext(template map[string]interface{}) map[string]interface{} {
	clone := map[string]interface{}{}

	if len(template) > 0 {
		if b, err := json.Marshal(template); err == nil {
			_ = json.Unmarshal(b, &clone)
		}
	}

	clone["requestId"] = uuid.New().String()

	return clone
}
