package gatewayproxy

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"

	"github.com/prognoshealth/localinvoke/invoke"
)

// localFunctionARN is the invoked-function arn reported to handlers running
// under the emulator.
const localFunctionARN = "arn:aws:lambda:local:000000000000:function:localinvoke"

// ProxyHandler is the aws-lambda-go handler signature for api gateway proxy
// integrations.
type ProxyHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Wrap adapts an api gateway proxy handler into the emulator's handler
// capability. The handler receives a lambdacontext carrying the per-request
// id, exactly as it would on the managed platform.
func Wrap(handler ProxyHandler) invoke.Handler {
	return func(ctx context.Context, event invoke.Event) (invoke.Result, error) {
		request := GatewayRequest(event)

		lctx := &lambdacontext.LambdaContext{
			AwsRequestID:       request.RequestContext.RequestID,
			InvokedFunctionArn: localFunctionARN,
		}

		response, err := handler(lambdacontext.NewContext(ctx, lctx), request)
		if err != nil {
			return invoke.Result{}, errors.Wrap(err, "gateway handler failed")
		}

		return gatewayResult(response), nil
	}
}

// GatewayRequest converts a normalized event into the api gateway proxy
// request shape. The opaque requestContext mapping is re-marshalled into the
// typed request context, so template fields like stage or identity carry
// through when they use the documented wire names.
func GatewayRequest(event invoke.Event) events.APIGatewayProxyRequest {
	request := events.APIGatewayProxyRequest{
		Path:                  event.Path,
		HTTPMethod:            event.HTTPMethod,
		Headers:               event.Headers,
		MultiValueHeaders:     event.MultiValueHeaders,
		QueryStringParameters: event.QueryStringParameters,
		PathParameters:        event.PathParameters,
		Body:                  event.Body,
		IsBase64Encoded:       event.IsBase64Encoded,
	}

	if len(event.RequestContext) > 0 {
		if b, err := json.Marshal(event.RequestContext); err == nil {
			_ = json.Unmarshal(b, &request.RequestContext)
		}
	}

	return request
}

// gatewayResult converts an api gateway proxy response into the emulator's
// result shape. Multi-value response headers are flattened the same way the
// platform serializes them, with later values joined by commas; single-value
// headers win on conflict.
func gatewayResult(response events.APIGatewayProxyResponse) invoke.Result {
	result := invoke.Result{
		StatusCode:      response.StatusCode,
		Headers:         response.Headers,
		Body:            response.Body,
		IsBase64Encoded: response.IsBase64Encoded,
	}

	if len(response.MultiValueHeaders) > 0 {
		headers := make(map[string]string, len(response.MultiValueHeaders)+len(response.Headers))

		for name, values := range response.MultiValueHeaders {
			headers[name] = strings.Join(values, ",")
		}

		for name, value := range response.Headers {
			headers[name] = value
		}

		result.Headers = headers
	}

	return result
}
