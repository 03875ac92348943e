// Package gatewayproxy runs unmodified aws-lambda-go API Gateway proxy
// handlers against the local emulator. Wrap converts a normalized
// invoke.Event into an events.APIGatewayProxyRequest, injects a synthetic
// lambdacontext the way the managed runtime does, and converts the handler's
// events.APIGatewayProxyResponse back into an invoke.Result.
//
// This lets a handler destined for an api gateway integration be exercised
// over plain local HTTP with no code changes.
package gatewayproxy
