package gatewayproxy

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// MetaData describes the emulated runtime for the current invocation. The
// function-level fields come from the lambdacontext package globals, which
// the emulator leaves at their local defaults unless the surrounding process
// sets the usual environment variables.
type MetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext
}

// GetMetaData returns MetaData extracted from the current invocation context.
func GetMetaData(ctx context.Context) MetaData {
	md := MetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	md.Context, _ = lambdacontext.FromContext(ctx)
	return md
}
