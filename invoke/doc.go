// Package invoke defines the normalized invocation event and result types an
// invoke-on-event handler consumes and produces, along with the translation
// between those types and raw HTTP traffic. Specifically it converts an
// inbound HTTP request into an Event mirroring what the managed platform
// would deliver, and converts a handler's Result back into wire-level
// response instructions.
//
// Translation is deterministic and side-effect free; it never fails for a
// valid HTTP request. Missing headers or query strings become empty maps.
package invoke
