// Package queue builds queue-computation requests and hands them to the
// computation network.
//
// Submit resolves the target instruction by comp-def offset, checks the
// arguments against its parameters and only then encodes and dispatches the
// request. The wire layout is little endian with u32 length prefixes;
// each argument is a one-byte tag equal to its computation.ArgKind
// followed by its payload.
//
// No network client ships with this package. Supply a Dispatcher that
// signs and sends the payload, or use a Recorder for dry runs.
package queue
