/*
Package rpcserver implements the gRPC RPC Surface (spec component 4.E):
an insecure grpc.Server exposing the five EventStore RPCs, wrapping a
topic.Engine and a subscribe.Multiplexer and translating their errors
into grpc status codes.

Subscribe is the one streaming call; its handler derives the caller's
peer identity from the connection (falling back to a generated
consumer name when none is available), runs the multiplexer's follow
loop inline on the call's own goroutine, and relies on the stream's
context being cancelled on client disconnect to unwind that loop.

A small net/http mux alongside the gRPC listener answers /health and
/ready for container orchestrators that expect a plain HTTP probe
rather than a gRPC health check.
*/
package rpcserver
