// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// The gRPC server also exposes the standard grpc.health.v1 service.
package server
