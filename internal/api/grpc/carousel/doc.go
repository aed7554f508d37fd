// Package carousel implements the gRPC transport for the carousel service.
//
// It adapts domain snapshots to protobuf Struct messages and exposes a server
// that calls into a provided business-service interface.
package carousel
