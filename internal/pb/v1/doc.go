// Package v1 holds the gRPC contract of the carousel service.
//
// Messages are protobuf well-known types (Empty, Int64Value, Struct,
// ListValue), so the service descriptor and stubs below are maintained by
// hand in the shape protoc-gen-go-grpc produces. Field names of the state
// and slide structs are listed as constants so both ends agree on them.
package v1
