// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with timeouts and the
// RemoteState view of the wire struct returned by the carousel server.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
