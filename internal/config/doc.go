// Package config defines the settings used by the carousel binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the server gRPC address, the optional deck file, the
// navigation policy, the settle window and the log level.
package config
