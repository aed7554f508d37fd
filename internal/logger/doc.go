// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - a writer-backed variant used when the terminal is busy drawing slides,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level configuration and parsing utilities,
//   - convenience functions (Info, InfoKV, WarnKV, etc.).
//
// All services accept a context and extract the logger from it, enabling
// scoped, structured logging throughout the codebase.
package logger
