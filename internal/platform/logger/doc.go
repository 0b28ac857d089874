// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Logs are written to stderr so that stdout carries only
// command output.
package logger
