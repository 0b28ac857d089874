// Package cli is responsible for parsing command-line flags and handling
// process-level concerns like exit codes. Positional arguments are passed
// through untouched for the config package to interpret.
package cli
