package config

import "errors"

var (
	// ErrUsage is returned when the positional arguments do not form a
	// valid operation. The wrapped message names the expected and actual
	// argument counts.
	ErrUsage = errors.New("invalid usage")

	// ErrMissingHome is returned when no store path was supplied and the
	// home directory cannot be determined from the environment.
	ErrMissingHome = errors.New("unable to find HOME")

	// ErrWorkingDir is returned when no working directory was supplied and
	// the current directory of the process cannot be queried.
	ErrWorkingDir = errors.New("unable to get current directory")

	// ErrInvalidConfig is returned when the resolved configuration fails
	// struct validation.
	ErrInvalidConfig = errors.New("validation failed")
)
