// Package config turns command-line input and the process environment into a
// fully resolved, validated Config. It owns the Operation type parsed from
// positional arguments and decides where the store file lives and which
// directory lookups are scoped to.
package config
