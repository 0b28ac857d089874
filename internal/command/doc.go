// Package command executes a resolved Operation against a store and renders
// its result. Print operations write to the configured output; mutating
// operations persist the store before returning.
package command
