// Package store implements the path-scoped key-value store behind projector.
//
// Values are attached to directory paths. Lookups walk from the working
// directory up to the filesystem root, so a value set on a deeper path
// overrides the same key set on any of its ancestors. The whole dataset lives
// in a single JSON file that is read once on Load and rewritten in full on
// Save.
package store
