package store

import "path/filepath"

// Ancestors returns dir followed by each of its parents up to and including
// the filesystem root. The first element is dir exactly as given; parents
// come from filepath.Dir. A relative path stops at its top-most component
// rather than adding ".". The result is never empty.
//
// Paths are compared as strings, so values set or removed with a pwd of
// "/foo/bar/" are not seen from "/foo/bar" and vice versa.
func Ancestors(dir string) []string {
	chain := []string{dir}
	for current := dir; ; {
		parent := filepath.Dir(current)
		if parent == current || (parent == "." && !filepath.IsAbs(current)) {
			return chain
		}
		chain = append(chain, parent)
		current = parent
	}
}
