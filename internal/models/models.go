package models

import "sort"

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Document holds a single parsed JSON document.
type Document struct {
	Root JSONValue
}

// PathSet is a set of key paths collected from a JSON document.
// A key path addresses a node with dot-separated object keys and
// bracketed array indices, e.g. "root.child[2].leaf".
type PathSet map[string]struct{}

// NewPathSet creates a PathSet containing the given paths.
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts a path into the set.
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether the set holds the given path.
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the paths in lexicographic order.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Comparison holds the two one-sided differences between a base path set
// and a comparison path set. Both slices are lexicographically sorted.
type Comparison struct {
	// OnlyInBase lists paths present in the base document but missing
	// from the comparison document.
	OnlyInBase []string
	// OnlyInCmp lists paths present in the comparison document but
	// missing from the base document.
	OnlyInCmp []string
}

// Empty reports whether the two documents had identical path sets.
func (c Comparison) Empty() bool {
	return len(c.OnlyInBase) == 0 && len(c.OnlyInCmp) == 0
}
