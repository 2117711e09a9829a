// Package keypath collects the key paths present in a JSON value and
// computes the one-sided differences between two collections.
package keypath

import (
	"sort"
	"strconv"

	"github.com/dlcarv/keycomp/internal/models"
)

// Collect returns the set of all key paths reachable within v.
//
// Every object key and every array index at every depth contributes
// exactly one entry: "a.b" for object members, "a[0]" for array
// elements, with a bare "[0]" for elements of a root-level array.
// Scalars add nothing beyond the path that reaches them.
func Collect(v models.JSONValue) models.PathSet {
	set := make(models.PathSet)
	collect(v, "", set)
	return set
}

func collect(v models.JSONValue, prefix string, set models.PathSet) {
	switch node := v.(type) {
	case models.JSONObject:
		for key, child := range node {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			set.Add(path)
			collect(child, path, set)
		}
	case models.JSONArray:
		for i, item := range node {
			path := prefix + "[" + strconv.Itoa(i) + "]"
			set.Add(path)
			collect(item, path, set)
		}
	}
	// Scalars: the path to reach the value was already added by the parent.
}

// Compare computes the pure set differences between a base path set and a
// comparison path set. Both result slices are lexicographically sorted.
// No root normalization happens here; callers that want legacy roots
// unified must map the sets first.
func Compare(base, cmp models.PathSet) models.Comparison {
	var result models.Comparison
	for path := range base {
		if !cmp.Contains(path) {
			result.OnlyInBase = append(result.OnlyInBase, path)
		}
	}
	for path := range cmp {
		if !base.Contains(path) {
			result.OnlyInCmp = append(result.OnlyInCmp, path)
		}
	}
	sort.Strings(result.OnlyInBase)
	sort.Strings(result.OnlyInCmp)
	return result
}
