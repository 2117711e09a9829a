// Package rootmap works with the root token of key paths: extracting it,
// grouping paths that share one, and renaming legacy roots to their
// current equivalents.
package rootmap

import (
	"sort"
	"strings"

	"github.com/dlcarv/keycomp/internal/models"
)

// Table maps legacy root keys to their current names.
// Lookups are exact-match only; a key that merely starts with a table
// entry is never rewritten.
type Table map[string]string

// DefaultTable is the built-in legacy-to-current root key mapping.
var DefaultTable = Table{
	"AL":  "EAL",
	"CA":  "ECA",
	"CMP": "ECM",
	"EN":  "EEN",
	"ET":  "EET",
	"MC":  "EMC",
	"PM":  "EPM",
	"QM":  "EQM",
	"CV":  "ETC",
	"RI":  "RIT",
	"ADM": "ADM",
	"DSG": "DSG",
	"CIC": "CIC",
	"SIN": "SIN",
	"ARQ": "ARQ",
	"ICD": "ICD",
}

// RootOf returns the root token of a key path: the substring before the
// first '.' or '[', whichever occurs first. A path containing neither is
// returned unchanged; the empty string maps to itself.
//
// Ex: "ETQ806.assignments[0].name" -> "ETQ806".
func RootOf(path string) string {
	root := path
	if i := strings.IndexByte(root, '.'); i >= 0 {
		root = root[:i]
	}
	if i := strings.IndexByte(root, '['); i >= 0 {
		root = root[:i]
	}
	return root
}

// GroupRoots collapses paths that share a root into a single entry.
// Roots are visited in lexicographic order; a root with more than one
// path is emitted once as the bare root, a root with exactly one path
// keeps that full path unchanged.
func GroupRoots(paths []string) []string {
	buckets := make(map[string][]string)
	for _, p := range paths {
		root := RootOf(p)
		buckets[root] = append(buckets[root], p)
	}

	roots := make([]string, 0, len(buckets))
	for root := range buckets {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	out := make([]string, 0, len(buckets))
	for _, root := range roots {
		if group := buckets[root]; len(group) > 1 {
			out = append(out, root)
		} else {
			out = append(out, group[0])
		}
	}
	return out
}

// MapRootNames replaces the root token of each path according to the
// table, keeping everything after the root (including any bracket
// suffix) unchanged. Roots absent from the table pass through, as do
// empty strings. Order is preserved, one output per input.
//
// Ex: "CA.something.x" with {"CA": "ECA"} becomes "ECA.something.x".
func MapRootNames(paths []string, table Table) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			out = append(out, p)
			continue
		}
		root := RootOf(p)
		mapped, ok := table[root]
		if !ok {
			out = append(out, p)
			continue
		}
		out = append(out, mapped+p[len(root):])
	}
	return out
}

// ApplyToKeys rebuilds v with every object key that matches a table
// entry exactly replaced by its mapped name. Unlike MapRootNames this
// matches keys at any depth, not just document roots; the asymmetry
// mirrors how renamed documents and normalized path sets are used by
// callers. Arrays recurse preserving order, scalars are returned as is.
// The input tree is never mutated.
func ApplyToKeys(v models.JSONValue, table Table) models.JSONValue {
	switch node := v.(type) {
	case models.JSONObject:
		mapped := make(models.JSONObject, len(node))
		for key, child := range node {
			if newKey, ok := table[key]; ok {
				key = newKey
			}
			mapped[key] = ApplyToKeys(child, table)
		}
		return mapped
	case models.JSONArray:
		mapped := make(models.JSONArray, len(node))
		for i, item := range node {
			mapped[i] = ApplyToKeys(item, table)
		}
		return mapped
	default:
		return node
	}
}
