package core

import (
	"slices"
	"strings"
)

// ReservedChars are the characters that may not appear in a path segment.
// The separator itself is listed so raw segments can be checked directly.
const ReservedChars = `\/:*?"<>|`

// SplitPath splits a path on "/" and drops empty segments, so
// "//a//b/" is equivalent to "a/b". "" and "/" both yield no segments.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// ValidatePath reports whether every segment of path is a legal name.
// The empty path is invalid. A path of only separators has no segments
// and passes; callers treat that root form specially.
func ValidatePath(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range SplitPath(path) {
		if strings.ContainsAny(seg, ReservedChars) {
			return false
		}
	}
	return true
}

// IsSubpath reports whether childPath lies strictly inside parentPath:
// the parent's segments must be a proper contiguous prefix of the child's.
// Equal paths are not subpaths of each other.
func IsSubpath(parentPath, childPath string) bool {
	parent := SplitPath(parentPath)
	child := SplitPath(childPath)
	if len(parent) >= len(child) {
		return false
	}
	return slices.Equal(parent, child[:len(parent)])
}

// SamePath reports whether two paths denote the same node once
// separators are collapsed.
func SamePath(a, b string) bool {
	return slices.Equal(SplitPath(a), SplitPath(b))
}

// ExpandPathList expands a comma-separated path spec into individual paths.
//
// A comma before the first separator (or with no separator at all) splits
// the whole spec into independent root-relative paths: "fruits,family".
// Otherwise everything up to the last separator is a shared base and the
// remainder names siblings under it: "fruits/citrus/lemon,lime".
// Results are whitespace-trimmed; empty entries are dropped.
func ExpandPathList(path string) []string {
	if !strings.Contains(path, ",") {
		return []string{path}
	}

	sep := strings.Index(path, "/")
	if sep == -1 || strings.Index(path, ",") < sep {
		var paths []string
		for _, p := range strings.Split(path, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}

	base := path[:strings.LastIndex(path, "/")+1]
	var paths []string
	for _, name := range strings.Split(path[len(base):], ",") {
		if name = strings.TrimSpace(name); name != "" {
			paths = append(paths, base+name)
		}
	}
	return paths
}
