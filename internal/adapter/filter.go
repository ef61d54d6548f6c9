package adapter

import (
	"path/filepath"
	"slices"
	"strings"
)

// TypeFilter restricts which files a picker or saver accepts.
type TypeFilter struct {
	// Description is a human-readable label, e.g. "JSON document".
	Description string

	// Extensions are the accepted suffixes, including the leading dot.
	// An empty list accepts every file.
	Extensions []string
}

// JSONFilter accepts metadata documents.
var JSONFilter = TypeFilter{
	Description: "JSON document",
	Extensions:  []string{".json"},
}

// Accepts reports whether name ends in one of the filter's extensions.
// Matching ignores case.
func (f TypeFilter) Accepts(name string) bool {
	if len(f.Extensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(f.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// Apply returns path with the first extension appended when path is not
// accepted by the filter.
func (f TypeFilter) Apply(path string) string {
	if f.Accepts(path) {
		return path
	}
	return path + f.Extensions[0]
}
