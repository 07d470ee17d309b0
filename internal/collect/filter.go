package collect

import (
	"sort"
	"strings"
)

// FilterOptions narrows which directory entries are considered.
type FilterOptions struct {
	// IncludeExtensions is a list of extensions to include (e.g., ".xml").
	// Matching is case-insensitive. If empty, all files are included.
	IncludeExtensions []string
}

// FilterNames applies the filter options to a list of file names.
// It returns a new slice, sorted deterministically.
func FilterNames(names []string, opts FilterOptions) []string {
	if len(names) == 0 {
		return nil
	}

	var filtered []string
	for _, name := range names {
		if !shouldIncludeExtension(name, opts.IncludeExtensions) {
			continue
		}
		filtered = append(filtered, name)
	}

	sort.Strings(filtered)
	return filtered
}

// shouldIncludeExtension returns true if extensions is empty OR name matches one extension.
func shouldIncludeExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
