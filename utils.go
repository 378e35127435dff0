package main

import (
	"path/filepath"
	"strings"
)

// truncatePathFromLeft shortens a file path to maxWidth by dropping leading
// segments and prefixing "...", so the file name and its nearest parents
// stay visible in the footer.
func truncatePathFromLeft(path string, maxWidth int) string {
	if len(path) <= maxWidth {
		return path
	}

	sep := string(filepath.Separator)
	segments := strings.Split(filepath.Clean(path), sep)
	ellipsis := "..."
	budget := maxWidth - len(ellipsis)

	var kept []string
	length := 0
	for i := len(segments) - 1; i >= 0; i-- {
		addition := len(segments[i]) + 1 // leading separator
		if length+addition > budget && len(kept) > 0 {
			break
		}
		kept = append([]string{segments[i]}, kept...)
		length += addition
	}

	if len(kept) == len(segments) {
		return path
	}
	return ellipsis + sep + strings.Join(kept, sep)
}
