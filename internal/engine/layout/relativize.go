// Package layout computes where generated files go and how modules address each other.
package layout

import (
	"path/filepath"
	"strings"
)

// Relativize makes path relative to baseDir without touching the filesystem.
// Relative paths are returned unchanged. Absolute paths outside baseDir are returned
// with separators normalized to "/".
func Relativize(baseDir, path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	p := filepath.ToSlash(path)
	base := strings.TrimRight(filepath.ToSlash(baseDir), "/")

	switch {
	case p == base:
		return "."
	case p == base+"/":
		return "./"
	case strings.HasPrefix(p, base+"/"):
		if rel := p[len(base)+1:]; rel != "" {
			return rel
		}
		return "."
	default:
		return p
	}
}

// RelativeTo is Relativize that falls back to "." for an empty path.
func RelativeTo(baseDir, path string) string {
	if path == "" {
		return "."
	}
	return Relativize(baseDir, path)
}
