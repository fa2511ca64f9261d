package clang

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// expandDirGlob expands an absolute directory glob pattern one path
// segment at a time, so wildcards never match across separators. Only
// directories that exist are returned (symlinks to directories count).
// When foldCase is set, segment matching ignores case.
func expandDirGlob(pattern string, foldCase bool) []string {
	vol := filepath.VolumeName(pattern)
	rest := filepath.ToSlash(pattern[len(vol):])
	if !strings.HasPrefix(rest, "/") {
		// Backup search patterns are absolute by construction.
		return nil
	}

	dirs := []string{vol + string(filepath.Separator)}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			continue
		}

		var next []string
		for _, dir := range dirs {
			if !hasGlobMeta(seg) {
				candidate := filepath.Join(dir, seg)
				if info, err := os.Stat(candidate); err == nil && info.IsDir() {
					next = append(next, candidate)
				}
				continue
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if !matchSegment(seg, entry.Name(), foldCase) {
					continue
				}
				candidate := filepath.Join(dir, entry.Name())
				if info, err := os.Stat(candidate); err == nil && info.IsDir() {
					next = append(next, candidate)
				}
			}
		}

		dirs = next
		if len(dirs) == 0 {
			return nil
		}
	}

	return dirs
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// matchSegment matches a single path segment against a single-segment
// pattern. path.Match never crosses "/" and segments contain none.
func matchSegment(pattern, name string, foldCase bool) bool {
	if foldCase {
		pattern = strings.ToLower(pattern)
		name = strings.ToLower(name)
	}
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
