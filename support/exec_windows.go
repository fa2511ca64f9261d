//go:build windows

package support

import (
	"path/filepath"
	"strings"
)

// isExecutable reports whether path names something Windows will run.
// There is no execute bit to ask for; go by extension.
func isExecutable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".cmd", ".bat", ".com":
		return true
	default:
		return false
	}
}
