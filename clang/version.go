package clang

import (
	"strconv"
	"strings"
)

// Version is the numeric tuple encoded in a shared library file name
// (for example: libclang.so.16.0 carries version 16.0). Files whose name
// carries no version have an empty Version.
type Version []int

// ParseVersion parses a dot-separated numeric tuple. Components that fail
// to parse as integers count as 0.
func ParseVersion(raw string) Version {
	raw = strings.Trim(raw, ".")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ".")
	version := make(Version, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		version = append(version, n)
	}

	return version
}

// Compare orders version tuples lexicographically. A tuple that is a
// prefix of a longer one sorts first, so an unversioned file name loses
// to any versioned one.
func (v Version) Compare(o Version) int {
	for i := 0; i < len(v) && i < len(o); i++ {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}

	switch {
	case len(v) < len(o):
		return -1
	case len(v) > len(o):
		return 1
	}
	return 0
}

// String renders the tuple in its dotted form, or "" for an empty tuple.
func (v Version) String() string {
	if len(v) == 0 {
		return ""
	}

	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
