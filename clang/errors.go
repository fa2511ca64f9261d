package clang

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EnvLibraryPath names the directory (or the exact file) to load the
	// shared library from, bypassing every other search source.
	EnvLibraryPath = "LIBCLANG_PATH"

	// EnvLLVMConfigPath overrides the llvm-config executable used to ask
	// for the LLVM installation prefix during search.
	EnvLLVMConfigPath = "LLVM_CONFIG_PATH"
)

// ErrNotLoaded reports an Unload of a Binding that holds no instance.
var ErrNotLoaded = errors.New("no libclang instance loaded")

// Rejection records one candidate the search considered and the reason it
// was not usable.
type Rejection struct {
	Path   string
	Reason string
}

// DiscoveryError reports that no usable libclang shared library was
// found. Rejections lists every candidate the search considered; it is
// empty when no file matched the filename patterns at all.
type DiscoveryError struct {
	Rejections []Rejection
}

func (e *DiscoveryError) Error() string {
	var b strings.Builder
	b.WriteString("could not find a usable libclang shared library")
	if len(e.Rejections) > 0 {
		b.WriteString(" (")
		for i, r := range e.Rejections {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s: %s", r.Path, r.Reason)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, "; set %s to the directory containing it", EnvLibraryPath)
	return b.String()
}

// OpenError reports that a discovered candidate could not be loaded into
// the process.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to load libclang from %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }
