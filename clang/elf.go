package clang

import (
	"bytes"
	"fmt"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"strings"
)

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// elfPlatform reports whether goos loads ELF images, in which case a
// candidate's header is checked before the file is accepted.
func elfPlatform(goos string) bool {
	switch goos {
	case "linux", "android", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos":
		return true
	default:
		return false
	}
}

// validateCandidate decides whether the file at path can be loaded into
// this process, returning its absolute path. A rejection never aborts the
// search; the caller records the reason and moves to the next candidate.
func validateCandidate(goos, path string) (string, error) {
	abs, err := validateLibraryFile(path)
	if err != nil {
		return "", err
	}
	if elfPlatform(goos) {
		if err := validateELFHeader(abs, bits.UintSize); err != nil {
			return "", err
		}
	}
	return abs, nil
}

func validateLibraryFile(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("library path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat library file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("library path points to a directory")
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("library file is empty")
	}

	return absPath, nil
}

// validateELFHeader reads the first five bytes of the file and confirms
// the ELF magic plus an architecture class (byte five: 1 is 32-bit, 2 is
// 64-bit) matching the given process pointer width.
func validateELFHeader(path string, pointerBits int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var header [5]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return fmt.Errorf("failed to read ELF header: %w", err)
	}

	if !bytes.Equal(header[:4], elfMagic[:]) {
		return fmt.Errorf("not an ELF image (magic %x)", header[:4])
	}

	switch class := header[4]; class {
	case 1:
		if pointerBits != 32 {
			return fmt.Errorf("32-bit image cannot load into a %d-bit process", pointerBits)
		}
	case 2:
		if pointerBits != 64 {
			return fmt.Errorf("64-bit image cannot load into a %d-bit process", pointerBits)
		}
	default:
		return fmt.Errorf("unrecognized ELF class %d", class)
	}

	return nil
}
