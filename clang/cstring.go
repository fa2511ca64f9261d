package clang

import "unsafe"

// GoString copies the NUL-terminated C string at ptr into a Go string.
// Returns "" when ptr is 0 (null).
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}

	// Scan for the terminator through a large but bounded view. 1MB keeps
	// checkptr happy while scanning C-allocated memory; libclang strings
	// (version banners, spellings, diagnostics) are far smaller, and
	// anything beyond the cap indicates corruption.
	const maxStringLen = 1 << 20
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), maxStringLen)

	var length int
	for i := 0; i < maxStringLen; i++ {
		if bytes[i] == 0 {
			length = i
			break
		}
	}

	return string(bytes[:length])
}

// CString converts a Go string to a NUL-terminated byte slice suitable
// for passing to libclang, returning the slice and the address of its
// first byte.
//
// The caller MUST keep the returned []byte alive for as long as the
// library might read it:
//
//	nameBytes, namePtr := clang.CString("input.c")
//	file := table.GetFile(tu, namePtr) // nameBytes must stay in scope here
func CString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}
