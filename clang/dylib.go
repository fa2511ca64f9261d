package clang

// image is a shared library opened into this process. Several images over
// the same file may be open at once; each is closed independently.
type image interface {
	// symbol resolves an exported symbol by its exact, case-sensitive name.
	symbol(name string) (uintptr, error)
	close() error
}

// openImage loads the shared library at path. Failures (not a loadable
// image for this process, missing transitive dependencies, permissions)
// surface as *OpenError naming the path.
func openImage(path string) (image, error) {
	d := &dylib{}
	if err := d.open(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return d, nil
}

// dylib is one OS library handle. The platform files supply open, symbol
// and release.
type dylib struct {
	handle uintptr
}

func (d *dylib) close() error {
	if d.handle == 0 {
		return nil
	}
	handle := d.handle
	d.handle = 0
	return d.release(handle)
}
