//go:build !windows

package clang

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// RTLD_NOW resolves every undefined symbol up front, so a broken or
// partial installation fails at open time instead of mid-call.
// RTLD_GLOBAL keeps libclang's exports visible to the LLVM libraries it
// drags in.
func (d *dylib) open(path string) error {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	if handle == 0 {
		return fmt.Errorf("dlopen returned a null handle")
	}
	d.handle = handle
	return nil
}

func (d *dylib) symbol(name string) (uintptr, error) {
	return purego.Dlsym(d.handle, name)
}

func (d *dylib) release(handle uintptr) error {
	return purego.Dlclose(handle)
}
