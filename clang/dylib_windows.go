//go:build windows

package clang

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func (d *dylib) open(path string) error {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return err
	}
	if handle == 0 {
		return fmt.Errorf("LoadLibrary returned a null handle")
	}
	d.handle = uintptr(handle)
	return nil
}

func (d *dylib) symbol(name string) (uintptr, error) {
	proc, err := windows.GetProcAddress(windows.Handle(d.handle), name)
	if err != nil {
		return 0, err
	}
	return proc, nil
}

func (d *dylib) release(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
