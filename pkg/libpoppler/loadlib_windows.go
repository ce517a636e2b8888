package libpoppler

import (
	"errors"
	"syscall"
)

// CloseLib closes the lib opened by [InitLib].
var CloseLib func() = func() {}

// tryLoadLib tries to load a shared object/dynamically linked library
// from various paths and returns a handle or 0 and an error.
func tryLoadLib(paths ...string) (uintptr, string, error) {
	var lib syscall.Handle
	var liberr, err error
	for _, path := range paths {
		lib, liberr = syscall.LoadLibrary(path)
		err = errors.Join(liberr, err)
		if lib != 0 {
			CloseLib = func() { syscall.FreeLibrary(lib) }
			return uintptr(lib), path, nil
		}
	}
	return 0, "", err
}
