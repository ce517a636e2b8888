//go:build linux || darwin

package libpoppler

import (
	"errors"

	"github.com/ebitengine/purego"
)

// CloseLib closes the lib opened by [InitLib].
var CloseLib func() = func() {}

// tryLoadLib tries to load a shared object/dynamically linked library
// from various paths and returns a handle or 0 and an error.
func tryLoadLib(paths ...string) (uintptr, string, error) {
	var lib uintptr
	var liberr, err error
	for _, path := range paths {
		lib, liberr = purego.Dlopen(path, purego.RTLD_NOW)
		err = errors.Join(liberr, err)
		if lib != 0 {
			CloseLib = func() { purego.Dlclose(lib) }
			return lib, path, nil
		}
	}
	return 0, "", err
}
