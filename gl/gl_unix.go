//go:build linux || freebsd || darwin

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// procAddressResolver asks getProcAddress first, when the platform has one,
// and falls back to the symbols exported by handle.
func procAddressResolver(handle uintptr, getProcAddress func(*byte) uintptr) Resolver {
	return func(name string) uintptr {
		if getProcAddress != nil {
			nameBytes := []byte(name)
			nameBytes = append(nameBytes, 0)
			if addr := getProcAddress(&nameBytes[0]); addr != 0 {
				return addr
			}
		}
		addr, err := purego.Dlsym(handle, name)
		if err != nil {
			return 0
		}
		return addr
	}
}

// registerOptional binds name from handle into dst if the library exports it.
func registerOptional(dst interface{}, handle uintptr, name string) bool {
	addr, err := purego.Dlsym(handle, name)
	if err != nil || addr == 0 {
		return false
	}
	purego.RegisterFunc(dst, addr)
	return true
}

// openGetProcAddress opens path and binds the first of names it exports. The
// library is closed again when none of them is found.
func openGetProcAddress(path string, names ...string) (uintptr, func(*byte) uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, nil, fmt.Errorf("open %s: %w", path, err)
	}

	var getProcAddress func(*byte) uintptr
	for _, name := range names {
		if registerOptional(&getProcAddress, handle, name) {
			return handle, getProcAddress, nil
		}
	}

	if err := purego.Dlclose(handle); err != nil {
		return 0, nil, fmt.Errorf("close %s: %w", path, err)
	}
	return 0, nil, fmt.Errorf("%s: none of %v exported", path, names)
}
