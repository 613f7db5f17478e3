//go:build darwin

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const defaultLibrary = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// LibraryResolver resolves from the OpenGL framework's exports. macOS has no
// GetProcAddress equivalent; every supported entry point is exported
// directly. An empty path opens the system framework.
func LibraryResolver(path string) (Resolver, error) {
	if path == "" {
		path = defaultLibrary
	}
	handle, err := purego.Dlopen(path, purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return procAddressResolver(handle, nil), nil
}

// EGLResolver is not available on macOS.
func EGLResolver() (Resolver, error) {
	return nil, fmt.Errorf("egl: %w", ErrUnsupportedPlatform)
}
