//go:build linux || freebsd

package gl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const (
	defaultLibrary = "libGL.so.1"
	eglLibrary     = "libEGL.so.1"
	glesLibrary    = "libGLESv2.so.2"
)

// LibraryResolver resolves through GLX. An empty path opens libGL.so.1.
//
// glXGetProcAddressARB is tried first; symbols it does not know are looked up
// in the library's exports.
func LibraryResolver(path string) (Resolver, error) {
	if path == "" {
		path = defaultLibrary
	}
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var getProcAddress func(*byte) uintptr
	if !registerOptional(&getProcAddress, handle, "glXGetProcAddressARB") {
		registerOptional(&getProcAddress, handle, "glXGetProcAddress")
	}
	return procAddressResolver(handle, getProcAddress), nil
}

// EGLResolver resolves through eglGetProcAddress, for contexts created with
// EGL. Before EGL 1.5 eglGetProcAddress may not return core entry points, so
// misses fall back to the exports of libGLESv2 (or libEGL when libGLESv2 is
// not installed).
func EGLResolver() (Resolver, error) {
	egl, getProcAddress, err := openGetProcAddress(eglLibrary, "eglGetProcAddress")
	if err != nil {
		return nil, err
	}

	handle := egl
	if gles, err := purego.Dlopen(glesLibrary, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err == nil {
		handle = gles
	}
	return procAddressResolver(handle, getProcAddress), nil
}
