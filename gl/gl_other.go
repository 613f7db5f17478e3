//go:build !linux && !freebsd && !darwin && !windows

package gl

import "fmt"

// LibraryResolver always fails with ErrUnsupportedPlatform on this platform.
func LibraryResolver(path string) (Resolver, error) {
	return nil, fmt.Errorf("open %q: %w", path, ErrUnsupportedPlatform)
}

// EGLResolver always fails with ErrUnsupportedPlatform on this platform.
func EGLResolver() (Resolver, error) {
	return nil, fmt.Errorf("egl: %w", ErrUnsupportedPlatform)
}
