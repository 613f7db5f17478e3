//go:build windows

package gl

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const defaultLibrary = "opengl32.dll"

// LibraryResolver resolves through wglGetProcAddress. An empty path opens
// opengl32.dll.
//
// wglGetProcAddress only knows functions added after GL 1.1, and only while a
// context is current; the GL 1.1 entry points are taken from the DLL's
// exports instead.
func LibraryResolver(path string) (Resolver, error) {
	if path == "" {
		path = defaultLibrary
	}
	opengl32 := windows.NewLazyDLL(path)
	if err := opengl32.Load(); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	wglGetProcAddress := opengl32.NewProc("wglGetProcAddress")
	if err := wglGetProcAddress.Find(); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return func(name string) uintptr {
		nameBytes := []byte(name)
		nameBytes = append(nameBytes, 0)
		addr, _, _ := wglGetProcAddress.Call(uintptr(unsafe.Pointer(&nameBytes[0])))
		runtime.KeepAlive(nameBytes)
		if validProcAddress(addr) {
			return addr
		}

		proc := opengl32.NewProc(name)
		if err := proc.Find(); err != nil {
			return 0
		}
		return proc.Addr()
	}, nil
}

// EGLResolver is not available on Windows.
func EGLResolver() (Resolver, error) {
	return nil, fmt.Errorf("egl: %w", ErrUnsupportedPlatform)
}

// Some drivers report failure from wglGetProcAddress with 1, 2, 3 or -1
// instead of 0.
func validProcAddress(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return false
	}
	return true
}
