//go:build linux || freebsd || darwin

package gl

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openLibc opens the C library so the dlsym paths can be exercised without a
// GL driver installed.
func openLibc(t *testing.T) (string, uintptr) {
	t.Helper()

	path := "libc.so.6"
	switch runtime.GOOS {
	case "darwin":
		path = "/usr/lib/libSystem.B.dylib"
	case "freebsd":
		path = "libc.so.7"
	}
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	require.NoError(t, err)
	return path, handle
}

func cstring(p *byte) string {
	var b []byte
	for ; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		b = append(b, *p)
	}
	return string(b)
}

func TestProcAddressResolverFallsBackToExports(t *testing.T) {
	_, libc := openLibc(t)

	var asked []string
	resolve := procAddressResolver(libc, func(name *byte) uintptr {
		asked = append(asked, cstring(name))
		return 0
	})

	assert.NotZero(t, resolve("strlen"))
	assert.Zero(t, resolve("glNoSuchEntryPoint"))
	assert.Equal(t, []string{"strlen", "glNoSuchEntryPoint"}, asked)

	withoutProc := procAddressResolver(libc, nil)
	assert.NotZero(t, withoutProc("strlen"))
	assert.Zero(t, withoutProc("glNoSuchEntryPoint"))
}

func TestProcAddressResolverPrefersGetProcAddress(t *testing.T) {
	_, libc := openLibc(t)

	resolve := procAddressResolver(libc, func(*byte) uintptr { return 0x42 })

	assert.Equal(t, uintptr(0x42), resolve("strlen"))
	assert.Equal(t, uintptr(0x42), resolve("glNoSuchEntryPoint"))
}

func TestRegisterOptional(t *testing.T) {
	_, libc := openLibc(t)

	var missing func(*byte) uintptr
	assert.False(t, registerOptional(&missing, libc, "glNoSuchEntryPoint"))
	assert.Nil(t, missing)

	var strlen func(*byte) uintptr
	require.True(t, registerOptional(&strlen, libc, "strlen"))
	hello := []byte("hello\x00")
	assert.Equal(t, uintptr(5), strlen(&hello[0]))
}

func TestOpenGetProcAddress(t *testing.T) {
	path, _ := openLibc(t)

	handle, getProcAddress, err := openGetProcAddress(path, "glNoSuchEntryPoint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glNoSuchEntryPoint")
	assert.Zero(t, handle)
	assert.Nil(t, getProcAddress)

	handle, getProcAddress, err = openGetProcAddress(path, "glNoSuchEntryPoint", "strlen")
	require.NoError(t, err)
	assert.NotZero(t, handle)
	name := []byte("abc\x00")
	assert.Equal(t, uintptr(3), getProcAddress(&name[0]))
}

func TestLibraryResolverMissingLibrary(t *testing.T) {
	_, err := LibraryResolver("libcgl-does-not-exist.so.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libcgl-does-not-exist.so.0")
}
