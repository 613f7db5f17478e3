//go:build darwin || freebsd || linux || windows

package gl

import "github.com/ebitengine/purego"

func registerFunc(fptr interface{}, addr uintptr) bool {
	purego.RegisterFunc(fptr, addr)
	return true
}
