//go:build !darwin && !freebsd && !linux && !windows

package gl

// purego has no calling convention support here.
func registerFunc(fptr interface{}, addr uintptr) bool {
	return false
}
