package gl

// Proc is a single resolved entry point. F is the Go function type the native
// symbol is called through; the zero value is an unresolved slot.
type Proc[F any] struct {
	addr uintptr
	fn   F
}

// Addr returns the address the slot was bound to, or 0 if it is empty.
func (p *Proc[F]) Addr() uintptr {
	return p.addr
}

// Loaded reports whether the slot holds a callable entry point.
func (p *Proc[F]) Loaded() bool {
	return p.addr != 0
}

// bind replaces the slot's contents with addr, casting it to F. A zero addr
// empties the slot so nothing from a previous load survives. Where addresses
// cannot be cast to Go functions the slot stays empty.
func (p *Proc[F]) bind(addr uintptr) {
	var zero F
	p.addr = 0
	p.fn = zero
	if addr == 0 {
		return
	}
	if registerFunc(&p.fn, addr) {
		p.addr = addr
	}
}

type slot interface {
	Addr() uintptr
	bind(addr uintptr)
}
