//go:build darwin || freebsd || linux || windows

package gl

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sentinels gives every entry point its own fake, non-zero address. The
// addresses are never called.
func sentinels() map[string]uintptr {
	addrs := make(map[string]uintptr, NumEntryPoints)
	for i, name := range EntryPoints() {
		addrs[name] = 0x10000 + uintptr(i)*0x100
	}
	return addrs
}

func mapResolver(addrs map[string]uintptr) Resolver {
	return func(name string) uintptr {
		return addrs[name]
	}
}

func emptyResolver(string) uintptr {
	return 0
}

func snapshot(fns *Functions) map[string]uintptr {
	snap := make(map[string]uintptr, NumEntryPoints)
	for _, name := range EntryPoints() {
		snap[name] = fns.Addr(name)
	}
	return snap
}

func TestEntryPointTable(t *testing.T) {
	names := EntryPoints()
	require.Len(t, names, NumEntryPoints)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "gl"), "%s has no gl prefix", name)
		assert.False(t, seen[name], "%s listed twice", name)
		seen[name] = true
	}

	fns := &Functions{}
	slots := make(map[slot]string)
	for _, ep := range entryPoints {
		s := ep.slot(fns)
		if other, ok := slots[s]; ok {
			t.Fatalf("%s and %s share a slot", other, ep.name)
		}
		slots[s] = ep.name
	}
}

func TestLoadAllMatchesResolver(t *testing.T) {
	addrs := sentinels()
	fns := LoadAll(mapResolver(addrs))

	for _, ep := range entryPoints {
		s := ep.slot(fns)
		assert.Equal(t, addrs[ep.name], s.Addr(), ep.name)
		assert.Equal(t, addrs[ep.name], fns.Addr(ep.name), ep.name)
		assert.True(t, fns.Loaded(ep.name), ep.name)
	}
	assert.Empty(t, fns.Missing())
}

func TestLoadAllEmptyResolver(t *testing.T) {
	fns := LoadAll(emptyResolver)

	for _, name := range EntryPoints() {
		assert.Zero(t, fns.Addr(name), name)
		assert.False(t, fns.Loaded(name), name)
	}
	assert.Equal(t, EntryPoints(), fns.Missing())
	assert.Nil(t, fns.clear.fn)
	assert.Nil(t, fns.getActiveAttrib.fn)
}

func TestLoadOnlyClear(t *testing.T) {
	const addr = uintptr(0xdead0)
	fns := LoadAll(func(name string) uintptr {
		if name == "glClear" {
			return addr
		}
		return 0
	})

	assert.Equal(t, addr, fns.clear.Addr())
	assert.NotNil(t, fns.clear.fn)
	for _, name := range EntryPoints() {
		if name == "glClear" {
			continue
		}
		assert.Zero(t, fns.Addr(name), name)
	}
	assert.Len(t, fns.Missing(), NumEntryPoints-1)
	assert.NotContains(t, fns.Missing(), "glClear")
}

func TestLoadResolvesEachEntryPointOnce(t *testing.T) {
	calls := make(map[string]int)
	LoadAll(func(name string) uintptr {
		calls[name]++
		return 0
	})

	require.Len(t, calls, NumEntryPoints)
	for _, name := range EntryPoints() {
		assert.Equal(t, 1, calls[name], name)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	resolve := mapResolver(sentinels())

	fns := LoadAll(resolve)
	first := snapshot(fns)
	fns.Load(resolve)

	if diff := cmp.Diff(first, snapshot(fns)); diff != "" {
		t.Fatalf("second load changed slots (-first +second):\n%s", diff)
	}
}

func TestReloadOverwritesEverySlot(t *testing.T) {
	fns := LoadAll(mapResolver(sentinels()))
	require.Empty(t, fns.Missing())

	fns.Load(mapResolver(map[string]uintptr{"glEnable": 0x4000}))

	assert.Equal(t, uintptr(0x4000), fns.Addr("glEnable"))
	assert.Len(t, fns.Missing(), NumEntryPoints-1)
	assert.Nil(t, fns.disable.fn)
	assert.NotNil(t, fns.enable.fn)
}

func TestAddrUnknownName(t *testing.T) {
	fns := LoadAll(func(string) uintptr { return 0x1000 })

	assert.Zero(t, fns.Addr("glBegin"))
	assert.False(t, fns.Loaded(""))
	// The ES spellings are forwarded, not resolved.
	assert.False(t, fns.Loaded("glClearDepthf"))
	assert.False(t, fns.Loaded("glDepthRangef"))
}

func TestCallUnresolvedPanics(t *testing.T) {
	fns := LoadAll(emptyResolver)

	assert.Panics(t, func() { fns.Clear(ColorBufferBit) })
	assert.Panics(t, func() { fns.ClearDepthf(1) })
	assert.Panics(t, func() { fns.CreateProgram() })
}

func TestProcBind(t *testing.T) {
	var p Proc[func(uint32)]
	assert.False(t, p.Loaded())

	p.bind(0x2000)
	assert.True(t, p.Loaded())
	assert.Equal(t, uintptr(0x2000), p.Addr())
	assert.NotNil(t, p.fn)

	p.bind(0)
	assert.False(t, p.Loaded())
	assert.Nil(t, p.fn)
}
