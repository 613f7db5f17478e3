//go:build darwin || freebsd || linux || windows

package probe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/cgl/gl"
)

func clearOnly(name string) uintptr {
	if name == "glClear" {
		return 0x1000
	}
	return 0
}

func TestRun(t *testing.T) {
	fns, report := Run(clearOnly)

	require.Len(t, report.Results, gl.NumEntryPoints)
	assert.Equal(t, 1, report.Resolved)
	assert.Equal(t, gl.NumEntryPoints-1, report.Missing)
	assert.True(t, fns.Loaded("glClear"))

	for i, name := range gl.EntryPoints() {
		assert.Equal(t, name, report.Results[i].Name)
		assert.Equal(t, name == "glClear", report.Results[i].Resolved(), name)
	}
}

func TestRender(t *testing.T) {
	_, report := Run(clearOnly)

	var buf bytes.Buffer
	report.Render(&buf, false)
	out := buf.String()

	for _, name := range gl.EntryPoints() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "0x1000")
	assert.Contains(t, out, "1/46")
}

func TestRenderMissingOnly(t *testing.T) {
	_, report := Run(clearOnly)

	var buf bytes.Buffer
	report.Render(&buf, true)
	out := buf.String()

	assert.NotContains(t, out, "0x1000")
	assert.Contains(t, out, "glClearColor")
	assert.Contains(t, out, "glGetActiveAttrib")
}
