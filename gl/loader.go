package gl

import "errors"

// Resolver maps a native symbol name such as "glClear" to its entry point for
// the currently bound context. It returns 0 when the symbol is unavailable.
type Resolver func(name string) uintptr

// ErrUnsupportedPlatform is returned by the platform resolvers where no GL
// library is known.
var ErrUnsupportedPlatform = errors.New("gl: unsupported platform")

type entryPoint struct {
	name string
	slot func(gl *Functions) slot
}

// NumEntryPoints is the number of symbols Load resolves.
const NumEntryPoints = 46

var entryPoints = [NumEntryPoints]entryPoint{
	{"glDisable", func(gl *Functions) slot { return &gl.disable }},
	{"glEnable", func(gl *Functions) slot { return &gl.enable }},
	{"glFinish", func(gl *Functions) slot { return &gl.finish }},
	{"glFlush", func(gl *Functions) slot { return &gl.flush }},
	{"glGetBooleanv", func(gl *Functions) slot { return &gl.getBooleanv }},
	{"glGetFloatv", func(gl *Functions) slot { return &gl.getFloatv }},
	{"glGetIntegerv", func(gl *Functions) slot { return &gl.getIntegerv }},
	{"glDrawArrays", func(gl *Functions) slot { return &gl.drawArrays }},
	{"glDrawElements", func(gl *Functions) slot { return &gl.drawElements }},
	{"glClear", func(gl *Functions) slot { return &gl.clear }},
	{"glClearColor", func(gl *Functions) slot { return &gl.clearColor }},
	{"glClearDepth", func(gl *Functions) slot { return &gl.clearDepth }},
	{"glClearStencil", func(gl *Functions) slot { return &gl.clearStencil }},
	{"glColorMask", func(gl *Functions) slot { return &gl.colorMask }},
	{"glDepthMask", func(gl *Functions) slot { return &gl.depthMask }},
	{"glBlendColor", func(gl *Functions) slot { return &gl.blendColor }},
	{"glBlendEquation", func(gl *Functions) slot { return &gl.blendEquation }},
	{"glBlendEquationSeparate", func(gl *Functions) slot { return &gl.blendEquationSeparate }},
	{"glBlendFunc", func(gl *Functions) slot { return &gl.blendFunc }},
	{"glBlendFuncSeparate", func(gl *Functions) slot { return &gl.blendFuncSeparate }},
	{"glDepthFunc", func(gl *Functions) slot { return &gl.depthFunc }},
	{"glDepthRange", func(gl *Functions) slot { return &gl.depthRange }},
	{"glCullFace", func(gl *Functions) slot { return &gl.cullFace }},
	{"glFrontFace", func(gl *Functions) slot { return &gl.frontFace }},
	{"glBindBuffer", func(gl *Functions) slot { return &gl.bindBuffer }},
	{"glBufferData", func(gl *Functions) slot { return &gl.bufferData }},
	{"glBufferSubData", func(gl *Functions) slot { return &gl.bufferSubData }},
	{"glDeleteBuffers", func(gl *Functions) slot { return &gl.deleteBuffers }},
	{"glGenBuffers", func(gl *Functions) slot { return &gl.genBuffers }},
	{"glActiveTexture", func(gl *Functions) slot { return &gl.activeTexture }},
	{"glBindTexture", func(gl *Functions) slot { return &gl.bindTexture }},
	{"glCopyTexImage2D", func(gl *Functions) slot { return &gl.copyTexImage2D }},
	{"glCopyTexSubImage2D", func(gl *Functions) slot { return &gl.copyTexSubImage2D }},
	{"glDeleteTextures", func(gl *Functions) slot { return &gl.deleteTextures }},
	{"glGenTextures", func(gl *Functions) slot { return &gl.genTextures }},
	{"glAttachShader", func(gl *Functions) slot { return &gl.attachShader }},
	{"glCompileShader", func(gl *Functions) slot { return &gl.compileShader }},
	{"glCreateProgram", func(gl *Functions) slot { return &gl.createProgram }},
	{"glCreateShader", func(gl *Functions) slot { return &gl.createShader }},
	{"glDeleteProgram", func(gl *Functions) slot { return &gl.deleteProgram }},
	{"glDeleteShader", func(gl *Functions) slot { return &gl.deleteShader }},
	{"glDetachShader", func(gl *Functions) slot { return &gl.detachShader }},
	{"glBindAttribLocation", func(gl *Functions) slot { return &gl.bindAttribLocation }},
	{"glDisableVertexAttribArray", func(gl *Functions) slot { return &gl.disableVertexAttribArray }},
	{"glEnableVertexAttribArray", func(gl *Functions) slot { return &gl.enableVertexAttribArray }},
	{"glGetActiveAttrib", func(gl *Functions) slot { return &gl.getActiveAttrib }},
}

// LoadAll resolves every supported entry point through resolve and returns
// the result. Symbols the resolver cannot find are left empty; check Loaded or
// Missing before calling through them.
func LoadAll(resolve Resolver) *Functions {
	gl := &Functions{}
	gl.Load(resolve)
	return gl
}

// Load re-resolves every slot, e.g. after a different context was made
// current. Each slot is overwritten, so slots the resolver no longer provides
// become empty.
//
// Load must not run concurrently with itself or with calls through gl.
func (gl *Functions) Load(resolve Resolver) {
	for _, ep := range entryPoints {
		ep.slot(gl).bind(resolve(ep.name))
	}
}

// Addr returns the resolved address of the named symbol (e.g. "glClear"). It
// returns 0 for empty slots and for names the loader does not know.
func (gl *Functions) Addr(name string) uintptr {
	for _, ep := range entryPoints {
		if ep.name == name {
			return ep.slot(gl).Addr()
		}
	}
	return 0
}

// Loaded reports whether the named symbol resolved.
func (gl *Functions) Loaded(name string) bool {
	return gl.Addr(name) != 0
}

// Missing returns the symbols left empty by the last Load, in table order.
func (gl *Functions) Missing() []string {
	var missing []string
	for _, ep := range entryPoints {
		if ep.slot(gl).Addr() == 0 {
			missing = append(missing, ep.name)
		}
	}
	return missing
}

// EntryPoints returns the names of all supported symbols in the order Load
// resolves them.
func EntryPoints() []string {
	names := make([]string, 0, len(entryPoints))
	for _, ep := range entryPoints {
		names = append(names, ep.name)
	}
	return names
}
