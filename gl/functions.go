package gl

import "unsafe"

// Functions holds one slot per supported entry point. Build it with LoadAll and
// hand it to the code that renders; it carries no other state.
type Functions struct {
	// General utilities
	disable     Proc[func(uint32)]
	enable      Proc[func(uint32)]
	finish      Proc[func()]
	flush       Proc[func()]
	getBooleanv Proc[func(uint32, *uint8)]
	getFloatv   Proc[func(uint32, *float32)]
	getIntegerv Proc[func(uint32, *int32)]

	// Drawing
	drawArrays   Proc[func(uint32, int32, int32)]
	drawElements Proc[func(uint32, int32, uint32, uintptr)]

	// Clearing
	clear        Proc[func(uint32)]
	clearColor   Proc[func(float32, float32, float32, float32)]
	clearDepth   Proc[func(float64)]
	clearStencil Proc[func(int32)]

	// Masking
	colorMask Proc[func(bool, bool, bool, bool)]
	depthMask Proc[func(bool)]

	// Blending
	blendColor            Proc[func(float32, float32, float32, float32)]
	blendEquation         Proc[func(uint32)]
	blendEquationSeparate Proc[func(uint32, uint32)]
	blendFunc             Proc[func(uint32, uint32)]
	blendFuncSeparate     Proc[func(uint32, uint32, uint32, uint32)]

	// Depth and faces
	depthFunc  Proc[func(uint32)]
	depthRange Proc[func(float64, float64)]
	cullFace   Proc[func(uint32)]
	frontFace  Proc[func(uint32)]

	// Buffer operations
	bindBuffer    Proc[func(uint32, uint32)]
	bufferData    Proc[func(uint32, int, unsafe.Pointer, uint32)]
	bufferSubData Proc[func(uint32, int, int, unsafe.Pointer)]
	deleteBuffers Proc[func(int32, *uint32)]
	genBuffers    Proc[func(int32, *uint32)]

	// Texture operations
	activeTexture     Proc[func(uint32)]
	bindTexture       Proc[func(uint32, uint32)]
	copyTexImage2D    Proc[func(uint32, int32, uint32, int32, int32, int32, int32, int32)]
	copyTexSubImage2D Proc[func(uint32, int32, int32, int32, int32, int32, int32, int32)]
	deleteTextures    Proc[func(int32, *uint32)]
	genTextures       Proc[func(int32, *uint32)]

	// Shader and program operations
	attachShader             Proc[func(uint32, uint32)]
	compileShader            Proc[func(uint32)]
	createProgram            Proc[func() uint32]
	createShader             Proc[func(uint32) uint32]
	deleteProgram            Proc[func(uint32)]
	deleteShader             Proc[func(uint32)]
	detachShader             Proc[func(uint32, uint32)]
	bindAttribLocation       Proc[func(uint32, uint32, *byte)]
	disableVertexAttribArray Proc[func(uint32)]
	enableVertexAttribArray  Proc[func(uint32)]
	getActiveAttrib          Proc[func(uint32, uint32, int32, *int32, *int32, *uint32, *byte)]
}

var _ OpenGL = (*Functions)(nil)

func (gl *Functions) Disable(cap uint32) {
	gl.disable.fn(cap)
}

func (gl *Functions) Enable(cap uint32) {
	gl.enable.fn(cap)
}

func (gl *Functions) Finish() {
	gl.finish.fn()
}

func (gl *Functions) Flush() {
	gl.flush.fn()
}

func (gl *Functions) GetBooleanv(pname uint32, data *uint8) {
	gl.getBooleanv.fn(pname, data)
}

func (gl *Functions) GetFloatv(pname uint32, data *float32) {
	gl.getFloatv.fn(pname, data)
}

func (gl *Functions) GetIntegerv(pname uint32, data *int32) {
	gl.getIntegerv.fn(pname, data)
}

func (gl *Functions) DrawArrays(mode uint32, first, count int32) {
	gl.drawArrays.fn(mode, first, count)
}

func (gl *Functions) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.drawElements.fn(mode, count, xtype, offset)
}

func (gl *Functions) Clear(mask uint32) {
	gl.clear.fn(mask)
}

func (gl *Functions) ClearColor(r, g, b, a float32) {
	gl.clearColor.fn(r, g, b, a)
}

func (gl *Functions) ClearDepth(depth float64) {
	gl.clearDepth.fn(depth)
}

// ClearDepthf is the GL ES spelling of ClearDepth. It is not resolved on its
// own; the value is widened and passed to glClearDepth.
func (gl *Functions) ClearDepthf(depth float32) {
	gl.ClearDepth(float64(depth))
}

func (gl *Functions) ClearStencil(s int32) {
	gl.clearStencil.fn(s)
}

func (gl *Functions) ColorMask(r, g, b, a bool) {
	gl.colorMask.fn(r, g, b, a)
}

func (gl *Functions) DepthMask(flag bool) {
	gl.depthMask.fn(flag)
}

func (gl *Functions) BlendColor(r, g, b, a float32) {
	gl.blendColor.fn(r, g, b, a)
}

func (gl *Functions) BlendEquation(mode uint32) {
	gl.blendEquation.fn(mode)
}

func (gl *Functions) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	gl.blendEquationSeparate.fn(modeRGB, modeAlpha)
}

func (gl *Functions) BlendFunc(sfactor, dfactor uint32) {
	gl.blendFunc.fn(sfactor, dfactor)
}

func (gl *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.blendFuncSeparate.fn(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (gl *Functions) DepthFunc(fn uint32) {
	gl.depthFunc.fn(fn)
}

func (gl *Functions) DepthRange(near, far float64) {
	gl.depthRange.fn(near, far)
}

// DepthRangef is the GL ES spelling of DepthRange, forwarded the same way as
// ClearDepthf.
func (gl *Functions) DepthRangef(near, far float32) {
	gl.DepthRange(float64(near), float64(far))
}

func (gl *Functions) CullFace(mode uint32) {
	gl.cullFace.fn(mode)
}

func (gl *Functions) FrontFace(mode uint32) {
	gl.frontFace.fn(mode)
}

func (gl *Functions) BindBuffer(target, buffer uint32) {
	gl.bindBuffer.fn(target, buffer)
}

func (gl *Functions) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.bufferData.fn(target, size, data, usage)
}

func (gl *Functions) BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	gl.bufferSubData.fn(target, offset, size, data)
}

func (gl *Functions) DeleteBuffers(n int32, buffers *uint32) {
	gl.deleteBuffers.fn(n, buffers)
}

func (gl *Functions) GenBuffers(n int32, buffers *uint32) {
	gl.genBuffers.fn(n, buffers)
}

func (gl *Functions) ActiveTexture(texture uint32) {
	gl.activeTexture.fn(texture)
}

func (gl *Functions) BindTexture(target, texture uint32) {
	gl.bindTexture.fn(target, texture)
}

func (gl *Functions) CopyTexImage2D(target uint32, level int32, internalFormat uint32, x, y, width, height, border int32) {
	gl.copyTexImage2D.fn(target, level, internalFormat, x, y, width, height, border)
}

func (gl *Functions) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	gl.copyTexSubImage2D.fn(target, level, xoffset, yoffset, x, y, width, height)
}

func (gl *Functions) DeleteTextures(n int32, textures *uint32) {
	gl.deleteTextures.fn(n, textures)
}

func (gl *Functions) GenTextures(n int32, textures *uint32) {
	gl.genTextures.fn(n, textures)
}

func (gl *Functions) AttachShader(program, shader uint32) {
	gl.attachShader.fn(program, shader)
}

func (gl *Functions) CompileShader(shader uint32) {
	gl.compileShader.fn(shader)
}

func (gl *Functions) CreateProgram() uint32 {
	return gl.createProgram.fn()
}

func (gl *Functions) CreateShader(xtype uint32) uint32 {
	return gl.createShader.fn(xtype)
}

func (gl *Functions) DeleteProgram(program uint32) {
	gl.deleteProgram.fn(program)
}

func (gl *Functions) DeleteShader(shader uint32) {
	gl.deleteShader.fn(shader)
}

func (gl *Functions) DetachShader(program, shader uint32) {
	gl.detachShader.fn(program, shader)
}

func (gl *Functions) BindAttribLocation(program, index uint32, name string) {
	nameBytes := []byte(name)
	nameBytes = append(nameBytes, 0)
	gl.bindAttribLocation.fn(program, index, &nameBytes[0])
}

func (gl *Functions) DisableVertexAttribArray(index uint32) {
	gl.disableVertexAttribArray.fn(index)
}

// EnableVertexAttribArray is resolved unconditionally. GL 4 core raises
// InvalidOperation when no vertex array object is bound; GL 2.1 and GL ES 2.0
// have no such requirement.
func (gl *Functions) EnableVertexAttribArray(index uint32) {
	gl.enableVertexAttribArray.fn(index)
}

func (gl *Functions) GetActiveAttrib(program, index uint32, bufSize int32) (name string, size int32, xtype uint32) {
	if bufSize <= 0 {
		bufSize = 256
	}
	buf := make([]byte, bufSize)
	var length int32
	gl.getActiveAttrib.fn(program, index, bufSize, &length, &size, &xtype, &buf[0])
	if length < 0 || length > bufSize {
		length = 0
	}
	return string(buf[:length]), size, xtype
}
