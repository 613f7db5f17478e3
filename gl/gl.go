// Package gl loads the common subset of OpenGL 2.1, OpenGL 4.5 core and OpenGL
// ES 2.0 at runtime.
//
// Entry points are resolved through a caller-supplied Resolver (see
// LibraryResolver for the platform default) and exposed as methods on
// Functions. Constants mirror the official GL_ names without the prefix.
package gl

import "unsafe"

const (
	// Boolean values.
	False = 0
	True  = 1

	// Error codes.
	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	OutOfMemory      = 0x0505

	// Texture units for ActiveTexture. TextureN equals Texture0 + N; at least
	// MaxCombinedTextureImageUnits of them exist.
	Texture0  = 0x84C0
	Texture1  = 0x84C1
	Texture2  = 0x84C2
	Texture3  = 0x84C3
	Texture4  = 0x84C4
	Texture5  = 0x84C5
	Texture6  = 0x84C6
	Texture7  = 0x84C7
	Texture8  = 0x84C8
	Texture9  = 0x84C9
	Texture10 = 0x84CA
	Texture11 = 0x84CB
	Texture12 = 0x84CC
	Texture13 = 0x84CD
	Texture14 = 0x84CE
	Texture15 = 0x84CF
	Texture16 = 0x84D0
	Texture17 = 0x84D1
	Texture18 = 0x84D2
	Texture19 = 0x84D3
	Texture20 = 0x84D4
	Texture21 = 0x84D5
	Texture22 = 0x84D6
	Texture23 = 0x84D7
	Texture24 = 0x84D8
	Texture25 = 0x84D9
	Texture26 = 0x84DA
	Texture27 = 0x84DB
	Texture28 = 0x84DC
	Texture29 = 0x84DD
	Texture30 = 0x84DE
	Texture31 = 0x84DF

	// Implementation limits.
	MaxCombinedTextureImageUnits = 0x8B4D
	MaxVertexAttribs             = 0x8869

	// Buffer binding targets.
	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893

	// Texture binding targets.
	Texture2D      = 0x0DE1
	TextureCubeMap = 0x8513

	// Blend equations.
	FuncAdd             = 0x8006
	FuncReverseSubtract = 0x800B
	FuncSubtract        = 0x800A

	// Blend factors.
	Zero                  = 0
	One                   = 1
	SrcColor              = 0x0300
	OneMinusSrcColor      = 0x0301
	SrcAlpha              = 0x0302
	OneMinusSrcAlpha      = 0x0303
	DstAlpha              = 0x0304
	OneMinusDstAlpha      = 0x0305
	DstColor              = 0x0306
	OneMinusDstColor      = 0x0307
	SrcAlphaSaturate      = 0x0308
	ConstantColor         = 0x8001
	OneMinusConstantColor = 0x8002
	ConstantAlpha         = 0x8003
	OneMinusConstantAlpha = 0x8004

	// Buffer usage hints for BufferData.
	StreamDraw  = 0x88E0
	StaticDraw  = 0x88E4
	DynamicDraw = 0x88E8

	// Masks for Clear.
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400
	ColorBufferBit   = 0x00004000

	// Cube map faces.
	TextureCubeMapPositiveX = 0x8515
	TextureCubeMapNegativeX = 0x8516
	TextureCubeMapPositiveY = 0x8517
	TextureCubeMapNegativeY = 0x8518
	TextureCubeMapPositiveZ = 0x8519
	TextureCubeMapNegativeZ = 0x851A

	// Pixel formats.
	RGB  = 0x1907
	RGBA = 0x1908

	// Shader types for CreateShader.
	FragmentShader = 0x8B30
	VertexShader   = 0x8B31

	// Faces for CullFace.
	Front        = 0x0404
	Back         = 0x0405
	FrontAndBack = 0x0408

	// Comparison functions for DepthFunc.
	Never    = 0x0200
	Less     = 0x0201
	Equal    = 0x0202
	Lequal   = 0x0203
	Greater  = 0x0204
	Notequal = 0x0205
	Gequal   = 0x0206
	Always   = 0x0207

	// Capabilities for Enable and Disable.
	Blend                 = 0x0BE2
	CullFace              = 0x0B44
	DepthTest             = 0x0B71
	Dither                = 0x0BD0
	PolygonOffsetFill     = 0x8037
	SampleAlphaToCoverage = 0x809E
	SampleCoverage        = 0x80A0
	ScissorTest           = 0x0C11
	StencilTest           = 0x0B90

	// Primitive modes.
	Points        = 0x0000
	Lines         = 0x0001
	LineLoop      = 0x0002
	LineStrip     = 0x0003
	Triangles     = 0x0004
	TriangleStrip = 0x0005
	TriangleFan   = 0x0006

	// Index and pixel data types.
	UnsignedByte  = 0x1401
	UnsignedShort = 0x1403

	// Winding orders for FrontFace.
	CW  = 0x0900
	CCW = 0x0901

	// Parameter names for GetBooleanv, GetFloatv and GetIntegerv.
	ActiveTexture               = 0x84E0
	AliasedLineWidthRange       = 0x846E
	ArrayBufferBinding          = 0x8894
	BlendColor                  = 0x8005
	BlendDstRgb                 = 0x80C8
	BlendSrcRgb                 = 0x80C9
	BlendDstAlpha               = 0x80CA
	BlendSrcAlpha               = 0x80CB
	BlendEquationRgb            = 0x8009
	BlendEquationAlpha          = 0x883D
	ColorClearValue             = 0x0C22
	ColorWritemask              = 0x0C23
	CompressedTextureFormats    = 0x86A3
	CullFaceMode                = 0x0B45
	CurrentProgram              = 0x8B8D
	DepthClearValue             = 0x0B73
	DepthFunc                   = 0x0B74
	DepthRange                  = 0x0B70
	DepthWritemask              = 0x0B72
	ElementArrayBufferBinding   = 0x8895
	LineWidth                   = 0x0B21
	MaxCubeMapTextureSize       = 0x851C
	MaxTextureImageUnits        = 0x8872
	MaxTextureSize              = 0x0D33
	MaxVertexTextureImageUnits  = 0x8B4C
	MaxViewportDims             = 0x0D3A
	NumCompressedTextureFormats = 0x86A2
	PackAlignment               = 0x0D05
	PolygonOffsetFactor         = 0x8038
	PolygonOffsetUnits          = 0x2A00
	SampleBuffers               = 0x80A8
	SampleCoverageInvert        = 0x80AB
	SampleCoverageValue         = 0x80AA
	Samples                     = 0x80A9
	ScissorBox                  = 0x0C10
	StencilBackFail             = 0x8801
	StencilBackFunc             = 0x8800
	StencilBackPassDepthFail    = 0x8802
	StencilBackPassDepthPass    = 0x8803
	StencilBackRef              = 0x8CA3
	StencilBackValueMask        = 0x8CA4
	StencilBackWritemask        = 0x8CA5
	StencilClearValue           = 0x0B91
	StencilFail                 = 0x0B94
	StencilFunc                 = 0x0B92
	StencilPassDepthFail        = 0x0B95
	StencilPassDepthPass        = 0x0B96
	StencilRef                  = 0x0B97
	StencilValueMask            = 0x0B93
	StencilWritemask            = 0x0B98
	SubpixelBits                = 0x0D50
	TextureBinding2D            = 0x8069
	TextureBindingCubeMap       = 0x8514
	UnpackAlignment             = 0x0CF5
	Viewport                    = 0x0BA2

	// Attribute and uniform types.
	Float     = 0x1406
	FloatVec2 = 0x8B50
	FloatVec3 = 0x8B51
	FloatVec4 = 0x8B52
	FloatMat2 = 0x8B5A
	FloatMat3 = 0x8B5B
	FloatMat4 = 0x8B5C
)
// OpenGL describes the entry points provided by Functions.
//
// All methods operate on the context that is current on the calling thread.
// Calling a method whose symbol did not resolve panics.
type OpenGL interface {
	// Enable enables a server-side capability (e.g., Blend).
	Enable(cap uint32)

	// Disable disables a server-side capability.
	Disable(cap uint32)

	// Finish blocks until all previously issued commands have completed.
	Finish()

	// Flush forces issued commands to start executing in finite time.
	Flush()

	GetBooleanv(pname uint32, data *uint8)
	GetFloatv(pname uint32, data *float32)
	GetIntegerv(pname uint32, data *int32)

	// DrawArrays renders primitives from the enabled vertex attribute arrays.
	DrawArrays(mode uint32, first, count int32)

	// DrawElements renders indexed primitives. offset is a byte offset into the
	// buffer bound to ElementArrayBuffer.
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	// Clear clears buffers to preset values (e.g., ColorBufferBit).
	Clear(mask uint32)

	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearDepthf(depth float32)
	ClearStencil(s int32)

	ColorMask(r, g, b, a bool)
	DepthMask(flag bool)

	BlendColor(r, g, b, a float32)
	BlendEquation(mode uint32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)

	// BlendFunc specifies the pixel arithmetic for blending (e.g., SrcAlpha and OneMinusSrcAlpha).
	BlendFunc(sfactor, dfactor uint32)

	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)

	DepthFunc(fn uint32)
	DepthRange(near, far float64)
	DepthRangef(near, far float32)
	CullFace(mode uint32)
	FrontFace(mode uint32)

	// BindBuffer binds a buffer name obtained from GenBuffers to ArrayBuffer or
	// ElementArrayBuffer. Buffer 0 unbinds the target.
	BindBuffer(target, buffer uint32)

	// BufferData creates the data store of the bound buffer. data may be nil to
	// allocate without uploading.
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	BufferSubData(target uint32, offset, size int, data unsafe.Pointer)
	DeleteBuffers(n int32, buffers *uint32)
	GenBuffers(n int32, buffers *uint32)

	// ActiveTexture selects the texture unit (Texture0 + i) that later texture
	// calls affect.
	ActiveTexture(texture uint32)

	// BindTexture binds a named texture to a texturing target (e.g., Texture2D).
	BindTexture(target, texture uint32)

	CopyTexImage2D(target uint32, level int32, internalFormat uint32, x, y, width, height, border int32)
	CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32)
	DeleteTextures(n int32, textures *uint32)
	GenTextures(n int32, textures *uint32)

	AttachShader(program, shader uint32)
	CompileShader(shader uint32)
	CreateProgram() uint32
	CreateShader(xtype uint32) uint32
	DeleteProgram(program uint32)
	DeleteShader(shader uint32)
	DetachShader(program, shader uint32)

	// BindAttribLocation associates a generic attribute index with a vertex
	// shader input. It takes effect at the next link.
	BindAttribLocation(program, index uint32, name string)

	DisableVertexAttribArray(index uint32)
	EnableVertexAttribArray(index uint32)

	// GetActiveAttrib returns the name, size and type of an active attribute.
	// Names longer than bufSize-1 bytes are truncated.
	GetActiveAttrib(program, index uint32, bufSize int32) (name string, size int32, xtype uint32)
}
