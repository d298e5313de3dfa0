package gfxcore

import (
	"fmt"
	"strings"
)

// TextureFormat identifies a texture/pixel layout in the engine's own closed
// enumeration. Each value has a fixed byte layout understood by the resource
// system; the native-API value for it is produced by the translation layer.
//
// TextureFormatUnknown is the sentinel returned by failed translations.
type TextureFormat uint32

// Texture formats, grouped by channel layout. The declaration order is part of
// the engine ABI: tables elsewhere are indexed by these values.
const (
	// TextureFormatUnknown is the invalid/unset sentinel.
	TextureFormatUnknown TextureFormat = iota

	// 128-bit four-component formats.
	TextureFormatRGBA32Typeless
	TextureFormatRGBA32Float
	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint

	// 96-bit three-component formats.
	TextureFormatRGB32Typeless
	TextureFormatRGB32Float
	TextureFormatRGB32Uint
	TextureFormatRGB32Sint

	// 64-bit four-component 16-bit-channel formats.
	TextureFormatRGBA16Typeless
	TextureFormatRGBA16Float
	TextureFormatRGBA16Unorm
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Snorm
	TextureFormatRGBA16Sint

	// 64-bit two-component 32-bit-channel formats.
	TextureFormatRG32Typeless
	TextureFormatRG32Float
	TextureFormatRG32Uint
	TextureFormatRG32Sint

	// 64-bit depth-stencil family: 32-bit depth, 8-bit stencil, 24 bits unused.
	TextureFormatR32G8X24Typeless
	TextureFormatD32FloatS8X24Uint
	TextureFormatR32FloatX8X24Typeless
	TextureFormatX32TypelessG8X24Uint

	// 32-bit packed 10-10-10-2 formats.
	TextureFormatRGB10A2Typeless
	TextureFormatRGB10A2Unorm
	TextureFormatRGB10A2Uint

	// 32-bit packed 11-11-10 float format.
	TextureFormatR11G11B10Float

	// 32-bit four-component 8-bit-channel formats.
	TextureFormatRGBA8Typeless
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSRGB
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Sint

	// 32-bit two-component 16-bit-channel formats.
	TextureFormatRG16Typeless
	TextureFormatRG16Float
	TextureFormatRG16Unorm
	TextureFormatRG16Uint
	TextureFormatRG16Snorm
	TextureFormatRG16Sint

	// 32-bit single-component formats.
	TextureFormatR32Typeless
	TextureFormatD32Float
	TextureFormatR32Float
	TextureFormatR32Uint
	TextureFormatR32Sint

	// 32-bit depth-stencil family: 24-bit depth, 8-bit stencil.
	TextureFormatR24G8Typeless
	TextureFormatD24UnormS8Uint
	TextureFormatR24UnormX8Typeless
	TextureFormatX24TypelessG8Uint

	// 16-bit two-component 8-bit-channel formats.
	TextureFormatRG8Typeless
	TextureFormatRG8Unorm
	TextureFormatRG8Uint
	TextureFormatRG8Snorm
	TextureFormatRG8Sint

	// 16-bit single-component formats.
	TextureFormatR16Typeless
	TextureFormatR16Float
	TextureFormatD16Unorm
	TextureFormatR16Unorm
	TextureFormatR16Uint
	TextureFormatR16Snorm
	TextureFormatR16Sint

	// 8-bit single-component formats.
	TextureFormatR8Typeless
	TextureFormatR8Unorm
	TextureFormatR8Uint
	TextureFormatR8Snorm
	TextureFormatR8Sint
	TextureFormatA8Unorm

	// 1-bit format.
	TextureFormatR1Unorm

	// Packed shared-exponent and interleaved formats.
	TextureFormatRGB9E5SharedExp
	TextureFormatRG8B8G8Unorm
	TextureFormatG8R8G8B8Unorm

	// Block-compression formats BC1-BC5.
	TextureFormatBC1Typeless
	TextureFormatBC1Unorm
	TextureFormatBC1UnormSRGB
	TextureFormatBC2Typeless
	TextureFormatBC2Unorm
	TextureFormatBC2UnormSRGB
	TextureFormatBC3Typeless
	TextureFormatBC3Unorm
	TextureFormatBC3UnormSRGB
	TextureFormatBC4Typeless
	TextureFormatBC4Unorm
	TextureFormatBC4Snorm
	TextureFormatBC5Typeless
	TextureFormatBC5Unorm
	TextureFormatBC5Snorm

	// 16-bit packed and 32-bit BGRA-ordered formats.
	TextureFormatB5G6R5Unorm
	TextureFormatB5G5R5A1Unorm
	TextureFormatBGRA8Unorm
	TextureFormatBGRX8Unorm
	TextureFormatRGB10XRBiasA2Unorm
	TextureFormatBGRA8Typeless
	TextureFormatBGRA8UnormSRGB
	TextureFormatBGRX8Typeless
	TextureFormatBGRX8UnormSRGB

	// Block-compression formats BC6H and BC7.
	TextureFormatBC6HTypeless
	TextureFormatBC6HUF16
	TextureFormatBC6HSF16
	TextureFormatBC7Typeless
	TextureFormatBC7Unorm
	TextureFormatBC7UnormSRGB

	// Packed and planar video formats.
	TextureFormatAYUV
	TextureFormatNV12
	TextureFormatP010
	TextureFormatP016
	TextureFormatYUY2
	TextureFormatBGRA4Unorm

	// TextureFormatCount is the number of texture formats, including Unknown.
	TextureFormatCount
)

// textureFormatNames is indexed by TextureFormat. Positional: must track the
// const block above exactly.
var textureFormatNames = [TextureFormatCount]string{
	"Unknown",
	"RGBA32Typeless", "RGBA32Float", "RGBA32Uint", "RGBA32Sint",
	"RGB32Typeless", "RGB32Float", "RGB32Uint", "RGB32Sint",
	"RGBA16Typeless", "RGBA16Float", "RGBA16Unorm", "RGBA16Uint", "RGBA16Snorm", "RGBA16Sint",
	"RG32Typeless", "RG32Float", "RG32Uint", "RG32Sint",
	"R32G8X24Typeless", "D32FloatS8X24Uint", "R32FloatX8X24Typeless", "X32TypelessG8X24Uint",
	"RGB10A2Typeless", "RGB10A2Unorm", "RGB10A2Uint",
	"R11G11B10Float",
	"RGBA8Typeless", "RGBA8Unorm", "RGBA8UnormSRGB", "RGBA8Uint", "RGBA8Snorm", "RGBA8Sint",
	"RG16Typeless", "RG16Float", "RG16Unorm", "RG16Uint", "RG16Snorm", "RG16Sint",
	"R32Typeless", "D32Float", "R32Float", "R32Uint", "R32Sint",
	"R24G8Typeless", "D24UnormS8Uint", "R24UnormX8Typeless", "X24TypelessG8Uint",
	"RG8Typeless", "RG8Unorm", "RG8Uint", "RG8Snorm", "RG8Sint",
	"R16Typeless", "R16Float", "D16Unorm", "R16Unorm", "R16Uint", "R16Snorm", "R16Sint",
	"R8Typeless", "R8Unorm", "R8Uint", "R8Snorm", "R8Sint", "A8Unorm",
	"R1Unorm",
	"RGB9E5SharedExp", "RG8B8G8Unorm", "G8R8G8B8Unorm",
	"BC1Typeless", "BC1Unorm", "BC1UnormSRGB",
	"BC2Typeless", "BC2Unorm", "BC2UnormSRGB",
	"BC3Typeless", "BC3Unorm", "BC3UnormSRGB",
	"BC4Typeless", "BC4Unorm", "BC4Snorm",
	"BC5Typeless", "BC5Unorm", "BC5Snorm",
	"B5G6R5Unorm", "B5G5R5A1Unorm", "BGRA8Unorm", "BGRX8Unorm",
	"RGB10XRBiasA2Unorm",
	"BGRA8Typeless", "BGRA8UnormSRGB", "BGRX8Typeless", "BGRX8UnormSRGB",
	"BC6HTypeless", "BC6HUF16", "BC6HSF16",
	"BC7Typeless", "BC7Unorm", "BC7UnormSRGB",
	"AYUV", "NV12", "P010", "P016", "YUY2", "BGRA4Unorm",
}

// String returns the format's engine name, or "TextureFormat(n)" for values
// outside the enumeration.
func (f TextureFormat) String() string {
	if f < TextureFormatCount {
		return textureFormatNames[f]
	}
	return fmt.Sprintf("TextureFormat(%d)", uint32(f))
}

// ColorSpace identifies an abstract color space: a combination of primaries and
// transfer function, without any native-API range or chroma-siting detail.
type ColorSpace uint32

// Color spaces.
const (
	// ColorSpaceUnknown is the invalid/unset sentinel.
	ColorSpaceUnknown ColorSpace = iota

	// ColorSpaceSRGBNonlinear is sRGB primaries with the sRGB transfer function.
	ColorSpaceSRGBNonlinear

	// ColorSpaceExtendedSRGBLinear is sRGB primaries, linear, with values
	// permitted outside [0,1].
	ColorSpaceExtendedSRGBLinear

	// ColorSpaceExtendedSRGBNonlinear is sRGB primaries with the sRGB transfer
	// function and values permitted outside [0,1].
	ColorSpaceExtendedSRGBNonlinear

	// ColorSpaceDisplayP3Nonlinear is Display-P3 primaries with the sRGB
	// transfer function.
	ColorSpaceDisplayP3Nonlinear

	// ColorSpaceDisplayP3Linear is Display-P3 primaries, linear.
	ColorSpaceDisplayP3Linear

	// ColorSpaceDCIP3Nonlinear is DCI-P3 primaries with gamma 2.6.
	ColorSpaceDCIP3Nonlinear

	// ColorSpaceBT709Linear is BT.709 primaries, linear.
	ColorSpaceBT709Linear

	// ColorSpaceBT709Nonlinear is BT.709 primaries with the BT.709 transfer
	// function.
	ColorSpaceBT709Nonlinear

	// ColorSpaceBT2020Linear is BT.2020 primaries, linear.
	ColorSpaceBT2020Linear

	// ColorSpaceHDR10ST2084 is BT.2020 primaries with the ST.2084 (PQ) transfer
	// function.
	ColorSpaceHDR10ST2084

	// ColorSpaceHDR10HLG is BT.2020 primaries with the hybrid log-gamma
	// transfer function.
	ColorSpaceHDR10HLG

	// ColorSpaceDolbyVision is the Dolby Vision proprietary encoding.
	ColorSpaceDolbyVision

	// ColorSpaceAdobeRGBNonlinear is Adobe RGB primaries with gamma 2.2.
	ColorSpaceAdobeRGBNonlinear

	// ColorSpaceAdobeRGBLinear is Adobe RGB primaries, linear.
	ColorSpaceAdobeRGBLinear

	// ColorSpacePassThrough applies no color transformation.
	ColorSpacePassThrough

	// ColorSpaceSCRGBLinear is scRGB: sRGB primaries, linear, extended range
	// via a float surface format.
	ColorSpaceSCRGBLinear

	// ColorSpaceCount is the number of color spaces, including Unknown.
	ColorSpaceCount
)

var colorSpaceNames = [ColorSpaceCount]string{
	"Unknown",
	"SRGBNonlinear",
	"ExtendedSRGBLinear",
	"ExtendedSRGBNonlinear",
	"DisplayP3Nonlinear",
	"DisplayP3Linear",
	"DCIP3Nonlinear",
	"BT709Linear",
	"BT709Nonlinear",
	"BT2020Linear",
	"HDR10ST2084",
	"HDR10HLG",
	"DolbyVision",
	"AdobeRGBNonlinear",
	"AdobeRGBLinear",
	"PassThrough",
	"SCRGBLinear",
}

// String returns the color space's engine name, or "ColorSpace(n)" for values
// outside the enumeration.
func (cs ColorSpace) String() string {
	if cs < ColorSpaceCount {
		return colorSpaceNames[cs]
	}
	return fmt.Sprintf("ColorSpace(%d)", uint32(cs))
}

// ValueType identifies the numeric type of a single vertex or texture
// component.
type ValueType uint32

// Value types.
const (
	// ValueTypeUndefined is the invalid/unset sentinel.
	ValueTypeUndefined ValueType = iota

	// ValueTypeInt8 is a signed 8-bit integer.
	ValueTypeInt8

	// ValueTypeInt16 is a signed 16-bit integer.
	ValueTypeInt16

	// ValueTypeInt32 is a signed 32-bit integer.
	ValueTypeInt32

	// ValueTypeUint8 is an unsigned 8-bit integer.
	ValueTypeUint8

	// ValueTypeUint16 is an unsigned 16-bit integer.
	ValueTypeUint16

	// ValueTypeUint32 is an unsigned 32-bit integer.
	ValueTypeUint32

	// ValueTypeFloat16 is a half-precision float.
	ValueTypeFloat16

	// ValueTypeFloat32 is a single-precision float.
	ValueTypeFloat32

	// ValueTypeFloat64 is a double-precision float. It has no texture format
	// representation; it exists for buffer layouts only.
	ValueTypeFloat64

	// ValueTypeCount is the number of value types, including Undefined.
	ValueTypeCount
)

var valueTypeNames = [ValueTypeCount]string{
	"Undefined",
	"Int8", "Int16", "Int32",
	"Uint8", "Uint16", "Uint32",
	"Float16", "Float32", "Float64",
}

// String returns the value type's engine name, or "ValueType(n)" for values
// outside the enumeration.
func (vt ValueType) String() string {
	if vt < ValueTypeCount {
		return valueTypeNames[vt]
	}
	return fmt.Sprintf("ValueType(%d)", uint32(vt))
}

// BindFlags is a bitmask specifying the purposes a resource may be bound for.
// The flags a resource is created with select which typeless-view variant of a
// native format is correct.
type BindFlags uint32

// Bind flags.
const (
	// BindNone indicates no binding.
	BindNone BindFlags = 0

	// BindVertexBuffer indicates the resource can be bound as a vertex buffer.
	BindVertexBuffer BindFlags = 1 << 0

	// BindIndexBuffer indicates the resource can be bound as an index buffer.
	BindIndexBuffer BindFlags = 1 << 1

	// BindUniformBuffer indicates the resource can be bound as a uniform
	// (constant) buffer.
	BindUniformBuffer BindFlags = 1 << 2

	// BindShaderResource indicates the resource can be bound as a shader
	// resource view.
	BindShaderResource BindFlags = 1 << 3

	// BindStreamOutput indicates the resource can be a stream-output target.
	BindStreamOutput BindFlags = 1 << 4

	// BindRenderTarget indicates the resource can be bound as a render target.
	BindRenderTarget BindFlags = 1 << 5

	// BindDepthStencil indicates the resource can be bound as a depth-stencil
	// target.
	BindDepthStencil BindFlags = 1 << 6

	// BindUnorderedAccess indicates the resource can be bound as an unordered
	// access view.
	BindUnorderedAccess BindFlags = 1 << 7

	// BindIndirectDrawArgs indicates the resource can source indirect draw or
	// dispatch arguments.
	BindIndirectDrawArgs BindFlags = 1 << 8
)

var bindFlagNames = []struct {
	flag BindFlags
	name string
}{
	{BindVertexBuffer, "VertexBuffer"},
	{BindIndexBuffer, "IndexBuffer"},
	{BindUniformBuffer, "UniformBuffer"},
	{BindShaderResource, "ShaderResource"},
	{BindStreamOutput, "StreamOutput"},
	{BindRenderTarget, "RenderTarget"},
	{BindDepthStencil, "DepthStencil"},
	{BindUnorderedAccess, "UnorderedAccess"},
	{BindIndirectDrawArgs, "IndirectDrawArgs"},
}

// String returns the set flags joined with "|", "None" for the zero value, or
// includes "BindFlags(0x...)" for unknown bits.
func (bf BindFlags) String() string {
	if bf == BindNone {
		return "None"
	}
	var sb strings.Builder
	rest := bf
	for _, e := range bindFlagNames {
		if rest&e.flag != 0 {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(e.name)
			rest &^= e.flag
		}
	}
	if rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "BindFlags(0x%X)", uint32(rest))
	}
	return sb.String()
}
