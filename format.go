package d3dbase

import (
	"fmt"
	"sync"

	"github.com/gogpu/d3dbase/dxgi"
	"github.com/gogpu/d3dbase/gfxcore"
)

// CorrectDXGIFormat narrows or widens a DXGI format according to the bind
// flags a resource is created with. Depth-stencil bit layouts come in four
// equivalence classes (32-bit depth, 24-bit depth + 8-bit stencil, 16-bit
// depth, 32-bit depth + 8-bit stencil with padding); within a class the
// correct member depends on the binding purpose:
//
//   - depth-stencil combined with any other usage: the typeless member, so
//     separate views can be created per purpose. A format outside the four
//     classes cannot satisfy such flags and is reported as a violation; it is
//     returned unchanged.
//   - depth-stencil as the sole usage: the concrete depth or depth-stencil
//     member.
//   - shader-resource-only or unordered-access-only: the color-readable
//     member, excluding stencil.
//
// Every other format passes through unchanged. Reapplying the function with
// the same flags is a no-op.
func CorrectDXGIFormat(format dxgi.Format, bindFlags gfxcore.BindFlags) dxgi.Format {
	if bindFlags&gfxcore.BindDepthStencil != 0 && bindFlags != gfxcore.BindDepthStencil {
		switch format {
		case dxgi.FormatR32Typeless,
			dxgi.FormatR32Float,
			dxgi.FormatD32Float:
			format = dxgi.FormatR32Typeless

		case dxgi.FormatR24G8Typeless,
			dxgi.FormatD24UnormS8Uint,
			dxgi.FormatR24UnormX8Typeless,
			dxgi.FormatX24TypelessG8Uint:
			format = dxgi.FormatR24G8Typeless

		case dxgi.FormatR16Typeless,
			dxgi.FormatR16Unorm,
			dxgi.FormatD16Unorm:
			format = dxgi.FormatR16Typeless

		case dxgi.FormatR32G8X24Typeless,
			dxgi.FormatD32FloatS8X24Uint,
			dxgi.FormatR32FloatX8X24Typeless,
			dxgi.FormatX32TypelessG8X24Uint:
			format = dxgi.FormatR32G8X24Typeless

		default:
			violation("unsupported depth-stencil format",
				"format", format, "bindFlags", bindFlags)
		}
	}

	if bindFlags == gfxcore.BindDepthStencil {
		switch format {
		case dxgi.FormatR32Typeless,
			dxgi.FormatR32Float:
			format = dxgi.FormatD32Float

		case dxgi.FormatR24G8Typeless,
			dxgi.FormatR24UnormX8Typeless,
			dxgi.FormatX24TypelessG8Uint:
			format = dxgi.FormatD24UnormS8Uint

		case dxgi.FormatR16Typeless,
			dxgi.FormatR16Unorm:
			format = dxgi.FormatD16Unorm

		case dxgi.FormatR32G8X24Typeless,
			dxgi.FormatR32FloatX8X24Typeless,
			dxgi.FormatX32TypelessG8X24Uint:
			format = dxgi.FormatD32FloatS8X24Uint
		}
	}

	if bindFlags == gfxcore.BindShaderResource || bindFlags == gfxcore.BindUnorderedAccess {
		switch format {
		case dxgi.FormatR32Typeless,
			dxgi.FormatD32Float:
			format = dxgi.FormatR32Float

		case dxgi.FormatR24G8Typeless,
			dxgi.FormatD24UnormS8Uint:
			format = dxgi.FormatR24UnormX8Typeless

		case dxgi.FormatR16Typeless,
			dxgi.FormatD16Unorm:
			format = dxgi.FormatR16Unorm

		case dxgi.FormatR32G8X24Typeless,
			dxgi.FormatD32FloatS8X24Uint:
			format = dxgi.FormatR32FloatX8X24Typeless
		}
	}

	return format
}

// texFormatToDXGI is the forward translation table, indexed by
// gfxcore.TextureFormat. The base mapping is injective: no two engine formats
// share a DXGI value, which is what makes the derived reverse table a true
// inverse. Collisions happen only later, through CorrectDXGIFormat.
var texFormatToDXGI = [gfxcore.TextureFormatCount]dxgi.Format{
	gfxcore.TextureFormatUnknown: dxgi.FormatUnknown,

	gfxcore.TextureFormatRGBA32Typeless: dxgi.FormatR32G32B32A32Typeless,
	gfxcore.TextureFormatRGBA32Float:    dxgi.FormatR32G32B32A32Float,
	gfxcore.TextureFormatRGBA32Uint:     dxgi.FormatR32G32B32A32Uint,
	gfxcore.TextureFormatRGBA32Sint:     dxgi.FormatR32G32B32A32Sint,

	gfxcore.TextureFormatRGB32Typeless: dxgi.FormatR32G32B32Typeless,
	gfxcore.TextureFormatRGB32Float:    dxgi.FormatR32G32B32Float,
	gfxcore.TextureFormatRGB32Uint:     dxgi.FormatR32G32B32Uint,
	gfxcore.TextureFormatRGB32Sint:     dxgi.FormatR32G32B32Sint,

	gfxcore.TextureFormatRGBA16Typeless: dxgi.FormatR16G16B16A16Typeless,
	gfxcore.TextureFormatRGBA16Float:    dxgi.FormatR16G16B16A16Float,
	gfxcore.TextureFormatRGBA16Unorm:    dxgi.FormatR16G16B16A16Unorm,
	gfxcore.TextureFormatRGBA16Uint:     dxgi.FormatR16G16B16A16Uint,
	gfxcore.TextureFormatRGBA16Snorm:    dxgi.FormatR16G16B16A16Snorm,
	gfxcore.TextureFormatRGBA16Sint:     dxgi.FormatR16G16B16A16Sint,

	gfxcore.TextureFormatRG32Typeless: dxgi.FormatR32G32Typeless,
	gfxcore.TextureFormatRG32Float:    dxgi.FormatR32G32Float,
	gfxcore.TextureFormatRG32Uint:     dxgi.FormatR32G32Uint,
	gfxcore.TextureFormatRG32Sint:     dxgi.FormatR32G32Sint,

	gfxcore.TextureFormatR32G8X24Typeless:      dxgi.FormatR32G8X24Typeless,
	gfxcore.TextureFormatD32FloatS8X24Uint:     dxgi.FormatD32FloatS8X24Uint,
	gfxcore.TextureFormatR32FloatX8X24Typeless: dxgi.FormatR32FloatX8X24Typeless,
	gfxcore.TextureFormatX32TypelessG8X24Uint:  dxgi.FormatX32TypelessG8X24Uint,

	gfxcore.TextureFormatRGB10A2Typeless: dxgi.FormatR10G10B10A2Typeless,
	gfxcore.TextureFormatRGB10A2Unorm:    dxgi.FormatR10G10B10A2Unorm,
	gfxcore.TextureFormatRGB10A2Uint:     dxgi.FormatR10G10B10A2Uint,

	gfxcore.TextureFormatR11G11B10Float: dxgi.FormatR11G11B10Float,

	gfxcore.TextureFormatRGBA8Typeless:  dxgi.FormatR8G8B8A8Typeless,
	gfxcore.TextureFormatRGBA8Unorm:     dxgi.FormatR8G8B8A8Unorm,
	gfxcore.TextureFormatRGBA8UnormSRGB: dxgi.FormatR8G8B8A8UnormSRGB,
	gfxcore.TextureFormatRGBA8Uint:      dxgi.FormatR8G8B8A8Uint,
	gfxcore.TextureFormatRGBA8Snorm:     dxgi.FormatR8G8B8A8Snorm,
	gfxcore.TextureFormatRGBA8Sint:      dxgi.FormatR8G8B8A8Sint,

	gfxcore.TextureFormatRG16Typeless: dxgi.FormatR16G16Typeless,
	gfxcore.TextureFormatRG16Float:    dxgi.FormatR16G16Float,
	gfxcore.TextureFormatRG16Unorm:    dxgi.FormatR16G16Unorm,
	gfxcore.TextureFormatRG16Uint:     dxgi.FormatR16G16Uint,
	gfxcore.TextureFormatRG16Snorm:    dxgi.FormatR16G16Snorm,
	gfxcore.TextureFormatRG16Sint:     dxgi.FormatR16G16Sint,

	gfxcore.TextureFormatR32Typeless: dxgi.FormatR32Typeless,
	gfxcore.TextureFormatD32Float:    dxgi.FormatD32Float,
	gfxcore.TextureFormatR32Float:    dxgi.FormatR32Float,
	gfxcore.TextureFormatR32Uint:     dxgi.FormatR32Uint,
	gfxcore.TextureFormatR32Sint:     dxgi.FormatR32Sint,

	gfxcore.TextureFormatR24G8Typeless:      dxgi.FormatR24G8Typeless,
	gfxcore.TextureFormatD24UnormS8Uint:     dxgi.FormatD24UnormS8Uint,
	gfxcore.TextureFormatR24UnormX8Typeless: dxgi.FormatR24UnormX8Typeless,
	gfxcore.TextureFormatX24TypelessG8Uint:  dxgi.FormatX24TypelessG8Uint,

	gfxcore.TextureFormatRG8Typeless: dxgi.FormatR8G8Typeless,
	gfxcore.TextureFormatRG8Unorm:    dxgi.FormatR8G8Unorm,
	gfxcore.TextureFormatRG8Uint:     dxgi.FormatR8G8Uint,
	gfxcore.TextureFormatRG8Snorm:    dxgi.FormatR8G8Snorm,
	gfxcore.TextureFormatRG8Sint:     dxgi.FormatR8G8Sint,

	gfxcore.TextureFormatR16Typeless: dxgi.FormatR16Typeless,
	gfxcore.TextureFormatR16Float:    dxgi.FormatR16Float,
	gfxcore.TextureFormatD16Unorm:    dxgi.FormatD16Unorm,
	gfxcore.TextureFormatR16Unorm:    dxgi.FormatR16Unorm,
	gfxcore.TextureFormatR16Uint:     dxgi.FormatR16Uint,
	gfxcore.TextureFormatR16Snorm:    dxgi.FormatR16Snorm,
	gfxcore.TextureFormatR16Sint:     dxgi.FormatR16Sint,

	gfxcore.TextureFormatR8Typeless: dxgi.FormatR8Typeless,
	gfxcore.TextureFormatR8Unorm:    dxgi.FormatR8Unorm,
	gfxcore.TextureFormatR8Uint:     dxgi.FormatR8Uint,
	gfxcore.TextureFormatR8Snorm:    dxgi.FormatR8Snorm,
	gfxcore.TextureFormatR8Sint:     dxgi.FormatR8Sint,
	gfxcore.TextureFormatA8Unorm:    dxgi.FormatA8Unorm,

	gfxcore.TextureFormatR1Unorm:         dxgi.FormatR1Unorm,
	gfxcore.TextureFormatRGB9E5SharedExp: dxgi.FormatR9G9B9E5SharedExp,
	gfxcore.TextureFormatRG8B8G8Unorm:    dxgi.FormatR8G8B8G8Unorm,
	gfxcore.TextureFormatG8R8G8B8Unorm:   dxgi.FormatG8R8G8B8Unorm,

	gfxcore.TextureFormatBC1Typeless:  dxgi.FormatBC1Typeless,
	gfxcore.TextureFormatBC1Unorm:     dxgi.FormatBC1Unorm,
	gfxcore.TextureFormatBC1UnormSRGB: dxgi.FormatBC1UnormSRGB,
	gfxcore.TextureFormatBC2Typeless:  dxgi.FormatBC2Typeless,
	gfxcore.TextureFormatBC2Unorm:     dxgi.FormatBC2Unorm,
	gfxcore.TextureFormatBC2UnormSRGB: dxgi.FormatBC2UnormSRGB,
	gfxcore.TextureFormatBC3Typeless:  dxgi.FormatBC3Typeless,
	gfxcore.TextureFormatBC3Unorm:     dxgi.FormatBC3Unorm,
	gfxcore.TextureFormatBC3UnormSRGB: dxgi.FormatBC3UnormSRGB,
	gfxcore.TextureFormatBC4Typeless:  dxgi.FormatBC4Typeless,
	gfxcore.TextureFormatBC4Unorm:     dxgi.FormatBC4Unorm,
	gfxcore.TextureFormatBC4Snorm:     dxgi.FormatBC4Snorm,
	gfxcore.TextureFormatBC5Typeless:  dxgi.FormatBC5Typeless,
	gfxcore.TextureFormatBC5Unorm:     dxgi.FormatBC5Unorm,
	gfxcore.TextureFormatBC5Snorm:     dxgi.FormatBC5Snorm,

	gfxcore.TextureFormatB5G6R5Unorm:   dxgi.FormatB5G6R5Unorm,
	gfxcore.TextureFormatB5G5R5A1Unorm: dxgi.FormatB5G5R5A1Unorm,
	gfxcore.TextureFormatBGRA8Unorm:    dxgi.FormatB8G8R8A8Unorm,
	gfxcore.TextureFormatBGRX8Unorm:    dxgi.FormatB8G8R8X8Unorm,

	gfxcore.TextureFormatRGB10XRBiasA2Unorm: dxgi.FormatR10G10B10XRBiasA2Unorm,

	gfxcore.TextureFormatBGRA8Typeless:  dxgi.FormatB8G8R8A8Typeless,
	gfxcore.TextureFormatBGRA8UnormSRGB: dxgi.FormatB8G8R8A8UnormSRGB,
	gfxcore.TextureFormatBGRX8Typeless:  dxgi.FormatB8G8R8X8Typeless,
	gfxcore.TextureFormatBGRX8UnormSRGB: dxgi.FormatB8G8R8X8UnormSRGB,

	gfxcore.TextureFormatBC6HTypeless: dxgi.FormatBC6HTypeless,
	gfxcore.TextureFormatBC6HUF16:     dxgi.FormatBC6HUF16,
	gfxcore.TextureFormatBC6HSF16:     dxgi.FormatBC6HSF16,
	gfxcore.TextureFormatBC7Typeless:  dxgi.FormatBC7Typeless,
	gfxcore.TextureFormatBC7Unorm:     dxgi.FormatBC7Unorm,
	gfxcore.TextureFormatBC7UnormSRGB: dxgi.FormatBC7UnormSRGB,

	gfxcore.TextureFormatAYUV:       dxgi.FormatAYUV,
	gfxcore.TextureFormatNV12:       dxgi.FormatNV12,
	gfxcore.TextureFormatP010:       dxgi.FormatP010,
	gfxcore.TextureFormatP016:       dxgi.FormatP016,
	gfxcore.TextureFormatYUY2:       dxgi.FormatYUY2,
	gfxcore.TextureFormatBGRA4Unorm: dxgi.FormatB4G4R4A4Unorm,
}

// init verifies the forward table at construction: every engine format beyond
// Unknown must resolve to a non-Unknown DXGI value. A hole means the table is
// out of sync with the engine's format enumeration, which no caller can
// recover from.
func init() {
	for f := gfxcore.TextureFormatUnknown + 1; f < gfxcore.TextureFormatCount; f++ {
		if texFormatToDXGI[f] == dxgi.FormatUnknown {
			panic(fmt.Sprintf("d3dbase: texture format %v has no DXGI mapping", f))
		}
	}
}

// TextureFormatToDXGI translates an engine texture format to its DXGI format.
// When bindFlags is non-zero the result additionally goes through
// CorrectDXGIFormat, so depth-stencil and mixed-usage resources receive the
// view-compatible variant.
//
// An out-of-range format is reported as a contract violation and yields
// dxgi.FormatUnknown.
func TextureFormatToDXGI(texFormat gfxcore.TextureFormat, bindFlags gfxcore.BindFlags) dxgi.Format {
	if texFormat >= gfxcore.TextureFormatCount {
		violation("texture format is out of allowed range",
			"format", uint32(texFormat), "max", uint32(gfxcore.TextureFormatCount-1))
		return dxgi.FormatUnknown
	}
	format := texFormatToDXGI[texFormat]
	if bindFlags != 0 {
		format = CorrectDXGIFormat(format, bindFlags)
	}
	return format
}

// The reverse table is derived, not hand-authored: built once on first use by
// walking every engine format in ascending order and inverting the base
// (uncorrected) forward mapping. sync.Once gives every reader, including
// concurrent first callers, a happens-before edge to the fully populated
// table; afterward it is immutable and read without synchronization.
var (
	dxgiToTexOnce   sync.Once
	dxgiToTexFormat [dxgi.FormatB4G4R4A4Unorm + 1]gfxcore.TextureFormat
)

func buildDXGIToTexFormat() {
	for f := gfxcore.TextureFormatUnknown; f < gfxcore.TextureFormatCount; f++ {
		dxgiToTexFormat[texFormatToDXGI[f]] = f
	}
}

// TextureFormatFromDXGI translates a DXGI format back to the engine texture
// format whose base mapping produces it. Because the base forward mapping is
// injective, this is a true inverse of TextureFormatToDXGI with zero bind
// flags; corrected (typeless-promoted) formats still resolve, as every
// typeless class member is itself an engine format.
//
// A value outside [FormatUnknown, FormatB4G4R4A4Unorm], or one the engine has
// no format for (Y410, 420_OPAQUE, palette formats, ...), is reported as a
// contract violation and yields gfxcore.TextureFormatUnknown.
func TextureFormatFromDXGI(dxgiFormat dxgi.Format) gfxcore.TextureFormat {
	if dxgiFormat > dxgi.FormatB4G4R4A4Unorm {
		violation("DXGI format is out of allowed range",
			"format", uint32(dxgiFormat), "max", uint32(dxgi.FormatB4G4R4A4Unorm))
		return gfxcore.TextureFormatUnknown
	}

	dxgiToTexOnce.Do(buildDXGIToTexFormat)

	texFormat := dxgiToTexFormat[dxgiFormat]
	if texFormat == gfxcore.TextureFormatUnknown && dxgiFormat != dxgi.FormatUnknown {
		violation("unsupported DXGI format", "format", dxgiFormat)
	}
	return texFormat
}
