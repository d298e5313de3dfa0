package dxgi

import "fmt"

// Format is the native DXGI_FORMAT enumeration. The integer values are fixed
// by the platform headers; FormatUnknown (0) is the sentinel.
type Format uint32

// DXGI_FORMAT values 0 through 115. The block is contiguous; tests pin
// FormatBC7UnormSRGB == 99 and FormatB4G4R4A4Unorm == 115 as anchors.
const (
	FormatUnknown Format = iota // DXGI_FORMAT_UNKNOWN

	FormatR32G32B32A32Typeless // DXGI_FORMAT_R32G32B32A32_TYPELESS
	FormatR32G32B32A32Float    // DXGI_FORMAT_R32G32B32A32_FLOAT
	FormatR32G32B32A32Uint     // DXGI_FORMAT_R32G32B32A32_UINT
	FormatR32G32B32A32Sint     // DXGI_FORMAT_R32G32B32A32_SINT

	FormatR32G32B32Typeless // DXGI_FORMAT_R32G32B32_TYPELESS
	FormatR32G32B32Float    // DXGI_FORMAT_R32G32B32_FLOAT
	FormatR32G32B32Uint     // DXGI_FORMAT_R32G32B32_UINT
	FormatR32G32B32Sint     // DXGI_FORMAT_R32G32B32_SINT

	FormatR16G16B16A16Typeless // DXGI_FORMAT_R16G16B16A16_TYPELESS
	FormatR16G16B16A16Float    // DXGI_FORMAT_R16G16B16A16_FLOAT
	FormatR16G16B16A16Unorm    // DXGI_FORMAT_R16G16B16A16_UNORM
	FormatR16G16B16A16Uint     // DXGI_FORMAT_R16G16B16A16_UINT
	FormatR16G16B16A16Snorm    // DXGI_FORMAT_R16G16B16A16_SNORM
	FormatR16G16B16A16Sint     // DXGI_FORMAT_R16G16B16A16_SINT

	FormatR32G32Typeless // DXGI_FORMAT_R32G32_TYPELESS
	FormatR32G32Float    // DXGI_FORMAT_R32G32_FLOAT
	FormatR32G32Uint     // DXGI_FORMAT_R32G32_UINT
	FormatR32G32Sint     // DXGI_FORMAT_R32G32_SINT

	FormatR32G8X24Typeless      // DXGI_FORMAT_R32G8X24_TYPELESS
	FormatD32FloatS8X24Uint     // DXGI_FORMAT_D32_FLOAT_S8X24_UINT
	FormatR32FloatX8X24Typeless // DXGI_FORMAT_R32_FLOAT_X8X24_TYPELESS
	FormatX32TypelessG8X24Uint  // DXGI_FORMAT_X32_TYPELESS_G8X24_UINT

	FormatR10G10B10A2Typeless // DXGI_FORMAT_R10G10B10A2_TYPELESS
	FormatR10G10B10A2Unorm    // DXGI_FORMAT_R10G10B10A2_UNORM
	FormatR10G10B10A2Uint     // DXGI_FORMAT_R10G10B10A2_UINT

	FormatR11G11B10Float // DXGI_FORMAT_R11G11B10_FLOAT

	FormatR8G8B8A8Typeless  // DXGI_FORMAT_R8G8B8A8_TYPELESS
	FormatR8G8B8A8Unorm     // DXGI_FORMAT_R8G8B8A8_UNORM
	FormatR8G8B8A8UnormSRGB // DXGI_FORMAT_R8G8B8A8_UNORM_SRGB
	FormatR8G8B8A8Uint      // DXGI_FORMAT_R8G8B8A8_UINT
	FormatR8G8B8A8Snorm     // DXGI_FORMAT_R8G8B8A8_SNORM
	FormatR8G8B8A8Sint      // DXGI_FORMAT_R8G8B8A8_SINT

	FormatR16G16Typeless // DXGI_FORMAT_R16G16_TYPELESS
	FormatR16G16Float    // DXGI_FORMAT_R16G16_FLOAT
	FormatR16G16Unorm    // DXGI_FORMAT_R16G16_UNORM
	FormatR16G16Uint     // DXGI_FORMAT_R16G16_UINT
	FormatR16G16Snorm    // DXGI_FORMAT_R16G16_SNORM
	FormatR16G16Sint     // DXGI_FORMAT_R16G16_SINT

	FormatR32Typeless // DXGI_FORMAT_R32_TYPELESS
	FormatD32Float    // DXGI_FORMAT_D32_FLOAT
	FormatR32Float    // DXGI_FORMAT_R32_FLOAT
	FormatR32Uint     // DXGI_FORMAT_R32_UINT
	FormatR32Sint     // DXGI_FORMAT_R32_SINT

	FormatR24G8Typeless      // DXGI_FORMAT_R24G8_TYPELESS
	FormatD24UnormS8Uint     // DXGI_FORMAT_D24_UNORM_S8_UINT
	FormatR24UnormX8Typeless // DXGI_FORMAT_R24_UNORM_X8_TYPELESS
	FormatX24TypelessG8Uint  // DXGI_FORMAT_X24_TYPELESS_G8_UINT

	FormatR8G8Typeless // DXGI_FORMAT_R8G8_TYPELESS
	FormatR8G8Unorm    // DXGI_FORMAT_R8G8_UNORM
	FormatR8G8Uint     // DXGI_FORMAT_R8G8_UINT
	FormatR8G8Snorm    // DXGI_FORMAT_R8G8_SNORM
	FormatR8G8Sint     // DXGI_FORMAT_R8G8_SINT

	FormatR16Typeless // DXGI_FORMAT_R16_TYPELESS
	FormatR16Float    // DXGI_FORMAT_R16_FLOAT
	FormatD16Unorm    // DXGI_FORMAT_D16_UNORM
	FormatR16Unorm    // DXGI_FORMAT_R16_UNORM
	FormatR16Uint     // DXGI_FORMAT_R16_UINT
	FormatR16Snorm    // DXGI_FORMAT_R16_SNORM
	FormatR16Sint     // DXGI_FORMAT_R16_SINT

	FormatR8Typeless // DXGI_FORMAT_R8_TYPELESS
	FormatR8Unorm    // DXGI_FORMAT_R8_UNORM
	FormatR8Uint     // DXGI_FORMAT_R8_UINT
	FormatR8Snorm    // DXGI_FORMAT_R8_SNORM
	FormatR8Sint     // DXGI_FORMAT_R8_SINT
	FormatA8Unorm    // DXGI_FORMAT_A8_UNORM

	FormatR1Unorm // DXGI_FORMAT_R1_UNORM

	FormatR9G9B9E5SharedExp // DXGI_FORMAT_R9G9B9E5_SHAREDEXP
	FormatR8G8B8G8Unorm     // DXGI_FORMAT_R8G8_B8G8_UNORM
	FormatG8R8G8B8Unorm     // DXGI_FORMAT_G8R8_G8B8_UNORM

	FormatBC1Typeless  // DXGI_FORMAT_BC1_TYPELESS
	FormatBC1Unorm     // DXGI_FORMAT_BC1_UNORM
	FormatBC1UnormSRGB // DXGI_FORMAT_BC1_UNORM_SRGB
	FormatBC2Typeless  // DXGI_FORMAT_BC2_TYPELESS
	FormatBC2Unorm     // DXGI_FORMAT_BC2_UNORM
	FormatBC2UnormSRGB // DXGI_FORMAT_BC2_UNORM_SRGB
	FormatBC3Typeless  // DXGI_FORMAT_BC3_TYPELESS
	FormatBC3Unorm     // DXGI_FORMAT_BC3_UNORM
	FormatBC3UnormSRGB // DXGI_FORMAT_BC3_UNORM_SRGB
	FormatBC4Typeless  // DXGI_FORMAT_BC4_TYPELESS
	FormatBC4Unorm     // DXGI_FORMAT_BC4_UNORM
	FormatBC4Snorm     // DXGI_FORMAT_BC4_SNORM
	FormatBC5Typeless  // DXGI_FORMAT_BC5_TYPELESS
	FormatBC5Unorm     // DXGI_FORMAT_BC5_UNORM
	FormatBC5Snorm     // DXGI_FORMAT_BC5_SNORM

	FormatB5G6R5Unorm   // DXGI_FORMAT_B5G6R5_UNORM
	FormatB5G5R5A1Unorm // DXGI_FORMAT_B5G5R5A1_UNORM
	FormatB8G8R8A8Unorm // DXGI_FORMAT_B8G8R8A8_UNORM
	FormatB8G8R8X8Unorm // DXGI_FORMAT_B8G8R8X8_UNORM

	FormatR10G10B10XRBiasA2Unorm // DXGI_FORMAT_R10G10B10_XR_BIAS_A2_UNORM

	FormatB8G8R8A8Typeless  // DXGI_FORMAT_B8G8R8A8_TYPELESS
	FormatB8G8R8A8UnormSRGB // DXGI_FORMAT_B8G8R8A8_UNORM_SRGB
	FormatB8G8R8X8Typeless  // DXGI_FORMAT_B8G8R8X8_TYPELESS
	FormatB8G8R8X8UnormSRGB // DXGI_FORMAT_B8G8R8X8_UNORM_SRGB

	FormatBC6HTypeless // DXGI_FORMAT_BC6H_TYPELESS
	FormatBC6HUF16     // DXGI_FORMAT_BC6H_UF16
	FormatBC6HSF16     // DXGI_FORMAT_BC6H_SF16
	FormatBC7Typeless  // DXGI_FORMAT_BC7_TYPELESS
	FormatBC7Unorm     // DXGI_FORMAT_BC7_UNORM
	FormatBC7UnormSRGB // DXGI_FORMAT_BC7_UNORM_SRGB

	FormatAYUV      // DXGI_FORMAT_AYUV
	FormatY410      // DXGI_FORMAT_Y410
	FormatY416      // DXGI_FORMAT_Y416
	FormatNV12      // DXGI_FORMAT_NV12
	FormatP010      // DXGI_FORMAT_P010
	FormatP016      // DXGI_FORMAT_P016
	Format420Opaque // DXGI_FORMAT_420_OPAQUE
	FormatYUY2      // DXGI_FORMAT_YUY2
	FormatY210      // DXGI_FORMAT_Y210
	FormatY216      // DXGI_FORMAT_Y216
	FormatNV11      // DXGI_FORMAT_NV11
	FormatAI44      // DXGI_FORMAT_AI44
	FormatIA44      // DXGI_FORMAT_IA44
	FormatP8        // DXGI_FORMAT_P8
	FormatA8P8      // DXGI_FORMAT_A8P8

	FormatB4G4R4A4Unorm // DXGI_FORMAT_B4G4R4A4_UNORM

	formatCount
)

var formatNames = [formatCount]string{
	"UNKNOWN",
	"R32G32B32A32_TYPELESS", "R32G32B32A32_FLOAT", "R32G32B32A32_UINT", "R32G32B32A32_SINT",
	"R32G32B32_TYPELESS", "R32G32B32_FLOAT", "R32G32B32_UINT", "R32G32B32_SINT",
	"R16G16B16A16_TYPELESS", "R16G16B16A16_FLOAT", "R16G16B16A16_UNORM",
	"R16G16B16A16_UINT", "R16G16B16A16_SNORM", "R16G16B16A16_SINT",
	"R32G32_TYPELESS", "R32G32_FLOAT", "R32G32_UINT", "R32G32_SINT",
	"R32G8X24_TYPELESS", "D32_FLOAT_S8X24_UINT", "R32_FLOAT_X8X24_TYPELESS", "X32_TYPELESS_G8X24_UINT",
	"R10G10B10A2_TYPELESS", "R10G10B10A2_UNORM", "R10G10B10A2_UINT",
	"R11G11B10_FLOAT",
	"R8G8B8A8_TYPELESS", "R8G8B8A8_UNORM", "R8G8B8A8_UNORM_SRGB",
	"R8G8B8A8_UINT", "R8G8B8A8_SNORM", "R8G8B8A8_SINT",
	"R16G16_TYPELESS", "R16G16_FLOAT", "R16G16_UNORM", "R16G16_UINT", "R16G16_SNORM", "R16G16_SINT",
	"R32_TYPELESS", "D32_FLOAT", "R32_FLOAT", "R32_UINT", "R32_SINT",
	"R24G8_TYPELESS", "D24_UNORM_S8_UINT", "R24_UNORM_X8_TYPELESS", "X24_TYPELESS_G8_UINT",
	"R8G8_TYPELESS", "R8G8_UNORM", "R8G8_UINT", "R8G8_SNORM", "R8G8_SINT",
	"R16_TYPELESS", "R16_FLOAT", "D16_UNORM", "R16_UNORM", "R16_UINT", "R16_SNORM", "R16_SINT",
	"R8_TYPELESS", "R8_UNORM", "R8_UINT", "R8_SNORM", "R8_SINT", "A8_UNORM",
	"R1_UNORM",
	"R9G9B9E5_SHAREDEXP", "R8G8_B8G8_UNORM", "G8R8_G8B8_UNORM",
	"BC1_TYPELESS", "BC1_UNORM", "BC1_UNORM_SRGB",
	"BC2_TYPELESS", "BC2_UNORM", "BC2_UNORM_SRGB",
	"BC3_TYPELESS", "BC3_UNORM", "BC3_UNORM_SRGB",
	"BC4_TYPELESS", "BC4_UNORM", "BC4_SNORM",
	"BC5_TYPELESS", "BC5_UNORM", "BC5_SNORM",
	"B5G6R5_UNORM", "B5G5R5A1_UNORM", "B8G8R8A8_UNORM", "B8G8R8X8_UNORM",
	"R10G10B10_XR_BIAS_A2_UNORM",
	"B8G8R8A8_TYPELESS", "B8G8R8A8_UNORM_SRGB", "B8G8R8X8_TYPELESS", "B8G8R8X8_UNORM_SRGB",
	"BC6H_TYPELESS", "BC6H_UF16", "BC6H_SF16",
	"BC7_TYPELESS", "BC7_UNORM", "BC7_UNORM_SRGB",
	"AYUV", "Y410", "Y416", "NV12", "P010", "P016", "420_OPAQUE",
	"YUY2", "Y210", "Y216", "NV11", "AI44", "IA44", "P8", "A8P8",
	"B4G4R4A4_UNORM",
}

// String returns the DXGI name without the DXGI_FORMAT_ prefix, or
// "Format(n)" for values outside the bound range.
func (f Format) String() string {
	if f < formatCount {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}
