package dxgi

import "testing"

// The integer values are the driver contract. Pin the anchors so an
// accidental insertion or reordering in the const blocks cannot go unnoticed.
func TestFormatValues(t *testing.T) {
	tests := []struct {
		f    Format
		want uint32
	}{
		{FormatUnknown, 0},
		{FormatR32G32B32A32Typeless, 1},
		{FormatR32G32B32Float, 6},
		{FormatR16G16B16A16Unorm, 11},
		{FormatR32G8X24Typeless, 19},
		{FormatD32FloatS8X24Uint, 20},
		{FormatR10G10B10A2Unorm, 24},
		{FormatR11G11B10Float, 26},
		{FormatR8G8B8A8Unorm, 28},
		{FormatR32Typeless, 39},
		{FormatD32Float, 40},
		{FormatR24G8Typeless, 44},
		{FormatD24UnormS8Uint, 45},
		{FormatR16Typeless, 53},
		{FormatD16Unorm, 55},
		{FormatA8Unorm, 65},
		{FormatR9G9B9E5SharedExp, 67},
		{FormatBC1Typeless, 70},
		{FormatB5G6R5Unorm, 85},
		{FormatB8G8R8A8Unorm, 87},
		{FormatR10G10B10XRBiasA2Unorm, 89},
		{FormatBC6HTypeless, 94},
		{FormatBC7UnormSRGB, 99},
		{FormatAYUV, 100},
		{FormatNV12, 103},
		{FormatP016, 105},
		{Format420Opaque, 106},
		{FormatYUY2, 107},
		{FormatA8P8, 114},
		{FormatB4G4R4A4Unorm, 115},
	}
	for _, tc := range tests {
		if uint32(tc.f) != tc.want {
			t.Errorf("%v = %d, want %d", tc.f, uint32(tc.f), tc.want)
		}
	}
}

func TestColorSpaceValues(t *testing.T) {
	tests := []struct {
		cs   ColorSpace
		want uint32
	}{
		{ColorSpaceRGBFullG22NoneP709, 0},
		{ColorSpaceRGBFullG10NoneP709, 1},
		{ColorSpaceReserved, 4},
		{ColorSpaceYCbCrFullG22LeftP2020, 11},
		{ColorSpaceRGBFullG2084NoneP2020, 12},
		{ColorSpaceRGBFullG22NoneP2020, 17},
		{ColorSpaceYCbCrFullGHLGTopLeftP2020, 19},
		{ColorSpaceRGBStudioG24NoneP709, 20},
		{ColorSpaceYCbCrStudioG24TopLeftP2020, 24},
		{ColorSpaceCustom, 0xFFFFFFFF},
	}
	for _, tc := range tests {
		if uint32(tc.cs) != tc.want {
			t.Errorf("%v = %d, want %d", tc.cs, uint32(tc.cs), tc.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatUnknown, "UNKNOWN"},
		{FormatD24UnormS8Uint, "D24_UNORM_S8_UINT"},
		{Format420Opaque, "420_OPAQUE"},
		{FormatB4G4R4A4Unorm, "B4G4R4A4_UNORM"},
		{Format(500), "Format(500)"},
	}
	for _, tc := range tests {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", uint32(tc.f), got, tc.want)
		}
	}
}

func TestFormatNamesComplete(t *testing.T) {
	for f := FormatUnknown; f < formatCount; f++ {
		if formatNames[f] == "" {
			t.Errorf("format %d has no name", uint32(f))
		}
	}
}

func TestColorSpaceString(t *testing.T) {
	tests := []struct {
		cs   ColorSpace
		want string
	}{
		{ColorSpaceRGBFullG22NoneP709, "RGB_FULL_G22_NONE_P709"},
		{ColorSpaceYCbCrStudioGHLGTopLeftP2020, "YCBCR_STUDIO_GHLG_TOPLEFT_P2020"},
		{ColorSpaceCustom, "CUSTOM"},
		{ColorSpace(100), "ColorSpace(100)"},
	}
	for _, tc := range tests {
		if got := tc.cs.String(); got != tc.want {
			t.Errorf("ColorSpace(%d).String() = %q, want %q", uint32(tc.cs), got, tc.want)
		}
	}
}

func TestColorSpaceNamesComplete(t *testing.T) {
	for cs := ColorSpace(0); cs < colorSpaceCount; cs++ {
		if colorSpaceNames[cs] == "" {
			t.Errorf("color space %d has no name", uint32(cs))
		}
	}
}
