package gfxcore

import "testing"

func TestTextureFormatCount(t *testing.T) {
	// The format tables elsewhere are sized and indexed by this constant;
	// adding a format means updating them too.
	if TextureFormatCount != 106 {
		t.Fatalf("TextureFormatCount = %d, want 106", TextureFormatCount)
	}
}

func TestTextureFormatString(t *testing.T) {
	tests := []struct {
		f    TextureFormat
		want string
	}{
		{TextureFormatUnknown, "Unknown"},
		{TextureFormatRGBA32Float, "RGBA32Float"},
		{TextureFormatD24UnormS8Uint, "D24UnormS8Uint"},
		{TextureFormatBC7UnormSRGB, "BC7UnormSRGB"},
		{TextureFormatBGRA4Unorm, "BGRA4Unorm"},
		{TextureFormat(200), "TextureFormat(200)"},
	}
	for _, tc := range tests {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("TextureFormat(%d).String() = %q, want %q", uint32(tc.f), got, tc.want)
		}
	}
}

func TestTextureFormatNamesComplete(t *testing.T) {
	for f := TextureFormatUnknown; f < TextureFormatCount; f++ {
		if textureFormatNames[f] == "" {
			t.Errorf("texture format %d has no name", uint32(f))
		}
	}
}

func TestColorSpaceString(t *testing.T) {
	tests := []struct {
		cs   ColorSpace
		want string
	}{
		{ColorSpaceUnknown, "Unknown"},
		{ColorSpaceHDR10ST2084, "HDR10ST2084"},
		{ColorSpaceSCRGBLinear, "SCRGBLinear"},
		{ColorSpace(99), "ColorSpace(99)"},
	}
	for _, tc := range tests {
		if got := tc.cs.String(); got != tc.want {
			t.Errorf("ColorSpace(%d).String() = %q, want %q", uint32(tc.cs), got, tc.want)
		}
	}
}

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		vt   ValueType
		want string
	}{
		{ValueTypeUndefined, "Undefined"},
		{ValueTypeUint8, "Uint8"},
		{ValueTypeFloat32, "Float32"},
		{ValueType(42), "ValueType(42)"},
	}
	for _, tc := range tests {
		if got := tc.vt.String(); got != tc.want {
			t.Errorf("ValueType(%d).String() = %q, want %q", uint32(tc.vt), got, tc.want)
		}
	}
}

func TestBindFlagsString(t *testing.T) {
	tests := []struct {
		bf   BindFlags
		want string
	}{
		{BindNone, "None"},
		{BindDepthStencil, "DepthStencil"},
		{BindDepthStencil | BindShaderResource, "ShaderResource|DepthStencil"},
		{BindRenderTarget | BindFlags(1<<20), "RenderTarget|BindFlags(0x100000)"},
	}
	for _, tc := range tests {
		if got := tc.bf.String(); got != tc.want {
			t.Errorf("BindFlags(0x%X).String() = %q, want %q", uint32(tc.bf), got, tc.want)
		}
	}
}

func TestBindFlagsDistinct(t *testing.T) {
	flags := []BindFlags{
		BindVertexBuffer, BindIndexBuffer, BindUniformBuffer, BindShaderResource,
		BindStreamOutput, BindRenderTarget, BindDepthStencil, BindUnorderedAccess,
		BindIndirectDrawArgs,
	}
	var seen BindFlags
	for _, f := range flags {
		if seen&f != 0 {
			t.Errorf("bind flag 0x%X overlaps another flag", uint32(f))
		}
		seen |= f
	}
}
