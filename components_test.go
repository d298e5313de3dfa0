package d3dbase

import (
	"strings"
	"testing"

	"github.com/gogpu/d3dbase/dxgi"
	"github.com/gogpu/d3dbase/gfxcore"
)

func TestValueTypeToDXGIFormat(t *testing.T) {
	tests := []struct {
		valType    gfxcore.ValueType
		components int
		normalized bool
		want       dxgi.Format
	}{
		{gfxcore.ValueTypeFloat16, 1, false, dxgi.FormatR16Float},
		{gfxcore.ValueTypeFloat16, 2, false, dxgi.FormatR16G16Float},
		{gfxcore.ValueTypeFloat16, 4, false, dxgi.FormatR16G16B16A16Float},

		{gfxcore.ValueTypeFloat32, 1, false, dxgi.FormatR32Float},
		{gfxcore.ValueTypeFloat32, 2, false, dxgi.FormatR32G32Float},
		{gfxcore.ValueTypeFloat32, 3, false, dxgi.FormatR32G32B32Float},
		{gfxcore.ValueTypeFloat32, 4, false, dxgi.FormatR32G32B32A32Float},

		{gfxcore.ValueTypeInt32, 1, false, dxgi.FormatR32Sint},
		{gfxcore.ValueTypeInt32, 2, false, dxgi.FormatR32G32Sint},
		{gfxcore.ValueTypeInt32, 3, false, dxgi.FormatR32G32B32Sint},
		{gfxcore.ValueTypeInt32, 4, false, dxgi.FormatR32G32B32A32Sint},

		{gfxcore.ValueTypeUint32, 1, false, dxgi.FormatR32Uint},
		{gfxcore.ValueTypeUint32, 2, false, dxgi.FormatR32G32Uint},
		{gfxcore.ValueTypeUint32, 3, false, dxgi.FormatR32G32B32Uint},
		{gfxcore.ValueTypeUint32, 4, false, dxgi.FormatR32G32B32A32Uint},

		{gfxcore.ValueTypeInt16, 1, true, dxgi.FormatR16Snorm},
		{gfxcore.ValueTypeInt16, 2, true, dxgi.FormatR16G16Snorm},
		{gfxcore.ValueTypeInt16, 4, true, dxgi.FormatR16G16B16A16Snorm},
		{gfxcore.ValueTypeInt16, 1, false, dxgi.FormatR16Sint},
		{gfxcore.ValueTypeInt16, 2, false, dxgi.FormatR16G16Sint},
		{gfxcore.ValueTypeInt16, 4, false, dxgi.FormatR16G16B16A16Sint},

		{gfxcore.ValueTypeUint16, 1, true, dxgi.FormatR16Unorm},
		{gfxcore.ValueTypeUint16, 2, true, dxgi.FormatR16G16Unorm},
		{gfxcore.ValueTypeUint16, 4, true, dxgi.FormatR16G16B16A16Unorm},
		{gfxcore.ValueTypeUint16, 1, false, dxgi.FormatR16Uint},
		{gfxcore.ValueTypeUint16, 2, false, dxgi.FormatR16G16Uint},
		{gfxcore.ValueTypeUint16, 4, false, dxgi.FormatR16G16B16A16Uint},

		{gfxcore.ValueTypeInt8, 1, true, dxgi.FormatR8Snorm},
		{gfxcore.ValueTypeInt8, 2, true, dxgi.FormatR8G8Snorm},
		{gfxcore.ValueTypeInt8, 4, true, dxgi.FormatR8G8B8A8Snorm},
		{gfxcore.ValueTypeInt8, 1, false, dxgi.FormatR8Sint},
		{gfxcore.ValueTypeInt8, 2, false, dxgi.FormatR8G8Sint},
		{gfxcore.ValueTypeInt8, 4, false, dxgi.FormatR8G8B8A8Sint},

		{gfxcore.ValueTypeUint8, 1, true, dxgi.FormatR8Unorm},
		{gfxcore.ValueTypeUint8, 2, true, dxgi.FormatR8G8Unorm},
		{gfxcore.ValueTypeUint8, 4, true, dxgi.FormatR8G8B8A8Unorm},
		{gfxcore.ValueTypeUint8, 1, false, dxgi.FormatR8Uint},
		{gfxcore.ValueTypeUint8, 2, false, dxgi.FormatR8G8Uint},
		{gfxcore.ValueTypeUint8, 4, false, dxgi.FormatR8G8B8A8Uint},
	}
	for _, tc := range tests {
		got := ValueTypeToDXGIFormat(tc.valType, tc.components, tc.normalized)
		if got != tc.want {
			t.Errorf("ValueTypeToDXGIFormat(%v, %d, %t) = %v, want %v",
				tc.valType, tc.components, tc.normalized, got, tc.want)
		}
	}
}

func TestValueTypeToDXGIFormat_Violations(t *testing.T) {
	tests := []struct {
		name       string
		valType    gfxcore.ValueType
		components int
		normalized bool
	}{
		{"normalized float16", gfxcore.ValueTypeFloat16, 2, true},
		{"normalized float32", gfxcore.ValueTypeFloat32, 4, true},
		// Impossible twice over: floats are never normalized, and no
		// 3-component 32-bit normalized format would exist anyway.
		{"normalized 3-component float32", gfxcore.ValueTypeFloat32, 3, true},
		{"normalized int32", gfxcore.ValueTypeInt32, 1, true},
		{"normalized uint32", gfxcore.ValueTypeUint32, 4, true},
		{"3-component float16", gfxcore.ValueTypeFloat16, 3, false},
		{"3-component int16", gfxcore.ValueTypeInt16, 3, false},
		{"3-component uint16", gfxcore.ValueTypeUint16, 3, true},
		{"3-component int8", gfxcore.ValueTypeInt8, 3, true},
		{"3-component uint8", gfxcore.ValueTypeUint8, 3, false},
		{"zero components", gfxcore.ValueTypeFloat32, 0, false},
		{"five components", gfxcore.ValueTypeUint8, 5, true},
		{"undefined type", gfxcore.ValueTypeUndefined, 4, false},
		{"float64 has no texture format", gfxcore.ValueTypeFloat64, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureViolations(t)
			got := ValueTypeToDXGIFormat(tc.valType, tc.components, tc.normalized)
			if got != dxgi.FormatUnknown {
				t.Errorf("ValueTypeToDXGIFormat(%v, %d, %t) = %v, want UNKNOWN",
					tc.valType, tc.components, tc.normalized, got)
			}
			if !strings.Contains(buf.String(), "level=ERROR") {
				t.Errorf("expected a violation report, got: %s", buf.String())
			}
		})
	}
}
