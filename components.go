package d3dbase

import (
	"github.com/gogpu/d3dbase/dxgi"
	"github.com/gogpu/d3dbase/gfxcore"
)

// ValueTypeToDXGIFormat returns the DXGI format for a generic per-channel
// layout: component type, component count (1, 2, 3 or 4) and whether integer
// components are normalized.
//
// Only a fixed subset of combinations exists natively. Three-component
// layouts exist only for 32-bit types; 8- and 16-bit types come in 1, 2 or 4
// components. Floats are never normalized, and 32-bit normalized integers are
// deliberately not exposed (use Float32 instead). Any request outside these
// rules is a caller bug: it is reported as a contract violation and
// dxgi.FormatUnknown is returned.
func ValueTypeToDXGIFormat(valType gfxcore.ValueType, numComponents int, isNormalized bool) dxgi.Format {
	switch valType {
	case gfxcore.ValueTypeFloat16:
		if isNormalized {
			violation("floating point formats cannot be normalized",
				"valueType", valType, "numComponents", numComponents)
			return dxgi.FormatUnknown
		}
		switch numComponents {
		case 1:
			return dxgi.FormatR16Float
		case 2:
			return dxgi.FormatR16G16Float
		case 4:
			return dxgi.FormatR16G16B16A16Float
		}

	case gfxcore.ValueTypeFloat32:
		if isNormalized {
			violation("floating point formats cannot be normalized",
				"valueType", valType, "numComponents", numComponents)
			return dxgi.FormatUnknown
		}
		switch numComponents {
		case 1:
			return dxgi.FormatR32Float
		case 2:
			return dxgi.FormatR32G32Float
		case 3:
			return dxgi.FormatR32G32B32Float
		case 4:
			return dxgi.FormatR32G32B32A32Float
		}

	case gfxcore.ValueTypeInt32:
		if isNormalized {
			violation("32-bit normalized formats are not supported; use R32_FLOAT instead",
				"valueType", valType, "numComponents", numComponents)
			return dxgi.FormatUnknown
		}
		switch numComponents {
		case 1:
			return dxgi.FormatR32Sint
		case 2:
			return dxgi.FormatR32G32Sint
		case 3:
			return dxgi.FormatR32G32B32Sint
		case 4:
			return dxgi.FormatR32G32B32A32Sint
		}

	case gfxcore.ValueTypeUint32:
		if isNormalized {
			violation("32-bit normalized formats are not supported; use R32_FLOAT instead",
				"valueType", valType, "numComponents", numComponents)
			return dxgi.FormatUnknown
		}
		switch numComponents {
		case 1:
			return dxgi.FormatR32Uint
		case 2:
			return dxgi.FormatR32G32Uint
		case 3:
			return dxgi.FormatR32G32B32Uint
		case 4:
			return dxgi.FormatR32G32B32A32Uint
		}

	case gfxcore.ValueTypeInt16:
		if isNormalized {
			switch numComponents {
			case 1:
				return dxgi.FormatR16Snorm
			case 2:
				return dxgi.FormatR16G16Snorm
			case 4:
				return dxgi.FormatR16G16B16A16Snorm
			}
		} else {
			switch numComponents {
			case 1:
				return dxgi.FormatR16Sint
			case 2:
				return dxgi.FormatR16G16Sint
			case 4:
				return dxgi.FormatR16G16B16A16Sint
			}
		}

	case gfxcore.ValueTypeUint16:
		if isNormalized {
			switch numComponents {
			case 1:
				return dxgi.FormatR16Unorm
			case 2:
				return dxgi.FormatR16G16Unorm
			case 4:
				return dxgi.FormatR16G16B16A16Unorm
			}
		} else {
			switch numComponents {
			case 1:
				return dxgi.FormatR16Uint
			case 2:
				return dxgi.FormatR16G16Uint
			case 4:
				return dxgi.FormatR16G16B16A16Uint
			}
		}

	case gfxcore.ValueTypeInt8:
		if isNormalized {
			switch numComponents {
			case 1:
				return dxgi.FormatR8Snorm
			case 2:
				return dxgi.FormatR8G8Snorm
			case 4:
				return dxgi.FormatR8G8B8A8Snorm
			}
		} else {
			switch numComponents {
			case 1:
				return dxgi.FormatR8Sint
			case 2:
				return dxgi.FormatR8G8Sint
			case 4:
				return dxgi.FormatR8G8B8A8Sint
			}
		}

	case gfxcore.ValueTypeUint8:
		if isNormalized {
			switch numComponents {
			case 1:
				return dxgi.FormatR8Unorm
			case 2:
				return dxgi.FormatR8G8Unorm
			case 4:
				return dxgi.FormatR8G8B8A8Unorm
			}
		} else {
			switch numComponents {
			case 1:
				return dxgi.FormatR8Uint
			case 2:
				return dxgi.FormatR8G8Uint
			case 4:
				return dxgi.FormatR8G8B8A8Uint
			}
		}

	default:
		violation("unsupported value type",
			"valueType", valType, "numComponents", numComponents, "normalized", isNormalized)
		return dxgi.FormatUnknown
	}

	violation("unsupported number of components",
		"valueType", valType, "numComponents", numComponents, "normalized", isNormalized)
	return dxgi.FormatUnknown
}
