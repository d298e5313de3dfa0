package d3dbase

import (
	"github.com/gogpu/d3dbase/dxgi"
	"github.com/gogpu/d3dbase/gfxcore"
)

// ColorSpaceToDXGI translates an engine color space to the nearest DXGI
// swap chain color space. The function is total: every engine value,
// including Unknown, yields a usable DXGI value.
//
// DXGI lacks several of the engine's primaries/transfer combinations, so the
// mapping is deliberately many-to-one. When no exact match exists the choice
// prefers, in order: a matching transfer function over a matching gamut, the
// nearest wide-gamut HDR value, and finally plain sRGB.
func ColorSpaceToDXGI(cs gfxcore.ColorSpace) dxgi.ColorSpace {
	switch cs {
	case gfxcore.ColorSpaceSRGBNonlinear:
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceExtendedSRGBLinear:
		return dxgi.ColorSpaceRGBFullG10NoneP709

	case gfxcore.ColorSpaceExtendedSRGBNonlinear:
		// DXGI doesn't distinguish extended vs non-extended for nonlinear.
		// The extended behavior comes from using a float format.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceDisplayP3Nonlinear:
		// No Display-P3 primaries in DXGI. Fall back to sRGB: same transfer
		// function, narrower gamut.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceDisplayP3Linear:
		// No Display-P3 primaries in DXGI. Fall back to linear sRGB.
		return dxgi.ColorSpaceRGBFullG10NoneP709

	case gfxcore.ColorSpaceDCIP3Nonlinear:
		// No DCI-P3 (gamma 2.6) in DXGI. Fall back to sRGB.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceBT709Linear:
		// BT.709 primaries are the same as sRGB's.
		return dxgi.ColorSpaceRGBFullG10NoneP709

	case gfxcore.ColorSpaceBT709Nonlinear:
		// The BT.709 transfer function is very close to sRGB's.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceBT2020Linear:
		// No linear BT.2020 for full-range RGB in DXGI. HDR10 PQ is the
		// closest wide-gamut alternative.
		return dxgi.ColorSpaceRGBFullG2084NoneP2020

	case gfxcore.ColorSpaceHDR10ST2084:
		return dxgi.ColorSpaceRGBFullG2084NoneP2020

	case gfxcore.ColorSpaceHDR10HLG:
		// No direct HLG for RGB in DXGI. Gamma 2.2 with P2020 primaries is
		// the closest approximation.
		return dxgi.ColorSpaceRGBFullG22NoneP2020

	case gfxcore.ColorSpaceDolbyVision:
		// Dolby Vision is not directly supported. Fall back to HDR10 PQ.
		return dxgi.ColorSpaceRGBFullG2084NoneP2020

	case gfxcore.ColorSpaceAdobeRGBNonlinear:
		// No Adobe RGB primaries in DXGI. Fall back to sRGB: similar gamma,
		// narrower gamut.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceAdobeRGBLinear:
		// No Adobe RGB primaries in DXGI. Fall back to linear sRGB.
		return dxgi.ColorSpaceRGBFullG10NoneP709

	case gfxcore.ColorSpacePassThrough:
		// No transformation requested; sRGB is the neutral default.
		return dxgi.ColorSpaceRGBFullG22NoneP709

	case gfxcore.ColorSpaceSCRGBLinear:
		// scRGB is linear with BT.709/sRGB primaries, extended range via a
		// float format.
		return dxgi.ColorSpaceRGBFullG10NoneP709

	default:
		// ColorSpaceUnknown and anything out of range.
		return dxgi.ColorSpaceRGBFullG22NoneP709
	}
}

// ColorSpaceFromDXGI translates a DXGI color space back to an engine color
// space. The forward mapping is not injective, so this direction picks one
// canonical engine value per DXGI value rather than recovering the original;
// the choices below are fixed and callers may rely on them. YCbCr variants
// never describe display surfaces but are enumerable, and map to the closest
// RGB equivalent by primaries and transfer function. Reserved, custom and
// unrecognized values map to sRGB nonlinear.
func ColorSpaceFromDXGI(cs dxgi.ColorSpace) gfxcore.ColorSpace {
	switch cs {
	// Full-range RGB.
	case dxgi.ColorSpaceRGBFullG22NoneP709:
		return gfxcore.ColorSpaceSRGBNonlinear

	case dxgi.ColorSpaceRGBFullG10NoneP709:
		// Could be extended sRGB linear, BT.709 linear, or scRGB linear.
		// They all map to this value; scRGB is the most descriptive for HDR.
		return gfxcore.ColorSpaceSCRGBLinear

	case dxgi.ColorSpaceRGBFullG2084NoneP2020:
		return gfxcore.ColorSpaceHDR10ST2084

	case dxgi.ColorSpaceRGBFullG22NoneP2020:
		// BT.2020 primaries with gamma 2.2: closest to HLG conceptually
		// (wide gamut, SDR-compatible transfer).
		return gfxcore.ColorSpaceHDR10HLG

	// Studio-range RGB (limited range 16-235).
	case dxgi.ColorSpaceRGBStudioG22NoneP709:
		// Studio-range sRGB; the application handles the range.
		return gfxcore.ColorSpaceSRGBNonlinear

	case dxgi.ColorSpaceRGBStudioG22NoneP2020:
		return gfxcore.ColorSpaceHDR10HLG

	case dxgi.ColorSpaceRGBStudioG2084NoneP2020:
		return gfxcore.ColorSpaceHDR10ST2084

	case dxgi.ColorSpaceRGBStudioG24NoneP709:
		// Gamma 2.4 BT.709, used for some broadcast content.
		return gfxcore.ColorSpaceBT709Nonlinear

	case dxgi.ColorSpaceRGBStudioG24NoneP2020:
		return gfxcore.ColorSpaceHDR10HLG

	// YCbCr, mapped by primaries and transfer function.
	case dxgi.ColorSpaceYCbCrFullG22NoneP709X601,
		dxgi.ColorSpaceYCbCrStudioG22LeftP601,
		dxgi.ColorSpaceYCbCrFullG22LeftP601,
		dxgi.ColorSpaceYCbCrStudioG22LeftP709,
		dxgi.ColorSpaceYCbCrFullG22LeftP709,
		dxgi.ColorSpaceYCbCrStudioG24LeftP709:
		// BT.601/709 YCbCr.
		return gfxcore.ColorSpaceSRGBNonlinear

	case dxgi.ColorSpaceYCbCrStudioG22LeftP2020,
		dxgi.ColorSpaceYCbCrFullG22LeftP2020,
		dxgi.ColorSpaceYCbCrStudioG22TopLeftP2020,
		dxgi.ColorSpaceYCbCrStudioG24LeftP2020,
		dxgi.ColorSpaceYCbCrStudioG24TopLeftP2020:
		// BT.2020 YCbCr with a gamma transfer.
		return gfxcore.ColorSpaceHDR10HLG

	case dxgi.ColorSpaceYCbCrStudioG2084LeftP2020,
		dxgi.ColorSpaceYCbCrStudioG2084TopLeftP2020:
		// BT.2020 YCbCr with PQ.
		return gfxcore.ColorSpaceHDR10ST2084

	case dxgi.ColorSpaceYCbCrStudioGHLGTopLeftP2020,
		dxgi.ColorSpaceYCbCrFullGHLGTopLeftP2020:
		// Actual HLG YCbCr.
		return gfxcore.ColorSpaceHDR10HLG

	default:
		// Reserved, Custom and anything unrecognized.
		return gfxcore.ColorSpaceSRGBNonlinear
	}
}
