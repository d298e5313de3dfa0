package dxgi

import "fmt"

// ColorSpace is the native DXGI_COLOR_SPACE_TYPE enumeration. Names encode the
// color model (RGB/YCbCr), numeric range (full/studio), transfer function
// (G10 linear, G22/G24 gamma, G2084 PQ, GHLG hybrid log-gamma), chroma siting
// and primaries, in that order, matching the platform headers.
type ColorSpace uint32

// DXGI_COLOR_SPACE_TYPE values. The block 0 through 24 is contiguous;
// ColorSpaceCustom sits apart at 0xFFFFFFFF.
const (
	ColorSpaceRGBFullG22NoneP709           ColorSpace = iota // DXGI_COLOR_SPACE_RGB_FULL_G22_NONE_P709
	ColorSpaceRGBFullG10NoneP709                             // DXGI_COLOR_SPACE_RGB_FULL_G10_NONE_P709
	ColorSpaceRGBStudioG22NoneP709                           // DXGI_COLOR_SPACE_RGB_STUDIO_G22_NONE_P709
	ColorSpaceRGBStudioG22NoneP2020                          // DXGI_COLOR_SPACE_RGB_STUDIO_G22_NONE_P2020
	ColorSpaceReserved                                       // DXGI_COLOR_SPACE_RESERVED
	ColorSpaceYCbCrFullG22NoneP709X601                       // DXGI_COLOR_SPACE_YCBCR_FULL_G22_NONE_P709_X601
	ColorSpaceYCbCrStudioG22LeftP601                         // DXGI_COLOR_SPACE_YCBCR_STUDIO_G22_LEFT_P601
	ColorSpaceYCbCrFullG22LeftP601                           // DXGI_COLOR_SPACE_YCBCR_FULL_G22_LEFT_P601
	ColorSpaceYCbCrStudioG22LeftP709                         // DXGI_COLOR_SPACE_YCBCR_STUDIO_G22_LEFT_P709
	ColorSpaceYCbCrFullG22LeftP709                           // DXGI_COLOR_SPACE_YCBCR_FULL_G22_LEFT_P709
	ColorSpaceYCbCrStudioG22LeftP2020                        // DXGI_COLOR_SPACE_YCBCR_STUDIO_G22_LEFT_P2020
	ColorSpaceYCbCrFullG22LeftP2020                          // DXGI_COLOR_SPACE_YCBCR_FULL_G22_LEFT_P2020
	ColorSpaceRGBFullG2084NoneP2020                          // DXGI_COLOR_SPACE_RGB_FULL_G2084_NONE_P2020
	ColorSpaceYCbCrStudioG2084LeftP2020                      // DXGI_COLOR_SPACE_YCBCR_STUDIO_G2084_LEFT_P2020
	ColorSpaceRGBStudioG2084NoneP2020                        // DXGI_COLOR_SPACE_RGB_STUDIO_G2084_NONE_P2020
	ColorSpaceYCbCrStudioG22TopLeftP2020                     // DXGI_COLOR_SPACE_YCBCR_STUDIO_G22_TOPLEFT_P2020
	ColorSpaceYCbCrStudioG2084TopLeftP2020                   // DXGI_COLOR_SPACE_YCBCR_STUDIO_G2084_TOPLEFT_P2020
	ColorSpaceRGBFullG22NoneP2020                            // DXGI_COLOR_SPACE_RGB_FULL_G22_NONE_P2020
	ColorSpaceYCbCrStudioGHLGTopLeftP2020                    // DXGI_COLOR_SPACE_YCBCR_STUDIO_GHLG_TOPLEFT_P2020
	ColorSpaceYCbCrFullGHLGTopLeftP2020                      // DXGI_COLOR_SPACE_YCBCR_FULL_GHLG_TOPLEFT_P2020
	ColorSpaceRGBStudioG24NoneP709                           // DXGI_COLOR_SPACE_RGB_STUDIO_G24_NONE_P709
	ColorSpaceRGBStudioG24NoneP2020                          // DXGI_COLOR_SPACE_RGB_STUDIO_G24_NONE_P2020
	ColorSpaceYCbCrStudioG24LeftP709                         // DXGI_COLOR_SPACE_YCBCR_STUDIO_G24_LEFT_P709
	ColorSpaceYCbCrStudioG24LeftP2020                        // DXGI_COLOR_SPACE_YCBCR_STUDIO_G24_LEFT_P2020
	ColorSpaceYCbCrStudioG24TopLeftP2020                     // DXGI_COLOR_SPACE_YCBCR_STUDIO_G24_TOPLEFT_P2020

	colorSpaceCount
)

// ColorSpaceCustom is the application-defined color space value.
const ColorSpaceCustom ColorSpace = 0xFFFFFFFF

var colorSpaceNames = [colorSpaceCount]string{
	"RGB_FULL_G22_NONE_P709",
	"RGB_FULL_G10_NONE_P709",
	"RGB_STUDIO_G22_NONE_P709",
	"RGB_STUDIO_G22_NONE_P2020",
	"RESERVED",
	"YCBCR_FULL_G22_NONE_P709_X601",
	"YCBCR_STUDIO_G22_LEFT_P601",
	"YCBCR_FULL_G22_LEFT_P601",
	"YCBCR_STUDIO_G22_LEFT_P709",
	"YCBCR_FULL_G22_LEFT_P709",
	"YCBCR_STUDIO_G22_LEFT_P2020",
	"YCBCR_FULL_G22_LEFT_P2020",
	"RGB_FULL_G2084_NONE_P2020",
	"YCBCR_STUDIO_G2084_LEFT_P2020",
	"RGB_STUDIO_G2084_NONE_P2020",
	"YCBCR_STUDIO_G22_TOPLEFT_P2020",
	"YCBCR_STUDIO_G2084_TOPLEFT_P2020",
	"RGB_FULL_G22_NONE_P2020",
	"YCBCR_STUDIO_GHLG_TOPLEFT_P2020",
	"YCBCR_FULL_GHLG_TOPLEFT_P2020",
	"RGB_STUDIO_G24_NONE_P709",
	"RGB_STUDIO_G24_NONE_P2020",
	"YCBCR_STUDIO_G24_LEFT_P709",
	"YCBCR_STUDIO_G24_LEFT_P2020",
	"YCBCR_STUDIO_G24_TOPLEFT_P2020",
}

// String returns the DXGI name without the DXGI_COLOR_SPACE_ prefix, "CUSTOM"
// for ColorSpaceCustom, or "ColorSpace(n)" for values outside the bound range.
func (cs ColorSpace) String() string {
	if cs < colorSpaceCount {
		return colorSpaceNames[cs]
	}
	if cs == ColorSpaceCustom {
		return "CUSTOM"
	}
	return fmt.Sprintf("ColorSpace(%d)", uint32(cs))
}
