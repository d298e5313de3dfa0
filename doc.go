// Package d3dbase translates between the engine's API-agnostic pixel/texture
// format and color space enumerations and their DXGI equivalents.
//
// # Overview
//
// d3dbase is the boundary-adaptation layer shared by the D3D-facing backends.
// Given a format or color space in the engine's own vocabulary (package
// gfxcore), it produces the bit-exact value the D3D runtime expects (package
// dxgi), and vice versa. Every mapping is a fixed table lookup; there is no
// runtime computation and no state beyond a one-time-initialized reverse
// table.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/d3dbase"
//	    "github.com/gogpu/d3dbase/gfxcore"
//	)
//
//	// Pick the DXGI format for a depth buffer that is also sampled:
//	f := d3dbase.TextureFormatToDXGI(gfxcore.TextureFormatD24UnormS8Uint,
//	    gfxcore.BindDepthStencil|gfxcore.BindShaderResource)
//	// f == dxgi.FormatR24G8Typeless
//
// # Translation Surface
//
//   - [ColorSpaceToDXGI] / [ColorSpaceFromDXGI]: color spaces, best-effort and
//     total in both directions (DXGI lacks several engine combinations, so the
//     forward direction intentionally collapses them).
//   - [ValueTypeToDXGIFormat]: generic component layouts.
//   - [CorrectDXGIFormat]: bind-flag-driven typeless promotion/demotion.
//   - [TextureFormatToDXGI] / [TextureFormatFromDXGI]: the full texture format
//     table, one-to-one outside of bind-flag correction.
//
// # Failure Model
//
// The translation functions do not return errors. Invalid inputs are caller
// bugs: they are reported through the package logger (see [SetLogger]) and
// answered with the Unknown sentinel of the result enumeration, which callers
// propagate into a visible resource-creation failure.
package d3dbase

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
