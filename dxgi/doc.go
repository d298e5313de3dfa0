// Package dxgi defines Go bindings for the DXGI enumerations the d3dbase
// translation layer targets.
//
// The constants reproduce the native DXGI_FORMAT and DXGI_COLOR_SPACE_TYPE
// values bit-exact: the underlying integers are part of the driver contract and
// must match the platform headers for resource creation and swap chain
// configuration to interoperate with the D3D runtime. Tests pin the anchor
// values so an accidental reordering cannot go unnoticed.
//
// This package carries values and names only; it performs no API calls.
package dxgi
