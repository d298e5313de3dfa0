// Package gfxcore defines the engine-internal, API-agnostic enumerations shared
// by the d3dbase translation layer and its callers.
//
// The types here describe pixel/texture formats, color spaces, generic component
// layouts and resource bind usages in the engine's own vocabulary. They carry no
// native API values: translation into the driver-facing DXGI enumerations is the
// job of the parent d3dbase package, and translation tables for other native APIs
// live with their respective backends.
//
// All types in this package are plain value enumerations with no lifecycle and no
// mutable state; they are safe to copy and compare freely.
package gfxcore
