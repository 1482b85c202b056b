// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package vkel loads Vulkan entry points at run time.
//
// A Loader opens the Vulkan library of the platform and resolves
// every known entry point into a SymbolTable. Entry points are
// resolved at one of three levels: directly from the library
// (ResolveGlobal), through vkGetInstanceProcAddr
// (ResolveForInstance) or through vkGetDeviceProcAddr
// (ResolveForDevice). Each level falls back to the ones below
// it when the entry point is not found.
//
// Alongside the symbol table, the Loader keeps a snapshot of
// which known extensions and layers were reported as available
// by the implementation (see Caps). Arbitrary names can be
// queried on demand with IsExtensionSupported and
// IsLayerSupported.
//
// A Loader is not safe for concurrent use. In particular, calls
// to GlobalInit, InstanceInit, DeviceInit and Uninit must be
// serialized by the caller, and must not overlap with calls
// that read the symbol table or the capability flags.
package vkel
