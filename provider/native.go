// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package provider

import (
	"github.com/ebitengine/purego"
)

// Sizes of fixed-length strings in property records.
const (
	maxExtensionNameSize = 256
	maxDescriptionSize   = 256
)

// extensionProperties mirrors VkExtensionProperties.
type extensionProperties struct {
	extensionName [maxExtensionNameSize]byte
	specVersion   uint32
}

// layerProperties mirrors VkLayerProperties.
type layerProperties struct {
	layerName             [maxExtensionNameSize]byte
	specVersion           uint32
	implementationVersion uint32
	description           [maxDescriptionSize]byte
}

// NativeProvider implements Provider by calling into
// the Vulkan library.
type NativeProvider struct {
	getInstanceProcAddr func(inst uintptr, name string) uintptr
	getDeviceProcAddr   func(dev uintptr, name string) uintptr

	enumerateInstanceExtensionProperties func(layer *byte, count *uint32, props *extensionProperties) int32
	enumerateInstanceLayerProperties     func(count *uint32, props *layerProperties) int32
	enumerateDeviceExtensionProperties   func(pdev uintptr, layer *byte, count *uint32, props *extensionProperties) int32
	enumerateDeviceLayerProperties       func(pdev uintptr, count *uint32, props *layerProperties) int32
}

// Native creates a NativeProvider whose entry points are
// fetched using lookup, which is expected to query the
// open library directly.
// Entry points that lookup fails to find are left unset,
// so the corresponding methods report nothing.
func Native(lookup func(name string) uintptr) *NativeProvider {
	p := &NativeProvider{}
	bind := func(fptr any, name string) {
		if addr := lookup(name); addr != 0 {
			purego.RegisterFunc(fptr, addr)
		}
	}
	bind(&p.getInstanceProcAddr, "vkGetInstanceProcAddr")
	bind(&p.getDeviceProcAddr, "vkGetDeviceProcAddr")
	bind(&p.enumerateInstanceExtensionProperties, "vkEnumerateInstanceExtensionProperties")
	bind(&p.enumerateInstanceLayerProperties, "vkEnumerateInstanceLayerProperties")
	bind(&p.enumerateDeviceExtensionProperties, "vkEnumerateDeviceExtensionProperties")
	bind(&p.enumerateDeviceLayerProperties, "vkEnumerateDeviceLayerProperties")
	return p
}

// GetInstanceProcAddr implements Provider.
func (p *NativeProvider) GetInstanceProcAddr(inst Instance, name string) uintptr {
	if p.getInstanceProcAddr == nil {
		return 0
	}
	return p.getInstanceProcAddr(uintptr(inst), name)
}

// GetDeviceProcAddr implements Provider.
// It returns 0 for a null device.
func (p *NativeProvider) GetDeviceProcAddr(dev Device, name string) uintptr {
	if p.getDeviceProcAddr == nil || dev == 0 {
		return 0
	}
	return p.getDeviceProcAddr(uintptr(dev), name)
}

// EnumerateInstanceExtensionProperties implements Provider.
func (p *NativeProvider) EnumerateInstanceExtensionProperties(layer string, count *uint32, names []string) Result {
	if p.enumerateInstanceExtensionProperties == nil {
		return ErrorInitializationFailed
	}
	lname := cString(layer)
	if names == nil {
		return Result(p.enumerateInstanceExtensionProperties(lname, count, nil))
	}
	props := make([]extensionProperties, min(int(*count), len(names)))
	*count = uint32(len(props))
	if len(props) == 0 {
		return Success
	}
	res := Result(p.enumerateInstanceExtensionProperties(lname, count, &props[0]))
	fillExtensionNames(names, props, *count)
	return res
}

// EnumerateInstanceLayerProperties implements Provider.
func (p *NativeProvider) EnumerateInstanceLayerProperties(count *uint32, names []string) Result {
	if p.enumerateInstanceLayerProperties == nil {
		return ErrorInitializationFailed
	}
	if names == nil {
		return Result(p.enumerateInstanceLayerProperties(count, nil))
	}
	props := make([]layerProperties, min(int(*count), len(names)))
	*count = uint32(len(props))
	if len(props) == 0 {
		return Success
	}
	res := Result(p.enumerateInstanceLayerProperties(count, &props[0]))
	fillLayerNames(names, props, *count)
	return res
}

// EnumerateDeviceExtensionProperties implements Provider.
func (p *NativeProvider) EnumerateDeviceExtensionProperties(pdev PhysicalDevice, layer string, count *uint32, names []string) Result {
	if p.enumerateDeviceExtensionProperties == nil || pdev == 0 {
		return ErrorInitializationFailed
	}
	lname := cString(layer)
	if names == nil {
		return Result(p.enumerateDeviceExtensionProperties(uintptr(pdev), lname, count, nil))
	}
	props := make([]extensionProperties, min(int(*count), len(names)))
	*count = uint32(len(props))
	if len(props) == 0 {
		return Success
	}
	res := Result(p.enumerateDeviceExtensionProperties(uintptr(pdev), lname, count, &props[0]))
	fillExtensionNames(names, props, *count)
	return res
}

// EnumerateDeviceLayerProperties implements Provider.
func (p *NativeProvider) EnumerateDeviceLayerProperties(pdev PhysicalDevice, count *uint32, names []string) Result {
	if p.enumerateDeviceLayerProperties == nil || pdev == 0 {
		return ErrorInitializationFailed
	}
	if names == nil {
		return Result(p.enumerateDeviceLayerProperties(uintptr(pdev), count, nil))
	}
	props := make([]layerProperties, min(int(*count), len(names)))
	*count = uint32(len(props))
	if len(props) == 0 {
		return Success
	}
	res := Result(p.enumerateDeviceLayerProperties(uintptr(pdev), count, &props[0]))
	fillLayerNames(names, props, *count)
	return res
}

// cString returns a pointer to a NUL-terminated copy of s,
// or nil if s is empty.
func cString(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// goString converts a fixed-size, NUL-terminated C string.
// The last byte is treated as NUL regardless of its value.
func goString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	b[len(b)-1] = 0
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return ""
}

func fillExtensionNames(names []string, props []extensionProperties, n uint32) {
	for i := range props[:min(int(n), len(props))] {
		names[i] = goString(props[i].extensionName[:])
	}
}

func fillLayerNames(names []string, props []layerProperties, n uint32) {
	for i := range props[:min(int(n), len(props))] {
		names[i] = goString(props[i].layerName[:])
	}
}

var _ Provider = (*NativeProvider)(nil)
