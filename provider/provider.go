// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package provider defines the interface of the graphics
// library whose entry points are loaded, and implements it
// for the native Vulkan library.
package provider

import (
	"errors"
	"strconv"
)

// Handles of Vulkan dispatchable objects.
// The zero value represents a null handle.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
)

// Provider is the interface that a graphics library
// exposes to the loader.
//
// The Enumerate* methods follow the count-then-fill
// contract: if names is nil, the number of available
// names is stored in *count. Otherwise, at most *count
// names are written to names and *count is set to the
// number of names written, in which case Incomplete is
// returned if not every name could be written.
type Provider interface {
	// GetInstanceProcAddr returns the address of an entry
	// point for the given instance, or 0 if unavailable.
	GetInstanceProcAddr(inst Instance, name string) uintptr

	// GetDeviceProcAddr returns the address of an entry
	// point for the given device, or 0 if unavailable.
	GetDeviceProcAddr(dev Device, name string) uintptr

	// EnumerateInstanceExtensionProperties enumerates the
	// names of instance extensions provided by layer, or
	// by the implementation if layer is empty.
	EnumerateInstanceExtensionProperties(layer string, count *uint32, names []string) Result

	// EnumerateInstanceLayerProperties enumerates the
	// names of instance layers.
	EnumerateInstanceLayerProperties(count *uint32, names []string) Result

	// EnumerateDeviceExtensionProperties enumerates the
	// names of device extensions of pdev provided by layer,
	// or by the implementation if layer is empty.
	EnumerateDeviceExtensionProperties(pdev PhysicalDevice, layer string, count *uint32, names []string) Result

	// EnumerateDeviceLayerProperties enumerates the names
	// of device layers of pdev.
	EnumerateDeviceLayerProperties(pdev PhysicalDevice, count *uint32, names []string) Result
}

// Result is a VkResult code.
type Result int32

// Result codes relevant to the loader.
const (
	Success                   Result = 0
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
)

// ErrResult is wrapped by the errors returned from
// Result.Err.
var ErrResult = errors.New("provider: call failed")

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case Incomplete:
		return "VK_INCOMPLETE"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	}
	return "VkResult(" + strconv.Itoa(int(r)) + ")"
}

// Failed reports whether r is an error code.
// Positive codes (e.g., Incomplete) are not errors.
func (r Result) Failed() bool { return r < 0 }

// Err returns nil if r is not an error code.
// Otherwise, it returns an error wrapping ErrResult.
func (r Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return &resultError{r}
}

type resultError struct{ r Result }

func (e *resultError) Error() string { return ErrResult.Error() + ": " + e.r.String() }

func (e *resultError) Unwrap() error { return ErrResult }
