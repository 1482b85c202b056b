// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package fake implements dl.System and provider.Provider
// in memory, for testing.
package fake

import (
	"errors"

	"github.com/gviegas/vkel/provider"
)

// Errors returned by System.
var (
	ErrNoLibrary = errors.New("fake: no such library")
	ErrNoSymbol  = errors.New("fake: no such symbol")
	ErrHandle    = errors.New("fake: bad handle")
)

// System serves libraries from a map of library names to
// symbol tables. It counts opens and closes.
type System struct {
	Libs   map[string]map[string]uintptr
	Opens  int
	Closes int

	open map[uintptr]string
	next uintptr
}

// NewSystem creates an empty System.
func NewSystem() *System {
	return &System{
		Libs: make(map[string]map[string]uintptr),
		open: make(map[uintptr]string),
	}
}

// AddLibrary makes a library loadable under name.
func (s *System) AddLibrary(name string, syms map[string]uintptr) {
	if syms == nil {
		syms = make(map[string]uintptr)
	}
	s.Libs[name] = syms
}

// Open implements dl.System.
func (s *System) Open(name string) (uintptr, error) {
	if _, ok := s.Libs[name]; !ok {
		return 0, ErrNoLibrary
	}
	s.Opens++
	s.next++
	s.open[s.next] = name
	return s.next, nil
}

// Close implements dl.System.
func (s *System) Close(h uintptr) error {
	if _, ok := s.open[h]; !ok {
		return ErrHandle
	}
	delete(s.open, h)
	s.Closes++
	return nil
}

// Sym implements dl.System.
func (s *System) Sym(h uintptr, name string) (uintptr, error) {
	lib, ok := s.open[h]
	if !ok {
		return 0, ErrHandle
	}
	if p, ok := s.Libs[lib][name]; ok {
		return p, nil
	}
	return 0, ErrNoSymbol
}

// OpenHandles returns the number of handles not yet closed.
func (s *System) OpenHandles() int { return len(s.open) }

// Provider serves entry points and names from maps.
//
// InstanceSyms and DeviceSyms hold the entry points returned
// by GetInstanceProcAddr and GetDeviceProcAddr. Extension maps
// are keyed by layer name, the empty key holding the names
// provided by the implementation itself.
type Provider struct {
	InstanceSyms       map[string]uintptr
	DeviceSyms         map[string]uintptr
	InstanceExtensions map[string][]string
	InstanceLayers     []string
	DeviceExtensions   map[string][]string
	DeviceLayers       []string

	// Fail, if not Success, is returned by every enumeration.
	Fail provider.Result
	// Late is appended to every list between the count
	// query and the fill call.
	Late []string

	// Handles seen by the most recent calls.
	LastInstance       provider.Instance
	LastDevice         provider.Device
	LastPhysicalDevice provider.PhysicalDevice
}

// GetInstanceProcAddr implements provider.Provider.
func (p *Provider) GetInstanceProcAddr(inst provider.Instance, name string) uintptr {
	p.LastInstance = inst
	return p.InstanceSyms[name]
}

// GetDeviceProcAddr implements provider.Provider.
func (p *Provider) GetDeviceProcAddr(dev provider.Device, name string) uintptr {
	p.LastDevice = dev
	return p.DeviceSyms[name]
}

// EnumerateInstanceExtensionProperties implements provider.Provider.
func (p *Provider) EnumerateInstanceExtensionProperties(layer string, count *uint32, names []string) provider.Result {
	return p.enumerate(p.InstanceExtensions[layer], count, names)
}

// EnumerateInstanceLayerProperties implements provider.Provider.
func (p *Provider) EnumerateInstanceLayerProperties(count *uint32, names []string) provider.Result {
	return p.enumerate(p.InstanceLayers, count, names)
}

// EnumerateDeviceExtensionProperties implements provider.Provider.
func (p *Provider) EnumerateDeviceExtensionProperties(pdev provider.PhysicalDevice, layer string, count *uint32, names []string) provider.Result {
	p.LastPhysicalDevice = pdev
	return p.enumerate(p.DeviceExtensions[layer], count, names)
}

// EnumerateDeviceLayerProperties implements provider.Provider.
func (p *Provider) EnumerateDeviceLayerProperties(pdev provider.PhysicalDevice, count *uint32, names []string) provider.Result {
	p.LastPhysicalDevice = pdev
	return p.enumerate(p.DeviceLayers, count, names)
}

func (p *Provider) enumerate(src []string, count *uint32, names []string) provider.Result {
	if p.Fail != provider.Success {
		return p.Fail
	}
	if names == nil {
		*count = uint32(len(src))
		return provider.Success
	}
	src = append(src[:len(src):len(src)], p.Late...)
	n := copy(names[:min(int(*count), len(names))], src)
	*count = uint32(n)
	if n < len(src) {
		return provider.Incomplete
	}
	return provider.Success
}
