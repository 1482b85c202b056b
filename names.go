// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"github.com/gviegas/vkel/provider"
)

type scopeKind int

const (
	scopeGlobal scopeKind = iota
	scopeInstance
	scopeDevice
)

// Scope selects which extensions and layers are enumerated.
// Global and instance scopes enumerate instance-level names.
// Device scope enumerates the device-level names of a
// physical device.
type Scope struct {
	kind scopeKind
	inst Instance
	pdev PhysicalDevice
}

// GlobalScope returns the scope of instance-level names
// that is usable before any instance exists.
func GlobalScope() Scope { return Scope{kind: scopeGlobal} }

// InstanceScope returns the scope of instance-level names.
func InstanceScope(inst Instance) Scope { return Scope{kind: scopeInstance, inst: inst} }

// DeviceScope returns the scope of device-level names of pdev.
func DeviceScope(pdev PhysicalDevice) Scope { return Scope{kind: scopeDevice, pdev: pdev} }

func (s Scope) String() string {
	switch s.kind {
	case scopeInstance:
		return "instance"
	case scopeDevice:
		return "device"
	}
	return "global"
}

// NameList is a list of extension or layer names.
type NameList []string

// Contains reports whether name is in n.
// The comparison is exact and case-sensitive.
func (n NameList) Contains(name string) bool {
	for _, s := range n {
		if s == name {
			return true
		}
	}
	return false
}

// Release clears the entries of n and empties it.
// It can be called any number of times.
func (n *NameList) Release() {
	clear(*n)
	*n = nil
}

// ListExtensionNames returns the names of the extensions
// available in scope. If layer is not empty, only the
// extensions provided by that layer are listed.
// It returns an empty list if the enumeration fails or no
// library is open.
func (l *Loader) ListExtensionNames(scope Scope, layer string) NameList {
	if l.prov == nil {
		return nil
	}
	if scope.kind == scopeDevice {
		return l.enumerate("device extensions", func(n *uint32, s []string) provider.Result {
			return l.prov.EnumerateDeviceExtensionProperties(scope.pdev, layer, n, s)
		})
	}
	return l.enumerate("instance extensions", func(n *uint32, s []string) provider.Result {
		return l.prov.EnumerateInstanceExtensionProperties(layer, n, s)
	})
}

// ListLayerNames returns the names of the layers available
// in scope.
// It returns an empty list if the enumeration fails or no
// library is open.
func (l *Loader) ListLayerNames(scope Scope) NameList {
	if l.prov == nil {
		return nil
	}
	if scope.kind == scopeDevice {
		return l.enumerate("device layers", func(n *uint32, s []string) provider.Result {
			return l.prov.EnumerateDeviceLayerProperties(scope.pdev, n, s)
		})
	}
	return l.enumerate("instance layers", l.prov.EnumerateInstanceLayerProperties)
}

// enumerate calls f twice: once to query the number of names
// and once to fetch them. The count returned by the first
// call bounds the list, even if more names become available
// in between.
func (l *Loader) enumerate(what string, f func(count *uint32, names []string) provider.Result) NameList {
	var n uint32
	if res := f(&n, nil); res.Failed() {
		l.log.Debug("Enumeration failed.", "what", what, "result", res)
		return nil
	}
	if n == 0 {
		return nil
	}
	names := make(NameList, n)
	res := f(&n, names)
	if res.Failed() {
		l.log.Debug("Enumeration failed.", "what", what, "result", res)
		return nil
	}
	return names[:min(int(n), len(names))]
}

// IsExtensionSupported reports whether the named extension
// is available in scope, optionally restricted to the
// extensions provided by layer.
func (l *Loader) IsExtensionSupported(scope Scope, layer, name string) bool {
	names := l.ListExtensionNames(scope, layer)
	defer names.Release()
	return names.Contains(name)
}

// IsLayerSupported reports whether the named layer is
// available in scope.
func (l *Loader) IsLayerSupported(scope Scope, name string) bool {
	names := l.ListLayerNames(scope)
	defer names.Release()
	return names.Contains(name)
}
