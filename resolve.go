// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

// ResolveGlobal returns the address of the named entry point
// as exported by the library, or 0.
func (l *Loader) ResolveGlobal(name string) uintptr { return l.lib.Lookup(name) }

// ResolveForInstance returns the address of the named entry
// point for inst, or 0.
// The implementation is queried first, then the library.
func (l *Loader) ResolveForInstance(inst Instance, name string) uintptr {
	if l.prov != nil {
		if p := l.prov.GetInstanceProcAddr(inst, name); p != 0 {
			return p
		}
	}
	return l.ResolveGlobal(name)
}

// ResolveForDevice returns the address of the named entry
// point for dev, or 0.
// The implementation is queried first, then ResolveForInstance
// is used with the instance of the last InstanceInit call
// (a null instance if there was none).
func (l *Loader) ResolveForDevice(dev Device, name string) uintptr {
	if l.prov != nil {
		if p := l.prov.GetDeviceProcAddr(dev, name); p != 0 {
			return p
		}
	}
	return l.ResolveForInstance(l.inst, name)
}
