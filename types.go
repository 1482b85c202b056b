// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"runtime"
	"strconv"

	"github.com/gviegas/vkel/provider"
)

// Handles of Vulkan dispatchable objects.
type (
	Instance       = provider.Instance
	PhysicalDevice = provider.PhysicalDevice
	Device         = provider.Device
)

// Sym identifies a known entry point.
type Sym int

// Kind distinguishes how an entry point is expected to be
// obtained from the implementation.
type Kind int

// Kinds of entry point.
const (
	// Available without an instance (e.g., vkCreateInstance).
	KindGlobal Kind = iota
	// Dispatched on an instance or physical device.
	KindInstance
	// Dispatched on a device, queue or command buffer.
	KindDevice
)

func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "global"
	case KindInstance:
		return "instance"
	case KindDevice:
		return "device"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Platform identifies the window system that an entry point
// is specific to.
type Platform int

// Platforms.
const (
	PlatformAny Platform = iota
	PlatformAndroid
	PlatformMir
	PlatformWayland
	PlatformWin32
	PlatformXCB
	PlatformXlib

	platformN
)

func (p Platform) String() string {
	switch p {
	case PlatformAny:
		return "any"
	case PlatformAndroid:
		return "android"
	case PlatformMir:
		return "mir"
	case PlatformWayland:
		return "wayland"
	case PlatformWin32:
		return "win32"
	case PlatformXCB:
		return "xcb"
	case PlatformXlib:
		return "xlib"
	}
	return "Platform(" + strconv.Itoa(int(p)) + ")"
}

// platformSet is a set of platforms, one bit per Platform.
type platformSet uint32

func (s platformSet) has(p Platform) bool {
	return p == PlatformAny || s&(1<<p) != 0
}

func makePlatformSet(ps ...Platform) (s platformSet) {
	for _, p := range ps {
		if p > PlatformAny && p < platformN {
			s |= 1 << p
		}
	}
	return
}

// DefaultPlatforms returns the platforms whose entry points
// are resolved by default on goos.
func DefaultPlatforms(goos string) []Platform {
	switch goos {
	case "windows":
		return []Platform{PlatformWin32}
	case "android":
		return []Platform{PlatformAndroid}
	case "darwin", "ios", "js", "wasip1", "plan9":
		return nil
	default:
		return []Platform{PlatformXCB, PlatformXlib, PlatformWayland, PlatformMir}
	}
}

var hostPlatforms = makePlatformSet(DefaultPlatforms(runtime.GOOS)...)

// LookupSym returns the Sym of the named entry point.
func LookupSym(name string) (Sym, bool) {
	s, ok := symByName[name]
	return s, ok
}

var symByName = func() map[string]Sym {
	m := make(map[string]Sym, symN)
	for i := range symInfo {
		m[symInfo[i].name] = Sym(i)
	}
	return m
}()

// Name returns the name of the entry point (e.g., "vkCmdDraw").
func (s Sym) Name() string {
	if s < 0 || s >= symN {
		return ""
	}
	return symInfo[s].name
}

// Kind returns the kind of the entry point.
// It returns KindGlobal if s is not valid.
func (s Sym) Kind() Kind {
	if s < 0 || s >= symN {
		return KindGlobal
	}
	return symInfo[s].kind
}

// Platform returns the platform that the entry point is
// specific to, or PlatformAny.
func (s Sym) Platform() Platform {
	if s < 0 || s >= symN {
		return PlatformAny
	}
	return symInfo[s].platform
}

func (s Sym) String() string {
	if n := s.Name(); n != "" {
		return n
	}
	return "Sym(" + strconv.Itoa(int(s)) + ")"
}

// Syms returns every known entry point.
func Syms() []Sym {
	s := make([]Sym, symN)
	for i := range s {
		s[i] = Sym(i)
	}
	return s
}

// Ext identifies a known extension.
type Ext int

// Name returns the name of the extension (e.g., "VK_KHR_surface").
func (e Ext) Name() string {
	if e < 0 || e >= extN {
		return ""
	}
	return extNames[e]
}

func (e Ext) String() string {
	if n := e.Name(); n != "" {
		return n
	}
	return "Ext(" + strconv.Itoa(int(e)) + ")"
}

// Exts returns every known extension.
func Exts() []Ext {
	e := make([]Ext, extN)
	for i := range e {
		e[i] = Ext(i)
	}
	return e
}

// Layer identifies a known layer.
type Layer int

// Name returns the name of the layer
// (e.g., "VK_LAYER_LUNARG_api_dump").
func (l Layer) Name() string {
	if l < 0 || l >= layerN {
		return ""
	}
	return layerNames[l]
}

func (l Layer) String() string {
	if n := l.Name(); n != "" {
		return n
	}
	return "Layer(" + strconv.Itoa(int(l)) + ")"
}

// Layers returns every known layer.
func Layers() []Layer {
	l := make([]Layer, layerN)
	for i := range l {
		l[i] = Layer(i)
	}
	return l
}
