// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"errors"
	"testing"

	"github.com/gviegas/vkel/dl"
	"github.com/gviegas/vkel/internal/fake"
)

func TestNew(t *testing.T) {
	l, sys := newTestLoader(t, map[string]uintptr{}, nil)
	if s := l.State(); s != Uninitialized {
		t.Fatalf("New().State:\nhave %v\nwant %v", s, Uninitialized)
	}
	if sys.Opens != 0 {
		t.Fatal("New: library should not be opened")
	}
	if !unresolved(l) {
		t.Fatal("New: entry points should not be resolved")
	}
	if l.LibraryName() != "" {
		t.Fatal("New().LibraryName: should be empty")
	}
}

func TestGlobalInit(t *testing.T) {
	syms := map[string]uintptr{
		"vkCreateInstance":      0x10,
		"vkCmdDraw":             0x20,
		"vkGetInstanceProcAddr": 0x30,
	}
	l, sys := newTestLoader(t, syms, nil)
	if !l.GlobalInit() {
		t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
	}
	if s := l.State(); s != GloballyInitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, GloballyInitialized)
	}
	if n := l.LibraryName(); n != tLib {
		t.Fatalf("Loader.LibraryName:\nhave %q\nwant %q", n, tLib)
	}
	for name, want := range syms {
		if have, _ := l.Symbols().Lookup(name); have != want {
			t.Fatalf("SymbolTable.Lookup(%q):\nhave %#x\nwant %#x", name, have, want)
		}
	}
	if n := l.Symbols().Resolved(); n != len(syms) {
		t.Fatalf("SymbolTable.Resolved:\nhave %d\nwant %d", n, len(syms))
	}
	if sys.Opens != 1 || sys.Closes != 0 {
		t.Fatalf("fake.System opens/closes:\nhave %d/%d\nwant 1/0", sys.Opens, sys.Closes)
	}

	// Re-initialization must close the previous handle.
	if !l.GlobalInit() {
		t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
	}
	if sys.Opens != sys.Closes+1 {
		t.Fatalf("fake.System opens/closes:\nhave %d/%d\nwant %d/%d", sys.Opens, sys.Closes, sys.Closes+1, sys.Closes)
	}
	if n := sys.OpenHandles(); n != 1 {
		t.Fatalf("fake.System.OpenHandles:\nhave %d\nwant 1", n)
	}
}

func TestGlobalInitFail(t *testing.T) {
	prov := &fake.Provider{InstanceExtensions: map[string][]string{"": {"VK_KHR_surface"}}}
	l, _ := newTestLoader(t, nil, prov)
	if l.GlobalInit() {
		t.Fatal("Loader.GlobalInit: unexpected success")
	}
	if s := l.State(); s != Uninitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, Uninitialized)
	}
	if err := l.Err(); !errors.Is(err, dl.ErrNotInstalled) {
		t.Fatalf("Loader.Err:\nhave %v\nwant %v", err, dl.ErrNotInstalled)
	}
	if !unresolved(l) {
		t.Fatal("Loader.GlobalInit: entry points should not be resolved")
	}
	if n := len(l.Symbols().Missing()); n != int(symN) {
		t.Fatalf("SymbolTable.Missing:\nhave %d names\nwant %d", n, symN)
	}
	if c := l.Caps(); len(c.Extensions()) != 0 || len(c.Layers()) != 0 || c.KHRSurface() {
		t.Fatal("Loader.Caps: no flag should be set")
	}
}

func TestGlobalInitFailAfterSuccess(t *testing.T) {
	prov := &fake.Provider{InstanceExtensions: map[string][]string{"": {"VK_KHR_surface"}}}
	l, sys := newTestLoader(t, map[string]uintptr{"vkCreateInstance": 1}, prov)
	if !l.GlobalInit() {
		t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
	}
	if !l.Caps().KHRSurface() {
		t.Fatal("Caps.KHRSurface: should be set")
	}
	delete(sys.Libs, tLib)
	if l.GlobalInit() {
		t.Fatal("Loader.GlobalInit: unexpected success")
	}
	if !unresolved(l) {
		t.Fatal("Loader.GlobalInit: entry points should be reset")
	}
	if l.Caps().KHRSurface() {
		t.Fatal("Caps.KHRSurface: should be reset")
	}
	if sys.OpenHandles() != 0 {
		t.Fatal("Loader.GlobalInit: previous handle should be closed")
	}
}

func TestUninit(t *testing.T) {
	l, sys := newTestLoader(t, map[string]uintptr{"vkCreateInstance": 1}, nil)
	// Before any initialization.
	l.Uninit()
	if sys.Closes != 0 {
		t.Fatal("Loader.Uninit: nothing should be closed")
	}
	if !l.GlobalInit() {
		t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
	}
	l.Uninit()
	l.Uninit()
	if sys.Opens != 1 || sys.Closes != 1 {
		t.Fatalf("fake.System opens/closes:\nhave %d/%d\nwant 1/1", sys.Opens, sys.Closes)
	}
	if s := l.State(); s != Uninitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, Uninitialized)
	}
	if !unresolved(l) {
		t.Fatal("Loader.Uninit: entry points should be reset")
	}
	if l.LibraryName() != "" {
		t.Fatal("Loader.LibraryName: should be empty")
	}
}

func TestInstanceInit(t *testing.T) {
	const inst Instance = 0x1000
	prov := &fake.Provider{
		InstanceSyms: map[string]uintptr{"vkCreateDevice": 0x200},
	}
	l, sys := newTestLoader(t, map[string]uintptr{"vkCreateInstance": 0x100}, prov)

	// Lazy initialization.
	if !l.InstanceInit(inst) {
		t.Fatalf("Loader.InstanceInit: unexpected failure: %v", l.Err())
	}
	if sys.Opens != 1 {
		t.Fatalf("fake.System.Opens:\nhave %d\nwant 1", sys.Opens)
	}
	if s := l.State(); s != InstanceInitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, InstanceInitialized)
	}
	if prov.LastInstance != inst {
		t.Fatalf("fake.Provider.LastInstance:\nhave %#x\nwant %#x", prov.LastInstance, inst)
	}
	if p := l.Symbols().CreateDevice(); p != 0x200 {
		t.Fatalf("SymbolTable.CreateDevice:\nhave %#x\nwant 0x200", p)
	}
	if p := l.Symbols().CreateInstance(); p != 0x100 {
		t.Fatalf("SymbolTable.CreateInstance:\nhave %#x\nwant 0x100", p)
	}

	// An open library must not be reopened.
	if !l.InstanceInit(inst) {
		t.Fatalf("Loader.InstanceInit: unexpected failure: %v", l.Err())
	}
	if sys.Opens != 1 {
		t.Fatalf("fake.System.Opens:\nhave %d\nwant 1", sys.Opens)
	}
}

func TestInstanceInitFail(t *testing.T) {
	l, _ := newTestLoader(t, nil, nil)
	if l.InstanceInit(1) {
		t.Fatal("Loader.InstanceInit: unexpected success")
	}
	if l.DeviceInit(1, 2) {
		t.Fatal("Loader.DeviceInit: unexpected success")
	}
	if s := l.State(); s != Uninitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, Uninitialized)
	}
	if !unresolved(l) {
		t.Fatal("Loader: entry points should not be resolved")
	}
}

func TestDeviceInit(t *testing.T) {
	const (
		pdev PhysicalDevice = 0x2000
		dev  Device         = 0x3000
	)
	prov := &fake.Provider{
		DeviceSyms:         map[string]uintptr{"vkCmdDraw": 0x300},
		InstanceExtensions: map[string][]string{"": {"VK_KHR_surface"}},
		DeviceExtensions:   map[string][]string{"": {"VK_KHR_swapchain"}},
		DeviceLayers:       []string{"VK_LAYER_LUNARG_threading"},
	}
	l, sys := newTestLoader(t, map[string]uintptr{"vkCreateInstance": 0x100}, prov)
	if !l.DeviceInit(pdev, dev) {
		t.Fatalf("Loader.DeviceInit: unexpected failure: %v", l.Err())
	}
	if sys.Opens != 1 {
		t.Fatalf("fake.System.Opens:\nhave %d\nwant 1", sys.Opens)
	}
	if s := l.State(); s != DeviceInitialized {
		t.Fatalf("Loader.State:\nhave %v\nwant %v", s, DeviceInitialized)
	}
	if prov.LastDevice != dev {
		t.Fatalf("fake.Provider.LastDevice:\nhave %#x\nwant %#x", prov.LastDevice, dev)
	}
	if prov.LastPhysicalDevice != pdev {
		t.Fatalf("fake.Provider.LastPhysicalDevice:\nhave %#x\nwant %#x", prov.LastPhysicalDevice, pdev)
	}
	if p := l.Symbols().CmdDraw(); p != 0x300 {
		t.Fatalf("SymbolTable.CmdDraw:\nhave %#x\nwant 0x300", p)
	}
	if p := l.Symbols().CreateInstance(); p != 0x100 {
		t.Fatalf("SymbolTable.CreateInstance:\nhave %#x\nwant 0x100", p)
	}
	c := l.Caps()
	if !c.KHRSwapchain() || !c.LayerLUNARGThreading() {
		t.Fatal("Loader.Caps: device-level flags should be set")
	}
	if c.KHRSurface() {
		t.Fatal("Loader.Caps: instance-level flags should not be set")
	}
}

func TestStateString(t *testing.T) {
	for _, x := range [...]struct {
		s    State
		want string
	}{
		{Uninitialized, "uninitialized"},
		{GloballyInitialized, "globally initialized"},
		{InstanceInitialized, "instance initialized"},
		{DeviceInitialized, "device initialized"},
		{State(-1), "State(-1)"},
	} {
		if have := x.s.String(); have != x.want {
			t.Fatalf("State.String:\nhave %q\nwant %q", have, x.want)
		}
	}
}

func TestDefault(t *testing.T) {
	l := Default()
	if l == nil || l != Default() {
		t.Fatal("Default: should return the same Loader")
	}
	if s := l.State(); s != Uninitialized {
		t.Fatalf("Default().State:\nhave %v\nwant %v", s, Uninitialized)
	}
}
