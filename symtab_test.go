// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"slices"
	"testing"
)

func TestSymbolTable(t *testing.T) {
	l, _ := newTestLoader(t, map[string]uintptr{"vkCmdDraw": 0x20, "vkCreateInstance": 0x10}, nil)
	if !l.GlobalInit() {
		t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
	}
	st := l.Symbols()
	if p := st.Addr(SymCmdDraw); p != 0x20 || p != st.CmdDraw() {
		t.Fatalf("SymbolTable.Addr(SymCmdDraw):\nhave %#x\nwant 0x20", p)
	}
	if p := st.Addr(-1); p != 0 {
		t.Fatalf("SymbolTable.Addr(-1):\nhave %#x\nwant 0", p)
	}
	if p := st.Addr(symN); p != 0 {
		t.Fatalf("SymbolTable.Addr(symN):\nhave %#x\nwant 0", p)
	}
	if p, ok := st.Lookup("vkCreateInstance"); !ok || p != 0x10 {
		t.Fatalf("SymbolTable.Lookup:\nhave %#x, %t\nwant 0x10, true", p, ok)
	}
	if p, ok := st.Lookup("vkQueueSubmit"); !ok || p != 0 {
		t.Fatalf("SymbolTable.Lookup:\nhave %#x, %t\nwant 0, true", p, ok)
	}
	if _, ok := st.Lookup("vkcmddraw"); ok {
		t.Fatal("SymbolTable.Lookup: should be case-sensitive")
	}
	miss := st.Missing()
	if len(miss) != int(symN)-2 {
		t.Fatalf("SymbolTable.Missing:\nhave %d names\nwant %d", len(miss), symN-2)
	}
	if slices.Contains(miss, "vkCmdDraw") || !slices.Contains(miss, "vkQueueSubmit") {
		t.Fatal("SymbolTable.Missing: wrong names")
	}
}

func TestPlatforms(t *testing.T) {
	syms := map[string]uintptr{
		"vkCreateXcbSurfaceKHR":   1,
		"vkCreateWin32SurfaceKHR": 2,
		"vkCreateSurfaceKHR":      3,
	}
	// vkCreateSurfaceKHR is not a known entry point.
	for _, x := range [...]struct {
		ps         []Platform
		xcb, win32 bool
	}{
		{[]Platform{PlatformXCB}, true, false},
		{[]Platform{PlatformWin32}, false, true},
		{[]Platform{PlatformXCB, PlatformWin32}, true, true},
		{nil, false, false},
	} {
		l, _ := newTestLoader(t, syms, nil, WithPlatforms(x.ps...))
		if !l.GlobalInit() {
			t.Fatalf("Loader.GlobalInit: unexpected failure: %v", l.Err())
		}
		st := l.Symbols()
		if have := st.CreateXcbSurfaceKHR() != 0; have != x.xcb {
			t.Fatalf("WithPlatforms(%v): vkCreateXcbSurfaceKHR resolved:\nhave %t\nwant %t", x.ps, have, x.xcb)
		}
		if have := st.CreateWin32SurfaceKHR() != 0; have != x.win32 {
			t.Fatalf("WithPlatforms(%v): vkCreateWin32SurfaceKHR resolved:\nhave %t\nwant %t", x.ps, have, x.win32)
		}
		// Platform-specific entry points are still reachable
		// by name.
		if p := l.ResolveGlobal("vkCreateWin32SurfaceKHR"); p != 2 {
			t.Fatalf("Loader.ResolveGlobal:\nhave %#x\nwant 0x2", p)
		}
	}
}

func TestDefaultPlatforms(t *testing.T) {
	for _, x := range [...]struct {
		goos string
		want []Platform
	}{
		{"windows", []Platform{PlatformWin32}},
		{"android", []Platform{PlatformAndroid}},
		{"darwin", nil},
		{"linux", []Platform{PlatformXCB, PlatformXlib, PlatformWayland, PlatformMir}},
		{"freebsd", []Platform{PlatformXCB, PlatformXlib, PlatformWayland, PlatformMir}},
	} {
		if have := DefaultPlatforms(x.goos); !slices.Equal(have, x.want) {
			t.Fatalf("DefaultPlatforms(%q):\nhave %v\nwant %v", x.goos, have, x.want)
		}
	}
}

func TestSymInfo(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Syms() {
		name := s.Name()
		if seen[name] {
			t.Fatalf("Sym.Name: duplicate %q", name)
		}
		seen[name] = true
		if x, ok := LookupSym(name); !ok || x != s {
			t.Fatalf("LookupSym(%q):\nhave %v, %t\nwant %v, true", name, x, ok, s)
		}
	}
	for _, x := range [...]struct {
		sym  Sym
		name string
		kind Kind
		plat Platform
	}{
		{SymCreateInstance, "vkCreateInstance", KindGlobal, PlatformAny},
		{SymGetDeviceProcAddr, "vkGetDeviceProcAddr", KindInstance, PlatformAny},
		{SymCmdDraw, "vkCmdDraw", KindDevice, PlatformAny},
		{SymCreateXcbSurfaceKHR, "vkCreateXcbSurfaceKHR", KindInstance, PlatformXCB},
	} {
		if s := x.sym.Name(); s != x.name {
			t.Fatalf("Sym.Name:\nhave %q\nwant %q", s, x.name)
		}
		if k := x.sym.Kind(); k != x.kind {
			t.Fatalf("Sym.Kind(%s):\nhave %v\nwant %v", x.name, k, x.kind)
		}
		if p := x.sym.Platform(); p != x.plat {
			t.Fatalf("Sym.Platform(%s):\nhave %v\nwant %v", x.name, p, x.plat)
		}
	}
	if s := Sym(-1).String(); s != "Sym(-1)" {
		t.Fatalf("Sym.String:\nhave %q\nwant %q", s, "Sym(-1)")
	}
}

func TestSymInvalid(t *testing.T) {
	for _, s := range [...]Sym{-1, symN, symN + 100} {
		if n := s.Name(); n != "" {
			t.Fatalf("Sym(%d).Name:\nhave %q\nwant \"\"", s, n)
		}
		if k := s.Kind(); k != KindGlobal {
			t.Fatalf("Sym(%d).Kind:\nhave %v\nwant %v", s, k, KindGlobal)
		}
		if p := s.Platform(); p != PlatformAny {
			t.Fatalf("Sym(%d).Platform:\nhave %v\nwant %v", s, p, PlatformAny)
		}
	}
}
