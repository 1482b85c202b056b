// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package provider

import (
	"errors"
	"testing"
)

func TestResult(t *testing.T) {
	for _, x := range [...]struct {
		r      Result
		failed bool
		s      string
	}{
		{Success, false, "VK_SUCCESS"},
		{Incomplete, false, "VK_INCOMPLETE"},
		{ErrorOutOfHostMemory, true, "VK_ERROR_OUT_OF_HOST_MEMORY"},
		{ErrorInitializationFailed, true, "VK_ERROR_INITIALIZATION_FAILED"},
		{ErrorLayerNotPresent, true, "VK_ERROR_LAYER_NOT_PRESENT"},
		{-1000001004, true, "VkResult(-1000001004)"},
		{42, false, "VkResult(42)"},
	} {
		if f := x.r.Failed(); f != x.failed {
			t.Fatalf("%d.Failed():\nhave %t\nwant %t", x.r, f, x.failed)
		}
		if s := x.r.String(); s != x.s {
			t.Fatalf("%d.String():\nhave %s\nwant %s", x.r, s, x.s)
		}
		err := x.r.Err()
		switch {
		case x.failed && !errors.Is(err, ErrResult):
			t.Fatalf("%s.Err():\nhave %v\nwant %v", x.r, err, ErrResult)
		case !x.failed && err != nil:
			t.Fatalf("%s.Err():\nhave %v\nwant nil", x.r, err)
		}
	}
}

func TestCString(t *testing.T) {
	if p := cString(""); p != nil {
		t.Fatalf("cString(\"\"):\nhave %p\nwant nil", p)
	}
	p := cString("VK_LAYER_KHRONOS_validation")
	if p == nil {
		t.Fatal("cString: unexpected nil")
	}
	var s []byte
	for i := 0; ; i++ {
		c := *(*byte)(ptrAdd(p, i))
		if c == 0 {
			break
		}
		s = append(s, c)
	}
	if string(s) != "VK_LAYER_KHRONOS_validation" {
		t.Fatalf("cString:\nhave %q\nwant %q", s, "VK_LAYER_KHRONOS_validation")
	}
}

func TestGoString(t *testing.T) {
	var ext extensionProperties
	copy(ext.extensionName[:], "VK_KHR_surface")
	if s := goString(ext.extensionName[:]); s != "VK_KHR_surface" {
		t.Fatalf("goString:\nhave %q\nwant %q", s, "VK_KHR_surface")
	}

	// Unterminated names are truncated at the last byte.
	for i := range ext.extensionName {
		ext.extensionName[i] = 'x'
	}
	s := goString(ext.extensionName[:])
	if n := len(s); n != maxExtensionNameSize-1 {
		t.Fatalf("goString: len:\nhave %d\nwant %d", n, maxExtensionNameSize-1)
	}

	if s := goString(nil); s != "" {
		t.Fatalf("goString(nil):\nhave %q\nwant \"\"", s)
	}
}

func TestFillNames(t *testing.T) {
	props := make([]layerProperties, 3)
	copy(props[0].layerName[:], "VK_LAYER_LUNARG_api_dump")
	copy(props[1].layerName[:], "VK_LAYER_KHRONOS_validation")
	copy(props[2].layerName[:], "VK_LAYER_MESA_overlay")
	copy(props[1].description[:], "Khronos validation layer")
	names := make([]string, 3)
	fillLayerNames(names, props, 2)
	want := []string{"VK_LAYER_LUNARG_api_dump", "VK_LAYER_KHRONOS_validation", ""}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("fillLayerNames: names[%d]:\nhave %q\nwant %q", i, names[i], want[i])
		}
	}
}

func TestNativeMissing(t *testing.T) {
	var looked []string
	p := Native(func(name string) uintptr {
		looked = append(looked, name)
		return 0
	})
	if n := len(looked); n != 6 {
		t.Fatalf("Native: lookups:\nhave %d (%v)\nwant 6", n, looked)
	}
	if addr := p.GetInstanceProcAddr(0, "vkCreateInstance"); addr != 0 {
		t.Fatalf("GetInstanceProcAddr:\nhave %#x\nwant 0", addr)
	}
	if addr := p.GetDeviceProcAddr(1, "vkQueueSubmit"); addr != 0 {
		t.Fatalf("GetDeviceProcAddr:\nhave %#x\nwant 0", addr)
	}
	var n uint32
	for _, res := range [...]Result{
		p.EnumerateInstanceExtensionProperties("", &n, nil),
		p.EnumerateInstanceLayerProperties(&n, nil),
		p.EnumerateDeviceExtensionProperties(1, "", &n, nil),
		p.EnumerateDeviceLayerProperties(1, &n, nil),
	} {
		if res != ErrorInitializationFailed {
			t.Fatalf("Enumerate*:\nhave %v\nwant %v", res, ErrorInitializationFailed)
		}
	}
	if n != 0 {
		t.Fatalf("Enumerate*: count:\nhave %d\nwant 0", n)
	}
}
