// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"go/format"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
command "vkCreateInstance" {
  kind = global
}
command "vkCmdDraw" {
  kind = device
}
command "vkCreateXcbSurfaceKHR" {
  kind     = instance
  platform = "xcb"
}
extension "VK_KHR_surface" {}
layer "VK_LAYER_LUNARG_api_dump" {}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(testSchema), "test.hcl")
	require.NoError(t, err)
	require.Len(t, s.Commands, 3)
	require.Equal(t, "vkCreateInstance", s.Commands[0].Name)
	require.Equal(t, Global, s.Commands[0].Kind)
	require.Equal(t, Device, s.Commands[1].Kind)
	require.Equal(t, Instance, s.Commands[2].Kind)
	require.Equal(t, "xcb", s.Commands[2].Platform)
	require.Empty(t, s.Commands[0].Platform)
	require.Len(t, s.Extensions, 1)
	require.Equal(t, "VK_KHR_surface", s.Extensions[0].Name)
	require.Len(t, s.Layers, 1)
	require.Equal(t, "VK_LAYER_LUNARG_api_dump", s.Layers[0].Name)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`command "vkX" {`), "bad.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.hcl")
}

func TestParseUnknownVariable(t *testing.T) {
	_, err := Parse([]byte(`command "vkX" { kind = queue }`), "bad.hcl")
	require.Error(t, err)
}

func TestParseMissingKind(t *testing.T) {
	_, err := Parse([]byte(`command "vkX" {}`), "bad.hcl")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, x := range [...]struct {
		src  string
		want error
	}{
		{``, ErrEmpty},
		{`command "vkA" { kind = "queue" }`, ErrKind},
		{`command "vkA" {
			kind     = device
			platform = "cocoa"
		}`, ErrPlatform},
		{`command "A" { kind = device }`, ErrBadName},
		{`command "vk A" { kind = device }`, ErrBadName},
		{`command "vkA" { kind = device }
		command "vkA" { kind = device }`, ErrDuplicate},
		{`command "vkA" { kind = device }
		extension "KHR_surface" {}`, ErrBadName},
		{`command "vkA" { kind = device }
		layer "VK_LUNARG_api_dump" {}`, ErrBadName},
		{`command "vkA" { kind = device }
		extension "VK_KHR_surface" {}
		extension "VK_KHR_surface" {}`, ErrDuplicate},
	} {
		_, err := Parse([]byte(x.src), "test.hcl")
		require.Truef(t, errors.Is(err, x.want), "Parse(%q):\nhave %v\nwant %v", x.src, err, x.want)
	}
}

func TestValidateJoin(t *testing.T) {
	s := &Schema{Commands: []*Command{
		{Name: "A", Kind: "queue", Platform: "cocoa"},
	}}
	err := s.Validate()
	require.ErrorIs(t, err, ErrBadName)
	require.ErrorIs(t, err, ErrKind)
	require.ErrorIs(t, err, ErrPlatform)
}

func TestIdents(t *testing.T) {
	for _, x := range [...]struct{ have, want string }{
		{SymIdent("vkCmdDraw"), "CmdDraw"},
		{SymIdent("vkCreateXcbSurfaceKHR"), "CreateXcbSurfaceKHR"},
		{ExtIdent("VK_KHR_surface"), "KHRSurface"},
		{ExtIdent("VK_EXT_debug_report"), "EXTDebugReport"},
		{ExtIdent("VK_KHR_sampler_mirror_clamp_to_edge"), "KHRSamplerMirrorClampToEdge"},
		{LayerIdent("VK_LAYER_LUNARG_api_dump"), "LUNARGApiDump"},
		{LayerIdent("VK_LAYER_GOOGLE_unique_objects"), "GOOGLEUniqueObjects"},
		{goKind(Global), "KindGlobal"},
		{goKind(Instance), "KindInstance"},
		{goKind(Device), "KindDevice"},
		{goPlatform(""), "PlatformAny"},
		{goPlatform("xcb"), "PlatformXCB"},
		{goPlatform("win32"), "PlatformWin32"},
		{goPlatform("wayland"), "PlatformWayland"},
	} {
		require.Equal(t, x.want, x.have)
	}
}

func TestGenerate(t *testing.T) {
	s, err := Parse([]byte(testSchema), "test.hcl")
	require.NoError(t, err)
	src, err := Generate(s, "vkel", "test.hcl")
	require.NoError(t, err)
	out := string(src)

	require.True(t, strings.HasPrefix(out, "// Code generated by symgen from test.hcl. DO NOT EDIT.\n"))
	for _, want := range [...]string{
		"package vkel\n",
		"SymCreateInstance Sym = iota",
		"\tSymCmdDraw\n",
		"\tsymN\n",
		`{"vkCreateXcbSurfaceKHR", KindInstance, PlatformXCB},`,
		`{"vkCmdDraw", KindDevice, PlatformAny},`,
		"func (t *SymbolTable) CmdDraw() uintptr {\n\treturn t.addr[SymCmdDraw]\n}\n",
		"ExtKHRSurface Ext = iota",
		`"VK_KHR_surface",`,
		"func (c Caps) KHRSurface() bool {\n\treturn c.Extension(ExtKHRSurface)\n}\n",
		"LayerLUNARGApiDump Layer = iota",
		"func (c Caps) LayerLUNARGApiDump() bool {\n\treturn c.Layer(LayerLUNARGApiDump)\n}\n",
	} {
		require.Contains(t, out, want)
	}
}

func TestGenerateNoExtensions(t *testing.T) {
	s := &Schema{Commands: []*Command{{Name: "vkA", Kind: Device}}}
	src, err := Generate(s, "p", "x.hcl")
	require.NoError(t, err)
	require.Contains(t, string(src), "extN Ext = 0")
	require.Contains(t, string(src), "layerN Layer = 0")
}

func TestSchemaFile(t *testing.T) {
	s, err := ParseFile("../../symbols.hcl")
	require.NoError(t, err)
	require.NotEmpty(t, s.Commands)
	require.NotEmpty(t, s.Extensions)
	require.NotEmpty(t, s.Layers)
}

// The checked-in tables must be exactly what the schema
// generates.
func TestGeneratedFileUpToDate(t *testing.T) {
	s, err := ParseFile("../../symbols.hcl")
	require.NoError(t, err)
	have, err := os.ReadFile("../../symbols_gen.go")
	require.NoError(t, err)
	want, err := Generate(s, "vkel", "symbols.hcl")
	require.NoError(t, err)
	require.Equal(t, string(want), string(have), "symbols_gen.go is stale; run go generate")
}

// Accessors must keep their multi-line form regardless of
// name length, so gofmt leaves the output unchanged.
func TestGenerateIsFormatted(t *testing.T) {
	s := &Schema{Commands: []*Command{
		{Name: "vkA", Kind: Device},
		{Name: "vkGetPhysicalDeviceSurfaceCapabilitiesKHR", Kind: Instance},
	}}
	src, err := Generate(s, "p", "x.hcl")
	require.NoError(t, err)
	again, err := format.Source(src)
	require.NoError(t, err)
	require.Equal(t, string(src), string(again))
	require.Contains(t, string(src), "func (t *SymbolTable) A() uintptr {\n\treturn t.addr[SymA]\n}\n")
	require.Contains(t, string(src), "func (t *SymbolTable) GetPhysicalDeviceSurfaceCapabilitiesKHR() uintptr {\n")
}
