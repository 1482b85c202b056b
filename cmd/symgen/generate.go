// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"go/format"
	"strings"
)

// SymIdent returns the Go identifier of a command
// (e.g., "CmdDraw" for "vkCmdDraw").
func SymIdent(name string) string { return strings.TrimPrefix(name, "vk") }

// ExtIdent returns the Go identifier of an extension
// (e.g., "KHRSurface" for "VK_KHR_surface").
func ExtIdent(name string) string { return camel(strings.TrimPrefix(name, "VK_")) }

// LayerIdent returns the Go identifier of a layer
// (e.g., "LUNARGApiDump" for "VK_LAYER_LUNARG_api_dump").
func LayerIdent(name string) string { return camel(strings.TrimPrefix(name, "VK_LAYER_")) }

// camel joins the underscore-separated parts of s.
// Upper case parts (vendor tags) are kept as they are,
// other parts are capitalized.
func camel(s string) string {
	var b strings.Builder
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		if strings.ToUpper(p) == p {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// goKind maps a command kind to its Go constant.
func goKind(kind string) string {
	switch kind {
	case Global:
		return "KindGlobal"
	case Instance:
		return "KindInstance"
	default:
		return "KindDevice"
	}
}

// goPlatform maps a command platform to its Go constant.
func goPlatform(p string) string {
	switch p {
	case "":
		return "PlatformAny"
	case "xcb":
		return "PlatformXCB"
	default:
		return "Platform" + strings.ToUpper(p[:1]) + p[1:]
	}
}

// enum writes a constant block enumerating idents with
// type typ, followed by an unexported sentinel holding the
// number of constants.
func enum(b *strings.Builder, typ, sentinel string, idents []string) {
	b.WriteString("const (\n")
	for i, id := range idents {
		if i == 0 {
			fmt.Fprintf(b, "\t%s %s = iota\n", id, typ)
		} else {
			fmt.Fprintf(b, "\t%s\n", id)
		}
	}
	if len(idents) == 0 {
		fmt.Fprintf(b, "\t%s %s = 0\n)\n\n", sentinel, typ)
		return
	}
	fmt.Fprintf(b, "\n\t%s\n)\n\n", sentinel)
}

// Generate produces the Go source of the symbol tables of s.
// pkg is the package name and source is the schema file
// name mentioned in the header.
func Generate(s *Schema, pkg, source string) ([]byte, error) {
	var b strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&b, format, args...) }

	w("// Code generated by symgen from %s. DO NOT EDIT.\n\n", source)
	w("package %s\n\n", pkg)

	// Commands.
	w("// Known entry points.\n")
	idents := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		idents[i] = "Sym" + SymIdent(c.Name)
	}
	enum(&b, "Sym", "symN", idents)
	w("var symInfo = [symN]struct {\n\tname     string\n\tkind     Kind\n\tplatform Platform\n}{\n")
	for _, c := range s.Commands {
		w("\t{%q, %s, %s},\n", c.Name, goKind(c.Kind), goPlatform(c.Platform))
	}
	w("}\n")
	for _, c := range s.Commands {
		id := SymIdent(c.Name)
		w("\n// %s returns the address of %s.\n", id, c.Name)
		w("func (t *SymbolTable) %s() uintptr {\n\treturn t.addr[Sym%s]\n}\n", id, id)
	}

	// Extensions.
	w("\n// Known extensions.\n")
	idents = make([]string, len(s.Extensions))
	for i, e := range s.Extensions {
		idents[i] = "Ext" + ExtIdent(e.Name)
	}
	enum(&b, "Ext", "extN", idents)
	w("var extNames = [extN]string{\n")
	for _, e := range s.Extensions {
		w("\t%q,\n", e.Name)
	}
	w("}\n")
	for _, e := range s.Extensions {
		id := ExtIdent(e.Name)
		w("\n// %s reports whether %s was available.\n", id, e.Name)
		w("func (c Caps) %s() bool {\n\treturn c.Extension(Ext%s)\n}\n", id, id)
	}

	// Layers.
	w("\n// Known layers.\n")
	idents = make([]string, len(s.Layers))
	for i, l := range s.Layers {
		idents[i] = "Layer" + LayerIdent(l.Name)
	}
	enum(&b, "Layer", "layerN", idents)
	w("var layerNames = [layerN]string{\n")
	for _, l := range s.Layers {
		w("\t%q,\n", l.Name)
	}
	w("}\n")
	for _, l := range s.Layers {
		id := LayerIdent(l.Name)
		w("\n// Layer%s reports whether %s was available.\n", id, l.Name)
		w("func (c Caps) Layer%s() bool {\n\treturn c.Layer(Layer%s)\n}\n", id, id)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}
