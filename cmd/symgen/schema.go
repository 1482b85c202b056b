// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Kinds of command. They distinguish how a command is expected
// to be obtained from the implementation.
const (
	Global   = "global"
	Instance = "instance"
	Device   = "device"
)

// Platforms that may guard a command.
var Platforms = [...]string{"android", "mir", "wayland", "win32", "xcb", "xlib"}

// Types for decoding the schema.
type (
	Schema struct {
		Commands   []*Command   `hcl:"command,block"`
		Extensions []*Extension `hcl:"extension,block"`
		Layers     []*Layer     `hcl:"layer,block"`
	}
	Command struct {
		Name     string `hcl:"name,label"`
		Kind     string `hcl:"kind"`
		Platform string `hcl:"platform,optional"`
	}
	Extension struct {
		Name string `hcl:"name,label"`
	}
	Layer struct {
		Name string `hcl:"name,label"`
	}
)

// evalContext exposes command kinds as variables, so that
// the schema can write `kind = device`.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			Global:   cty.StringVal(Global),
			Instance: cty.StringVal(Instance),
			Device:   cty.StringVal(Device),
		},
	}
}

// ParseFile parses and validates the schema in the named file.
func ParseFile(filename string) (*Schema, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filename, diags)
	}
	return decode(f, filename)
}

// Parse parses and validates a schema held in memory.
// filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Schema, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (*Schema, error) {
	var s Schema
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema %s: %w", filename, diags)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", filename, err)
	}
	return &s, nil
}

// Errors reported by Validate.
var (
	ErrDuplicate = errors.New("duplicate name")
	ErrBadName   = errors.New("bad name")
	ErrKind      = errors.New("unknown kind")
	ErrPlatform  = errors.New("unknown platform")
	ErrEmpty     = errors.New("no commands")
)

// Validate checks that s is suitable for code generation.
func (s *Schema) Validate() error {
	if len(s.Commands) == 0 {
		return ErrEmpty
	}
	var errs []error
	seen := make(map[string]bool)
	dup := func(name string) {
		if seen[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicate, name))
		}
		seen[name] = true
	}
	for _, c := range s.Commands {
		dup(c.Name)
		if !strings.HasPrefix(c.Name, "vk") || len(c.Name) < 3 || !isIdent(c.Name) {
			errs = append(errs, fmt.Errorf("%w: command %q", ErrBadName, c.Name))
		}
		switch c.Kind {
		case Global, Instance, Device:
		default:
			errs = append(errs, fmt.Errorf("%w: command %q: %q", ErrKind, c.Name, c.Kind))
		}
		if c.Platform != "" && !isPlatform(c.Platform) {
			errs = append(errs, fmt.Errorf("%w: command %q: %q", ErrPlatform, c.Name, c.Platform))
		}
	}
	for _, e := range s.Extensions {
		dup(e.Name)
		if !strings.HasPrefix(e.Name, "VK_") || len(e.Name) < 4 || !isIdent(e.Name) {
			errs = append(errs, fmt.Errorf("%w: extension %q", ErrBadName, e.Name))
		}
	}
	for _, l := range s.Layers {
		dup(l.Name)
		if !strings.HasPrefix(l.Name, "VK_LAYER_") || len(l.Name) < 10 || !isIdent(l.Name) {
			errs = append(errs, fmt.Errorf("%w: layer %q", ErrBadName, l.Name))
		}
	}
	return errors.Join(errs...)
}

func isPlatform(p string) bool {
	for _, x := range Platforms {
		if p == x {
			return true
		}
	}
	return false
}

// isIdent checks that s only contains ASCII letters, digits
// and underscores.
func isIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
