// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"testing"

	"github.com/gviegas/vkel/internal/fake"
	"github.com/gviegas/vkel/provider"
)

// Helpers for testing.

// tLib is the name of the library served by fake systems.
const tLib = "libvulkan.fake"

// newTestLoader creates a Loader that opens a fake library
// exporting syms and whose provider is prov.
// If syms is nil, the library cannot be opened.
func newTestLoader(t *testing.T, syms map[string]uintptr, prov *fake.Provider, opts ...Option) (*Loader, *fake.System) {
	t.Helper()
	sys := fake.NewSystem()
	if syms != nil {
		sys.AddLibrary(tLib, syms)
	}
	if prov == nil {
		prov = &fake.Provider{}
	}
	opts = append([]Option{
		WithSystem(sys),
		WithLibraryName(tLib),
		WithProvider(func(func(string) uintptr) provider.Provider { return prov }),
	}, opts...)
	return New(opts...), sys
}

// unresolved checks that no entry point of l is resolved.
func unresolved(l *Loader) bool { return l.Symbols().Resolved() == 0 }
