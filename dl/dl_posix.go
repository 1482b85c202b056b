// Copyright 2022 Gustavo C. Viegas. All rights reserved.

//go:build !windows

package dl

import (
	"github.com/ebitengine/purego"
)

// posix implements System using dlopen/dlsym/dlclose.
type posix struct{}

// OS returns the System of the host platform.
func OS() System { return posix{} }

func (posix) Open(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func (posix) Close(h uintptr) error {
	return purego.Dlclose(h)
}

func (posix) Sym(h uintptr, name string) (uintptr, error) {
	return purego.Dlsym(h, name)
}
