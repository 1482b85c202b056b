// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package dl manages the handle of a dynamically loaded
// shared library.
// The platform primitives used to open, close and query
// the library are supplied by a System, so that callers
// can replace them (e.g., for testing).
package dl

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

// System is the interface that wraps the dynamic loader
// facility of the operating system.
type System interface {
	// Open loads the shared library identified by name.
	// It must return a non-zero handle on success.
	Open(name string) (uintptr, error)

	// Close releases a handle returned by Open.
	Close(h uintptr) error

	// Sym returns the address of the named symbol.
	// Absent symbols may be reported either as an
	// error or as a zero address.
	Sym(h uintptr, name string) (uintptr, error)
}

// ErrNotInstalled means that the shared library could
// not be found or loaded.
var ErrNotInstalled = errors.New("dl: missing required library")

// ErrNotOpen means that no library is currently open.
var ErrNotOpen = errors.New("dl: library not open")

// EnvLibrary is the environment variable that overrides
// the default library name.
const EnvLibrary = "VKEL_LIBRARY"

// DefaultName returns the name of the Vulkan library for
// the current platform.
// If EnvLibrary is set to a non-empty value, it is used
// instead.
func DefaultName() string {
	if s := os.Getenv(EnvLibrary); s != "" {
		return s
	}
	return platformName(runtime.GOOS)
}

// platformName returns the default library name for goos.
func platformName(goos string) string {
	switch goos {
	case "windows":
		return "vulkan-1.dll"
	case "android":
		return "libvulkan.so"
	case "darwin", "ios":
		return "libvulkan.1.dylib"
	default:
		return "libvulkan.so.1"
	}
}

// Manager owns the handle of a single shared library.
// It is not safe for concurrent use.
type Manager struct {
	sys  System
	h    uintptr
	name string
}

// NewManager creates a Manager that uses sys.
// If sys is nil, OS() is used.
func NewManager(sys System) *Manager {
	if sys == nil {
		sys = OS()
	}
	return &Manager{sys: sys}
}

// Open loads the named library.
// It fails with an error wrapping ErrNotInstalled if the
// library cannot be loaded, in which case m remains
// closed.
// Callers must Close m before opening it again.
func (m *Manager) Open(name string) error {
	if m.h != 0 {
		panic("dl.Manager.Open: library already open")
	}
	h, err := m.sys.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotInstalled, name, err)
	}
	if h == 0 {
		return fmt.Errorf("%w: %s", ErrNotInstalled, name)
	}
	m.h = h
	m.name = name
	return nil
}

// Close unloads the library.
// Closing a Manager that is not open has no effect.
func (m *Manager) Close() error {
	if m.h == 0 {
		return nil
	}
	err := m.sys.Close(m.h)
	m.h = 0
	m.name = ""
	return err
}

// Lookup returns the address of the named symbol, or 0
// if the symbol is absent or m is not open.
func (m *Manager) Lookup(name string) uintptr {
	if m.h == 0 {
		return 0
	}
	p, err := m.sys.Sym(m.h, name)
	if err != nil {
		return 0
	}
	return p
}

// IsOpen reports whether m holds an open library.
func (m *Manager) IsOpen() bool { return m.h != 0 }

// Name returns the name of the open library, or the
// empty string if m is not open.
func (m *Manager) Name() string { return m.name }
