// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/gviegas/vkel/dl"
	"github.com/gviegas/vkel/provider"
)

// State is the initialization state of a Loader.
type State int

// States of a Loader.
const (
	Uninitialized State = iota
	GloballyInitialized
	InstanceInitialized
	DeviceInitialized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case GloballyInitialized:
		return "globally initialized"
	case InstanceInitialized:
		return "instance initialized"
	case DeviceInitialized:
		return "device initialized"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Loader owns the Vulkan library handle, the symbol table
// and the capability flags.
// The zero value is not usable; call New instead.
type Loader struct {
	cfg   config
	lib   *dl.Manager
	prov  provider.Provider
	syms  SymbolTable
	caps  Caps
	state State
	inst  Instance
	err   error
	log   *slog.Logger
}

// New creates a Loader in the Uninitialized state.
// It does not open the library.
func New(opts ...Option) *Loader {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		cfg: cfg,
		lib: dl.NewManager(cfg.sys),
		log: cfg.logger,
	}
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the process-wide Loader.
// It is created with no options on first use.
func Default() *Loader {
	defaultOnce.Do(func() { defaultLoader = New() })
	return defaultLoader
}

// GlobalInit (re)opens the library and resolves every known
// entry point from it directly. Capability flags are computed
// from the instance-level extensions and layers.
// Any library opened by a previous call is closed first.
//
// It returns false if the library cannot be opened, in which
// case every entry point is left unresolved, every flag is
// unset and l is Uninitialized. Err reports the cause.
func (l *Loader) GlobalInit() bool {
	l.close()
	if err := l.lib.Open(l.cfg.name); err != nil {
		l.err = err
		l.log.Debug("Library open failed.", "name", l.cfg.name, "error", err)
		return false
	}
	l.err = nil
	l.log.Debug("Library opened.", "name", l.cfg.name)
	l.prov = l.cfg.provider(l.lib.Lookup)
	l.syms.fill(l.cfg.platforms, l.ResolveGlobal)
	l.recompute(GlobalScope())
	l.setState(GloballyInitialized)
	return true
}

// InstanceInit resolves every known entry point for inst.
// Capability flags are computed from the instance-level
// extensions and layers.
// If no library is open, GlobalInit is called first, and
// InstanceInit returns false if it fails.
//
// inst is remembered and used by ResolveForDevice.
func (l *Loader) InstanceInit(inst Instance) bool {
	if !l.lib.IsOpen() && !l.GlobalInit() {
		return false
	}
	l.inst = inst
	l.syms.fill(l.cfg.platforms, func(name string) uintptr {
		return l.ResolveForInstance(inst, name)
	})
	l.recompute(InstanceScope(inst))
	l.setState(InstanceInitialized)
	return true
}

// DeviceInit resolves every known entry point for dev.
// Capability flags are computed from the device-level
// extensions and layers of pdev.
// If no library is open, GlobalInit is called first, and
// DeviceInit returns false if it fails.
func (l *Loader) DeviceInit(pdev PhysicalDevice, dev Device) bool {
	if !l.lib.IsOpen() && !l.GlobalInit() {
		return false
	}
	l.syms.fill(l.cfg.platforms, func(name string) uintptr {
		return l.ResolveForDevice(dev, name)
	})
	l.recompute(DeviceScope(pdev))
	l.setState(DeviceInitialized)
	return true
}

// Uninit closes the library and resets l to the
// Uninitialized state. It can be called any number of times.
func (l *Loader) Uninit() {
	l.close()
	l.err = nil
}

// close releases the library and clears everything derived
// from it.
func (l *Loader) close() {
	if l.lib.IsOpen() {
		name := l.lib.Name()
		if err := l.lib.Close(); err != nil {
			l.log.Debug("Library close failed.", "name", name, "error", err)
		} else {
			l.log.Debug("Library closed.", "name", name)
		}
	}
	l.prov = nil
	l.syms.reset()
	l.caps = Caps{}
	l.inst = 0
	l.setState(Uninitialized)
}

func (l *Loader) setState(s State) {
	if l.state == s {
		return
	}
	l.log.Debug("State changed.", "from", l.state, "to", s, "resolved", l.syms.Resolved())
	l.state = s
}

// recompute replaces the capability flags with the ones
// reported for scope.
func (l *Loader) recompute(scope Scope) {
	exts := l.ListExtensionNames(scope, "")
	layers := l.ListLayerNames(scope)
	l.caps = makeCaps(exts, layers)
	exts.Release()
	layers.Release()
}

// State returns the current state of l.
func (l *Loader) State() State { return l.state }

// Err returns the error that caused the last initialization
// to fail, or nil.
func (l *Loader) Err() error { return l.err }

// LibraryName returns the name of the open library, or the
// empty string if none is open.
func (l *Loader) LibraryName() string { return l.lib.Name() }

// Symbols returns the symbol table of l.
// The table is updated in place by every initialization.
func (l *Loader) Symbols() *SymbolTable { return &l.syms }

// Caps returns a snapshot of the capability flags.
func (l *Loader) Caps() Caps { return l.caps.clone() }
