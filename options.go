// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"io"
	"log/slog"

	"github.com/gviegas/vkel/dl"
	"github.com/gviegas/vkel/provider"
)

// ProviderFunc creates the Provider of an open library.
// lookup resolves names directly from the library.
type ProviderFunc func(lookup func(name string) uintptr) provider.Provider

// config holds the configuration of a Loader.
type config struct {
	sys       dl.System
	name      string
	provider  ProviderFunc
	logger    *slog.Logger
	platforms platformSet
}

// defaultConfig is the configuration used when no options
// are provided.
func defaultConfig() config {
	return config{
		sys:       nil,
		name:      dl.DefaultName(),
		provider:  nativeProvider,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		platforms: hostPlatforms,
	}
}

func nativeProvider(lookup func(string) uintptr) provider.Provider {
	return provider.Native(lookup)
}

// Option is a functional option that configures a Loader
// during construction.
type Option func(*config)

// WithSystem sets the dynamic loader facility used to open
// the library. A nil sys selects dl.OS().
func WithSystem(sys dl.System) Option {
	return func(c *config) { c.sys = sys }
}

// WithLibraryName sets the name of the library to open.
// An empty name resets to dl.DefaultName().
func WithLibraryName(name string) Option {
	return func(c *config) {
		if name == "" {
			c.name = dl.DefaultName()
			return
		}
		c.name = name
	}
}

// WithProvider sets the function that creates the Provider
// once the library is open.
// A nil f resets to the native provider.
func WithProvider(f ProviderFunc) Option {
	return func(c *config) {
		if f == nil {
			c.provider = nativeProvider
			return
		}
		c.provider = f
	}
}

// WithLogger sets the logger.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPlatforms sets the platforms whose entry points
// are resolved. Entry points specific to other platforms
// are left unresolved.
// Calling WithPlatforms with no arguments disables every
// platform-specific entry point.
func WithPlatforms(ps ...Platform) Option {
	return func(c *config) { c.platforms = makePlatformSet(ps...) }
}
