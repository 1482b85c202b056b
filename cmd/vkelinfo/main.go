// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// vkelinfo loads the Vulkan library and reports the
// available extensions and layers.
//
// Usage:
//
//	vkelinfo [-lib name] [-missing] [-log-level level] [-log-format text|json]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gviegas/vkel"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "vkelinfo:", err)
		}
		os.Exit(1)
	}
}

// run parses args and writes the report to out.
// Log records are written to logOut. opts are appended to
// the options derived from args.
func run(args []string, out, logOut io.Writer, opts ...vkel.Option) error {
	fs := flag.NewFlagSet("vkelinfo", flag.ContinueOnError)
	fs.SetOutput(logOut)
	lib := fs.String("lib", "", "name of the Vulkan library (default: platform library)")
	missing := fs.Bool("missing", false, "list unresolved entry points")
	level := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	format := fs.String("log-format", "text", "log format (text, json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(*level, *format, logOut)
	opts = append([]vkel.Option{
		vkel.WithLibraryName(*lib),
		vkel.WithLogger(logger),
	}, opts...)
	l := vkel.New(opts...)
	if !l.GlobalInit() {
		return l.Err()
	}
	defer l.Uninit()
	logger.Info("Loader initialized.", "library", l.LibraryName())

	report(out, l, *missing)
	return nil
}

func report(w io.Writer, l *vkel.Loader, missing bool) {
	st := l.Symbols()
	fmt.Fprintf(w, "Library: %s\n", l.LibraryName())
	fmt.Fprintf(w, "State: %v\n", l.State())
	fmt.Fprintf(w, "Entry points: %d resolved, %d unresolved\n", st.Resolved(), len(vkel.Syms())-st.Resolved())

	scope := vkel.GlobalScope()
	exts := l.ListExtensionNames(scope, "")
	fmt.Fprintf(w, "\nInstance extensions (%d):\n", len(exts))
	for _, s := range exts {
		fmt.Fprintf(w, "\t%s\n", s)
	}
	exts.Release()

	layers := l.ListLayerNames(scope)
	fmt.Fprintf(w, "\nInstance layers (%d):\n", len(layers))
	for _, s := range layers {
		fmt.Fprintf(w, "\t%s\n", s)
		lexts := l.ListExtensionNames(scope, s)
		for _, e := range lexts {
			fmt.Fprintf(w, "\t\t%s\n", e)
		}
		lexts.Release()
	}
	layers.Release()

	c := l.Caps()
	fmt.Fprintf(w, "\nKnown extensions:\n")
	for _, e := range vkel.Exts() {
		fmt.Fprintf(w, "\t%-40s %t\n", e, c.Extension(e))
	}
	fmt.Fprintf(w, "\nKnown layers:\n")
	for _, y := range vkel.Layers() {
		fmt.Fprintf(w, "\t%-40s %t\n", y, c.Layer(y))
	}

	if missing {
		fmt.Fprintf(w, "\nUnresolved entry points:\n")
		for _, s := range st.Missing() {
			fmt.Fprintf(w, "\t%s\n", s)
		}
	}
}
