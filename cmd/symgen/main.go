// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// symgen generates the symbol tables of the loader from an
// HCL schema listing the known entry points, extensions and
// layers.
//
// Usage:
//
//	symgen [-in symbols.hcl] [-out symbols_gen.go] [-pkg vkel]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

func main() {
	in := flag.String("in", "symbols.hcl", "schema file")
	out := flag.String("out", "symbols_gen.go", "output file")
	pkg := flag.String("pkg", "vkel", "package name of the generated file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("symgen: ")

	s, err := ParseFile(*in)
	if err != nil {
		log.Fatal(err)
	}
	src, err := Generate(s, *pkg, filepath.Base(*in))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("%d commands, %d extensions, %d layers written to %s",
		len(s.Commands), len(s.Extensions), len(s.Layers), *out)
}
