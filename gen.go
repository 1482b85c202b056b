// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

//go:generate go run ./cmd/symgen -in symbols.hcl -out symbols_gen.go -pkg vkel
