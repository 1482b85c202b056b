// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

import (
	"github.com/gviegas/vkel/internal/bitset"
)

// Caps records which of the known extensions and layers
// were reported as available by the implementation.
// The zero value reports nothing as available.
type Caps struct {
	ext   bitset.Set
	layer bitset.Set
}

// Extension reports whether e was available.
func (c Caps) Extension(e Ext) bool { return c.ext.IsSet(int(e)) }

// Layer reports whether l was available.
func (c Caps) Layer(l Layer) bool { return c.layer.IsSet(int(l)) }

// Has reports whether the named extension or layer was
// available. Names that are not known extensions or layers
// are reported as unavailable.
func (c Caps) Has(name string) bool {
	if e, ok := extByName[name]; ok {
		return c.Extension(e)
	}
	if l, ok := layerByName[name]; ok {
		return c.Layer(l)
	}
	return false
}

// Extensions returns the known extensions that were available.
func (c Caps) Extensions() (exts []Ext) {
	for i, v := range c.ext.All() {
		if v {
			exts = append(exts, Ext(i))
		}
	}
	return
}

// Layers returns the known layers that were available.
func (c Caps) Layers() (layers []Layer) {
	for i, v := range c.layer.All() {
		if v {
			layers = append(layers, Layer(i))
		}
	}
	return
}

// clone returns a copy of c that shares no memory with it.
func (c Caps) clone() Caps {
	return Caps{ext: c.ext.Clone(), layer: c.layer.Clone()}
}

// makeCaps creates Caps from lists of extension and
// layer names.
func makeCaps(exts, layers NameList) Caps {
	c := Caps{ext: bitset.New(int(extN)), layer: bitset.New(int(layerN))}
	for i := range extN {
		c.ext.Put(int(i), exts.Contains(extNames[i]))
	}
	for i := range layerN {
		c.layer.Put(int(i), layers.Contains(layerNames[i]))
	}
	return c
}

var extByName = func() map[string]Ext {
	m := make(map[string]Ext, extN)
	for i, s := range extNames {
		m[s] = Ext(i)
	}
	return m
}()

var layerByName = func() map[string]Layer {
	m := make(map[string]Layer, layerN)
	for i, s := range layerNames {
		m[s] = Layer(i)
	}
	return m
}()

// LookupExt returns the Ext of the named extension.
func LookupExt(name string) (Ext, bool) {
	e, ok := extByName[name]
	return e, ok
}

// LookupLayer returns the Layer of the named layer.
func LookupLayer(name string) (Layer, bool) {
	l, ok := layerByName[name]
	return l, ok
}
