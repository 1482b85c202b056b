// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkel

// SymbolTable holds the resolved address of every known
// entry point. Unresolved entries are 0.
type SymbolTable struct {
	addr [symN]uintptr
}

// Addr returns the address of s.
func (t *SymbolTable) Addr(s Sym) uintptr {
	if s < 0 || s >= symN {
		return 0
	}
	return t.addr[s]
}

// Lookup returns the address of the named entry point.
// known is false if name is not a known entry point.
func (t *SymbolTable) Lookup(name string) (addr uintptr, known bool) {
	s, ok := symByName[name]
	if !ok {
		return 0, false
	}
	return t.addr[s], true
}

// Missing returns the names of the entry points that are
// not resolved, in table order.
func (t *SymbolTable) Missing() (names []string) {
	for i, p := range t.addr {
		if p == 0 {
			names = append(names, symInfo[i].name)
		}
	}
	return
}

// Resolved returns the number of resolved entry points.
func (t *SymbolTable) Resolved() (n int) {
	for _, p := range t.addr {
		if p != 0 {
			n++
		}
	}
	return
}

// fill resolves every entry point using resolve.
// Entry points of platforms not in ps are set to 0.
func (t *SymbolTable) fill(ps platformSet, resolve func(name string) uintptr) {
	for i := range t.addr {
		info := &symInfo[i]
		if !ps.has(info.platform) {
			t.addr[i] = 0
			continue
		}
		t.addr[i] = resolve(info.name)
	}
}

func (t *SymbolTable) reset() { clear(t.addr[:]) }
