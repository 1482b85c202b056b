// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package provider

import "unsafe"

// ptrAdd returns p advanced by off bytes.
func ptrAdd(p *byte, off int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(p), off)
}

// cGoString copies the NUL-terminated string at p.
func cGoString(p *byte) string {
	if p == nil {
		return ""
	}
	var s []byte
	for i := 0; ; i++ {
		c := *(*byte)(ptrAdd(p, i))
		if c == 0 {
			return string(s)
		}
		s = append(s, c)
	}
}
