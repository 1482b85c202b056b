// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package dl

import (
	"golang.org/x/sys/windows"
)

// win32 implements System using LoadLibrary/GetProcAddress/FreeLibrary.
type win32 struct{}

// OS returns the System of the host platform.
func OS() System { return win32{} }

func (win32) Open(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (win32) Close(h uintptr) error {
	return windows.FreeLibrary(windows.Handle(h))
}

func (win32) Sym(h uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}
