//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// osMap commits the whole range up front; pages are backed on first touch.
func osMap(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil //nolint:govet // addr is owned by VirtualAlloc
}

// osUnmap releases a range returned by osMap. MEM_RELEASE requires the base
// address and a zero size.
func osUnmap(region []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(region))), 0, windows.MEM_RELEASE) //nolint:gosec // base of a VirtualAlloc range
}
