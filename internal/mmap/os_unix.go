//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

func osMap(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func osUnmap(region []byte) error {
	return unix.Munmap(region)
}
