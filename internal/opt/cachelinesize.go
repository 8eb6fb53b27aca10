//go:build !contend_cachelinesize_32 && !contend_cachelinesize_64 && !contend_cachelinesize_128 && !contend_cachelinesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used in structure padding to keep independently
// written counters off each other's cache lines. It's automatically
// calculated using the `golang.org/x/sys` package.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
