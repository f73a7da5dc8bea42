//go:build darwin && cgo

package exepath

/*
#include <mach-o/dyld.h>
#include <stdint.h>
*/
import "C"

import "unsafe"

const nativeMechanism = "dyld-executable-path"

func nativeStrategy() Strategy {
	return &SizeHinted{Query: nsGetExecutablePath}
}

// nsGetExecutablePath wraps _NSGetExecutablePath, which returns -1 and
// stores the required size in bufsize when buf is too small.
func nsGetExecutablePath(buf []byte) (int, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	size := C.uint32_t(len(buf))
	rc := C._NSGetExecutablePath((*C.char)(unsafe.Pointer(&buf[0])), &size)
	if rc != 0 {
		return int(size), false
	}
	return len(buf), true
}
