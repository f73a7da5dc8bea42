//go:build darwin && !cgo

package exepath

// Builds without cgo (e.g., cross-compilation) cannot reach dyld.
const nativeMechanism = "unsupported"

func nativeStrategy() Strategy {
	return Unsupported{}
}
