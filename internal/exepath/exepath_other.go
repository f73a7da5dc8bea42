//go:build !linux && !netbsd && !dragonfly && !darwin

package exepath

const nativeMechanism = "unsupported"

func nativeStrategy() Strategy {
	return Unsupported{}
}
