//go:build !linux && !netbsd && !dragonfly && !darwin

package cli

import "runtime"

// doctorCheckPlatform is a stub for platforms without a mechanism.
func doctorCheckPlatform() (bool, string) {
	return false, "no executable path mechanism on " + runtime.GOOS
}
