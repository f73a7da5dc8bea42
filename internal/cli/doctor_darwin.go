//go:build darwin

package cli

import "github.com/alexcatdad/exepath/internal/exepath"

// doctorCheckPlatform reports whether dyld is reachable, which requires cgo.
func doctorCheckPlatform() (bool, string) {
	if _, ok := exepath.Native().(*exepath.SizeHinted); !ok {
		return false, "built without cgo; rebuild with CGO_ENABLED=1"
	}
	return true, "dyld _NSGetExecutablePath available"
}
