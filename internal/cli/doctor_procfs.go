//go:build linux || netbsd || dragonfly

package cli

import (
	"os"

	"github.com/alexcatdad/exepath/internal/exepath"
)

// doctorCheckPlatform verifies the procfs self-image link is present.
func doctorCheckPlatform() (bool, string) {
	g, ok := exepath.Native().(*exepath.GuessAndGrow)
	if !ok {
		return false, "procfs strategy not compiled in"
	}
	fi, err := os.Lstat(g.Link)
	if err != nil {
		return false, "procfs not mounted (" + g.Link + " missing)"
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return false, g.Link + " is not a symlink"
	}
	return true, "procfs link present (" + g.Link + ")"
}
