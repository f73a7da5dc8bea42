package exepath

import "path/filepath"

// ReadlinkFunc reads the target of link into buf without NUL-terminating it
// and returns the number of bytes written, like readlink(2).
type ReadlinkFunc func(link string, buf []byte) (int, error)

// RegularFileFunc reports whether path names an existing regular file,
// following symlinks.
type RegularFileFunc func(path string) (bool, error)

// GuessAndGrow reads a procfs self-image symlink. The kernel reports a size
// of zero for these links, so the buffer size is guessed and doubled whenever
// the result fills it completely.
type GuessAndGrow struct {
	Link        string
	Readlink    ReadlinkFunc
	RegularFile RegularFileFunc
}

// Resolve implements Strategy.
func (g *GuessAndGrow) Resolve() (string, bool) {
	// size doubles every iteration and the loop exits at maxBufferSize.
	for size := initialBufferSize; ; size *= 2 {
		buf := make([]byte, size)
		n, err := g.Readlink(g.Link, buf)
		if err != nil {
			debug("readlink failed", "link", g.Link, "error", err)
			return "", false
		}
		if n < 0 || n > size {
			debug("readlink returned out-of-range length", "link", g.Link, "n", n, "size", size)
			return "", false
		}
		if n < size {
			return g.verify(string(buf[:n]))
		}
		// n == size: the target may have been truncated.
		if size >= maxBufferSize {
			debug("link target exceeds buffer cap", "link", g.Link, "cap", maxBufferSize)
			return "", false
		}
	}
}

// verify rejects anything that is not an absolute path to a regular file.
// Old Linux kernels report an inode reference such as "[0301]:1234" here.
func (g *GuessAndGrow) verify(path string) (string, bool) {
	if !filepath.IsAbs(path) {
		debug("link target is not an absolute path", "link", g.Link, "target", path)
		return "", false
	}
	regular, err := g.RegularFile(path)
	if err != nil {
		debug("stat failed", "path", path, "error", err)
		return "", false
	}
	if !regular {
		debug("link target is not a regular file", "path", path)
		return "", false
	}
	return path, true
}
