package exepath

import (
	"bytes"
	"path/filepath"
)

// QueryFunc fills buf with a NUL-terminated path. When buf is too small it
// returns ok=false and the size the buffer needs to be.
type QueryFunc func(buf []byte) (required int, ok bool)

// SizeHinted calls a primitive that reports the exact buffer size it needs on
// failure. It makes at most two attempts.
type SizeHinted struct {
	Query QueryFunc
}

// Resolve implements Strategy.
func (s *SizeHinted) Resolve() (string, bool) {
	buf := make([]byte, initialBufferSize)
	required, ok := s.Query(buf)
	if ok {
		return cutPath(buf)
	}
	if required <= 0 {
		debug("query failed without a size hint", "size", len(buf))
		return "", false
	}

	buf = make([]byte, required)
	if _, ok := s.Query(buf); !ok {
		debug("query failed with hinted size", "size", required)
		return "", false
	}
	return cutPath(buf)
}

func cutPath(buf []byte) (string, bool) {
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		debug("query result is not NUL-terminated", "size", len(buf))
		return "", false
	}
	path := string(buf[:n])
	if !filepath.IsAbs(path) {
		debug("query result is not an absolute path", "path", path)
		return "", false
	}
	return path, true
}
