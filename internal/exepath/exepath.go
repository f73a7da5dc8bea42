// Package exepath resolves the absolute path of the running executable.
// Each platform (linux, darwin, ...) compiles in its own strategy that follows
// the OS's native mechanism for reporting the process image path.
package exepath

import (
	"log/slog"
	"path/filepath"
	"sync/atomic"
)

const (
	// initialBufferSize is the first buffer size tried by both strategies.
	initialBufferSize = 256
	// maxBufferSize caps guess-and-grow so a bogus link cannot cause runaway allocation.
	maxBufferSize = 1 << 20
)

// Strategy resolves the executable path using one platform mechanism.
// A false result means the path is unknown.
type Strategy interface {
	Resolve() (string, bool)
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs a logger that records, at debug level, why a strategy
// gave up. A nil logger restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

func debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

// Native returns the strategy compiled in for this platform.
func Native() Strategy {
	return nativeStrategy()
}

// Mechanism names the strategy compiled in for this platform.
func Mechanism() string {
	return nativeMechanism
}

// Resolve returns the absolute path of the running executable.
// It returns ("", false) when the platform cannot report it or the reported
// value could not be verified. The result is never cached.
func Resolve() (string, bool) {
	return nativeStrategy().Resolve()
}

// Dir returns the directory containing the running executable.
func Dir() (string, bool) {
	p, ok := Resolve()
	if !ok {
		return "", false
	}
	return filepath.Dir(p), true
}
