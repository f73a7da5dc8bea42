//go:build dragonfly

package exepath

const selfExeLink = "/proc/curproc/file"
