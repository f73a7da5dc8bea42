//go:build linux

package exepath

const selfExeLink = "/proc/self/exe"
