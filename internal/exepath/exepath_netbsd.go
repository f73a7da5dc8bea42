//go:build netbsd

package exepath

const selfExeLink = "/proc/curproc/exe"
