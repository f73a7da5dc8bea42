//go:build linux || netbsd || dragonfly

package exepath

import "golang.org/x/sys/unix"

const nativeMechanism = "procfs-readlink"

func nativeStrategy() Strategy {
	return &GuessAndGrow{
		Link:        selfExeLink,
		Readlink:    unix.Readlink,
		RegularFile: statRegular,
	}
}

func statRegular(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, err
	}
	return uint32(st.Mode)&unix.S_IFMT == unix.S_IFREG, nil
}
