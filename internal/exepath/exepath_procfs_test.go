//go:build linux || netbsd || dragonfly

package exepath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestStatRegular(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(file, nil, 0o755))

	regular, err := statRegular(file)
	require.NoError(t, err)
	assert.True(t, regular)

	regular, err = statRegular(dir)
	require.NoError(t, err)
	assert.False(t, regular)

	regular, err = statRegular(os.DevNull)
	require.NoError(t, err)
	assert.False(t, regular, "%s is a character device", os.DevNull)

	_, err = statRegular(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestGuessAndGrow_RealSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(file, nil, 0o755))

	fileLink := filepath.Join(dir, "file-link")
	require.NoError(t, os.Symlink(file, fileLink))
	dirLink := filepath.Join(dir, "dir-link")
	require.NoError(t, os.Symlink(dir, dirLink))

	resolve := func(link string) (string, bool) {
		g := &GuessAndGrow{Link: link, Readlink: unix.Readlink, RegularFile: statRegular}
		return g.Resolve()
	}

	got, ok := resolve(fileLink)
	require.True(t, ok)
	assert.Equal(t, file, got)

	_, ok = resolve(dirLink)
	assert.False(t, ok, "directory target must be rejected")

	_, ok = resolve(filepath.Join(dir, "no-such-link"))
	assert.False(t, ok)

	_, ok = resolve(file)
	assert.False(t, ok, "readlink on a regular file fails with EINVAL")
}

func TestMechanism_Procfs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "procfs-readlink", Mechanism())
	g, ok := Native().(*GuessAndGrow)
	require.True(t, ok, "native strategy is %T", Native())
	assert.Equal(t, selfExeLink, g.Link)
}
