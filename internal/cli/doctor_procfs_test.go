//go:build linux

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorCheckPlatform_Linux(t *testing.T) {
	ok, msg := doctorCheckPlatform()
	assert.True(t, ok, msg)
	assert.Contains(t, msg, "/proc/self/exe")
}
