package deps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMpv(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(string) (string, error) { return "/usr/bin/mpv", nil }
	assert.NoError(t, CheckMpv())
	assert.Empty(t, CheckAll())

	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	err := CheckMpv()
	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "mpv", depErr.Name)
	assert.Equal(t, "mpv not found. Install from: https://mpv.io/installation/", err.Error())
	assert.Len(t, CheckAll(), 1)
}
