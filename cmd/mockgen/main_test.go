package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPlain(t *testing.T) {
	var buf bytes.Buffer
	r := newReport(&buf)
	assert.False(t, r.styled)
	r.created("mockups/01_login_screen.png")
	r.done(1, "mockups")
	assert.Equal(t, "Created: mockups/01_login_screen.png\n1 mockup(s) written to mockups\n", buf.String())
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	viper.Reset()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRenderAndCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, execute(t, "render", "--out", dir, "--only", "login_screen,live_map", "--no-manifest"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"01_login_screen.png", "04_live_map.png"}, names)

	assert.Error(t, execute(t, "check", "--out", dir))
}

func TestRenderRejectsBadFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	assert.Error(t, execute(t, "render", "--out", dir, "--format", "gif"))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "nothing is written on configuration errors")
}

func TestDescribeUnknown(t *testing.T) {
	assert.Error(t, execute(t, "describe", "splash"))
}
