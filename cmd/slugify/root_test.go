package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urislug/pkg/slug"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"single name", []string{"Arthur Russell"}, "Arthur-Russell"},
		{"space flag", []string{"--space", "_", "Arthur Russell"}, "Arthur_Russell"},
		{"multiple names", []string{"Arthur Russell", "Calling Out of Context"}, "Arthur-Russell/Calling-Out-of-Context"},
		{"modifier", []string{"--modifier", "Explicit", "Rihanna", "Loud"}, "Rihanna/Loud-(Explicit)"},
		{"escaping", []string{"Träd, Gräs och Stenar"}, "Tr%C3%A4d%2C-Gr%C3%A4s-och-Stenar"},
		{"encoding", []string{"--encoding", "ISO-8859-1", "Träd"}, "Tr%E4d"},
		{
			"memory store",
			[]string{"--store", "memory", "--taken", "John-Doe", "--taken", "John-Doe-1", "John Doe"},
			"John-Doe-2",
		},
		{
			"memory store with repeater",
			[]string{"--store", "memory", "--multiplier", "*", "--taken", "John-Doe", "--taken", "John-Doe-*", "John Doe"},
			"John-Doe-**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRootCmd_Fallback(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9]{22}$`, out)

	out, _, err = execute(t, "--fallback", "words")
	require.NoError(t, err)
	assert.Regexp(t, `^[a-z]+-[a-z]+$`, out)
}

func TestRootCmd_EnvDefaults(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "slug.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SLUG_SPACE=+\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SLUG_SPACE") })
	t.Setenv("SLUG_SEPARATOR", "|")

	out, _, err := execute(t, "--env-file", envFile, "Arthur Russell", "Calling Out")
	require.NoError(t, err)
	assert.Equal(t, "Arthur+Russell|Calling+Out", out)

	out, _, err = execute(t, "--separator", "/", "Arthur Russell", "Calling Out")
	require.NoError(t, err)
	assert.Equal(t, "Arthur+Russell/Calling+Out", out)
}

func TestRootCmd_Errors(t *testing.T) {
	t.Run("invalid options", func(t *testing.T) {
		_, _, err := execute(t, "--multiplier", "0", "x")
		require.ErrorIs(t, err, slug.ErrInvalidOptions)
	})

	t.Run("strict exhaustion", func(t *testing.T) {
		args := []string{"--store", "memory", "--strict", "--multiplier", "*"}
		args = append(args, "--taken", "x")
		for i := 1; i <= slug.MaxAttempts; i++ {
			args = append(args, "--taken", "x-"+strings.Repeat("*", i))
		}
		args = append(args, "x")
		_, _, err := execute(t, args...)
		require.ErrorIs(t, err, slug.ErrExhausted)
	})

	t.Run("unknown store", func(t *testing.T) {
		_, _, err := execute(t, "--store", "etcd", "x")
		require.ErrorContains(t, err, "unknown store")
	})

	t.Run("unknown fallback", func(t *testing.T) {
		_, _, err := execute(t, "--fallback", "uuid")
		require.ErrorContains(t, err, "unknown fallback")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "x")
		require.Error(t, err)
	})
}

func TestRootCmd_DebugLogging(t *testing.T) {
	out, logs, err := execute(t, "--log-level", "debug", "--log-format", "json",
		"--store", "memory", "--taken", "John-Doe", "John Doe")
	require.NoError(t, err)
	assert.Equal(t, "John-Doe-1", out)
	assert.Contains(t, logs, `"msg":"slug resolved"`)
	assert.Contains(t, logs, `"component":"slugify"`)
}
