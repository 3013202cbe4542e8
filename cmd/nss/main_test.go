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
)

func TestRun_MemoryStore(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-s", "memory"}, strings.NewReader(""), &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to the NSS volunteer portal")
}

func TestRun_Errors(t *testing.T) {
	t.Run("bad config", func(t *testing.T) {
		err := run(context.Background(), []string{"-s", "nope"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "config")
	})

	t.Run("unreadable state", func(t *testing.T) {
		dir := t.TempDir()
		// users.json as a directory makes the load fail with a read error.
		require.NoError(t, os.Mkdir(filepath.Join(dir, "users.json"), 0o700))

		var out bytes.Buffer
		err := run(context.Background(), []string{"-s", "file", "-dir", dir}, strings.NewReader(""), &out, &bytes.Buffer{})
		assert.ErrorContains(t, err, "load portal state")
		assert.Empty(t, out.String(), "the REPL must not start")
	})
}
