package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFailsOnMissingManifest(t *testing.T) {
	t.Setenv("VREGISTRY_MANIFEST", filepath.Join(t.TempDir(), "missing.json"))

	err := run(context.Background(), io.Discard)
	assert.ErrorContains(t, err, "manifest")
}

func TestRunFailsOnBadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"validators":[{"type":"rules.Nope"}]}`), 0o600))
	t.Setenv("VREGISTRY_MANIFEST", path)

	err := run(context.Background(), io.Discard)
	assert.ErrorContains(t, err, "unknown validator type")
}

func TestRunFailsOnBadPreload(t *testing.T) {
	t.Setenv("VREGISTRY_PRELOAD", "Missing")

	err := run(context.Background(), io.Discard)
	assert.ErrorContains(t, err, "preload")
}

func TestRunFailsOnBadConfig(t *testing.T) {
	t.Setenv("VREGISTRY_MAX_BODY_SIZE", "-1")

	err := run(context.Background(), io.Discard)
	assert.ErrorContains(t, err, "config")
}
